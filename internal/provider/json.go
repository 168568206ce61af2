// Package provider holds the concrete analysis providers: three
// LLM-backed analyzers (color palette, literary devices, power balance)
// and a local readability scorer. Each provider owns its prompt, its
// response parsing, and the domain validation of what the model sent
// back.
package provider

import (
	"encoding/json"
	"strings"
)

// cleanJSONResponse removes markdown code fences and trims to the
// outermost JSON object, since models occasionally wrap their output.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start >= 0 && end > start {
		response = response[start : end+1]
	}

	return strings.TrimSpace(response)
}

// parseJSONResponse parses a potentially messy model JSON response.
func parseJSONResponse(response string, target interface{}) error {
	return json.Unmarshal([]byte(cleanJSONResponse(response)), target)
}
