package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestClientAnthropicCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("x-api-key = %q", got)
		}
		if got := r.Header.Get("anthropic-version"); got == "" {
			t.Error("missing anthropic-version header")
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if _, ok := body["system"]; !ok {
			t.Error("JSON mode did not set a system prompt")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content": [{"text": "{\"swatches\": []}"}], "usage": {"input_tokens": 10, "output_tokens": 5}}`))
	}))
	defer server.Close()

	client := NewClient("test-key",
		WithAPIConfig(server.URL, "test-model"),
		WithRateLimit(600, 10))

	response, err := client.CompleteJSON(context.Background(), "analyze this")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if response != `{"swatches": []}` {
		t.Errorf("response = %q", response)
	}
}

func TestClientOpenAICompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"content": "hello"}}], "usage": {"total_tokens": 15}}`))
	}))
	defer server.Close()

	// The path segment routes the client into OpenAI wire format.
	client := NewClient("test-key",
		WithAPIConfig(server.URL+"/openai", "test-model"),
		WithRateLimit(600, 10))

	response, err := client.Complete(context.Background(), "say hello")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if response != "hello" {
		t.Errorf("response = %q, want hello", response)
	}
}

func TestClientRetriesOnThrottle(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"content": [{"text": "ok"}], "usage": {}}`))
	}))
	defer server.Close()

	client := NewClient("test-key",
		WithAPIConfig(server.URL, "test-model"),
		WithRetry(2),
		WithRateLimit(600, 10))

	response, err := client.Complete(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("complete after retry: %v", err)
	}
	if response != "ok" {
		t.Errorf("response = %q", response)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("got %d requests, want 2", got)
	}
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "bad request"}`))
	}))
	defer server.Close()

	client := NewClient("test-key",
		WithAPIConfig(server.URL, "test-model"),
		WithRetry(3),
		WithRateLimit(600, 10))

	if _, err := client.Complete(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for 400 response")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("got %d requests, want 1 (no retry on 4xx)", got)
	}
}

func TestMockClientRoutesByPrompt(t *testing.T) {
	mock := NewMockClient()
	ctx := context.Background()

	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"palette", "extract the color palette it evokes", `"swatches"`},
		{"devices", "identify the literary devices used", `"devices"`},
		{"power", "analyze the power dynamics of the dialogue", `"turns"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := mock.CompleteJSON(ctx, tt.prompt)
			if err != nil {
				t.Fatalf("complete: %v", err)
			}
			if !strings.Contains(response, tt.want) {
				t.Errorf("response does not carry %s", tt.want)
			}

			var parsed map[string]interface{}
			if err := json.Unmarshal([]byte(response), &parsed); err != nil {
				t.Errorf("fixture is not valid JSON: %v", err)
			}
		})
	}
}
