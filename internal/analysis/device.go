package analysis

// DeviceType is a closed tag for a literary device category.
type DeviceType string

// The recognized device vocabulary. Detection output carrying a tag
// outside this set is rejected at the provider boundary.
const (
	DeviceAlliteration       DeviceType = "alliteration"
	DeviceAllusion           DeviceType = "allusion"
	DeviceAnaphora           DeviceType = "anaphora"
	DeviceAnthropomorphism   DeviceType = "anthropomorphism"
	DeviceAntithesis         DeviceType = "antithesis"
	DeviceAphorism           DeviceType = "aphorism"
	DeviceApostrophe         DeviceType = "apostrophe"
	DeviceAssonance          DeviceType = "assonance"
	DeviceAsyndeton          DeviceType = "asyndeton"
	DeviceChiasmus           DeviceType = "chiasmus"
	DeviceColloquialism      DeviceType = "colloquialism"
	DeviceConsonance         DeviceType = "consonance"
	DeviceEpistrophe         DeviceType = "epistrophe"
	DeviceEuphemism          DeviceType = "euphemism"
	DeviceFlashback          DeviceType = "flashback"
	DeviceForeshadowing      DeviceType = "foreshadowing"
	DeviceHyperbole          DeviceType = "hyperbole"
	DeviceIdiom              DeviceType = "idiom"
	DeviceImagery            DeviceType = "imagery"
	DeviceIronyDramatic      DeviceType = "dramaticIrony"
	DeviceIronySituational   DeviceType = "situationalIrony"
	DeviceIronyVerbal        DeviceType = "verbalIrony"
	DeviceJuxtaposition      DeviceType = "juxtaposition"
	DeviceLitotes            DeviceType = "litotes"
	DeviceMetaphor           DeviceType = "metaphor"
	DeviceMetonymy           DeviceType = "metonymy"
	DeviceMotif              DeviceType = "motif"
	DeviceOnomatopoeia       DeviceType = "onomatopoeia"
	DeviceOxymoron           DeviceType = "oxymoron"
	DeviceParadox            DeviceType = "paradox"
	DeviceParallelism        DeviceType = "parallelism"
	DevicePatheticFallacy    DeviceType = "patheticFallacy"
	DevicePersonification    DeviceType = "personification"
	DevicePolysyndeton       DeviceType = "polysyndeton"
	DeviceRepetition         DeviceType = "repetition"
	DeviceRhetoricalQuestion DeviceType = "rhetoricalQuestion"
	DeviceSimile             DeviceType = "simile"
	DeviceSymbolism          DeviceType = "symbolism"
	DeviceSynecdoche         DeviceType = "synecdoche"
	DeviceUnderstatement     DeviceType = "understatement"
	DeviceZeugma             DeviceType = "zeugma"
)

var knownDevices = map[DeviceType]struct{}{
	DeviceAlliteration:       {},
	DeviceAllusion:           {},
	DeviceAnaphora:           {},
	DeviceAnthropomorphism:   {},
	DeviceAntithesis:         {},
	DeviceAphorism:           {},
	DeviceApostrophe:         {},
	DeviceAssonance:          {},
	DeviceAsyndeton:          {},
	DeviceChiasmus:           {},
	DeviceColloquialism:      {},
	DeviceConsonance:         {},
	DeviceEpistrophe:         {},
	DeviceEuphemism:          {},
	DeviceFlashback:          {},
	DeviceForeshadowing:      {},
	DeviceHyperbole:          {},
	DeviceIdiom:              {},
	DeviceImagery:            {},
	DeviceIronyDramatic:      {},
	DeviceIronySituational:   {},
	DeviceIronyVerbal:        {},
	DeviceJuxtaposition:      {},
	DeviceLitotes:            {},
	DeviceMetaphor:           {},
	DeviceMetonymy:           {},
	DeviceMotif:              {},
	DeviceOnomatopoeia:       {},
	DeviceOxymoron:           {},
	DeviceParadox:            {},
	DeviceParallelism:        {},
	DevicePatheticFallacy:    {},
	DevicePersonification:    {},
	DevicePolysyndeton:       {},
	DeviceRepetition:         {},
	DeviceRhetoricalQuestion: {},
	DeviceSimile:             {},
	DeviceSymbolism:          {},
	DeviceSynecdoche:         {},
	DeviceUnderstatement:     {},
	DeviceZeugma:             {},
}

// Valid reports whether d is a member of the closed device set.
func (d DeviceType) Valid() bool {
	_, ok := knownDevices[d]
	return ok
}
