package analysis

import "time"

// ProviderID identifies one analysis category. Each registered provider
// owns exactly one ID, and the coordinator tracks one source per ID.
type ProviderID string

const (
	ProviderColorPalette    ProviderID = "color-palette"
	ProviderLiteraryDevices ProviderID = "literary-devices"
	ProviderReadability     ProviderID = "readability"
	ProviderPowerBalance    ProviderID = "power-balance"
)

// Status is the lifecycle state of a single analysis source.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Terminal reports whether the source has settled.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusError
}

// Payload is the tagged result variant carried by a Success source.
// Each provider category has its own concrete payload type; Kind ties
// the payload back to the provider that produced it.
type Payload interface {
	Kind() ProviderID
	// Len is the number of elements in the underlying ordered sequence.
	// A zero-length successful payload is distinct from an error: it
	// means the provider ran but found nothing to report.
	Len() int
}

// ColorSwatch is one entry of a color palette payload.
type ColorSwatch struct {
	Hex        string  `json:"hex"`
	Name       string  `json:"name"`
	Prominence float64 `json:"prominence"`
}

// Palette is the ordered swatch sequence produced by the color provider.
type Palette []ColorSwatch

func (Palette) Kind() ProviderID { return ProviderColorPalette }
func (p Palette) Len() int       { return len(p) }

// DeviceInstance is one detected literary device occurrence.
type DeviceInstance struct {
	Type        DeviceType `json:"type"`
	Snippet     string     `json:"snippet"`
	Explanation string     `json:"explanation"`
	Position    int        `json:"position"`
}

// Devices is the ordered device sequence produced by the device provider.
type Devices []DeviceInstance

func (Devices) Kind() ProviderID { return ProviderLiteraryDevices }
func (d Devices) Len() int       { return len(d) }

// ReadabilityPoint is one segment sample on the readability trajectory.
// Segment is the paragraph ordinal; ordering represents reading
// progression through the text.
type ReadabilityPoint struct {
	Segment int     `json:"segment"`
	Score   float64 `json:"score"`
}

// ReadabilityCurve is the ordered segment sequence for the whole text.
type ReadabilityCurve []ReadabilityPoint

func (ReadabilityCurve) Kind() ProviderID { return ProviderReadability }
func (r ReadabilityCurve) Len() int       { return len(r) }

// TurnMetrics are the secondary per-turn conversational measurements.
type TurnMetrics struct {
	IsQuestion            bool    `json:"is_question"`
	Interruptions         int     `json:"interruptions"`
	WordCount             int     `json:"word_count"`
	HedgeIntensifierRatio float64 `json:"hedge_intensifier_ratio"`
	TopicChanged          bool    `json:"topic_changed"`
}

// DialogueTurn is one chronological turn of the power-balance payload.
// PowerScore is nominally bounded to [-5, 5]; the chart layer clamps
// defensively rather than trusting the bound.
type DialogueTurn struct {
	Speaker    string      `json:"speaker"`
	PowerScore int         `json:"power_score"`
	Metrics    TurnMetrics `json:"metrics"`
	Tactic     Tactic      `json:"tactic,omitempty"`
}

// Dialogue is the chronological turn sequence; index is the x ordinal.
type Dialogue []DialogueTurn

func (Dialogue) Kind() ProviderID { return ProviderPowerBalance }
func (d Dialogue) Len() int       { return len(d) }

// SourceState is the per-provider state record owned by the coordinator.
// Payload is non-nil only when Status is StatusSuccess; Err is non-empty
// only when Status is StatusError.
type SourceState struct {
	Provider  ProviderID
	Status    Status
	Payload   Payload
	Err       string
	UpdatedAt time.Time
}

// Snapshot is a read-only value copy of all source states, keyed by
// provider. Consumers receive one on every transition and must not
// treat it as live.
type Snapshot map[ProviderID]SourceState

// Settled reports whether every source in the snapshot is terminal.
func (s Snapshot) Settled() bool {
	for _, src := range s {
		if !src.Status.Terminal() {
			return false
		}
	}
	return true
}
