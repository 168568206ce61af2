package analysis

// Tactic is a closed tag for a detected conversational power move.
// Empty means none detected for the turn.
type Tactic string

const (
	TacticNone                 Tactic = ""
	TacticWeaponizedPoliteness Tactic = "weaponizedPoliteness"
	TacticExchangeTermination  Tactic = "exchangeTermination"
	TacticTopicControl         Tactic = "topicControl"
	TacticInterruption         Tactic = "interruption"
	TacticCondescension        Tactic = "condescension"
	TacticDeflection           Tactic = "deflection"
	TacticStonewalling         Tactic = "stonewalling"
	TacticReframing            Tactic = "reframing"
)

var knownTactics = map[Tactic]struct{}{
	TacticWeaponizedPoliteness: {},
	TacticExchangeTermination:  {},
	TacticTopicControl:         {},
	TacticInterruption:         {},
	TacticCondescension:        {},
	TacticDeflection:           {},
	TacticStonewalling:         {},
	TacticReframing:            {},
}

// Valid reports whether t is empty or a member of the closed tactic set.
func (t Tactic) Valid() bool {
	if t == TacticNone {
		return true
	}
	_, ok := knownTactics[t]
	return ok
}
