package component

// GamePhase — фаза партии
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhaseVictory
	PhaseDefeat
)

func (p GamePhase) String() string {
	switch p {
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "playing"
	}
}
