package component

// Phase — жизненный цикл партии.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseRunning
	PhasePause // объявлено, но недостижимо
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "Init"
	case PhaseRunning:
		return "Running"
	case PhasePause:
		return "Pause"
	case PhaseEnd:
		return "End"
	default:
		return "Unknown"
	}
}
