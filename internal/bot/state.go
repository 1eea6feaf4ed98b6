package bot

type phase int

const (
	phaseStarting phase = iota
	phasePolling
)

func (p phase) String() string {
	switch p {
	case phaseStarting:
		return "starting"
	case phasePolling:
		return "polling"
	default:
		return "unknown"
	}
}

// loopState трогает только цикл опроса, поэтому без мьютекса.
// Ничего не сохраняется: после перезапуска курсор и трекеры пустые.
type loopState struct {
	phase       phase
	cursor      int64
	lastMessage string // последнее доставленное сообщение о статусе
	lastError   string // последнее доставленное сообщение об ошибке
}

func newLoopState() *loopState {
	return &loopState{phase: phaseStarting}
}
