package tetris

// Command is an abstract player input.
type Command uint8

const (
	CommandNone Command = iota
	MoveLeft
	MoveRight
	SoftDrop
	RotateCW
	RotateCCW
	HardDrop
	Hold
	Quit
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case SoftDrop:
		return "SoftDrop"
	case RotateCW:
		return "RotateCW"
	case RotateCCW:
		return "RotateCCW"
	case HardDrop:
		return "HardDrop"
	case Hold:
		return "Hold"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// State is the phase of the progression state machine. Spawning and
// Locking are transient; a Game observed between calls is Falling or
// GameOver.
type State uint8

const (
	StateSpawning State = iota
	StateFalling
	StateLocking
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateSpawning:
		return "Spawning"
	case StateFalling:
		return "Falling"
	case StateLocking:
		return "Locking"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
