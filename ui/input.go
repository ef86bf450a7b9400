package ui

type Action int

type Input struct {
	Action  Action
	Release bool
}

// the toggle actions flip the corresponding input pin on press and ignore the
// release. PWMLine is a level: the pin follows the key
const (
	Nothing Action = iota
	Enable
	Loop
	Double
	PWMLine
)
