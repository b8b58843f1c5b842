package service

// Presenter is what the engine needs from the user interface. Formatting,
// width and screen handling are left entirely to the implementation.
type Presenter interface {
	// PromptText blocks for one line of input. It returns io.EOF once
	// the input is closed.
	PromptText(message string) (string, error)
	Display(lines ...string)
	Confirm(message string) (bool, error)
}
