package models

// ErrorNotFound is returned when an operation targets an id no backend holds.
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

var ErrPromptNotFound = ErrorNotFound{Message: "Prompt not found"}
