package api

import "fmt"

const defaultMessage = "Произошла ошибка"

// единая форма ошибки для транспортных и прикладных сбоев
type Error struct {
	Message string
	Status  int
	Details map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %s", e.Status, e.Message, e.Err.Error())
	}
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newTransportError(err error) *Error {
	return &Error{
		Message: defaultMessage,
		Status:  500,
		Err:     err,
	}
}

func newResponseError(status int, body map[string]any) *Error {
	message := defaultMessage
	if detail, ok := body["detail"].(string); ok && detail != "" {
		message = detail
	}
	return &Error{
		Message: message,
		Status:  status,
		Details: body,
	}
}
