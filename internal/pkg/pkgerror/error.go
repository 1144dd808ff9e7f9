package pkgerror

import "net/http"

type Code int

const (
	CodeInternal Code = iota
	CodeInvalidInput
	CodeNotFound
)

// BusinessError is an error that is safe to surface to API clients.
type BusinessError struct {
	message string
	code    Code
}

func NewBusiness(message string, code Code) *BusinessError {
	return &BusinessError{message: message, code: code}
}

func (e *BusinessError) Error() string {
	return e.message
}

func (e *BusinessError) Code() Code {
	return e.code
}

// HTTPStatus maps an error to an HTTP status code. Unknown errors are
// treated as internal server errors.
func HTTPStatus(err error) int {
	be, ok := err.(*BusinessError)
	if !ok {
		return http.StatusInternalServerError
	}
	switch be.code {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
