package utils

// CustomError carries the HTTP status a failure should be reported with.
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"msg"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError is a helper to build a CustomError.
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}
