package pkg

import "fmt"

// AppError is the error shape returned by HTTP handlers.
//
// Code is an internal classification used in logs; only Message reaches the client.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

// HTTPError is the JSON body written for every failed request.
type HTTPError struct {
	Error string `json:"error"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithStatus returns a copy of e answering with a different HTTP status.
func (e *AppError) WithStatus(httpStatus int) *AppError {
	cp := *e
	cp.HTTPStatus = httpStatus
	return &cp
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: e.Message}
}
