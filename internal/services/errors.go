package services

import "net/http"

// ServiceError is the failure contract between services and handlers: a
// short machine-readable code, a human-readable message, and the HTTP
// status the handler should answer with.
type ServiceError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *ServiceError) Error() string {
	return e.Message
}

const (
	CodeValidation   = "validation_error"
	CodeNotFound     = "not_found"
	CodeUnauthorized = "unauthorized"
	CodeConflict     = "conflict"
	CodeServer       = "server_error"
)

func errValidation(message string) *ServiceError {
	return &ServiceError{Code: CodeValidation, Message: message, Status: http.StatusBadRequest}
}

func errNotFound(message string) *ServiceError {
	return &ServiceError{Code: CodeNotFound, Message: message, Status: http.StatusNotFound}
}

func errUnauthorized(message string) *ServiceError {
	return &ServiceError{Code: CodeUnauthorized, Message: message, Status: http.StatusUnauthorized}
}

func errConflict(message string) *ServiceError {
	return &ServiceError{Code: CodeConflict, Message: message, Status: http.StatusConflict}
}

func errServer(message string) *ServiceError {
	return &ServiceError{Code: CodeServer, Message: message, Status: http.StatusInternalServerError}
}
