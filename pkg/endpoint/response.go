package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

type Response struct {
	writer  http.ResponseWriter
	request *http.Request
	headers func(w http.ResponseWriter)
}

// MakeNoCacheResponse builds a JSON response that proxies must never store.
// Content changes on every write, so nothing served here is cacheable.
func MakeNoCacheResponse(writer http.ResponseWriter, request *http.Request) *Response {
	return &Response{
		writer:  writer,
		request: request,
		headers: func(w http.ResponseWriter) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("Cache-Control", "no-store")
		},
	}
}

func (r *Response) WithHeaders(callback func(w http.ResponseWriter)) {
	callback(r.writer)
}

func (r *Response) RespondOk(payload any) error {
	return r.respond(http.StatusOK, payload)
}

func (r *Response) RespondCreated(payload any) error {
	return r.respond(http.StatusCreated, payload)
}

func (r *Response) RespondNoContent() {
	r.headers(r.writer)
	r.writer.WriteHeader(http.StatusNoContent)
}

func (r *Response) respond(status int, payload any) error {
	r.headers(r.writer)
	r.writer.WriteHeader(status)

	return json.NewEncoder(r.writer).Encode(payload)
}

func InternalError(msg string) *ApiError {
	message := fmt.Sprintf("Internal server error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     errors.New(message),
	}
}

func LogInternalError(msg string, err error) *ApiError {
	slog.Error(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Internal server error: %s", msg),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func BadRequestError(msg string) *ApiError {
	message := fmt.Sprintf("Bad request error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     errors.New(message),
	}
}

func LogBadRequestError(msg string, err error) *ApiError {
	slog.Warn(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Bad request error: %s", msg),
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func UnauthorisedError(msg string) *ApiError {
	message := fmt.Sprintf("Unauthorised request: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     errors.New(message),
	}
}

func LogUnauthorisedError(msg string, err error) *ApiError {
	slog.Warn(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Unauthorised request: %s", msg),
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func UnprocessableEntity(msg string, errs map[string]any) *ApiError {
	message := fmt.Sprintf("Unprocessable entity: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusUnprocessableEntity,
		Data:    errs,
		Err:     errors.New(message),
	}
}

func NotFound(msg string) *ApiError {
	message := fmt.Sprintf("Not found error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusNotFound,
		Err:     errors.New(message),
	}
}

func TooManyRequests(msg string, err error) *ApiError {
	slog.Warn(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Too many requests: %s", msg),
		Status:  http.StatusTooManyRequests,
		Err:     err,
	}
}
