package httpx

import (
	"net/http"

	"booksapi/internal/errs"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorResponse is the envelope written for every failure.
type ErrorResponse struct {
	Error ErrorResponseBody `json:"error"`
}

// ErrorResponseBody.Message is a string, or a list of violations for 400s.
type ErrorResponseBody struct {
	Message any `json:"message"`
	Status  int `json:"status"`
}

// JSON writes body with the given status.
func JSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func JSONError(w http.ResponseWriter, statusCode int, message any) {
	JSON(w, statusCode, ErrorResponse{
		Error: ErrorResponseBody{
			Message: message,
			Status:  statusCode,
		},
	})
}

// JSONErrorFrom renders err as an error envelope. Errors that carry no
// status are logged and reported as 500 with their message.
func JSONErrorFrom(w http.ResponseWriter, r *http.Request, err error) {
	httpErr, ok := errs.As(err)
	if !ok {
		zerolog.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if len(httpErr.Violations) > 0 {
		JSONError(w, httpErr.Status, httpErr.Violations)
		return
	}
	JSONError(w, httpErr.Status, httpErr.Message)
}

// NotFoundHandler answers unmatched routes with the error envelope.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	JSONError(w, http.StatusNotFound, "Not Found")
}
