// Package testutil holds request builders and fixture payloads shared by
// handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
)

// GulagArchipelago returns a complete book payload as decoded JSON.
func GulagArchipelago() map[string]any {
	return map[string]any{
		"isbn":       "1843430851",
		"amazon_url": "https://www.amazon.com/Gulag-Archipelago-Aleksandr-Solzhenitsyn/dp/1843430851/",
		"author":     "Aleksandr Solzhenitsyn",
		"language":   "english",
		"pages":      496,
		"publisher":  "Vintage UK",
		"title":      "The Gulag Archipelago",
		"year":       2002,
	}
}

// Odyssey returns a complete book payload as decoded JSON.
func Odyssey() map[string]any {
	return map[string]any{
		"isbn":       "9780140268867",
		"amazon_url": "https://www.amazon.com/Odyssey-Homer/dp/0140268863",
		"author":     "Homer",
		"language":   "english",
		"pages":      541,
		"publisher":  "Penguin Classics",
		"title":      "The Odyssey",
		"year":       1999,
	}
}

// PlatoCompleteWorks returns a complete book payload that is not seeded.
func PlatoCompleteWorks() map[string]any {
	return map[string]any{
		"isbn":       "0872203492",
		"amazon_url": "https://www.amazon.com/Plato-Complete-Works/dp/0872203492/",
		"author":     "Plato",
		"language":   "english",
		"pages":      1838,
		"publisher":  "Hackett Publishing Co.",
		"title":      "Plato: Complete Works",
		"year":       1997,
	}
}

// Without returns a copy of payload with the given keys removed.
func Without(payload map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// With returns a copy of payload with key set to value.
func With(payload map[string]any, key string, value any) map[string]any {
	out := Without(payload)
	out[key] = value
	return out
}

// NewRequest creates a new HTTP request for testing. A string or []byte
// body is sent verbatim; anything else is JSON-encoded.
func NewRequest(method, path string, body any) *http.Request {
	var bodyBytes []byte
	switch b := body.(type) {
	case nil:
	case string:
		bodyBytes = []byte(b)
	case []byte:
		bodyBytes = b
	default:
		bodyBytes, _ = json.Marshal(b)
	}

	if bodyBytes == nil {
		return httptest.NewRequest(method, path, nil)
	}
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
}

// RecordHTTPResponse decodes the recorded JSON body into a map.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]any
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// ErrorMessage returns error.message from an error envelope, or nil.
func (rr RecordResponse) ErrorMessage() any {
	envelope, ok := rr.Body["error"].(map[string]any)
	if !ok {
		return nil
	}
	return envelope["message"]
}

// FirstViolation returns the first entry of a violation list, or "".
func (rr RecordResponse) FirstViolation() string {
	list, ok := rr.ErrorMessage().([]any)
	if !ok || len(list) == 0 {
		return ""
	}
	s, _ := list[0].(string)
	return s
}
