// Package respond writes the JSON envelope shared by every API endpoint.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"Osdag/internal/validate"
)

type Envelope struct {
	Success         bool   `json:"success"`
	CalculationType string `json:"calculation_type,omitempty"`
	Result          any    `json:"result,omitempty"`
	Error           string `json:"error,omitempty"`
}

const genericError = "Calculation error"

// JSON encodes v before writing any header. A value that cannot be encoded
// is logged and replaced by a generic 500 envelope.
func JSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("encode response", "error", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(Envelope{Success: false, Error: genericError})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		slog.Error("write response", "error", err)
	}
}

func Result(w http.ResponseWriter, kind string, result any) {
	JSON(w, http.StatusOK, Envelope{Success: true, CalculationType: kind, Result: result})
}

func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Envelope{Success: false, Error: msg})
}

// Error maps input errors to 400 with their message. Anything else is logged
// and reported as a bare 500.
func Error(w http.ResponseWriter, err error) {
	var verr *validate.Error
	if errors.As(err, &verr) {
		Message(w, http.StatusBadRequest, verr.Message)
		return
	}
	slog.Error("calculation failed", "error", err)
	Message(w, http.StatusInternalServerError, genericError)
}

// Decode reads a JSON body keeping numbers as json.Number.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	return dec.Decode(v)
}
