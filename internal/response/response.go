package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
)

// ErrAlreadyWritten is returned by JSON when the guarded writer has already
// carried an envelope.
var ErrAlreadyWritten = errors.New("response: envelope already written")

// Envelope is the uniform reply shape. Status travels on the status line only.
type Envelope struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Make builds an envelope. A zero status means 200.
func Make(code, message string, data any, status int) Envelope {
	if status == 0 {
		status = http.StatusOK
	}

	return Envelope{
		Status:  status,
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// JSON writes env to w: status line, content type, then the body without
// the status field. Through a writer returned by Guard only the first call
// writes; later calls return ErrAlreadyWritten.
func JSON(w http.ResponseWriter, env Envelope) error {
	if g, ok := w.(*guard); ok {
		if g.written {
			return ErrAlreadyWritten
		}
		g.written = true
	}

	body, err := encode(env)
	if err != nil {
		return err
	}

	status := env.Status
	if status == 0 {
		status = http.StatusOK
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}

// Error writes an envelope whose data is extra, or null when extra is empty.
// A zero status means 400.
func Error(w http.ResponseWriter, code, message string, status int, extra map[string]any) error {
	if status == 0 {
		status = http.StatusBadRequest
	}

	var data any
	if len(extra) > 0 {
		data = extra
	}

	return JSON(w, Make(code, message, data, status))
}

func encode(env Envelope) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(env); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
