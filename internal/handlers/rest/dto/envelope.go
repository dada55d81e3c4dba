package dto

import (
	"encoding/json"
	"net/http"
)

// WriteData пишет успешный конверт с полезной нагрузкой.
func WriteData(w http.ResponseWriter, code int, data interface{}) error {
	return write(w, code, Envelope{Success: true, Data: data})
}

// WriteMessage пишет конверт без полезной нагрузки (ошибки и подтверждения).
func WriteMessage(w http.ResponseWriter, code int, success bool, message string) error {
	return write(w, code, Envelope{Success: success, Message: message})
}

func write(w http.ResponseWriter, code int, envelope Envelope) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(envelope)
}
