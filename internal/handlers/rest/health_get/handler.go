package health_get

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
)

type response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type Handler struct {
	serviceName    string
	isShuttingDown *atomic.Bool
}

func New(serviceName string, isShuttingDown *atomic.Bool) *Handler {
	return &Handler{
		serviceName:    serviceName,
		isShuttingDown: isShuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(response{
			Status:  "shutting_down",
			Service: h.serviceName,
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response{
		Status:  "ok",
		Service: h.serviceName,
	})
}
