// Package health contains the liveness endpoint.
package health

import (
	"encoding/json"
	"net/http"

	"github.com/eloiseboudon/easyChef/internal/catalog"
)

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp catalog.Timestamp `json:"timestamp"`
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	resp, err := json.Marshal(HealthResponse{
		Status:    "ok",
		Timestamp: catalog.Now(),
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(resp)
}
