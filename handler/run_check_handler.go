package handler

import (
	"encoding/json"
	"log"
	"net/http"
)

// RunCheck triggers a full reconciliation run for yesterday's date. It takes
// no parameters; this is the same operation the scheduler invokes.
func (h *RentCheckHandler) RunCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	report, err := h.Usecase.RunAllChecks(r.Context())
	if err != nil {
		log.Printf("rent check run failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Failed to run rent checks",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   report,
	})
}
