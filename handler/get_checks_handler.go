package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func (h *RentCheckHandler) GetRentChecks(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	agreementIDStr := r.URL.Query().Get("agreement_id")
	if agreementIDStr == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "agreement_id is required",
		})
		return
	}

	agreementID, err := strconv.ParseInt(agreementIDStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "agreement_id must be a valid integer",
		})
		return
	}

	checks, err := h.Usecase.GetRentChecks(agreementID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Failed to get rent checks",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   checks,
	})
}
