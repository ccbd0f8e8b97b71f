package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/renttrack/renttrack/entity"
	"github.com/renttrack/renttrack/utils"
)

// RunLandlordCheck runs the engine for a single landlord, optionally for an
// explicit check date. Diagnostic use only.
func (h *RentCheckHandler) RunLandlordCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req entity.RunLandlordCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
		return
	}

	checkDate, err := resolveCheckDate(req)
	if err != nil {
		log.Println("Invalid input:", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	report, err := h.Usecase.RunLandlordChecks(r.Context(), req.LandlordID, checkDate)
	if err != nil {
		log.Printf("landlord rent check failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Failed to run landlord rent check",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   report,
	})
}

func resolveCheckDate(req entity.RunLandlordCheckRequest) (time.Time, error) {
	if req.LandlordID <= 0 {
		return time.Time{}, errors.New("landlord_id is required")
	}

	if strings.TrimSpace(req.CheckDate) == "" {
		return utils.Yesterday(time.Now()), nil
	}

	checkDate, err := time.Parse(utils.DateLayout, req.CheckDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid check date format: %v", err)
	}
	return utils.DateOnly(checkDate), nil
}
