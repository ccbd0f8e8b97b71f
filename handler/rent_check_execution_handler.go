package handler

import (
	"context"
	"log"
)

// RentCheckExecution is the scheduler-facing entrypoint: one call performs one
// full reconciliation pass. The engine keeps no state between calls.
func (h *RentCheckHandler) RentCheckExecution(ctx context.Context) error {
	report, err := h.Usecase.RunAllChecks(ctx)
	if err != nil {
		return err
	}

	log.Printf("rent check run for %s: %d landlords, %d checks created, %d skipped, %d failures",
		report.CheckDate.Format("2006-01-02"), report.LandlordsChecked,
		report.ChecksCreated, report.ChecksSkipped, report.FailuresIsolated)
	return nil
}
