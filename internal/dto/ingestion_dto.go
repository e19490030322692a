package dto

import (
	"github.com/openfx/fxreport/internal/core/domain"
)

// TriggerImportRequest optionally narrows a manual import run.
type TriggerImportRequest struct {
	Since string `json:"since" binding:"omitempty,datetime=2006-01-02"`
}

// ImportSummaryResponse reports the outcome of an ingestion run.
type ImportSummaryResponse struct {
	TablesSeen     int `json:"tablesSeen"`
	RecordsSaved   int `json:"recordsSaved"`
	RecordsUpdated int `json:"recordsUpdated"`
	DatesSkipped   int `json:"datesSkipped"`
}

// ToImportSummaryResponse converts a domain.ImportSummary to its API shape.
func ToImportSummaryResponse(s domain.ImportSummary) ImportSummaryResponse {
	return ImportSummaryResponse{
		TablesSeen:     s.TablesSeen,
		RecordsSaved:   s.RecordsSaved,
		RecordsUpdated: s.RecordsUpdated,
		DatesSkipped:   s.DatesSkipped,
	}
}
