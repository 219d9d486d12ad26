package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/data/corpus"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/domain/medical"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/http/response"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/ingest"
)

type SeedHandler struct {
	seeder Seeder
}

func NewSeedHandler(seeder Seeder) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

type seedResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Error   *response.APIError `json:"error,omitempty"`
	Stats   medical.Stats      `json:"stats"`
}

// POST /api/seed
func (h *SeedHandler) Seed(c *gin.Context) {
	report, err := h.seeder.Seed(c.Request.Context(), true)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, seedResponse{
			Success: false,
			Error:   &response.APIError{Message: err.Error(), Code: seedErrorCode(err)},
			Stats:   report.Stats,
		})
		return
	}
	response.RespondOK(c, seedResponse{
		Success: true,
		Message: report.Message,
		Stats:   report.Stats,
	})
}

// seedErrorCode tells a missing or unreadable corpus (graph untouched) apart
// from a failure part way through the writes.
func seedErrorCode(err error) string {
	switch {
	case corpus.IsLoadError(err):
		return "corpus_unavailable"
	case ingest.IsRecordError(err):
		return "record_failed"
	default:
		return "seed_failed"
	}
}
