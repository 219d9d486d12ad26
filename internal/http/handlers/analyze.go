package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/http/response"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/modules/diagnosis"
)

type AnalyzeHandler struct{}

func NewAnalyzeHandler() *AnalyzeHandler { return &AnalyzeHandler{} }

// POST /api/analyze
// Builds the reasoner query from a symptom report. The reasoner itself is
// not called here; callers forward the query.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var report diagnosis.SymptomReport
	if err := c.ShouldBindJSON(&report); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("request body must be a JSON object")
		}
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	response.RespondOK(c, gin.H{
		"success":    true,
		"query":      diagnosis.BuildQuery(report),
		"input_data": report.Normalize(),
	})
}
