package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bolsillo/internal/analysis"
	apperrors "bolsillo/internal/errors"
	"bolsillo/internal/models"
)

// AnalysisHandler generates the templated advice report.
type AnalysisHandler struct{}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler() *AnalysisHandler {
	return &AnalysisHandler{}
}

// AnalyzeRequest represents the request payload for generating a report.
// Transactions may be empty; the summary is mandatory.
type AnalyzeRequest struct {
	Transactions []models.Transaction       `json:"transactions"`
	Summary      *analysis.FinancialSummary `json:"summary" binding:"required"`
}

// AnalyzeResponse represents the generated report.
type AnalyzeResponse struct {
	Analysis string `json:"analysis"`
}

// Analyze handles report generation over a submitted transaction set
// @Summary     Generate advice report
// @Description Format the templated financial advice report from a transaction set and its precomputed summary
// @Tags        analysis
// @Accept      json
// @Produce     json
// @Param       request body AnalyzeRequest true "Transactions and summary"
// @Success     200 {object} AnalyzeResponse "Formatted report"
// @Failure     400 {object} ErrorResponse "Missing summary or malformed payload"
// @Router      /analysis [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrMissingSummary, err.Error()))
		return
	}

	in := analysis.BuildReportInput(req.Transactions, *req.Summary)
	c.JSON(http.StatusOK, gin.H{"analysis": analysis.BuildAdvice(in)})
}
