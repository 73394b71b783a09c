package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sasukeurahara/finsight/internal/model"
)

const minTextLength = 100

type Analyzer interface {
	Analyze(text string) (*model.Report, error)
}

// Info describes the configured backends, surfaced on the banner and health endpoints.
type Info struct {
	Version         string
	LLMProvider     string
	ClassifierModel string
	MarketSource    string
}

type AnalyzeHandler struct {
	analyzer Analyzer
	info     Info
}

func NewAnalyzeHandler(analyzer Analyzer, info Info) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer, info: info}
}

func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No JSON data provided"})
		return
	}

	if len(req.Text) < minTextLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Text must be at least 100 characters long for meaningful analysis",
		})
		return
	}

	report, err := h.analyzer.Analyze(req.Text)
	if err != nil {
		slog.Error("error during analysis", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   err.Error(),
			"message": "Analysis failed. Check server logs for details.",
		})
		return
	}

	c.JSON(http.StatusOK, toReportResponse(report))
}

func (h *AnalyzeHandler) GetIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "FinSight API",
		"version": h.info.Version,
		"status":  "healthy",
		"features": gin.H{
			"summarization":      h.info.LLMProvider,
			"company_extraction": h.info.LLMProvider,
			"sentiment_analysis": h.info.ClassifierModel,
			"stock_data":         h.info.MarketSource,
		},
	})
}

func (h *AnalyzeHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"api_version":      h.info.Version,
		"llm_provider":     h.info.LLMProvider,
		"classifier_model": h.info.ClassifierModel,
		"market_source":    h.info.MarketSource,
	})
}
