package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
	"github.com/sasukeurahara/finsight/internal/model"
	"github.com/sasukeurahara/finsight/pkg/market"
	"github.com/sasukeurahara/finsight/pkg/sentiment"
)

type fakeAnalyzer struct {
	report   *model.Report
	err      error
	lastText string
}

func (f *fakeAnalyzer) Analyze(text string) (*model.Report, error) {
	f.lastText = text
	return f.report, f.err
}

func newTestRouter(analyzer Analyzer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAnalyzeHandler(analyzer, Info{
		Version:         "2.0.0",
		LLMProvider:     "groq/llama-3.3-70b-versatile",
		ClassifierModel: "yiyanghkust/finbert-tone",
		MarketSource:    "FinnHub",
	})
	r.GET("/", h.GetIndex)
	r.GET("/health", h.GetHealth)
	r.POST("/analyze", h.Analyze)
	return r
}

func longArticle() string {
	return strings.Repeat("Apple posted record revenue this quarter. ", 5)
}

func TestAnalyze_MissingBody(t *testing.T) {
	r := newTestRouter(&fakeAnalyzer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/analyze", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "No JSON data provided", res["error"])
}

func TestAnalyze_ShortText(t *testing.T) {
	r := newTestRouter(&fakeAnalyzer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/analyze", strings.NewReader(`{"text":"too short"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Text must be at least 100 characters long for meaningful analysis", res["error"])
}

func TestAnalyze_PipelineError(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("classifier down")}
	r := newTestRouter(analyzer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/analyze", strings.NewReader(`{"text":"`+longArticle()+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Analysis failed. Check server logs for details.", res["message"])
}

func TestAnalyze_Success(t *testing.T) {
	analyzer := &fakeAnalyzer{
		report: &model.Report{
			Summary: "Apple beat expectations.",
			Companies: []model.CompanyAnalysis{
				{
					Name:       "Apple",
					Ticker:     "AAPL",
					Sentiment:  "positive",
					Confidence: 0.912,
					Scores:     sentiment.Scores{Negative: 0.031, Neutral: 0.057, Positive: 0.912},
					Quote: market.Quote{
						Ticker:    "AAPL",
						Price:     189.84,
						ChangePct: 2.4,
						Volume:    54321000,
						MarketCap: 2_950_000_000_000,
						DayHigh:   190.5,
						DayLow:    187.11,
						Status:    market.StatusSuccess,
					},
					PredictedImpact: "Strong bullish momentum - High confidence positive outlook",
					DataStatus:      market.StatusSuccess,
				},
			},
			TotalCompanies: 1,
		},
	}
	r := newTestRouter(analyzer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/analyze", strings.NewReader(`{"text":"`+longArticle()+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ReportResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Apple beat expectations.", res.Summary)
	assert.Equal(t, 1, res.TotalCompanies)
	assert.Equal(t, 1, len(res.Companies))

	c := res.Companies[0]
	assert.Equal(t, "Apple", c.Name)
	assert.Equal(t, "AAPL", c.Ticker)
	assert.Equal(t, "positive", c.Sentiment)
	assert.Equal(t, 0.912, c.SentimentScores.Positive)
	assert.Equal(t, 189.84, c.StockData.Price)
	assert.Equal(t, "$2.95T", c.StockData.MarketCapFormatted)
	assert.Equal(t, market.StatusSuccess, c.DataStatus)
}

func TestAnalyze_EmptyCompanies(t *testing.T) {
	analyzer := &fakeAnalyzer{
		report: &model.Report{
			Summary:   "Macro news only.",
			Companies: []model.CompanyAnalysis{},
		},
	}
	r := newTestRouter(analyzer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/analyze", strings.NewReader(`{"text":"`+longArticle()+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ReportResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 0, res.TotalCompanies)
	assert.Equal(t, 0, len(res.Companies))
}

func TestGetIndex(t *testing.T) {
	r := newTestRouter(&fakeAnalyzer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "2.0.0", res["version"])
	assert.Equal(t, "healthy", res["status"])
}

func TestGetHealth(t *testing.T) {
	r := newTestRouter(&fakeAnalyzer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
	assert.Equal(t, "yiyanghkust/finbert-tone", res["classifier_model"])
}
