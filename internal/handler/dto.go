package handler

import (
	"github.com/sasukeurahara/finsight/internal/model"
	"github.com/sasukeurahara/finsight/pkg/market"
)

type AnalyzeRequest struct {
	Text string `json:"text"`
}

type ReportResponse struct {
	Summary        string            `json:"summary"`
	Companies      []CompanyResponse `json:"companies"`
	TotalCompanies int               `json:"total_companies"`
}

type CompanyResponse struct {
	Name            string                  `json:"name"`
	Ticker          string                  `json:"ticker"`
	Sentiment       string                  `json:"sentiment"`
	Confidence      float64                 `json:"confidence"`
	SentimentScores SentimentScoresResponse `json:"sentiment_scores"`
	StockData       StockDataResponse       `json:"stock_data"`
	PredictedImpact string                  `json:"predicted_impact"`
	DataStatus      string                  `json:"data_status"`
}

type SentimentScoresResponse struct {
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Positive float64 `json:"positive"`
}

type StockDataResponse struct {
	Price              float64 `json:"price"`
	ChangePct          float64 `json:"change_pct"`
	Volume             int64   `json:"volume"`
	MarketCap          int64   `json:"market_cap"`
	MarketCapFormatted string  `json:"market_cap_formatted"`
	DayHigh            float64 `json:"day_high"`
	DayLow             float64 `json:"day_low"`
}

func toReportResponse(r *model.Report) ReportResponse {
	companies := make([]CompanyResponse, 0, len(r.Companies))
	for _, c := range r.Companies {
		companies = append(companies, CompanyResponse{
			Name:       c.Name,
			Ticker:     c.Ticker,
			Sentiment:  c.Sentiment,
			Confidence: c.Confidence,
			SentimentScores: SentimentScoresResponse{
				Negative: c.Scores.Negative,
				Neutral:  c.Scores.Neutral,
				Positive: c.Scores.Positive,
			},
			StockData: StockDataResponse{
				Price:              c.Quote.Price,
				ChangePct:          c.Quote.ChangePct,
				Volume:             c.Quote.Volume,
				MarketCap:          c.Quote.MarketCap,
				MarketCapFormatted: market.FormatMarketCap(c.Quote.MarketCap),
				DayHigh:            c.Quote.DayHigh,
				DayLow:             c.Quote.DayLow,
			},
			PredictedImpact: c.PredictedImpact,
			DataStatus:      c.DataStatus,
		})
	}

	return ReportResponse{
		Summary:        r.Summary,
		Companies:      companies,
		TotalCompanies: r.TotalCompanies,
	}
}
