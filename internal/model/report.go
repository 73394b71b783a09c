package model

import (
	"github.com/sasukeurahara/finsight/pkg/market"
	"github.com/sasukeurahara/finsight/pkg/sentiment"
)

type Report struct {
	Summary        string
	Companies      []CompanyAnalysis
	TotalCompanies int
}

type CompanyAnalysis struct {
	Name            string
	Ticker          string
	Sentiment       string
	Confidence      float64
	Scores          sentiment.Scores
	Quote           market.Quote
	PredictedImpact string
	DataStatus      string
}
