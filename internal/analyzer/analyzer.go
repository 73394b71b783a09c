package analyzer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sasukeurahara/finsight/internal/model"
	"github.com/sasukeurahara/finsight/pkg/llm"
	"github.com/sasukeurahara/finsight/pkg/market"
	"github.com/sasukeurahara/finsight/pkg/sentiment"
)

const summaryUnavailable = "Summary unavailable"

// Pipeline runs the article analysis end to end: summarize, extract companies,
// then per company resolve the ticker, classify sentiment and fetch a quote.
type Pipeline struct {
	llm        llm.Client
	classifier sentiment.Classifier
	quotes     market.QuoteClient
	cache      Cache
}

func New(llmClient llm.Client, classifier sentiment.Classifier, quotes market.QuoteClient, cache Cache) *Pipeline {
	return &Pipeline{
		llm:        llmClient,
		classifier: classifier,
		quotes:     quotes,
		cache:      cache,
	}
}

func (p *Pipeline) Analyze(text string) (*model.Report, error) {
	slog.Info("starting analysis pipeline", "text_length", len(text))

	summary, err := p.llm.Summarize(text)
	if err != nil {
		slog.Error("error summarizing article", "error", err)
		summary = summaryUnavailable
	}

	companies, err := p.llm.ExtractCompanies(text)
	if err != nil {
		slog.Error("error extracting companies", "error", err)
		companies = nil
	}

	if len(companies) == 0 {
		slog.Info("no companies found in article")
		return &model.Report{
			Summary:   summary,
			Companies: []model.CompanyAnalysis{},
		}, nil
	}

	slog.Info("extracted companies", "count", len(companies), "companies", companies)

	var results []model.CompanyAnalysis

	for _, company := range companies {
		ticker := p.resolveTicker(company)
		if ticker == llm.TickerUnknown {
			slog.Warn("could not find ticker, skipping company", "company", company)
			continue
		}

		result, err := p.classifier.Classify(sentiment.RelevantText(text, company))
		if err != nil {
			return nil, fmt.Errorf("sentiment classification for %s: %w", company, err)
		}

		quote := p.fetchQuote(ticker)
		impact := PredictImpact(result.Label, result.Confidence, quote.ChangePct)

		slog.Info("company analyzed",
			"company", company,
			"ticker", ticker,
			"sentiment", result.Label,
			"confidence", result.Confidence,
		)

		results = append(results, model.CompanyAnalysis{
			Name:       company,
			Ticker:     quote.Ticker,
			Sentiment:  result.Label,
			Confidence: round3(result.Confidence),
			Scores: sentiment.Scores{
				Negative: round3(result.Scores.Negative),
				Neutral:  round3(result.Scores.Neutral),
				Positive: round3(result.Scores.Positive),
			},
			Quote:           quote,
			PredictedImpact: impact,
			DataStatus:      quote.Status,
		})
	}

	slog.Info("analysis complete", "companies_processed", len(results))

	if results == nil {
		results = []model.CompanyAnalysis{}
	}

	return &model.Report{
		Summary:        summary,
		Companies:      results,
		TotalCompanies: len(results),
	}, nil
}

func (p *Pipeline) resolveTicker(company string) string {
	key := tickerCacheKey(company)

	if cached, ok := p.cacheGet(key); ok {
		return cached
	}

	ticker, err := p.llm.ResolveTicker(company)
	if err != nil {
		slog.Error("error resolving ticker", "company", company, "error", err)
		return llm.TickerUnknown
	}

	if ticker != llm.TickerUnknown {
		p.cacheSet(key, ticker, tickerTTL)
	}

	return ticker
}

func (p *Pipeline) fetchQuote(ticker string) market.Quote {
	key := quoteCacheKey(ticker)

	if cached, ok := p.cacheGet(key); ok {
		var q market.Quote
		if err := json.Unmarshal([]byte(cached), &q); err == nil {
			return q
		}
	}

	quote, err := p.quotes.GetQuote(ticker)
	if err != nil {
		slog.Error("error fetching stock data", "ticker", ticker, "error", err)
		return market.Quote{
			Ticker: ticker,
			Status: "Error: " + err.Error(),
		}
	}

	if quote.Status == market.StatusSuccess {
		if encoded, err := json.Marshal(quote); err == nil {
			p.cacheSet(key, string(encoded), quoteTTL)
		}
	}

	return quote
}

func tickerCacheKey(company string) string {
	return "finsight:ticker:" + strings.ToLower(company)
}

func quoteCacheKey(ticker string) string {
	return "finsight:quote:" + ticker
}
