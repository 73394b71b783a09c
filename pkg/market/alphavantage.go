package market

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type AlphaVantageClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

func (c *AlphaVantageClient) GetQuote(ticker string) (Quote, error) {
	url := fmt.Sprintf(
		"https://www.alphavantage.co/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		ticker, c.apiKey,
	)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return Quote{}, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw avQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Quote{}, fmt.Errorf("alphavantage decode: %w", err)
	}

	if raw.GlobalQuote.Price == "" {
		return Quote{Ticker: ticker, Status: StatusNoData}, nil
	}

	q := Quote{Ticker: ticker, Status: StatusSuccess}
	q.Price = round2(parseFloat(raw.GlobalQuote.Price))
	q.ChangePct = round2(parseFloat(strings.TrimSuffix(raw.GlobalQuote.ChangePercent, "%")))
	q.DayHigh = round2(parseFloat(raw.GlobalQuote.High))
	q.DayLow = round2(parseFloat(raw.GlobalQuote.Low))
	q.Volume, _ = strconv.ParseInt(raw.GlobalQuote.Volume, 10, 64)

	// Market cap lives on a separate endpoint; a miss there leaves it 0.
	q.MarketCap = c.fetchMarketCap(ticker)

	return q, nil
}

func (c *AlphaVantageClient) fetchMarketCap(ticker string) int64 {
	url := fmt.Sprintf(
		"https://www.alphavantage.co/query?function=OVERVIEW&symbol=%s&apikey=%s",
		ticker, c.apiKey,
	)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return 0
	}
	defer resp.Body.Close()

	var raw avOverviewResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return 0
	}

	marketCap, _ := strconv.ParseInt(raw.MarketCapitalization, 10, 64)
	return marketCap
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type avQuoteResponse struct {
	GlobalQuote avGlobalQuote `json:"Global Quote"`
}

type avGlobalQuote struct {
	High          string `json:"03. high"`
	Low           string `json:"04. low"`
	Price         string `json:"05. price"`
	Volume        string `json:"06. volume"`
	ChangePercent string `json:"10. change percent"`
}

type avOverviewResponse struct {
	MarketCapitalization string `json:"MarketCapitalization"`
}
