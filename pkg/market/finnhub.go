package market

import (
	"context"
	"fmt"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "FinnHub"
}

func (c *FinnhubClient) GetQuote(ticker string) (Quote, error) {
	res, _, err := c.client.Quote(context.Background()).Symbol(ticker).Execute()
	if err != nil {
		return Quote{}, fmt.Errorf("finnhub quote: %w", err)
	}

	q := Quote{Ticker: ticker}

	// FinnHub answers unknown symbols with an all-zero quote instead of an error.
	if res.C == nil || *res.C == 0 {
		q.Status = StatusNoData
		return q, nil
	}

	q.Price = round2(float64(*res.C))

	if res.Dp != nil {
		q.ChangePct = round2(float64(*res.Dp))
	}

	if res.H != nil {
		q.DayHigh = round2(float64(*res.H))
	} else {
		q.DayHigh = q.Price
	}

	if res.L != nil {
		q.DayLow = round2(float64(*res.L))
	} else {
		q.DayLow = q.Price
	}

	// The quote endpoint carries no volume; only the profile lookup can still fail
	// without invalidating the price data.
	profile, _, err := c.client.CompanyProfile2(context.Background()).Symbol(ticker).Execute()
	if err == nil && profile.MarketCapitalization != nil {
		// Reported in millions.
		q.MarketCap = int64(float64(*profile.MarketCapitalization) * 1_000_000)
	}

	q.Status = StatusSuccess
	return q, nil
}
