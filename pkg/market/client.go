package market

import "fmt"

const (
	StatusSuccess = "success"
	StatusNoData  = "No data available"
)

type Quote struct {
	Ticker    string
	Price     float64
	ChangePct float64
	Volume    int64
	MarketCap int64
	DayHigh   float64
	DayLow    float64
	Status    string
}

type QuoteClient interface {
	GetQuote(ticker string) (Quote, error)
	Name() string
}

// FormatMarketCap renders a market cap as $X.XXT/B/M.
func FormatMarketCap(marketCap int64) string {
	switch {
	case marketCap >= 1_000_000_000_000:
		return fmt.Sprintf("$%.2fT", float64(marketCap)/1_000_000_000_000)
	case marketCap >= 1_000_000_000:
		return fmt.Sprintf("$%.2fB", float64(marketCap)/1_000_000_000)
	case marketCap >= 1_000_000:
		return fmt.Sprintf("$%.2fM", float64(marketCap)/1_000_000)
	default:
		return fmt.Sprintf("$%d", marketCap)
	}
}
