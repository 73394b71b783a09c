package llm

import "strings"

// TickerUnknown is returned when the model cannot name a ticker for a company.
const TickerUnknown = "UNKNOWN"

const maxArticleChars = 4000

type Client interface {
	Summarize(text string) (string, error)
	ExtractCompanies(text string) ([]string, error)
	ResolveTicker(company string) (string, error)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func parseCompanyList(content string) []string {
	content = strings.TrimSpace(content)
	if content == "" || strings.EqualFold(content, "none") {
		return nil
	}

	var companies []string
	for _, part := range strings.Split(content, ",") {
		part = strings.TrimSpace(part)
		if len(part) > 1 {
			companies = append(companies, part)
		}
	}
	return companies
}

func parseTicker(content string) string {
	fields := strings.Fields(strings.ToUpper(strings.TrimSpace(content)))
	if len(fields) == 0 {
		return TickerUnknown
	}
	return fields[0]
}
