package llm

const summarizeSystemPrompt = `You are a financial analyst expert at summarizing financial news concisely.`

const summarizeUserPrompt = `You are a financial news analyst. Summarize the following financial news article in 2-3 sentences, focusing on key financial events, company performance, and market implications.

Article:
%s

Summary:`

const extractSystemPrompt = `You are a financial data extraction expert. Extract company names accurately.`

const extractUserPrompt = `You are a financial analyst. Extract ALL publicly traded companies mentioned in this article.

Instructions:
- List ONLY the company names (e.g., "Apple", "Tesla", "Microsoft")
- Include companies that are directly mentioned or clearly implied
- Return as a comma-separated list
- If no companies found, return "None"

Article:
%s

Companies (comma-separated):`

const tickerSystemPrompt = `You are a financial data expert. Provide accurate stock ticker symbols.`

const tickerUserPrompt = `What is the stock ticker symbol for %s?

Instructions:
- Return ONLY the ticker symbol (e.g., AAPL, TSLA, MSFT)
- If the company has multiple classes of stock, return the most common one
- If you're not sure, return "UNKNOWN"
- Return ONLY the ticker, nothing else

Ticker:`
