package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sasukeurahara/finsight/db"
	"github.com/sasukeurahara/finsight/internal/analyzer"
	"github.com/sasukeurahara/finsight/internal/handler"
	"github.com/sasukeurahara/finsight/pkg/llm"
	"github.com/sasukeurahara/finsight/pkg/market"
	"github.com/sasukeurahara/finsight/pkg/sentiment"
)

const apiVersion = "2.0.0"

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	llmClient, llmName := buildLLMClient()
	if llmClient == nil {
		log.Fatal("no LLM API key configured, set GROQ_API_KEY or ANTHROPIC_API_KEY")
	}

	hfKey := os.Getenv("HUGGINGFACE_API_KEY")
	if hfKey == "" {
		log.Fatal("HUGGINGFACE_API_KEY is not set")
	}
	classifier := sentiment.NewHuggingFaceClassifier(hfKey)

	quotes := buildQuoteClient()
	if quotes == nil {
		log.Fatal("no market data API key configured, set FINNHUB_API_KEY or ALPHA_VANTAGE_API_KEY")
	}

	var cache analyzer.Cache
	if os.Getenv("REDIS_URL") != "" {
		if err := db.ConnectRedis(); err != nil {
			slog.Error("error connecting to Redis, running without cache", "error", err)
		} else {
			defer db.CloseRedis()
			cache = db.NewCache()
		}
	}

	pipeline := analyzer.New(llmClient, classifier, quotes, cache)

	h := handler.NewAnalyzeHandler(pipeline, handler.Info{
		Version:         apiVersion,
		LLMProvider:     llmName,
		ClassifierModel: classifier.ModelName(),
		MarketSource:    quotes.Name(),
	})

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/", h.GetIndex)
	r.GET("/health", h.GetHealth)
	r.POST("/analyze", h.Analyze)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	err := r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func buildLLMClient() (llm.Client, string) {
	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		client := llm.NewGroqClient(key)
		return client, client.Name()
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		client := llm.NewAnthropicClient(key)
		return client, client.Name()
	}
	return nil, ""
}

func buildQuoteClient() market.QuoteClient {
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		return market.NewFinnhubClient(key)
	}
	if key := os.Getenv("ALPHA_VANTAGE_API_KEY"); key != "" {
		return market.NewAlphaVantageClient(key)
	}
	return nil
}
