package sentiment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	hfBaseURL      = "https://api-inference.huggingface.co/models/"
	DefaultModelID = "yiyanghkust/finbert-tone"
)

// HuggingFaceClassifier runs a hosted FinBERT model via the HF Inference API.
type HuggingFaceClassifier struct {
	apiKey     string
	modelID    string
	httpClient *http.Client
}

func NewHuggingFaceClassifier(apiKey string) *HuggingFaceClassifier {
	return &HuggingFaceClassifier{
		apiKey:     apiKey,
		modelID:    DefaultModelID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HuggingFaceClassifier) ModelName() string {
	return c.modelID
}

func (c *HuggingFaceClassifier) Classify(text string) (Result, error) {
	payload, err := json.Marshal(hfRequest{
		Inputs:  text,
		Options: hfOptions{WaitForModel: true},
	})
	if err != nil {
		return Result{}, fmt.Errorf("huggingface encode: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, hfBaseURL+c.modelID, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("huggingface request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("huggingface fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Result{}, fmt.Errorf("huggingface status %d: %s", resp.StatusCode, body)
	}

	// The API nests the label/score pairs one level deep: [[{label, score}, ...]].
	var raw [][]hfLabelScore
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Result{}, fmt.Errorf("huggingface decode: %w", err)
	}

	if len(raw) == 0 || len(raw[0]) == 0 {
		return Result{}, fmt.Errorf("empty classification from huggingface")
	}

	return toResult(raw[0]), nil
}

func toResult(pairs []hfLabelScore) Result {
	var r Result
	for _, p := range pairs {
		label := strings.ToLower(p.Label)
		switch label {
		case "negative":
			r.Scores.Negative = p.Score
		case "neutral":
			r.Scores.Neutral = p.Score
		case "positive":
			r.Scores.Positive = p.Score
		}
		if p.Score > r.Confidence {
			r.Confidence = p.Score
			r.Label = label
		}
	}
	return r
}

type hfRequest struct {
	Inputs  string    `json:"inputs"`
	Options hfOptions `json:"options"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfLabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}
