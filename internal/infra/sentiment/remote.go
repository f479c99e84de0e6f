package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"eventora/internal/domain/review"
	"eventora/internal/pkg/config"
	"eventora/internal/pkg/errs"
)

// RemoteClassifier calls the hosted natural-language API's analyzeSentiment
// endpoint. Every call is bounded by the configured timeout.
type RemoteClassifier struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewRemoteClassifier(cfg config.SentimentConfig) *RemoteClassifier {
	return &RemoteClassifier{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type analyzeRequest struct {
	Document struct {
		Type     string `json:"type"`
		Language string `json:"language"`
		Content  string `json:"content"`
	} `json:"document"`
	EncodingType string `json:"encodingType"`
}

type analyzeResponse struct {
	DocumentSentiment struct {
		Score     float64 `json:"score"`
		Magnitude float64 `json:"magnitude"`
	} `json:"documentSentiment"`
}

func (c *RemoteClassifier) Classify(ctx context.Context, text, locale string) (review.Score, error) {
	var reqBody analyzeRequest
	reqBody.Document.Type = "PLAIN_TEXT"
	reqBody.Document.Language = locale
	reqBody.Document.Content = text
	reqBody.EncodingType = "UTF8"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return review.Score{}, errs.Wrap(err, "failed to encode sentiment request")
	}

	url := fmt.Sprintf("%s/v1/documents:analyzeSentiment?key=%s", c.baseURL, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return review.Score{}, errs.Wrap(err, "failed to build sentiment request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return review.Score{}, errs.Wrap(err, "sentiment API call failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return review.Score{}, errs.New(fmt.Sprintf("sentiment API returned status %d", resp.StatusCode))
	}

	var body analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return review.Score{}, errs.Wrap(err, "failed to decode sentiment response")
	}

	return review.Score{
		Value:     body.DocumentSentiment.Score,
		Magnitude: body.DocumentSentiment.Magnitude,
	}, nil
}
