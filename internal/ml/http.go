package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPClassifier calls the Saarthi ML API over HTTP. A single attempt with a
// bounded timeout; transport failures are returned to the caller so the
// resolver can fall back immediately.
type HTTPClassifier struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClassifier builds a classifier client with the given request timeout.
func NewHTTPClassifier(baseURL string, timeout time.Duration) *HTTPClassifier {
	return &HTTPClassifier{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// PredictIntent posts the raw query to the classifier's /predict endpoint.
func (c *HTTPClassifier) PredictIntent(ctx context.Context, query string) (Prediction, error) {
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return Prediction{}, fmt.Errorf("encode predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return Prediction{}, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Prediction{}, fmt.Errorf("call intent classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Prediction{}, fmt.Errorf("intent classifier returned status %d", resp.StatusCode)
	}

	var pred Prediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return Prediction{}, fmt.Errorf("decode predict response: %w", err)
	}

	return pred, nil
}

// HTTPFaqEngine calls the FAQ retrieval engine over HTTP.
type HTTPFaqEngine struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPFaqEngine builds a FAQ engine client with the given request timeout.
func NewHTTPFaqEngine(baseURL string, timeout time.Duration) *HTTPFaqEngine {
	return &HTTPFaqEngine{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// AskFaq posts the question to the engine's /faq-answer endpoint.
func (c *HTTPFaqEngine) AskFaq(ctx context.Context, question string) (FaqAnswer, error) {
	body, err := json.Marshal(map[string]string{"question": question})
	if err != nil {
		return FaqAnswer{}, fmt.Errorf("encode faq request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/faq-answer", bytes.NewReader(body))
	if err != nil {
		return FaqAnswer{}, fmt.Errorf("build faq request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return FaqAnswer{}, fmt.Errorf("call faq engine: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FaqAnswer{}, fmt.Errorf("faq engine returned status %d", resp.StatusCode)
	}

	var answer FaqAnswer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return FaqAnswer{}, fmt.Errorf("decode faq response: %w", err)
	}

	return answer, nil
}
