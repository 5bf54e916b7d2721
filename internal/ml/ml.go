// Package ml holds the clients for the external machine-learning
// microservices: the Saarthi intent classifier and the FAQ retrieval engine.
// Both may be unavailable; callers are expected to fall back locally.
package ml

import "context"

// Entity is a free-text span tagged by the NER model, e.g. {"Ramesh", "B-PERSON"}.
// Entity text is not validated here; downstream handlers treat it defensively.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Prediction is the intent classifier's response for one query.
type Prediction struct {
	Query    string   `json:"query"`
	Intent   string   `json:"intent"`
	Entities []Entity `json:"entities"`
}

// FaqAnswer is the FAQ engine's response for one question.
type FaqAnswer struct {
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
}

// Classifier predicts an intent plus entity spans for raw query text.
type Classifier interface {
	PredictIntent(ctx context.Context, query string) (Prediction, error)
}

// FaqEngine answers free-form banking questions.
type FaqEngine interface {
	AskFaq(ctx context.Context, question string) (FaqAnswer, error)
}

// StaticClassifier returns a canned prediction or error. Useful for tests and
// for running without the ML services.
type StaticClassifier struct {
	Intent   string
	Entities []Entity
	Err      error
}

// PredictIntent returns the configured prediction.
func (s StaticClassifier) PredictIntent(_ context.Context, query string) (Prediction, error) {
	if s.Err != nil {
		return Prediction{}, s.Err
	}
	return Prediction{Query: query, Intent: s.Intent, Entities: s.Entities}, nil
}

// StaticFaqEngine returns a canned answer or error.
type StaticFaqEngine struct {
	Answer     string
	Confidence float64
	Err        error
}

// AskFaq returns the configured answer.
func (s StaticFaqEngine) AskFaq(_ context.Context, _ string) (FaqAnswer, error) {
	if s.Err != nil {
		return FaqAnswer{}, s.Err
	}
	return FaqAnswer{Answer: s.Answer, Confidence: s.Confidence}, nil
}
