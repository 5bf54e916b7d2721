// Package faq is the simpler sibling of the assistant flow: it forwards a
// question to the FAQ retrieval engine and localizes the failure path the same
// way the assistant does.
package faq

import (
	"context"
	"log/slog"

	"github.com/saarthi-bank/saarthi-assistant/internal/locale"
	"github.com/saarthi-bank/saarthi-assistant/internal/ml"
)

// Answer is a retrieved FAQ answer.
type Answer struct {
	Answer     string
	Confidence float64
}

// Service proxies the FAQ engine.
type Service struct {
	engine ml.FaqEngine
	logger *slog.Logger
}

// NewService builds a FAQ service instance.
func NewService(engine ml.FaqEngine, logger *slog.Logger) *Service {
	return &Service{engine: engine, logger: logger}
}

// Ask forwards the question to the engine. Engine failures are recovered
// locally with a localized apology; found reports whether a real answer came back.
func (s *Service) Ask(ctx context.Context, question string, lang locale.Language) (Answer, bool) {
	resp, err := s.engine.AskFaq(ctx, question)
	if err != nil {
		s.logger.Warn("faq engine unavailable", "error", err)
		return Answer{Answer: locale.T(lang, locale.MsgFaqUnavailable)}, false
	}
	return Answer{Answer: resp.Answer, Confidence: resp.Confidence}, true
}
