// Package assistant implements the voice-assistant dialogue orchestrator: it
// resolves a free-form query to an intent, gates sensitive intents behind MPIN
// step-up, executes or defers the banking action, and answers in the caller's
// language.
package assistant

import (
	"context"
	"errors"
	"log/slog"

	"github.com/saarthi-bank/saarthi-assistant/internal/history"
	"github.com/saarthi-bank/saarthi-assistant/internal/locale"
	"github.com/saarthi-bank/saarthi-assistant/internal/reminder"
	"github.com/saarthi-bank/saarthi-assistant/internal/user"
)

var (
	// ErrQueryRequired indicates the ask request carried no query text.
	ErrQueryRequired = errors.New("query text is required")
	// ErrMpinRequired indicates the completion request carried no MPIN.
	ErrMpinRequired = errors.New("mpin is required")
	// ErrMpinRejected covers every MPIN verification failure. Callers must not
	// learn whether the PIN was wrong, unset, or the check itself failed.
	ErrMpinRejected = errors.New("mpin verification failed")
)

// Service orchestrates the dialogue flow.
type Service struct {
	resolver  *Resolver
	users     *user.Service
	reminders *reminder.Service
	recorder  *history.Recorder
	tokens    *TokenSigner
	logger    *slog.Logger
}

// NewService wires the orchestrator over its collaborators.
func NewService(resolver *Resolver, users *user.Service, reminders *reminder.Service, recorder *history.Recorder, tokens *TokenSigner, logger *slog.Logger) *Service {
	return &Service{
		resolver:  resolver,
		users:     users,
		reminders: reminders,
		recorder:  recorder,
		tokens:    tokens,
		logger:    logger,
	}
}

// AskInput is one inbound assistant query.
type AskInput struct {
	UserID    string
	QueryText string
	Language  string
}

// AskResult is the classified intent plus the assistant's response.
type AskResult struct {
	Intent   Intent
	Entities Entities
	Response Response
}

// Ask runs one dialogue turn. Sensitive intents never reach their handler
// here: the response defers the action behind a signed pending token and asks
// for the MPIN instead, with no side effects performed.
func (s *Service) Ask(ctx context.Context, in AskInput) (AskResult, error) {
	if in.QueryText == "" {
		return AskResult{}, ErrQueryRequired
	}
	lang := locale.Parse(in.Language)

	cls := s.resolver.Resolve(ctx, in.QueryText)
	s.logger.Info("query classified", "user_id", in.UserID, "intent", cls.Intent, "entities", len(cls.Entities))

	var resp Response
	if Sensitive(cls.Intent) {
		token, err := s.tokens.Sign(cls.Intent, cls.Entities, in.UserID)
		if err != nil {
			return AskResult{}, err
		}
		resp = Response{
			Type:         TypeRequiresMpin,
			TextResponse: locale.T(lang, locale.MsgMpinPrompt),
			RequiresMpin: true,
			Data:         PendingAction{Action: cls.Intent, Entities: cls.Entities, Token: token},
		}
	} else {
		resp = s.respond(ctx, cls.Intent, cls.Entities, in.QueryText, in.UserID, lang)
	}

	s.recorder.Record(ctx, in.UserID, in.QueryText, resp.TextResponse)

	return AskResult{Intent: cls.Intent, Entities: cls.Entities, Response: resp}, nil
}

// CompleteInput finishes a deferred sensitive action.
type CompleteInput struct {
	UserID   string
	Token    string
	Mpin     string
	Language string
}

// CompleteSensitive verifies the pending token and the MPIN, then re-derives
// the final response purely from the completion table. The action identity
// comes from the verified token, never from the client's loose fields, and a
// token minted for another user is rejected outright.
func (s *Service) CompleteSensitive(ctx context.Context, in CompleteInput) (string, error) {
	if in.Mpin == "" {
		return "", ErrMpinRequired
	}

	claims, err := s.tokens.Verify(in.Token)
	if err != nil {
		return "", err
	}
	if claims.UserID != in.UserID {
		return "", ErrTokenInvalid
	}
	if !Sensitive(claims.Action) {
		// A non-sensitive action can only appear here through a signing bug.
		s.logger.Error("pending token carries non-sensitive action", "action", claims.Action)
		return "", ErrTokenInvalid
	}

	ok, err := s.users.VerifyMpin(ctx, in.UserID, in.Mpin)
	if err != nil {
		s.logger.Warn("mpin verification error", "user_id", in.UserID, "error", err)
		return "", ErrMpinRejected
	}
	if !ok {
		return "", ErrMpinRejected
	}

	lang := locale.Parse(in.Language)
	facts := s.facts(ctx, in.UserID)
	text := complete(claims.Action, lang, claims.Entities, facts)

	s.logger.Info("sensitive action completed", "user_id", in.UserID, "action", claims.Action)
	return text, nil
}

// History returns the caller's bounded conversation log, oldest first.
func (s *Service) History(ctx context.Context, userID string) ([]history.Entry, error) {
	return s.recorder.List(ctx, userID)
}
