package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/saarthi-bank/saarthi-assistant/internal/locale"
	"github.com/saarthi-bank/saarthi-assistant/internal/reminder"
	"github.com/saarthi-bank/saarthi-assistant/internal/user"
)

// respond dispatches a classified, non-gated query to its intent handler.
// Every branch returns a complete localized sentence; missing entities degrade
// to generic phrasing or a clarification, never to an empty or failed response.
func (s *Service) respond(ctx context.Context, intent Intent, entities Entities, queryText, userID string, lang locale.Language) Response {
	switch intent {
	case IntentBalanceInquiry:
		facts := s.facts(ctx, userID)
		return Response{
			Type:         TypeData,
			TextResponse: locale.T(lang, locale.MsgBalance, formatINR(facts.Balance)),
			Data:         map[string]any{"balance": facts.Balance},
		}

	case IntentTransactionHistory:
		return Response{
			Type:         TypeNavigation,
			Target:       "/history",
			TextResponse: locale.T(lang, locale.MsgTransactionHistory),
		}

	case IntentFundTransfer:
		person, amount := entities.Person(), entities.Amount()
		if person == "" || amount == "" {
			return Response{
				Type:         TypeClarification,
				TextResponse: locale.T(lang, locale.MsgTransferClarify),
			}
		}
		return Response{
			Type:         TypeAction,
			TextResponse: locale.T(lang, locale.MsgTransferPrompt, amount, person),
			Data:         map[string]any{"recipient": person, "amount": amount},
		}

	case IntentBillPayment:
		bill := entities.BillType()
		if bill == "" {
			bill = locale.T(lang, locale.MsgBillGeneric)
		}
		return Response{
			Type:         TypeAction,
			TextResponse: locale.T(lang, locale.MsgBillPreparing, bill),
			Data:         map[string]any{"billType": bill, "amount": entities.Amount()},
		}

	case IntentLoanInquiry:
		facts := s.facts(ctx, userID)
		if len(facts.Loans) == 0 {
			return Response{Type: TypeData, TextResponse: locale.T(lang, locale.MsgLoansNone)}
		}
		parts := make([]string, 0, len(facts.Loans))
		for _, l := range facts.Loans {
			parts = append(parts, fmt.Sprintf("%s: ₹%s", l.Type, formatINR(l.Outstanding)))
		}
		return Response{
			Type:         TypeData,
			TextResponse: locale.T(lang, locale.MsgLoansSummary, strings.Join(parts, ", ")),
			Data:         map[string]any{"loans": facts.Loans},
		}

	case IntentFdWithdrawal:
		return Response{
			Type:         TypeAction,
			TextResponse: locale.T(lang, locale.MsgFdPrompt),
		}

	case IntentComplaint:
		return Response{
			Type:         TypeClarification,
			TextResponse: locale.T(lang, locale.MsgComplaint),
		}

	case IntentCreditLimit:
		facts := s.facts(ctx, userID)
		return Response{
			Type:         TypeData,
			TextResponse: locale.T(lang, locale.MsgCreditLimit, formatINR(facts.CreditLimit)),
			Data:         map[string]any{"creditLimit": facts.CreditLimit},
		}

	case IntentSetReminder:
		return s.setReminder(ctx, entities, userID, lang)

	case IntentNavigation:
		return navigate(queryText, lang)

	default:
		return Response{
			Type:         TypeUnknown,
			TextResponse: locale.T(lang, locale.MsgUnknown),
		}
	}
}

// setReminder persists the reminder before confirming. If the write fails the
// user gets an error sentence, never a false confirmation.
func (s *Service) setReminder(ctx context.Context, entities Entities, userID string, lang locale.Language) Response {
	billType := entities.BillType()
	if billType == "" {
		billType = locale.T(lang, locale.MsgPaymentGeneric)
	}
	dateText := entities.DateText()
	if dateText == "" {
		dateText = locale.T(lang, locale.MsgSoonGeneric)
	}

	rec, err := s.reminders.Create(ctx, reminder.CreateInput{
		UserID:   userID,
		BillType: billType,
		DateText: dateText,
	})
	if err != nil {
		s.logger.Error("set reminder", "user_id", userID, "error", err)
		return Response{Type: TypeError, TextResponse: locale.T(lang, locale.MsgReminderError)}
	}

	return Response{
		Type:         TypeSuccess,
		TextResponse: locale.T(lang, locale.MsgReminderSet, billType, dateText),
		Data:         map[string]any{"reminder": rec},
	}
}

// navigate keys off the raw query text rather than the classified intent.
// The dashboard is the default target when no keyword matches.
func navigate(queryText string, lang locale.Language) Response {
	query := strings.ToLower(queryText)

	switch {
	case strings.Contains(query, "history") || strings.Contains(query, "इतिहास"):
		return Response{Type: TypeNavigation, Target: "/history", TextResponse: locale.T(lang, locale.MsgNavHistory)}
	case strings.Contains(query, "profile") || strings.Contains(query, "प्रोफ़ाइल"):
		return Response{Type: TypeNavigation, Target: "/profile", TextResponse: locale.T(lang, locale.MsgNavProfile)}
	case strings.Contains(query, "faq") || strings.Contains(query, "help"):
		return Response{Type: TypeNavigation, Target: "/faq", TextResponse: locale.T(lang, locale.MsgNavFaq)}
	default:
		return Response{Type: TypeNavigation, Target: "/dashboard", TextResponse: locale.T(lang, locale.MsgNavDashboard)}
	}
}

// facts fetches the user's banking view, degrading to zero facts when the
// lookup fails so handlers still produce a complete sentence.
func (s *Service) facts(ctx context.Context, userID string) user.Facts {
	facts, err := s.users.Facts(ctx, userID)
	if err != nil {
		s.logger.Warn("banking facts lookup failed", "user_id", userID, "error", err)
		return user.Facts{}
	}
	return facts
}
