package assistant

import (
	"strconv"
	"strings"

	"github.com/saarthi-bank/saarthi-assistant/internal/locale"
	"github.com/saarthi-bank/saarthi-assistant/internal/user"
)

// completionFunc renders the final sentence for a verified sensitive action
// from the stored entities and the user's banking facts. Completions are the
// only code that runs after MPIN verification; the general intent handlers are
// deliberately not re-invoked here.
type completionFunc func(lang locale.Language, entities Entities, facts user.Facts) string

// completions is the single source of truth for step-up authorization: an
// intent is sensitive exactly when it has a completion entry. Adding a
// sensitive intent means adding its completion here, so the policy and the
// completion table cannot drift apart.
var completions = map[Intent]completionFunc{
	IntentBalanceInquiry: func(lang locale.Language, _ Entities, facts user.Facts) string {
		return locale.T(lang, locale.MsgBalance, formatINR(facts.Balance))
	},
	IntentLoanInquiry: func(lang locale.Language, _ Entities, facts user.Facts) string {
		if facts.OutstandingTotal() == 0 {
			return locale.T(lang, locale.MsgLoansNone)
		}
		return locale.T(lang, locale.MsgLoanOutstanding, formatINR(facts.OutstandingTotal()))
	},
	IntentFdWithdrawal: func(lang locale.Language, _ Entities, _ user.Facts) string {
		return locale.T(lang, locale.MsgFdSubmitted)
	},
	IntentFundTransfer: func(lang locale.Language, entities Entities, _ user.Facts) string {
		person := entities.Person()
		if person == "" {
			person = locale.T(lang, locale.MsgRecipientGeneric)
		}
		return locale.T(lang, locale.MsgTransferDone, entities.Amount(), person)
	},
	IntentBillPayment: func(lang locale.Language, entities Entities, _ user.Facts) string {
		bill := entities.BillType()
		if bill == "" {
			bill = locale.T(lang, locale.MsgBillGeneric)
		}
		return locale.T(lang, locale.MsgBillPaid, bill)
	},
	IntentCreditLimit: func(lang locale.Language, _ Entities, facts user.Facts) string {
		return locale.T(lang, locale.MsgCreditLimit, formatINR(facts.CreditLimit))
	},
}

// Sensitive reports whether the intent requires MPIN step-up before any
// handler logic runs. The set is a closed allowlist; everything else is
// non-sensitive by default.
func Sensitive(intent Intent) bool {
	_, ok := completions[intent]
	return ok
}

// complete renders the completion sentence for a verified action. An intent
// without a table entry cannot normally reach this point; the guard converts
// that defect into a generic confirmation instead of failing the request.
func complete(intent Intent, lang locale.Language, entities Entities, facts user.Facts) string {
	fn, ok := completions[intent]
	if !ok {
		return locale.T(lang, locale.MsgActionDone)
	}
	return fn(lang, entities, facts)
}

// formatINR renders an amount with Indian digit grouping: the last three
// digits, then groups of two (150000 -> "1,50,000").
func formatINR(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		groups := []string{head}
		for len(groups[0]) > 2 {
			h := groups[0]
			groups = append([]string{h[:len(h)-2], h[len(h)-2:]}, groups[1:]...)
		}
		s = strings.Join(append(groups, tail), ",")
	}
	if neg {
		return "-" + s
	}
	return s
}
