package assistant

import (
	"strings"

	"github.com/saarthi-bank/saarthi-assistant/internal/ml"
)

// Intent is one member of the closed intent catalog. Anything outside the
// catalog is folded into IntentUnknown at the resolution boundary, so the rest
// of the orchestrator only ever dispatches on known tags.
type Intent string

const (
	IntentBalanceInquiry     Intent = "balance_inquiry"
	IntentTransactionHistory Intent = "transaction_history"
	IntentFundTransfer       Intent = "fund_transfer"
	IntentBillPayment        Intent = "bill_payment"
	IntentLoanInquiry        Intent = "loan_inquiry"
	IntentFdWithdrawal       Intent = "fd_withdrawal"
	IntentComplaint          Intent = "complaint_registration"
	IntentCreditLimit        Intent = "credit_limit_inquiry"
	IntentSetReminder        Intent = "set_reminder"
	IntentNavigation         Intent = "navigation"
	IntentUnknown            Intent = "unknown"
)

var catalog = map[Intent]struct{}{
	IntentBalanceInquiry:     {},
	IntentTransactionHistory: {},
	IntentFundTransfer:       {},
	IntentBillPayment:        {},
	IntentLoanInquiry:        {},
	IntentFdWithdrawal:       {},
	IntentComplaint:          {},
	IntentCreditLimit:        {},
	IntentSetReminder:        {},
	IntentNavigation:         {},
	IntentUnknown:            {},
}

// ParseIntent maps a classifier tag onto the catalog, folding unrecognized
// tags into IntentUnknown.
func ParseIntent(tag string) Intent {
	intent := Intent(tag)
	if _, ok := catalog[intent]; ok {
		return intent
	}
	return IntentUnknown
}

// Intents returns every catalog member. Used by coverage tests.
func Intents() []Intent {
	intents := make([]Intent, 0, len(catalog))
	for i := range catalog {
		intents = append(intents, i)
	}
	return intents
}

// Entities is the ordered entity list attached to a classification. Lookup
// helpers mirror the NER label scheme (B-PERSON, B-AMOUNT, *BILL_TYPE*,
// *DATE*); entity text is free-form and handlers treat it defensively.
type Entities []ml.Entity

// Person returns the recipient name span, if present.
func (e Entities) Person() string {
	return e.find(func(label string) bool { return label == "B-PERSON" })
}

// Amount returns the amount span, if present.
func (e Entities) Amount() string {
	return e.find(func(label string) bool { return label == "B-AMOUNT" })
}

// BillType returns the bill type span, if present.
func (e Entities) BillType() string {
	return e.find(func(label string) bool { return strings.Contains(label, "BILL_TYPE") })
}

// DateText returns the date phrase span, if present.
func (e Entities) DateText() string {
	return e.find(func(label string) bool { return strings.Contains(label, "DATE") })
}

func (e Entities) find(match func(label string) bool) string {
	for _, ent := range e {
		if match(ent.Label) {
			return ent.Text
		}
	}
	return ""
}
