package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saarthi-bank/saarthi-assistant/internal/logging"
	"github.com/saarthi-bank/saarthi-assistant/internal/ml"
)

func TestResolveUsesClassifierWhenAvailable(t *testing.T) {
	classifier := ml.StaticClassifier{
		Intent: "fund_transfer",
		Entities: []ml.Entity{
			{Text: "Ramesh", Label: "B-PERSON"},
			{Text: "500", Label: "B-AMOUNT"},
		},
	}
	r := NewResolver(classifier, logging.Discard())

	cls := r.Resolve(context.Background(), "send 500 to Ramesh")
	assert.Equal(t, IntentFundTransfer, cls.Intent)
	require.Len(t, cls.Entities, 2)
	assert.Equal(t, "Ramesh", cls.Entities.Person())
	assert.Equal(t, "500", cls.Entities.Amount())
}

func TestResolveFoldsUnrecognizedTagsIntoUnknown(t *testing.T) {
	classifier := ml.StaticClassifier{Intent: "weather_forecast"}
	r := NewResolver(classifier, logging.Discard())

	cls := r.Resolve(context.Background(), "will it rain tomorrow")
	assert.Equal(t, IntentUnknown, cls.Intent)
}

func TestResolveFallsBackWhenClassifierFails(t *testing.T) {
	classifier := ml.StaticClassifier{Err: errors.New("connection refused")}
	r := NewResolver(classifier, logging.Discard())

	cases := []struct {
		query string
		want  Intent
	}{
		{"What is my balance", IntentBalanceInquiry},
		{"show my transaction history", IntentNavigation},
		{"transfer money to mom", IntentFundTransfer},
		{"pay my electricity bill", IntentBillPayment},
		{"do I have a loan", IntentLoanInquiry},
		{"break my fixed deposit", IntentFdWithdrawal},
		{"I want to file a complaint", IntentComplaint},
		{"what is my credit limit", IntentCreditLimit},
		{"remind me to pay rent on the 1st", IntentSetReminder},
		{"मेरा शेष क्या है", IntentBalanceInquiry},
		{"पैसे भेज दो", IntentFundTransfer},
		{"xyzzy", IntentUnknown},
		{"", IntentUnknown},
	}

	for _, tc := range cases {
		cls := r.Resolve(context.Background(), tc.query)
		assert.Equalf(t, tc.want, cls.Intent, "query %q", tc.query)
		assert.Emptyf(t, cls.Entities, "fallback must not populate entities for %q", tc.query)
	}
}

func TestFallbackIsTotal(t *testing.T) {
	// Any input, including garbage and empty strings, resolves to some catalog intent.
	inputs := []string{"", " ", "!!!", "completely unrelated text", "1234567890"}
	for _, q := range inputs {
		intent := fallbackIntent(q)
		_, inCatalog := catalog[intent]
		assert.Truef(t, inCatalog, "fallback produced non-catalog intent %q for %q", intent, q)
	}
}
