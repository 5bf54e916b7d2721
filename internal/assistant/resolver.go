package assistant

import (
	"context"
	"log/slog"
	"strings"

	"github.com/saarthi-bank/saarthi-assistant/internal/ml"
)

// Classification is the resolved intent plus any extracted entities for one query.
type Classification struct {
	Intent   Intent
	Entities Entities
}

// Resolver turns raw query text into a Classification. The external classifier
// is tried once; any failure or timeout drops straight to the local keyword
// fallback. Resolution itself never fails.
type Resolver struct {
	classifier ml.Classifier
	logger     *slog.Logger
}

// NewResolver builds a resolver over the given classifier.
func NewResolver(classifier ml.Classifier, logger *slog.Logger) *Resolver {
	return &Resolver{classifier: classifier, logger: logger}
}

// Resolve classifies the query. Entities only ever come from the external
// classifier; the keyword fallback yields a bare intent.
func (r *Resolver) Resolve(ctx context.Context, queryText string) Classification {
	pred, err := r.classifier.PredictIntent(ctx, queryText)
	if err != nil {
		r.logger.Warn("intent classifier unavailable, using keyword fallback", "error", err)
		return Classification{Intent: fallbackIntent(queryText)}
	}

	return Classification{Intent: ParseIntent(pred.Intent), Entities: Entities(pred.Entities)}
}

// keywordRule maps substrings (English plus Hindi terms) to an intent.
// Rules are checked in order; the first match wins.
type keywordRule struct {
	keywords []string
	intent   Intent
}

var fallbackRules = []keywordRule{
	{[]string{"balance", "शेष"}, IntentBalanceInquiry},
	{[]string{"history", "इतिहास"}, IntentNavigation},
	{[]string{"transfer", "send", "भेज"}, IntentFundTransfer},
	{[]string{"bill", "बिल"}, IntentBillPayment},
	{[]string{"loan", "ऋण"}, IntentLoanInquiry},
	{[]string{"fd", "fixed"}, IntentFdWithdrawal},
	{[]string{"complaint", "शिकायत"}, IntentComplaint},
	{[]string{"credit", "limit"}, IntentCreditLimit},
	{[]string{"remind", "याद"}, IntentSetReminder},
}

// fallbackIntent is a total function: every input resolves to some intent,
// with IntentUnknown as the catch-all.
func fallbackIntent(queryText string) Intent {
	query := strings.ToLower(queryText)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(query, kw) {
				return rule.intent
			}
		}
	}
	return IntentUnknown
}
