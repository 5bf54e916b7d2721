package user

import "time"

// User represents a registered bank customer.
type User struct {
	ID        string
	Phone     string
	Name      string
	MpinHash  []byte
	MpinSet   bool
	AtmLinked bool
	CreatedAt time.Time
}

// Loan is one active loan held by a user.
type Loan struct {
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Outstanding int64  `json:"outstanding"`
}

// Facts is the read-only banking view the assistant speaks from. The numbers
// are opaque to the orchestrator; it formats them into sentences and never
// computes them.
type Facts struct {
	Balance     int64
	CreditLimit int64
	Loans       []Loan
}

// OutstandingTotal sums outstanding amounts across loans.
func (f Facts) OutstandingTotal() int64 {
	var total int64
	for _, l := range f.Loans {
		total += l.Outstanding
	}
	return total
}
