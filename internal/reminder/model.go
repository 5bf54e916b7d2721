package reminder

import "time"

const statusActive = "active"

// Reminder is an append-only bill payment reminder record.
type Reminder struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	BillType  string    `json:"billType"`
	DateText  string    `json:"dateText"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
