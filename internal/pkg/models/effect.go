package models

import (
	"encoding/json"
	"time"
)

// EffectKind selects how the relay applies an outbox row
type EffectKind string

const (
	EffectHistory      EffectKind = "history"
	EffectTransaction  EffectKind = "transaction"
	EffectNotification EffectKind = "notification"
	EffectEvent        EffectKind = "event"
)

const (
	EffectStatusPending    = "pending"
	EffectStatusDispatched = "dispatched"
	EffectStatusDead       = "dead"
)

// Effect is a side effect recorded after a transition commits and applied by the relay.
// Seq follows insert order, which breaks ties between effects of the same operation.
type Effect struct {
	ID            string          `json:"id" db:"id"`
	Seq           int64           `json:"seq" db:"seq"`
	BookingID     string          `json:"booking_id" db:"booking_id"`
	Kind          EffectKind      `json:"kind" db:"kind"`
	Payload       json.RawMessage `json:"payload" db:"payload"`
	Status        string          `json:"status" db:"status"`
	Attempts      int             `json:"attempts" db:"attempts"`
	LastError     *string         `json:"last_error,omitempty" db:"last_error"`
	NextAttemptAt time.Time       `json:"next_attempt_at" db:"next_attempt_at"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	DispatchedAt  *time.Time      `json:"dispatched_at,omitempty" db:"dispatched_at"`
}

// Effects collects the side effects produced by one operation
type Effects struct {
	History       []*BookingHistoryEntry
	Transactions  []*Transaction
	Notifications []*Notification
	Events        []*BookingEvent
}

func (e *Effects) AddHistory(h *BookingHistoryEntry) {
	e.History = append(e.History, h)
}

func (e *Effects) AddTransactions(t ...*Transaction) {
	e.Transactions = append(e.Transactions, t...)
}

func (e *Effects) Notify(n *Notification) {
	e.Notifications = append(e.Notifications, n)
}

func (e *Effects) AddEvent(ev *BookingEvent) {
	e.Events = append(e.Events, ev)
}

// Len returns the number of effects collected
func (e *Effects) Len() int {
	return len(e.History) + len(e.Transactions) + len(e.Notifications) + len(e.Events)
}
