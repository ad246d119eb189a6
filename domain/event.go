package domain

import (
	"context"

	"github.com/tonkeeper/tongo"
	"github.com/tonkeeper/tongo/tlb"
)

// Notifier is the write-only event sink. Deliveries carry no guarantee and
// failures must never abort the operation that produced the event.
type Notifier interface {
	Notify(ctx context.Context, event JarEvent) error
}

// Treasurer is the atomic value-transfer primitive supplied by the hosting
// platform. A failed transfer is fatal to the whole operation.
type Treasurer interface {
	Transfer(ctx context.Context, from, to tongo.AccountID, amount tlb.Grams, comment string) error
}

// JarEvent is the union payload broadcast after every state-changing
// operation and the stats query. Exactly one member is set.
type JarEvent struct {
	Initialized    *InitializedPayload    `json:"Initialized,omitempty"`
	TipSent        *TipSentPayload        `json:"TipSent,omitempty"`
	Refunded       *RefundedPayload       `json:"Refunded,omitempty"`
	StatusChanged  *StatusChangedPayload  `json:"StatusChanged,omitempty"`
	GoalReached    *GoalReachedPayload    `json:"GoalReached,omitempty"`
	Updated        *UpdatedPayload        `json:"Updated,omitempty"`
	HistoryCleared *HistoryClearedPayload `json:"HistoryCleared,omitempty"`
	Withdrawn      *WithdrawnPayload      `json:"Withdrawn,omitempty"`
	Closed         *ClosedPayload         `json:"Closed,omitempty"`
	Stats          *StatsPayload          `json:"Stats,omitempty"`
}

type InitializedPayload struct {
	Jar   string `json:"jar"`
	Owner string `json:"owner"`
	Goal  uint64 `json:"goal"`
}

type TipSentPayload struct {
	Jar string `json:"jar"`
	// Sender is left empty for anonymous tips; only the amount is visible.
	Sender        string `json:"sender,omitempty"`
	Amount        uint64 `json:"amount"`
	Memo          string `json:"memo,omitempty"`
	TotalReceived uint64 `json:"total_received"`
	TipsCount     uint32 `json:"tips_count"`
}

// Refunded reports a tip turned away by a paused jar. The value transfer
// never happened, so nothing is actually moved back; the payload echoes the
// declined amount for the sender's benefit.
type RefundedPayload struct {
	Jar    string `json:"jar"`
	Sender string `json:"sender"`
	Amount uint64 `json:"amount"`
}

type StatusChangedPayload struct {
	Jar      string `json:"jar"`
	IsActive bool   `json:"is_active"`
}

type GoalReachedPayload struct {
	Jar           string `json:"jar"`
	Goal          uint64 `json:"goal"`
	TotalReceived uint64 `json:"total_received"`
}

type UpdatedPayload struct {
	Jar         string `json:"jar"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Goal        uint64 `json:"goal"`
}

type HistoryClearedPayload struct {
	Jar       string `json:"jar"`
	TipsCount uint32 `json:"tips_count"`
}

type WithdrawnPayload struct {
	Jar       string `json:"jar"`
	Owner     string `json:"owner"`
	Amount    uint64 `json:"amount"`
	Remaining uint64 `json:"remaining"`
}

type ClosedPayload struct {
	Jar    string `json:"jar"`
	Owner  string `json:"owner"`
	Amount uint64 `json:"amount"`
}

type StatsPayload struct {
	Jar           string `json:"jar"`
	IsActive      bool   `json:"is_active"`
	IsPrivate     bool   `json:"is_private"`
	Category      string `json:"category"`
	Goal          uint64 `json:"goal"`
	TotalReceived uint64 `json:"total_received"`
	TipsCount     uint32 `json:"tips_count"`
	GoalReached   bool   `json:"goal_reached"`
}
