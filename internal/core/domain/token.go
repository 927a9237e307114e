package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrItemNotFound = errors.New("item not found")

// PurchaseToken is the opaque handle a client must present to purchase.
// The value is derived from the item id and a process-wide secret; it is
// never persisted and is verified by recomputation.
type PurchaseToken struct {
	ItemID string `json:"item_id"`
	Value  string `json:"token"`
}

type WindowReason string

const (
	WindowBeforeStart WindowReason = "BEFORE_START"
	WindowAfterEnd    WindowReason = "AFTER_END"
)

// WindowError rejects a token request outside the sale window. It carries
// all three timestamps so a caller can compute wait time or render a
// precise message.
type WindowError struct {
	Reason    WindowReason
	ItemID    string
	Now       time.Time
	StartTime time.Time
	EndTime   time.Time
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("sale window closed for item %s: %s (now=%s start=%s end=%s)",
		e.ItemID, e.Reason, e.Now.Format(time.RFC3339), e.StartTime.Format(time.RFC3339), e.EndTime.Format(time.RFC3339))
}
