package domain

import "time"

// PurchaseRecord is one successful ledger insert. The (ItemID, BuyerID)
// pair is unique for all time; records are never updated or deleted.
type PurchaseRecord struct {
	ItemID      string    `json:"item_id"`
	BuyerID     string    `json:"buyer_id"`
	PurchasedAt time.Time `json:"purchased_at"`
}

type ExecutionState string

const (
	StateSuccess        ExecutionState = "SUCCESS"
	StateRepeatPurchase ExecutionState = "REPEAT_PURCHASE"
	StateSaleNotStarted ExecutionState = "SALE_NOT_STARTED"
	StateSaleEnded      ExecutionState = "SALE_ENDED"
	StateItemNotFound   ExecutionState = "ITEM_NOT_FOUND"
	StateInvalidToken   ExecutionState = "INVALID_TOKEN"
	StateInternalError  ExecutionState = "INTERNAL_ERROR"
)

// Execution is the single outcome of one purchase attempt.
// Record is non-nil only when State is StateSuccess.
type Execution struct {
	ItemID string          `json:"item_id"`
	State  ExecutionState  `json:"state"`
	Record *PurchaseRecord `json:"record,omitempty"`
}
