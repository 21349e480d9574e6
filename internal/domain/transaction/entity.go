package transaction

import "time"

// Transaction lifecycle labels. Only the status changes after creation.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Transaction struct {
	ID              int64     `json:"id"`
	CustomerID      int64     `json:"customer_id"`
	TotalAmount     float64   `json:"total_amount"`
	Status          string    `json:"status"`
	TransactionDate time.Time `json:"transaction_date"`
	Items           []Item    `json:"items"`
}

// Item is one line of a transaction. Name and price are snapshotted at
// placement time and never change, even if the product does.
type Item struct {
	ItemID        int64   `json:"item_id"`
	TransactionID int64   `json:"transaction_id,omitempty"`
	ProductID     int64   `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Quantity      int     `json:"quantity"`
	PricePerItem  float64 `json:"price_per_item"`
}

func (i Item) Subtotal() float64 {
	return i.PricePerItem * float64(i.Quantity)
}

// ValidStatus reports whether s is one of the known lifecycle labels.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
