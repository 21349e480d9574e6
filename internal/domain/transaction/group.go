package transaction

import "time"

// Row is one record of the transactions ⨝ transaction_items join, with the
// header fields repeated on every line.
type Row struct {
	ID              int64
	CustomerID      int64
	TotalAmount     float64
	Status          string
	TransactionDate time.Time
	ItemID          int64
	ProductID       int64
	ProductName     string
	Quantity        int
	PricePerItem    float64
}

// Group folds flat join rows into nested transactions, keyed by transaction
// id in first-seen order. All read paths (by id, by customer, all) share
// this so their grouping semantics cannot diverge.
func Group(rows []Row) []*Transaction {
	byID := make(map[int64]*Transaction, len(rows))
	out := make([]*Transaction, 0, len(rows))

	for _, r := range rows {
		t, ok := byID[r.ID]
		if !ok {
			t = &Transaction{
				ID:              r.ID,
				CustomerID:      r.CustomerID,
				TotalAmount:     r.TotalAmount,
				Status:          r.Status,
				TransactionDate: r.TransactionDate,
				Items:           []Item{},
			}
			byID[r.ID] = t
			out = append(out, t)
		}

		t.Items = append(t.Items, Item{
			ItemID:       r.ItemID,
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			Quantity:     r.Quantity,
			PricePerItem: r.PricePerItem,
		})
	}

	return out
}
