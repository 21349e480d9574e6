package avro

import (
	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/transaction"
)

// TransactionPlacedSchema is the Avro schema for placed-transaction events.
const TransactionPlacedSchema = `{
	"type": "record",
	"name": "TransactionPlaced",
	"namespace": "com.ecommerce.transaction",
	"fields": [
		{"name": "id", "type": "long"},
		{"name": "customer_id", "type": "long"},
		{"name": "total_amount", "type": "double"},
		{"name": "status", "type": "string"},
		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "TransactionItem",
				"fields": [
					{"name": "product_id", "type": "long"},
					{"name": "product_name", "type": "string"},
					{"name": "quantity", "type": "int"},
					{"name": "price_per_item", "type": "double"}
				]
			}
		}}
	]
}`

// TransactionPlacedNative maps a transaction to the goavro native form of
// TransactionPlacedSchema.
func TransactionPlacedNative(t *transaction.Transaction) map[string]interface{} {
	items := make([]interface{}, 0, len(t.Items))
	for _, item := range t.Items {
		items = append(items, map[string]interface{}{
			"product_id":     item.ProductID,
			"product_name":   item.ProductName,
			"quantity":       item.Quantity,
			"price_per_item": item.PricePerItem,
		})
	}

	return map[string]interface{}{
		"id":           t.ID,
		"customer_id":  t.CustomerID,
		"total_amount": t.TotalAmount,
		"status":       t.Status,
		"items":        items,
	}
}
