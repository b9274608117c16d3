package structs

// OrderItems is the caller-defined line-item sequence. The shape of each
// item is owned by the storefront client; the server only serializes it.
type OrderItems []map[string]any

// OrderRequest is an order submission after the multipart form has been
// parsed. Items carries the raw JSON text exactly as submitted; it is
// deserialized by the order service.
type OrderRequest struct {
	Fullname     string  `json:"fullname" validate:"required"`
	Gcash        string  `json:"gcash" validate:"required"`
	Address      string  `json:"address" validate:"required"`
	Items        string  `json:"items" validate:"required"`
	Total        float64 `json:"total" validate:"gte=0"`
	PaymentProof []byte  `json:"-" validate:"required"`
}

// DeriveTotal computes a server-side total from the numeric price and
// quantity fields of the items, when they carry any. Items are opaque, so
// this is best effort: items without usable fields contribute nothing and
// the result is stored next to the submitted total, not instead of it.
func (items OrderItems) DeriveTotal() float64 {
	var total float64
	for _, item := range items {
		price, ok := numericField(item, "price")
		if !ok {
			continue
		}
		qty, ok := numericField(item, "qty")
		if !ok {
			qty, ok = numericField(item, "quantity")
		}
		if !ok {
			qty = 1
		}
		total += price * qty
	}
	return total
}

func numericField(item map[string]any, key string) (float64, bool) {
	switch v := item[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
