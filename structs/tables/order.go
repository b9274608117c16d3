package tables

import (
	"time"

	"vdeck_server/structs"

	"github.com/google/uuid"
)

type Order struct {
	tableName struct{}  `bun:"table:orders,alias:o"`
	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`

	// Customer data
	Fullname string `bun:"fullname,notnull" json:"fullname"`
	Gcash    string `bun:"gcash,notnull" json:"gcash"` // payment reference supplied by the customer
	Address  string `bun:"address,notnull" json:"address"`

	// Line items and totals. Total is stored exactly as submitted;
	// DerivedTotal is the server-side best-effort sum over the items.
	Items        structs.OrderItems `bun:"items,type:jsonb,notnull" json:"items"`
	Total        float64            `bun:"total,notnull" json:"total"`
	DerivedTotal float64            `bun:"derived_total" json:"derivedTotal"`

	// Hosted proof-of-payment image
	PaymentProof string `bun:"payment_proof,notnull" json:"paymentProof"`

	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updatedAt"`
}
