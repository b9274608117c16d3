package tables

import (
	"github.com/google/uuid"
)

type Product struct {
	tableName   struct{}  `bun:"table:products,alias:p"`
	ID          uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Price       float64   `bun:"price,notnull" json:"price"`
	Category    string    `bun:"category,notnull" json:"category"`
	Description string    `bun:"description" json:"description"`
	Images      []string  `bun:"images,type:jsonb,notnull" json:"images"` // hosted URLs, first one is the main image
}
