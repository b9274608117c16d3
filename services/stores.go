package services

import (
	"context"
	"time"

	"vdeck_server/database"
	"vdeck_server/structs/tables"

	"github.com/google/uuid"
)

// ProductStore is the persistence contract for the product catalog. The
// store assigns record identity on insert.
type ProductStore interface {
	Insert(ctx context.Context, product *tables.Product) (*tables.Product, error)
	All(ctx context.Context) ([]tables.Product, error)
	Find(ctx context.Context, id uuid.UUID) (*tables.Product, error)
	Delete(ctx context.Context, id uuid.UUID) (int, error)
}

// OrderStore is the persistence contract for order intake. Orders are
// insert-only; nothing updates or deletes them.
type OrderStore interface {
	Insert(ctx context.Context, order *tables.Order) (*tables.Order, error)
}

const storeTimeout = 5 * time.Second

type productStore struct {
	db *database.DB
}

// NewProductStore returns the database-backed product catalog store.
func NewProductStore(db *database.DB) ProductStore {
	return &productStore{db: db}
}

func (s *productStore) Insert(ctx context.Context, product *tables.Product) (*tables.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	return database.Query[tables.Product](s.db).Timeout(storeTimeout).Insert(ctx, product)
}

func (s *productStore) All(ctx context.Context) ([]tables.Product, error) {
	return database.Query[tables.Product](s.db).Timeout(storeTimeout).All(ctx)
}

func (s *productStore) Find(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	return database.Query[tables.Product](s.db).Where("id", id).Timeout(storeTimeout).First(ctx)
}

func (s *productStore) Delete(ctx context.Context, id uuid.UUID) (int, error) {
	return database.Query[tables.Product](s.db).Where("id", id).Timeout(storeTimeout).Delete(ctx)
}

type orderStore struct {
	db *database.DB
}

// NewOrderStore returns the database-backed order store.
func NewOrderStore(db *database.DB) OrderStore {
	return &orderStore{db: db}
}

func (s *orderStore) Insert(ctx context.Context, order *tables.Order) (*tables.Order, error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	now := time.Now().UTC()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now
	return database.Query[tables.Order](s.db).Timeout(storeTimeout).Insert(ctx, order)
}
