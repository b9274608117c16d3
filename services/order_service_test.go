package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"vdeck_server/lib"
	"vdeck_server/media"
	"vdeck_server/services"
	"vdeck_server/structs"
	"vdeck_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderStore struct {
	mu      sync.Mutex
	records []tables.Order
}

func (s *fakeOrderStore) Insert(ctx context.Context, order *tables.Order) (*tables.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	now := time.Now().UTC()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now
	s.records = append(s.records, *order)
	return order, nil
}

func (s *fakeOrderStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func newOrderService(store services.OrderStore, uploader media.Uploader) *services.OrderService {
	return services.NewOrderService(gecho.NewDefaultLogger(), testConfig(), store, uploader, nil)
}

func validOrderRequest() *structs.OrderRequest {
	return &structs.OrderRequest{
		Fullname:     "Juan dela Cruz",
		Gcash:        "09171234567",
		Address:      "123 Sampaguita St, Quezon City",
		Items:        `[{"sku":"X","qty":2,"price":9.99}]`,
		Total:        19.98,
		PaymentProof: []byte("proof"),
	}
}

func TestCreateOrder_Scenario(t *testing.T) {
	store := &fakeOrderStore{}
	uploader := &fakeUploader{}
	svc := newOrderService(store, uploader)

	order, err := svc.CreateOrder(context.Background(), validOrderRequest())
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, 1, uploader.callCount())
	assert.Equal(t, "https://cdn.test/payment-proofs/proof", order.PaymentProof)
	assert.False(t, order.CreatedAt.IsZero())

	// Items arrive as JSON text and are stored deserialized
	require.Len(t, order.Items, 1)
	assert.Equal(t, "X", order.Items[0]["sku"])
	assert.Equal(t, float64(2), order.Items[0]["qty"])

	assert.Equal(t, 19.98, order.Total)
	assert.InDelta(t, 19.98, order.DerivedTotal, 0.001)
}

func TestCreateOrder_MissingFields_NoUploads(t *testing.T) {
	mutations := map[string]func(*structs.OrderRequest){
		"missing fullname": func(r *structs.OrderRequest) { r.Fullname = "" },
		"missing gcash":    func(r *structs.OrderRequest) { r.Gcash = "" },
		"missing address":  func(r *structs.OrderRequest) { r.Address = "" },
		"missing items":    func(r *structs.OrderRequest) { r.Items = "" },
		"missing proof":    func(r *structs.OrderRequest) { r.PaymentProof = nil },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			store := &fakeOrderStore{}
			uploader := &fakeUploader{}
			svc := newOrderService(store, uploader)

			req := validOrderRequest()
			mutate(req)

			_, err := svc.CreateOrder(context.Background(), req)

			var validationErr *lib.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Zero(t, uploader.callCount())
			assert.Zero(t, store.count())
		})
	}
}

func TestCreateOrder_MalformedItems_IsValidationError(t *testing.T) {
	store := &fakeOrderStore{}
	uploader := &fakeUploader{}
	svc := newOrderService(store, uploader)

	req := validOrderRequest()
	req.Items = `{"not":"an array"`

	_, err := svc.CreateOrder(context.Background(), req)

	var validationErr *lib.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Zero(t, uploader.callCount(), "malformed items must fail before any upload")
	assert.Zero(t, store.count())
}

func TestCreateOrder_UploadFailure_NothingPersisted(t *testing.T) {
	store := &fakeOrderStore{}
	uploader := &fakeUploader{failOn: "proof"}
	svc := newOrderService(store, uploader)

	_, err := svc.CreateOrder(context.Background(), validOrderRequest())

	var uploadErr *media.UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Zero(t, store.count())
}

func TestCreateOrder_DerivedTotalDiffersFromSubmitted(t *testing.T) {
	store := &fakeOrderStore{}
	uploader := &fakeUploader{}
	svc := newOrderService(store, uploader)

	req := validOrderRequest()
	req.Total = 5.00 // client-supplied, stored verbatim

	order, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 5.00, order.Total)
	assert.InDelta(t, 19.98, order.DerivedTotal, 0.001)
}
