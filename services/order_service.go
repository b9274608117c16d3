package services

import (
	"context"
	"encoding/json"
	"time"

	"vdeck_server/lib"
	"vdeck_server/media"
	"vdeck_server/structs"
	"vdeck_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// OrderService owns order intake: validate the submission, host the proof
// of payment, persist the order, notify the shop.
type OrderService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	store        OrderStore
	uploader     media.Uploader
	emailService *EmailService // optional, nil disables notifications
}

func NewOrderService(
	logger *gecho.Logger,
	cfg *structs.Config,
	store OrderStore,
	uploader media.Uploader,
	emailService *EmailService,
) *OrderService {
	return &OrderService{
		logger:       logger,
		cfg:          cfg,
		store:        store,
		uploader:     uploader,
		emailService: emailService,
	}
}

// CreateOrder runs the order ingestion pipeline. The items JSON is
// deserialized before anything leaves the process, so a malformed submission
// is a validation failure with zero external side effects. The proof of
// payment uploads in a single call; if the insert afterwards fails, the
// hosted proof stays behind unreferenced.
func (osrv *OrderService) CreateOrder(ctx context.Context, req *structs.OrderRequest) (*tables.Order, error) {
	startTime := time.Now()

	if err := validateOrderRequest(req); err != nil {
		return nil, err
	}

	var items structs.OrderItems
	if err := json.Unmarshal([]byte(req.Items), &items); err != nil {
		return nil, lib.NewValidationError("items", "must be a valid JSON array of line items")
	}

	proofURL, err := osrv.uploader.Upload(ctx, req.PaymentProof, media.PaymentProofsFolder)
	if err != nil {
		osrv.logger.Error("Payment proof upload failed", gecho.Field("error", err))
		return nil, err
	}

	order := &tables.Order{
		Fullname:     req.Fullname,
		Gcash:        req.Gcash,
		Address:      req.Address,
		Items:        items,
		Total:        req.Total,
		DerivedTotal: items.DeriveTotal(),
		PaymentProof: proofURL,
	}

	stored, err := osrv.store.Insert(ctx, order)
	if err != nil {
		osrv.logger.Error("Order insert failed after upload",
			gecho.Field("error", err),
			gecho.Field("orphaned_url", proofURL),
		)
		return nil, lib.NewStoreError("insert order", lib.MapPgError(err))
	}

	if stored.DerivedTotal != stored.Total {
		osrv.logger.Warn("Submitted order total differs from derived total",
			gecho.Field("order_id", stored.ID),
			gecho.Field("submitted", stored.Total),
			gecho.Field("derived", stored.DerivedTotal),
		)
	}

	// Notification is best effort; the order already exists.
	if osrv.emailService != nil {
		go osrv.emailService.SendOrderNotification(stored)
	}

	osrv.logger.Info("Order placed",
		gecho.Field("id", stored.ID),
		gecho.Field("fullname", stored.Fullname),
		gecho.Field("total", stored.Total),
		gecho.Field("duration", time.Since(startTime)),
	)
	return stored, nil
}

func validateOrderRequest(req *structs.OrderRequest) error {
	return lib.ValidateStruct(req)
}
