package orders

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"vdeck_server/lib"
	"vdeck_server/media"
	"vdeck_server/structs"

	"github.com/MonkyMars/gecho"
)

// CreateOrder handles POST /api/orders. The body is a multipart form with
// fullname, gcash, address, items (JSON text), total and a single file
// under "paymentProof".
func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	req, err := parseOrderForm(r)
	if err != nil {
		respondOrderError(w, orm, err)
		return
	}

	order, err := orm.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		respondOrderError(w, orm, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order placed successfully"),
		gecho.WithData(order),
		gecho.Send(),
	)
}

func parseOrderForm(r *http.Request) (*structs.OrderRequest, error) {
	if err := lib.ParseMultipartForm(r); err != nil {
		return nil, err
	}

	totalStr := strings.TrimSpace(r.FormValue("total"))
	if totalStr == "" {
		return nil, lib.NewValidationError("total", "is required")
	}
	total, err := strconv.ParseFloat(totalStr, 64)
	if err != nil {
		return nil, lib.NewValidationError("total", "must be a number")
	}

	proof, err := lib.FormFile(r, "paymentProof")
	if err != nil {
		return nil, lib.NewValidationError("paymentProof", "could not be read")
	}

	return &structs.OrderRequest{
		Fullname:     strings.TrimSpace(r.FormValue("fullname")),
		Gcash:        strings.TrimSpace(r.FormValue("gcash")),
		Address:      strings.TrimSpace(r.FormValue("address")),
		Items:        r.FormValue("items"),
		Total:        total,
		PaymentProof: proof,
	}, nil
}

func respondOrderError(w http.ResponseWriter, orm *OrderRoutesManager, err error) {
	var validationErr *lib.ValidationError
	if errors.As(err, &validationErr) {
		gecho.BadRequest(w,
			gecho.WithMessage("Please fill in all required fields and upload payment proof"),
			gecho.WithData(validationErr.Errors),
			gecho.Send(),
		)
		return
	}

	var uploadErr *media.UploadError
	if errors.As(err, &uploadErr) {
		orm.logger.Error("Payment proof upload failed", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to upload payment proof"),
			gecho.Send(),
		)
		return
	}

	orm.logger.Error("Failed to place order", gecho.Field("error", err))
	gecho.InternalServerError(w,
		gecho.WithMessage("Failed to place order"),
		gecho.Send(),
	)
}
