package products

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

// CreateProduct handles POST /api/products. The body is a multipart form
// with name, price, category, optional description and 1..6 files under
// "images".
func (prm *ProductRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	req, err := parseProductForm(r)
	if err != nil {
		respondProductError(w, prm, err)
		return
	}

	product, err := prm.productService.CreateProduct(r.Context(), req)
	if err != nil {
		respondProductError(w, prm, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product added successfully"),
		gecho.WithData(product),
		gecho.Send(),
	)
}

func parseProductForm(r *http.Request) (*structs.ProductRequest, error) {
	if err := lib.ParseMultipartForm(r); err != nil {
		return nil, err
	}

	priceStr := strings.TrimSpace(r.FormValue("price"))
	if priceStr == "" {
		return nil, lib.NewValidationError("price", "is required")
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return nil, lib.NewValidationError("price", "must be a number")
	}

	images, err := lib.FormFiles(r, "images")
	if err != nil {
		return nil, lib.NewValidationError("images", "could not be read")
	}

	return &structs.ProductRequest{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Price:       price,
		Category:    strings.TrimSpace(r.FormValue("category")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Images:      images,
	}, nil
}

func respondProductError(w http.ResponseWriter, prm *ProductRoutesManager, err error) {
	var validationErr *lib.ValidationError
	if errors.As(err, &validationErr) {
		gecho.BadRequest(w,
			gecho.WithMessage("Please fill in all fields and upload at least one image"),
			gecho.WithData(validationErr.Errors),
			gecho.Send(),
		)
		return
	}

	var uploadErr *media.UploadError
	if errors.As(err, &uploadErr) {
		prm.logger.Error("Product image upload failed", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to upload product images"),
			gecho.Send(),
		)
		return
	}

	prm.logger.Error("Failed to add product", gecho.Field("error", err))
	gecho.InternalServerError(w,
		gecho.WithMessage("Failed to add product"),
		gecho.Send(),
	)
}
