package services

import (
	"context"
	"time"

	"vdeck_server/lib"
	"vdeck_server/media"
	"vdeck_server/structs"
	"vdeck_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ProductService owns the product side of the storefront: the
// validate → upload → persist ingestion pipeline for new products, and the
// read/delete path over the catalog store.
type ProductService struct {
	logger   *gecho.Logger
	cfg      *structs.Config
	store    ProductStore
	cache    ProductCache // optional, nil disables caching
	uploader media.Uploader
}

func NewProductService(
	logger *gecho.Logger,
	cfg *structs.Config,
	store ProductStore,
	cache ProductCache,
	uploader media.Uploader,
) *ProductService {
	return &ProductService{
		logger:   logger,
		cfg:      cfg,
		store:    store,
		cache:    cache,
		uploader: uploader,
	}
}

// CreateProduct runs the product ingestion pipeline. Validation is
// fail-fast: an invalid request returns before any upload happens. All
// attachments upload concurrently; the stored image order is exactly the
// attachment order. Any single upload failure fails the whole request and
// nothing is persisted. Images that finished before the failure stay
// hosted remotely with no owner; there is no compensating cleanup, so
// records only ever reference resolved URLs.
func (ps *ProductService) CreateProduct(ctx context.Context, req *structs.ProductRequest) (*tables.Product, error) {
	startTime := time.Now()

	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	urls, err := ps.uploadImages(ctx, req.Images)
	if err != nil {
		ps.logger.Error("Product image upload failed",
			gecho.Field("error", err),
			gecho.Field("image_count", len(req.Images)),
		)
		return nil, err
	}

	product := &tables.Product{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Images:      urls,
	}

	stored, err := ps.store.Insert(ctx, product)
	if err != nil {
		// Uploads already succeeded; the hosted images are orphaned now.
		ps.logger.Error("Product insert failed after upload",
			gecho.Field("error", err),
			gecho.Field("orphaned_urls", urls),
		)
		return nil, lib.NewStoreError("insert product", lib.MapPgError(err))
	}

	ps.invalidateCache()

	ps.logger.Info("Product created",
		gecho.Field("id", stored.ID),
		gecho.Field("name", stored.Name),
		gecho.Field("images", len(stored.Images)),
		gecho.Field("duration", time.Since(startTime)),
	)
	return stored, nil
}

// ListAll returns every product in the catalog in store-native order.
func (ps *ProductService) ListAll(ctx context.Context) ([]tables.Product, error) {
	if ps.cache != nil {
		cached, err := ps.cache.GetProductList()
		if err != nil {
			ps.logger.Warn("Failed to read product list from cache", gecho.Field("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	products, err := ps.store.All(ctx)
	if err != nil {
		return nil, lib.NewStoreError("list products", err)
	}

	if ps.cache != nil {
		go func() {
			if err := ps.cache.SetProductList(products); err != nil {
				ps.logger.Warn("Failed to cache product list", gecho.Field("error", err))
			}
		}()
	}

	return products, nil
}

// GetProductByID fetches a single product, returning lib.ErrNotFound when
// no record matches.
func (ps *ProductService) GetProductByID(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	if ps.cache != nil {
		cached, err := ps.cache.GetProductByID(id.String())
		if err != nil {
			ps.logger.Warn("Failed to read product from cache", gecho.Field("error", err), gecho.Field("id", id))
		} else if cached != nil {
			return cached, nil
		}
	}

	product, err := ps.store.Find(ctx, id)
	if err != nil {
		return nil, lib.NewStoreError("fetch product", err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	if ps.cache != nil {
		go func() {
			if err := ps.cache.SetProductByID(product); err != nil {
				ps.logger.Warn("Failed to cache product", gecho.Field("error", err), gecho.Field("id", id))
			}
		}()
	}

	return product, nil
}

// DeleteProductByID removes a product, returning lib.ErrNotFound when no
// record matched. Hosted images are not touched; deletion orphans them
// permanently.
func (ps *ProductService) DeleteProductByID(ctx context.Context, id uuid.UUID) error {
	deleted, err := ps.store.Delete(ctx, id)
	if err != nil {
		return lib.NewStoreError("delete product", err)
	}
	if deleted == 0 {
		return lib.ErrNotFound
	}

	ps.invalidateCache(id.String())
	return nil
}

// uploadImages pushes every attachment concurrently and collects the
// hosted URLs in attachment order.
func (ps *ProductService) uploadImages(ctx context.Context, blobs [][]byte) ([]string, error) {
	urls := make([]string, len(blobs))

	g, gctx := errgroup.WithContext(ctx)
	for i, blob := range blobs {
		g.Go(func() error {
			url, err := ps.uploader.Upload(gctx, blob, media.ProductImagesFolder)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

func (ps *ProductService) invalidateCache(ids ...string) {
	if ps.cache == nil {
		return
	}
	go func() {
		if err := ps.cache.Invalidate(ids...); err != nil {
			ps.logger.Warn("Failed to invalidate product cache", gecho.Field("error", err))
		}
	}()
}

func validateProductRequest(req *structs.ProductRequest) error {
	if err := lib.ValidateStruct(req); err != nil {
		return err
	}
	for _, blob := range req.Images {
		if len(blob) == 0 {
			return lib.NewValidationError("images", "must not contain empty attachments")
		}
	}
	return nil
}
