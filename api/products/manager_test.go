package products_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"vdeck_server/api/products"
	"vdeck_server/media"
	"vdeck_server/services"
	"vdeck_server/structs"
	"vdeck_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryProductStore struct {
	mu       sync.Mutex
	products []tables.Product
}

func (s *memoryProductStore) Insert(_ context.Context, product *tables.Product) (*tables.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	s.products = append(s.products, *product)
	return product, nil
}

func (s *memoryProductStore) All(_ context.Context) ([]tables.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]tables.Product(nil), s.products...), nil
}

func (s *memoryProductStore) Find(_ context.Context, id uuid.UUID) (*tables.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memoryProductStore) Delete(_ context.Context, id uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type staticUploader struct{}

func (staticUploader) Upload(_ context.Context, blob []byte, folder string) (string, error) {
	if len(blob) == 0 {
		return "", &media.UploadError{Folder: folder, Detail: "empty blob"}
	}
	return "https://cdn.test/" + folder + "/" + string(blob), nil
}

func newTestRouter(store services.ProductStore) chi.Router {
	logger := gecho.NewDefaultLogger()
	service := services.NewProductService(logger, &structs.Config{}, store, nil, staticUploader{})
	r := chi.NewRouter()
	products.NewProductRoutesManager(logger, service).RegisterRoutes(r)
	return r
}

func productForm(t *testing.T, fields map[string]string, images ...string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, image := range images {
		part, err := writer.CreateFormFile("images", image+".png")
		require.NoError(t, err)
		_, err = part.Write([]byte(image))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestCreateProduct_Succeeds(t *testing.T) {
	store := &memoryProductStore{}
	router := newTestRouter(store)

	body, contentType := productForm(t, map[string]string{
		"name":        "Ceramic Mug",
		"price":       "12.50",
		"category":    "kitchen",
		"description": "Hand glazed",
	}, "front", "back")

	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.products, 1)
	assert.Equal(t, []string{
		"https://cdn.test/product-images/front",
		"https://cdn.test/product-images/back",
	}, store.products[0].Images)
}

func TestCreateProduct_MissingImagesRejected(t *testing.T) {
	store := &memoryProductStore{}
	router := newTestRouter(store)

	body, contentType := productForm(t, map[string]string{
		"name":     "Ceramic Mug",
		"price":    "12.50",
		"category": "kitchen",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.products)
}

func TestCreateProduct_NonNumericPriceRejected(t *testing.T) {
	store := &memoryProductStore{}
	router := newTestRouter(store)

	body, contentType := productForm(t, map[string]string{
		"name":     "Ceramic Mug",
		"price":    "twelve",
		"category": "kitchen",
	}, "front")

	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.products)
}

func TestFetchProductByID_InvalidIDRejected(t *testing.T) {
	router := newTestRouter(&memoryProductStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/products/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFetchProductByID_UnknownIDNotFound(t *testing.T) {
	router := newTestRouter(&memoryProductStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/products/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFetchAllProducts_EmptyCatalog(t *testing.T) {
	router := newTestRouter(&memoryProductStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteProduct_RoundTrip(t *testing.T) {
	store := &memoryProductStore{}
	router := newTestRouter(store)

	seeded := tables.Product{ID: uuid.New(), Name: "Ceramic Mug", Price: 12.5, Category: "kitchen", Images: []string{"https://cdn.test/product-images/front"}}
	store.products = append(store.products, seeded)

	req := httptest.NewRequest(http.MethodDelete, "/api/products/"+seeded.ID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.products)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/products/"+seeded.ID.String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
