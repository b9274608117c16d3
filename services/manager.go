package services

import (
	"fmt"

	"vdeck_server/database"
	"vdeck_server/media"
	"vdeck_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	CacheService   *CacheService
	EmailService   *EmailService
	HealthService  *HealthService
	ProductService *ProductService
	OrderService   *OrderService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) (*ServiceManager, error) {
	uploader, err := media.NewS3Uploader(cfg.Media)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media uploader: %w", err)
	}

	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db)
	productService := NewProductService(logger, cfg, NewProductStore(db), cacheService, uploader)
	orderService := NewOrderService(logger, cfg, NewOrderStore(db), uploader, emailService)

	return &ServiceManager{
		CacheService:   cacheService,
		EmailService:   emailService,
		HealthService:  healthService,
		ProductService: productService,
		OrderService:   orderService,
	}, nil
}
