package api

import (
	"vdeck_server/api/health"
	"vdeck_server/api/orders"
	"vdeck_server/api/products"

	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes *products.ProductRoutesManager
	orderRoutes   *orders.OrderRoutesManager
	healthRoutes  *health.HealthRoutesManager
}

func NewRouterManager(
	productRoutes *products.ProductRoutesManager,
	orderRoutes *orders.OrderRoutesManager,
	healthRoutes *health.HealthRoutesManager,
) *routerManager {
	return &routerManager{
		productRoutes: productRoutes,
		orderRoutes:   orderRoutes,
		healthRoutes:  healthRoutes,
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
