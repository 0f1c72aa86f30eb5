package handler

import (
	"github.com/storefront/admin-api/internal/core/domain"
	"github.com/storefront/admin-api/internal/core/ports"
)

func toCreateInput(req createProductRequest) ports.CreateProductInput {
	return ports.CreateProductInput{
		Image:           req.Image,
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		Stock:           req.Stock,
		AvailableColors: req.AvailableColors,
	}
}

func toPatch(req updateProductRequest) domain.ProductPatch {
	return domain.ProductPatch{
		Image:           req.Image,
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		Stock:           req.Stock,
		AvailableColors: req.AvailableColors,
	}
}
