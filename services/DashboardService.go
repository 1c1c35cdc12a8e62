package services

import (
	"storefront/entities"
	"storefront/repository"
)

type DashboardService struct {
	or repository.OrderRepository
	pr repository.ProductRepository
}

func NewDashboardService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) DashboardService {
	return DashboardService{
		or: orderRepo,
		pr: productRepo,
	}
}

func (ds *DashboardService) GetStats() (stats entities.DashboardStats, err error) {
	stats, err = ds.or.OrderStats()
	if err != nil {
		return
	}
	stats.TotalProducts, err = ds.pr.CountProducts()
	if stats.Recent == nil {
		stats.Recent = []entities.Order{}
	}
	return
}
