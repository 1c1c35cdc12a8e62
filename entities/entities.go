package entities

import (
	"time"

	"storefront/models"
)

type CartItem struct {
	Id       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	SumPrice float64 `json:"sum_price"`
	InStock  bool    `json:"in_stock"`
}

type Cart struct {
	Items map[int]int //=map[productId]quantity
}

type CartRequest struct {
	ProductId int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type CartResponse struct {
	Products   []CartItem `json:"products"`
	TotalPrice float64    `json:"total_price"`
}

type CheckoutItem struct {
	ProductId int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type CheckoutRequest struct {
	Items []CheckoutItem `json:"items"`
	Email string         `json:"email"`
}

type OrderLine struct {
	ProductId  int     `json:"product_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	TotalPrice float64 `json:"total_price"`
}

type Order struct {
	OrderId         int         `json:"id"`
	Date            time.Time   `json:"date"`
	Status          string      `json:"status"`
	Email           string      `json:"email"`
	Total           float64     `json:"total"`
	StripeSessionId string      `json:"stripe_session_id,omitempty"`
	Products        []OrderLine `json:"products"`
}

type DashboardStats struct {
	TotalOrders     int     `json:"total_orders"`
	PendingOrders   int     `json:"pending_orders"`
	CompletedOrders int     `json:"completed_orders"`
	CancelledOrders int     `json:"cancelled_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalProducts   int     `json:"total_products"`
	Recent          []Order `json:"recent_orders"`
}

type ImportResult struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

type ProductImportResult struct {
	ImportResult
	Products []models.Product_db `json:"products"`
}

type OfferImportResult struct {
	ImportResult
	Offers []models.Offer_db `json:"offers"`
}

type SliderImportResult struct {
	ImportResult
	Sliders []models.ProductSlider_db `json:"sliders"`
}
