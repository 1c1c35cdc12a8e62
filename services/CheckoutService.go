package services

import (
	"log"
	"math"
	"time"

	"storefront/entities"
	"storefront/models"
	"storefront/payments"
	"storefront/repository"
)

type CheckoutService struct {
	pr repository.ProductRepository
	or repository.OrderRepository
	gw payments.Gateway
}

func NewCheckoutService(productRepo repository.ProductRepository, orderRepo repository.OrderRepository, gateway payments.Gateway) CheckoutService {
	return CheckoutService{
		pr: productRepo,
		or: orderRepo,
		gw: gateway,
	}
}

// CreateCheckout prices the cart from the catalog, never from the client,
// records a pending order with its immutable line items, then opens the
// payment session and attaches its id to the order.
func (cs *CheckoutService) CreateCheckout(req entities.CheckoutRequest) (sessionId string, orderId int, err error) {
	if req.Email == "" || len(req.Items) == 0 {
		err = models.ErrValidation
		return
	}

	items := make([]models.OrdersProducts_db, 0, len(req.Items))
	lines := make([]payments.LineItem, 0, len(req.Items))
	var total float64
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			err = models.ErrValidation
			return
		}
		prod, exists, e := cs.pr.GetProductById(item.ProductId)
		if e != nil {
			err = e
			return
		}
		if !exists {
			log.Printf("CreateCheckout: unknown product %d", item.ProductId)
			err = models.ErrValidation
			return
		}
		if prod.Stock < item.Quantity {
			log.Printf("CreateCheckout: product %d out of stock", item.ProductId)
			err = models.ErrValidation
			return
		}
		items = append(items, models.OrdersProducts_db{
			ProductId: prod.Id,
			Quantity:  item.Quantity,
			Price:     prod.Price,
		})
		lines = append(lines, payments.LineItem{
			Name:       prod.Name,
			UnitAmount: int64(math.Round(prod.Price * 100)),
			Quantity:   int64(item.Quantity),
		})
		total += float64(item.Quantity) * prod.Price
	}

	orderId, err = cs.or.CreateOrder(models.Order_db{
		Email:  req.Email,
		Date:   time.Now().UTC(),
		Total:  total,
		Status: models.OrderPending,
	})
	if err != nil {
		return
	}
	err = cs.or.SetOrderItems(orderId, items)
	if err != nil {
		return
	}

	sessionId, err = cs.gw.CreateSession(req.Email, lines)
	if err != nil {
		return
	}
	err = cs.or.SetStripeSession(orderId, sessionId)
	return
}

// HandleWebhook verifies the event signature and completes the matching
// order. Events other than a completed checkout are acknowledged and ignored.
func (cs *CheckoutService) HandleWebhook(payload []byte, signature string) (err error) {
	sessionId, completed, e := cs.gw.ParseWebhook(payload, signature)
	if e != nil {
		err = e
		return
	}
	if !completed {
		return
	}
	err = cs.or.CompleteOrderBySession(sessionId)
	return
}

func (cs *CheckoutService) GetOrderById(orderId int) (order entities.Order, err error) {
	order, err = cs.or.GetOrderById(orderId)
	return
}

func (cs *CheckoutService) SearchOrders(data models.OrderSearchData) (orders []entities.Order, err error) {
	orders, err = cs.or.SearchOrders(data)
	if orders == nil {
		orders = []entities.Order{}
	}
	return
}

func (cs *CheckoutService) SetOrderStatus(orderId int, status string) (err error) {
	if !models.IsOrderStatus(status) {
		err = models.ErrValidation
		return
	}
	err = cs.or.SetOrderStatus(orderId, status)
	return
}
