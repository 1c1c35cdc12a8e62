package services

import (
	"github.com/google/uuid"

	"storefront/entities"
	"storefront/models"
	"storefront/repository"
)

type CartService struct {
	pr repository.ProductRepository
	cr repository.CartRepository
}

func NewCartService(productRepo repository.ProductRepository, cartRepo repository.CartRepository) CartService {
	return CartService{
		pr: productRepo,
		cr: cartRepo,
	}
}

func (cs *CartService) CreateCartSession() (cartId string, err error) {
	cartId = uuid.NewString()
	err = cs.cr.SetCart(cartId, entities.Cart{Items: map[int]int{}})
	return
}

func (cs *CartService) AddCartItem(cartId string, req entities.CartRequest) (err error) {
	if req.Quantity <= 0 {
		err = models.ErrValidation
		return
	}
	_, exists, e := cs.pr.GetProductById(req.ProductId)
	if e != nil {
		err = e
		return
	}
	if !exists {
		err = models.ErrNotFound
		return
	}
	err = cs.cr.AddCartItem(cartId, req)
	return
}

func (cs *CartService) RemoveCartItem(cartId string, req entities.CartRequest) (err error) {
	err = cs.cr.RemoveCartItem(cartId, req)
	return
}

func (cs *CartService) GetCartItems(cartId string) (resp entities.CartResponse, err error) {
	resp.Products = []entities.CartItem{}
	cart, e := cs.cr.GetCart(cartId)
	if e != nil {
		err = e
		return
	}
	for productId, quantity := range cart.Items {
		prod, exists, e := cs.pr.GetProductById(productId)
		if e != nil {
			err = e
			return
		}
		if !exists {
			continue
		}
		item := entities.CartItem{
			Id:       prod.Id,
			Name:     prod.Name,
			Quantity: quantity,
			Price:    prod.Price,
			SumPrice: float64(quantity) * prod.Price,
			InStock:  prod.Stock >= quantity,
		}
		resp.TotalPrice += item.SumPrice
		resp.Products = append(resp.Products, item)
	}
	return
}
