package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/entities"
	"storefront/models"
)

const cartTTL = 24 * time.Hour

type CartRepository interface {
	SetCart(cartId string, cart entities.Cart) (err error)
	GetCart(cartId string) (cart entities.Cart, err error)
	AddCartItem(cartId string, req entities.CartRequest) (err error)
	RemoveCartItem(cartId string, req entities.CartRequest) (err error)
}

type CartRepo struct {
	rdb *redis.Client
	ctx context.Context
}

func NewCartRepository(redisConn *redis.Client, ctx context.Context) (CartRepository, error) {
	if redisConn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := redisConn.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}
	return &CartRepo{
		rdb: redisConn,
		ctx: ctx,
	}, nil
}

func cartKey(cartId string) string {
	return "cart:" + cartId
}

func (c *CartRepo) SetCart(cartId string, cart entities.Cart) (err error) {
	jsonData, e := json.Marshal(cart)
	if e != nil {
		log.Printf("SetCart: %v", e)
		err = models.ErrUpstream
		return
	}
	err = c.rdb.Set(c.ctx, cartKey(cartId), jsonData, cartTTL).Err()
	if err != nil {
		log.Printf("SetCart: %v", err)
		err = models.ErrUpstream
	}
	return
}

func (c *CartRepo) GetCart(cartId string) (cart entities.Cart, err error) {
	cart = entities.Cart{Items: map[int]int{}}
	val, e := c.rdb.Get(c.ctx, cartKey(cartId)).Result()
	if e != nil {
		if e == redis.Nil {
			return
		}
		log.Printf("GetCart: %v", e)
		err = models.ErrUpstream
		return
	}
	err = json.Unmarshal([]byte(val), &cart)
	if err != nil {
		log.Printf("GetCart: %v", err)
		err = models.ErrUpstream
	}
	if cart.Items == nil {
		cart.Items = map[int]int{}
	}
	return
}

func (c *CartRepo) AddCartItem(cartId string, req entities.CartRequest) (err error) {
	cart, e := c.GetCart(cartId)
	if e != nil {
		err = e
		return
	}
	cart.Items[req.ProductId] = cart.Items[req.ProductId] + req.Quantity
	err = c.SetCart(cartId, cart)
	return
}

func (c *CartRepo) RemoveCartItem(cartId string, req entities.CartRequest) (err error) {
	cart, e := c.GetCart(cartId)
	if e != nil {
		err = e
		return
	}
	if _, ok := cart.Items[req.ProductId]; !ok {
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if cart.Items[req.ProductId] > req.Quantity {
		cart.Items[req.ProductId] = cart.Items[req.ProductId] - req.Quantity
	} else {
		delete(cart.Items, req.ProductId)
	}
	err = c.SetCart(cartId, cart)
	return
}
