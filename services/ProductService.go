package services

import (
	"storefront/models"
	"storefront/repository"
)

type ProductService struct {
	pr repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return ProductService{
		pr: productRepo,
	}
}

func (ps *ProductService) ListProducts() (prods []models.Product_db, err error) {
	prods, err = ps.pr.ListProducts()
	if prods == nil {
		prods = []models.Product_db{}
	}
	return
}

func (ps *ProductService) GetProductById(id int) (prod models.Product_db, err error) {
	prod, exists, err := ps.pr.GetProductById(id)
	if err != nil {
		return
	}
	if !exists {
		err = models.ErrNotFound
	}
	return
}

func (ps *ProductService) CreateProduct(prod models.Product_db) (created models.Product_db, err error) {
	if prod.Name == "" || prod.Price <= 0 {
		err = models.ErrValidation
		return
	}
	prod.Id, err = ps.pr.CreateProduct(prod)
	created = prod
	return
}

func (ps *ProductService) UpdateProduct(prod models.Product_db) (updated models.Product_db, err error) {
	if prod.Name == "" || prod.Price <= 0 {
		err = models.ErrValidation
		return
	}
	updated, err = ps.pr.UpdateProductById(prod)
	return
}

func (ps *ProductService) DeleteProduct(id int) (err error) {
	err = ps.pr.DeleteProduct(id)
	return
}
