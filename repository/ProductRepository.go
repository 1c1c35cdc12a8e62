package repository

import (
	"database/sql"
	"errors"
	"log"

	"storefront/models"
)

type ProductRepository interface {
	ListProducts() (prods []models.Product_db, err error)
	GetProductById(id int) (prod models.Product_db, exists bool, err error)
	CreateProduct(prod models.Product_db) (id int, err error)
	CreateProducts(prods []models.Product_db) (stored []models.Product_db, err error)
	UpdateProductById(prod models.Product_db) (updated models.Product_db, err error)
	DeleteProduct(id int) (err error)
	CountProducts() (count int, err error)
}

type ProductRepo struct {
	db *sql.DB
}

func NewProductRepository(conn *sql.DB) (ProductRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := conn.Ping()
	if err != nil {
		return nil, err
	}
	return &ProductRepo{
		db: conn,
	}, nil
}

func (p *ProductRepo) ListProducts() (prods []models.Product_db, err error) {
	rows, e := p.db.Query("SELECT Id, Name, Description, Price, ImageUrl, Category, Stock, Featured FROM Products ORDER BY Id")
	if e != nil {
		log.Printf("ListProducts: %v", e)
		err = models.ErrUpstream
		return
	}
	defer rows.Close()
	for rows.Next() {
		prod := models.Product_db{}
		err = rows.Scan(&prod.Id, &prod.Name, &prod.Description, &prod.Price,
			&prod.ImageUrl, &prod.Category, &prod.Stock, &prod.Featured)
		if err != nil {
			log.Printf("ListProducts: %v", err)
			err = models.ErrUpstream
			return
		}
		prods = append(prods, prod)
	}
	return
}

func (p *ProductRepo) GetProductById(id int) (prod models.Product_db, exists bool, err error) {
	row := p.db.QueryRow("SELECT Id, Name, Description, Price, ImageUrl, Category, Stock, Featured FROM Products WHERE Id = $1", id)
	err = row.Scan(&prod.Id, &prod.Name, &prod.Description, &prod.Price,
		&prod.ImageUrl, &prod.Category, &prod.Stock, &prod.Featured)
	if err != nil {
		if err == sql.ErrNoRows {
			err = nil
		} else {
			log.Printf("GetProductById: %v", err)
			err = models.ErrUpstream
		}
		return
	}
	exists = true
	return
}

func (p *ProductRepo) CreateProduct(prod models.Product_db) (id int, err error) {
	err = p.db.QueryRow(
		"INSERT INTO Products (Name, Description, Price, ImageUrl, Category, Stock, Featured) VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING Id",
		prod.Name, prod.Description, prod.Price, prod.ImageUrl, prod.Category, prod.Stock, prod.Featured,
	).Scan(&id)
	if err != nil {
		log.Printf("CreateProduct: %v", err)
		err = models.ErrUpstream
	}
	return
}

func (p *ProductRepo) CreateProducts(prods []models.Product_db) (stored []models.Product_db, err error) {
	for _, prod := range prods {
		prod.Id, err = p.CreateProduct(prod)
		if err != nil {
			return
		}
		stored = append(stored, prod)
	}
	return
}

func (p *ProductRepo) UpdateProductById(prod models.Product_db) (updated models.Product_db, err error) {
	var exists bool
	_, exists, err = p.GetProductById(prod.Id)
	if err != nil {
		return
	}
	if !exists {
		err = models.ErrNotFound
		return
	}
	_, e := p.db.Exec(
		"UPDATE Products SET Name=$1, Description=$2, Price=$3, ImageUrl=$4, Category=$5, Stock=$6, Featured=$7 WHERE Id=$8",
		prod.Name, prod.Description, prod.Price, prod.ImageUrl, prod.Category, prod.Stock, prod.Featured, prod.Id,
	)
	if e != nil {
		log.Printf("UpdateProductById: %v", e)
		err = models.ErrUpstream
		return
	}
	updated, _, err = p.GetProductById(prod.Id)
	return
}

func (p *ProductRepo) DeleteProduct(id int) (err error) {
	res, e := p.db.Exec("DELETE FROM Products WHERE Id = $1", id)
	if e != nil {
		log.Printf("DeleteProduct: %v", e)
		err = models.ErrUpstream
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = models.ErrNotFound
	}
	return
}

func (p *ProductRepo) CountProducts() (count int, err error) {
	err = p.db.QueryRow("SELECT COUNT(*) FROM Products").Scan(&count)
	if err != nil {
		log.Printf("CountProducts: %v", err)
		err = models.ErrUpstream
	}
	return
}
