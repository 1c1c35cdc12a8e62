package repository

import (
	"database/sql"
	"errors"
	"log"
	"strconv"

	"storefront/entities"
	"storefront/models"
)

type OrderRepository interface {
	CreateOrder(order models.Order_db) (orderId int, err error)
	SetOrderItems(orderId int, items []models.OrdersProducts_db) (err error)
	GetOrderById(orderId int) (order entities.Order, err error)
	SetStripeSession(orderId int, sessionId string) (err error)
	SetOrderStatus(orderId int, status string) (err error)
	CompleteOrderBySession(sessionId string) (err error)
	SearchOrders(data models.OrderSearchData) (orders []entities.Order, err error)
	OrderStats() (stats entities.DashboardStats, err error)
}

type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepository(conn *sql.DB) (OrderRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := conn.Ping()
	if err != nil {
		return nil, err
	}
	return &OrderRepo{
		db: conn,
	}, nil
}

func (o *OrderRepo) CreateOrder(order models.Order_db) (orderId int, err error) {
	err = o.db.QueryRow(
		"INSERT INTO Orders (UserId, Email, Date, Total, Status, StripeSessionId) VALUES ($1,$2,$3,$4,$5,$6) RETURNING Id",
		order.UserId, order.Email, order.Date, order.Total, order.Status, order.StripeSessionId,
	).Scan(&orderId)
	if err != nil {
		log.Printf("CreateOrder: %v", err)
		err = models.ErrUpstream
	}
	return
}

func (o *OrderRepo) SetOrderItems(orderId int, items []models.OrdersProducts_db) (err error) {
	for _, item := range items {
		_, err = o.db.Exec(
			"INSERT INTO OrdersProducts (OrderId, ProductId, Quantity, Price) VALUES ($1,$2,$3,$4)",
			orderId, item.ProductId, item.Quantity, item.Price,
		)
		if err != nil {
			log.Printf("SetOrderItems: %v", err)
			err = models.ErrUpstream
			return
		}
	}
	return
}

func (o *OrderRepo) getOrderItems(orderId int) (lines []entities.OrderLine, err error) {
	rows, e := o.db.Query(
		"SELECT op.ProductId, p.Name, op.Quantity, op.Price FROM OrdersProducts op JOIN Products p ON p.Id = op.ProductId WHERE op.OrderId = $1",
		orderId,
	)
	if e != nil {
		log.Printf("getOrderItems: %v", e)
		err = models.ErrUpstream
		return
	}
	defer rows.Close()
	for rows.Next() {
		line := entities.OrderLine{}
		err = rows.Scan(&line.ProductId, &line.Name, &line.Quantity, &line.Price)
		if err != nil {
			log.Printf("getOrderItems: %v", err)
			err = models.ErrUpstream
			return
		}
		line.TotalPrice = float64(line.Quantity) * line.Price
		lines = append(lines, line)
	}
	return
}

func (o *OrderRepo) GetOrderById(orderId int) (order entities.Order, err error) {
	row := o.db.QueryRow("SELECT Id, Email, Date, Total, Status, StripeSessionId FROM Orders WHERE Id = $1", orderId)
	err = row.Scan(&order.OrderId, &order.Email, &order.Date, &order.Total, &order.Status, &order.StripeSessionId)
	if err != nil {
		if err == sql.ErrNoRows {
			err = models.ErrNotFound
		} else {
			log.Printf("GetOrderById: %v", err)
			err = models.ErrUpstream
		}
		return
	}
	order.Products, err = o.getOrderItems(orderId)
	return
}

func (o *OrderRepo) SetStripeSession(orderId int, sessionId string) (err error) {
	_, err = o.db.Exec("UPDATE Orders SET StripeSessionId = $1 WHERE Id = $2", sessionId, orderId)
	if err != nil {
		log.Printf("SetStripeSession: %v", err)
		err = models.ErrUpstream
	}
	return
}

func (o *OrderRepo) SetOrderStatus(orderId int, status string) (err error) {
	res, e := o.db.Exec("UPDATE Orders SET Status = $1 WHERE Id = $2", status, orderId)
	if e != nil {
		log.Printf("SetOrderStatus: %v", e)
		err = models.ErrUpstream
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = models.ErrNotFound
	}
	return
}

func (o *OrderRepo) CompleteOrderBySession(sessionId string) (err error) {
	res, e := o.db.Exec("UPDATE Orders SET Status = $1 WHERE StripeSessionId = $2", models.OrderCompleted, sessionId)
	if e != nil {
		log.Printf("CompleteOrderBySession: %v", e)
		err = models.ErrUpstream
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = models.ErrNotFound
	}
	return
}

func (o *OrderRepo) SearchOrders(data models.OrderSearchData) (orders []entities.Order, err error) {
	query := "SELECT Id, Email, Date, Total, Status, StripeSessionId FROM Orders WHERE 1=1"
	params := make([]any, 0, 4)
	if data.DateStart != nil && data.DateEnd != nil {
		params = append(params, *data.DateStart)
		query += " AND Date >= $" + strconv.Itoa(len(params))
		params = append(params, *data.DateEnd)
		query += " AND Date <= $" + strconv.Itoa(len(params))
	}
	if data.Status != nil {
		params = append(params, *data.Status)
		query += " AND Status = $" + strconv.Itoa(len(params))
	}
	if data.Email != nil {
		params = append(params, *data.Email)
		query += " AND Email = $" + strconv.Itoa(len(params))
	}
	query += " ORDER BY Date DESC"

	rows, e := o.db.Query(query, params...)
	if e != nil {
		log.Printf("SearchOrders: %v", e)
		err = models.ErrUpstream
		return
	}
	defer rows.Close()
	for rows.Next() {
		order := entities.Order{}
		err = rows.Scan(&order.OrderId, &order.Email, &order.Date, &order.Total, &order.Status, &order.StripeSessionId)
		if err != nil {
			log.Printf("SearchOrders: %v", err)
			err = models.ErrUpstream
			return
		}
		order.Products, err = o.getOrderItems(order.OrderId)
		if err != nil {
			return
		}
		orders = append(orders, order)
	}
	return
}

func (o *OrderRepo) OrderStats() (stats entities.DashboardStats, err error) {
	row := o.db.QueryRow(`SELECT COUNT(*),
		COUNT(*) FILTER (WHERE Status = 'pending'),
		COUNT(*) FILTER (WHERE Status = 'completed'),
		COUNT(*) FILTER (WHERE Status = 'cancelled'),
		COALESCE(SUM(Total) FILTER (WHERE Status = 'completed'), 0)
		FROM Orders`)
	err = row.Scan(&stats.TotalOrders, &stats.PendingOrders, &stats.CompletedOrders,
		&stats.CancelledOrders, &stats.TotalRevenue)
	if err != nil {
		log.Printf("OrderStats: %v", err)
		err = models.ErrUpstream
		return
	}

	rows, e := o.db.Query("SELECT Id, Email, Date, Total, Status, StripeSessionId FROM Orders ORDER BY Date DESC LIMIT 5")
	if e != nil {
		log.Printf("OrderStats: %v", e)
		err = models.ErrUpstream
		return
	}
	defer rows.Close()
	for rows.Next() {
		order := entities.Order{}
		err = rows.Scan(&order.OrderId, &order.Email, &order.Date, &order.Total, &order.Status, &order.StripeSessionId)
		if err != nil {
			log.Printf("OrderStats: %v", err)
			err = models.ErrUpstream
			return
		}
		stats.Recent = append(stats.Recent, order)
	}
	return
}
