package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"storefront/handlers"
	"storefront/payments"
	"storefront/repository"
	"storefront/services"
)

var db *sql.DB
var rdb *redis.Client

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, relying on the environment")
	}
	initDB()
	defer db.Close()
	defer rdb.Close()

	if err := repository.Migrate(db); err != nil {
		panic(err)
	}

	uR, err := repository.NewUserRepository(db)
	if err != nil {
		panic(err)
	}
	sR, err := repository.NewSessionRepository(rdb, context.Background())
	if err != nil {
		panic(err)
	}
	pR, _ := repository.NewProductRepository(db)
	oR, _ := repository.NewOrderRepository(db)
	ofR, _ := repository.NewOfferRepository(db)
	cfR, _ := repository.NewConfigRepository(db)
	slR, _ := repository.NewSliderRepository(db)
	cartR, _ := repository.NewCartRepository(rdb, context.Background())
	log.Printf("db connected")
	log.Printf("redis connected")

	gateway := payments.NewStripeGateway(
		os.Getenv("STRIPE_SECRET_KEY"),
		os.Getenv("STRIPE_WEBHOOK_SECRET"),
		os.Getenv("CHECKOUT_SUCCESS_URL"),
		os.Getenv("CHECKOUT_CANCEL_URL"),
	)

	hp := handlers.HandlerParams{
		UsrService: services.NewUserService(uR, sR),
		PrdService: services.NewProductService(pR),
		CrtService: services.NewCartService(pR, cartR),
		ChkService: services.NewCheckoutService(pR, oR, gateway),
		OfrService: services.NewOfferService(ofR),
		CfgService: services.NewConfigService(cfR),
		SldService: services.NewSliderService(slR),
		ImpService: services.NewImportService(pR, ofR, cfR, slR),
		DshService: services.NewDashboardService(oR, pR),
		SedService: services.NewSeedService(pR, ofR, cfR, slR),
	}
	ha := handlers.NewHandler(hp)

	router := mux.NewRouter()
	router.Use(ha.ErrorHandleMiddleware)
	admin := router.NewRoute().Subrouter()
	admin.Use(ha.AdminAuthMiddleware)

	// users
	router.HandleFunc("/users/signup", ha.Signup).Methods("POST")
	router.HandleFunc("/users/signin", ha.Signin).Methods("POST")
	router.HandleFunc("/users/logout", ha.Logout).Methods("POST")

	// storefront
	router.HandleFunc("/api/products", ha.GetProducts).Methods("GET")
	router.HandleFunc("/api/products/{id:[0-9]+}", ha.GetProduct).Methods("GET")
	router.HandleFunc("/api/cart", ha.GetCart).Methods("GET")
	router.HandleFunc("/api/cart", ha.AddToCart).Methods("POST")
	router.HandleFunc("/api/cart", ha.DeleteFromCart).Methods("DELETE")
	router.HandleFunc("/api/checkout", ha.Checkout).Methods("POST")
	router.HandleFunc("/api/webhooks/stripe", ha.StripeWebhook).Methods("POST")
	router.HandleFunc("/api/orders/{id:[0-9]+}", ha.GetOrderById).Methods("GET")
	router.HandleFunc("/api/seed", ha.Seed).Methods("GET")

	// presentation config, reads are public
	router.HandleFunc("/api/site-config", ha.GetSiteConfig).Methods("GET")
	router.HandleFunc("/api/slider-config", ha.GetSliderConfig).Methods("GET")
	router.HandleFunc("/api/background-config", ha.GetBackgroundConfig).Methods("GET")
	router.HandleFunc("/api/viral-slider", ha.GetViralSlider).Methods("GET")
	router.HandleFunc("/api/product-sliders", ha.GetProductSliders).Methods("GET")
	router.HandleFunc("/api/small-product-slider", ha.GetSmallProductSliders).Methods("GET")
	router.HandleFunc("/api/offers", ha.GetOffers).Methods("GET")

	// presentation config, writes need the admin role
	admin.HandleFunc("/api/site-config", ha.UpdateSiteConfig).Methods("POST", "PUT")
	admin.HandleFunc("/api/slider-config", ha.UpdateSliderConfig).Methods("POST", "PUT")
	admin.HandleFunc("/api/background-config", ha.UpdateBackgroundConfig).Methods("POST", "PUT")
	admin.HandleFunc("/api/viral-slider", ha.UpdateViralSlider).Methods("POST", "PUT")
	admin.HandleFunc("/api/product-sliders", ha.CreateProductSlider).Methods("POST")
	admin.HandleFunc("/api/product-sliders/{id:[0-9]+}", ha.UpdateProductSlider).Methods("PUT")
	admin.HandleFunc("/api/product-sliders/{id:[0-9]+}", ha.DeleteProductSlider).Methods("DELETE")
	admin.HandleFunc("/api/small-product-slider", ha.CreateSmallProductSlider).Methods("POST")
	admin.HandleFunc("/api/small-product-slider/{id:[0-9]+}", ha.UpdateSmallProductSlider).Methods("PUT")
	admin.HandleFunc("/api/small-product-slider/{id:[0-9]+}", ha.DeleteSmallProductSlider).Methods("DELETE")

	// catalog and offer admin
	admin.HandleFunc("/api/products", ha.CreateProduct).Methods("POST")
	admin.HandleFunc("/api/admin/products/{id:[0-9]+}", ha.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/api/admin/products/{id:[0-9]+}", ha.DeleteProduct).Methods("DELETE")
	admin.HandleFunc("/api/admin/offers", ha.GetAllOffers).Methods("GET")
	admin.HandleFunc("/api/admin/offers", ha.SaveOffer).Methods("POST", "PUT")
	admin.HandleFunc("/api/admin/offers/{id:[0-9]+}", ha.DeleteOffer).Methods("DELETE")

	// orders admin
	admin.HandleFunc("/api/admin/orders", ha.SearchOrders).Methods("GET")
	admin.HandleFunc("/api/admin/orders/{id:[0-9]+}/status", ha.SetOrderStatus).Methods("PUT")
	admin.HandleFunc("/api/admin/dashboard", ha.Dashboard).Methods("GET")

	// spreadsheet imports
	admin.HandleFunc("/api/admin/import", ha.ImportProducts).Methods("POST")
	admin.HandleFunc("/api/admin/offers/import", ha.ImportOffers).Methods("POST")
	admin.HandleFunc("/api/admin/site-config/import", ha.ImportSiteConfig).Methods("POST")
	admin.HandleFunc("/api/admin/slider-config/import", ha.ImportSliderConfig).Methods("POST")
	admin.HandleFunc("/api/admin/product-sliders/import", ha.ImportProductSliders).Methods("POST")
	admin.HandleFunc("/api/admin/background-config/import", ha.ImportBackgroundConfig).Methods("POST")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}

func initDB() {
	host := os.Getenv("DATABASE_HOST")
	port := os.Getenv("DATABASE_PORT")
	user := os.Getenv("DATABASE_USER")
	pass := os.Getenv("DATABASE_PASSWORD")
	dbname := os.Getenv("DATABASE_NAME")
	var err error

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, port, dbname)
	db, err = sql.Open("postgres", connStr)
	if err != nil {
		panic(err)
	}

	redisHost := os.Getenv("REDIS_HOST")
	redisPort := os.Getenv("REDIS_PORT")

	rdb = redis.NewClient(&redis.Options{
		Addr:     redisHost + ":" + redisPort,
		Password: "",
		DB:       0,
	})
	ctx, cncl := context.WithTimeout(context.Background(), 5*time.Second)
	defer cncl()
	if status := rdb.Ping(ctx); status.Err() != nil {
		panic("redis is not working: " + status.Err().Error())
	}
}
