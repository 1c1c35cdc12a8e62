package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"storefront/entities"
	"storefront/importer"
	"storefront/models"
	"storefront/services"
)

type Handler struct {
	us  services.UserService
	ps  services.ProductService
	cs  services.CartService
	chs services.CheckoutService
	ofs services.OfferService
	cfs services.ConfigService
	sls services.SliderService
	ims services.ImportService
	dbs services.DashboardService
	sds services.SeedService
}

type HandlerParams struct {
	UsrService services.UserService
	PrdService services.ProductService
	CrtService services.CartService
	ChkService services.CheckoutService
	OfrService services.OfferService
	CfgService services.ConfigService
	SldService services.SliderService
	ImpService services.ImportService
	DshService services.DashboardService
	SedService services.SeedService
}

func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		us:  params.UsrService,
		ps:  params.PrdService,
		cs:  params.CrtService,
		chs: params.ChkService,
		ofs: params.OfrService,
		cfs: params.CfgService,
		sls: params.SldService,
		ims: params.ImpService,
		dbs: params.DshService,
		sds: params.SedService,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("writeJSON: %v", err)
		http.Error(w, `{"error":"server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(jsonData)
}

// WriteError maps an error kind to a status exactly once; nothing upstream
// re-derives classification from message text.
func WriteError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, importer.ErrParse),
		errors.Is(err, importer.ErrEmptyData):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// middleware

func (h *Handler) AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionId, err := r.Cookie("sessionId")
		if err != nil {
			WriteError(w, models.ErrUnauthorized)
			return
		}
		if err := h.us.CheckAccess(sessionId.Value); err != nil {
			WriteError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) ErrorHandleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic occured: %v \n stacktrace: %v", rec, string(debug.Stack()))
				WriteError(w, models.ErrUpstream)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// users

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	creds := models.Credentials{}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Printf("Signup: %v", err)
		WriteError(w, models.ErrValidation)
		return
	}
	if _, err := h.us.SignupRequest(creds); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	creds := models.Credentials{}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Printf("Signin: %v", err)
		WriteError(w, models.ErrValidation)
		return
	}
	_, sessionId, err := h.us.SigninRequest(creds.Username, creds.Password)
	if err != nil {
		WriteError(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:    "sessionId",
		Value:   sessionId,
		Path:    "/",
		Expires: time.Now().Add(24 * time.Hour),
	})
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie("sessionId")
	if err != nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	if err := h.us.DeleteSessionRequest(c.Value); err != nil {
		WriteError(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:    "sessionId",
		Value:   "",
		Path:    "/",
		Expires: time.Now(),
	})
	w.WriteHeader(http.StatusOK)
}

// products

func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	prods, err := h.ps.ListProducts()
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prods)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		WriteError(w, models.ErrValidation)
		return
	}
	prod, err := h.ps.GetProductById(id)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prod)
}

// cart

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie("cartSessionId")
	if err != nil {
		writeJSON(w, http.StatusOK, entities.CartResponse{Products: []entities.CartItem{}})
		return
	}
	cart, err := h.cs.GetCartItems(c.Value)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	req := entities.CartRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("AddToCart: %v", err)
		WriteError(w, models.ErrValidation)
		return
	}
	var cartSessionId string
	c, err := r.Cookie("cartSessionId")
	if err != nil {
		if !errors.Is(err, http.ErrNoCookie) {
			log.Printf("AddToCart: %v", err)
			WriteError(w, models.ErrUpstream)
			return
		}
		cartSessionId, err = h.cs.CreateCartSession()
		if err != nil {
			WriteError(w, err)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:    "cartSessionId",
			Value:   cartSessionId,
			Path:    "/",
			Expires: time.Now().Add(24 * time.Hour),
		})
	} else {
		cartSessionId = c.Value
	}
	if err := h.cs.AddCartItem(cartSessionId, req); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteFromCart(w http.ResponseWriter, r *http.Request) {
	req := entities.CartRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("DeleteFromCart: %v", err)
		WriteError(w, models.ErrValidation)
		return
	}
	c, err := r.Cookie("cartSessionId")
	if err != nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	if err := h.cs.RemoveCartItem(c.Value, req); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// checkout

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	req := entities.CheckoutRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Checkout: %v", err)
		WriteError(w, models.ErrValidation)
		return
	}
	sessionId, orderId, err := h.chs.CreateCheckout(req)
	if err != nil {
		WriteError(w, err)
		return
	}
	// a fresh checkout invalidates the cart cookie
	http.SetCookie(w, &http.Cookie{
		Name:    "cartSessionId",
		Value:   "",
		Path:    "/",
		Expires: time.Now(),
	})
	writeJSON(w, http.StatusOK, map[string]any{"sessionId": sessionId, "orderId": orderId})
}

func (h *Handler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("StripeWebhook: %v", err)
		WriteError(w, models.ErrValidation)
		return
	}
	if err := h.chs.HandleWebhook(payload, r.Header.Get("Stripe-Signature")); err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}

// orders

func (h *Handler) GetOrderById(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		WriteError(w, models.ErrValidation)
		return
	}
	order, err := h.chs.GetOrderById(id)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// seed

func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	if err := h.sds.Seed(); err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
