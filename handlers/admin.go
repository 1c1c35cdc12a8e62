package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"

	"storefront/models"
)

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

// product admin

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var prod models.Product_db
	if err := json.NewDecoder(r.Body).Decode(&prod); err != nil {
		log.Printf("CreateProduct: %v", err)
		WriteError(w, models.ErrValidation)
		return
	}
	created, err := h.ps.CreateProduct(prod)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		WriteError(w, models.ErrValidation)
		return
	}
	var prod models.Product_db
	if err := json.NewDecoder(r.Body).Decode(&prod); err != nil {
		log.Printf("UpdateProduct: %v", err)
		WriteError(w, models.ErrValidation)
		return
	}
	prod.Id = id
	updated, err := h.ps.UpdateProduct(prod)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		WriteError(w, models.ErrValidation)
		return
	}
	if err := h.ps.DeleteProduct(id); err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// offers

func (h *Handler) GetOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.ofs.ListActiveOffers()
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

func (h *Handler) GetAllOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.ofs.ListAllOffers()
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

func (h *Handler) SaveOffer(w http.ResponseWriter, r *http.Request) {
	var offer models.Offer_db
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		log.Printf("SaveOffer: %v", err)
		WriteError(w, models.ErrValidation)
		return
	}
	stored, err := h.ofs.SaveOffer(offer)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

func (h *Handler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		WriteError(w, models.ErrValidation)
		return
	}
	if err := h.ofs.DeleteOffer(id); err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// singleton configs

func (h *Handler) GetSiteConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.cfs.GetSiteConfig()
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *Handler) UpdateSiteConfig(w http.ResponseWriter, r *http.Request) {
	var cfg models.SiteConfig_db
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		log.Printf("UpdateSiteConfig: %v", err)
		WriteError(w, models.ErrValidation)
		return
	}
	stored, err := h.cfs.UpdateSiteConfig(cfg)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

func (h *Handler) GetSliderConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.cfs.GetSliderConfig()
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *Handler) UpdateSliderConfig(w http.ResponseWriter, r *http.Request) {
	var cfg models.SliderConfig_db
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		log.Printf("UpdateSliderConfig: %v", err)
		WriteError(w, models.ErrValidation)
		return
	}
	stored, err := h.cfs.UpdateSliderConfig(cfg)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

func (h *Handler) GetBackgroundConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.cfs.GetBackgroundConfig()
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *Handler) UpdateBackgroundConfig(w http.ResponseWriter, r *http.Request) {
	var cfg models.BackgroundConfig_db
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		log.Printf("UpdateBackgroundConfig: %v", err)
		WriteError(w, models.ErrValidation)
		return
	}
	stored, err := h.cfs.UpdateBackgroundConfig(cfg)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

// slider strips

func (h *Handler) getSliders(w http.ResponseWriter, kind string) {
	sliders, err := h.sls.ListSliders(kind)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sliders)
}

func (h *Handler) GetProductSliders(w http.ResponseWriter, r *http.Request) {
	h.getSliders(w, models.SliderKindProduct)
}

func (h *Handler) GetSmallProductSliders(w http.ResponseWriter, r *http.Request) {
	h.getSliders(w, models.SliderKindSmall)
}

func (h *Handler) saveSlider(w http.ResponseWriter, r *http.Request, kind string) {
	var slider models.ProductSlider_db
	if err := json.NewDecoder(r.Body).Decode(&slider); err != nil {
		log.Printf("saveSlider: %v", err)
		WriteError(w, models.ErrValidation)
		return
	}
	slider.Kind = kind
	created, err := h.sls.CreateSlider(slider)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *Handler) CreateProductSlider(w http.ResponseWriter, r *http.Request) {
	h.saveSlider(w, r, models.SliderKindProduct)
}

func (h *Handler) CreateSmallProductSlider(w http.ResponseWriter, r *http.Request) {
	h.saveSlider(w, r, models.SliderKindSmall)
}

func (h *Handler) updateSlider(w http.ResponseWriter, r *http.Request, kind string) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		WriteError(w, models.ErrValidation)
		return
	}
	var slider models.ProductSlider_db
	if err := json.NewDecoder(r.Body).Decode(&slider); err != nil {
		log.Printf("updateSlider: %v", err)
		WriteError(w, models.ErrValidation)
		return
	}
	slider.Id = id
	slider.Kind = kind
	if err := h.sls.UpdateSlider(slider); err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, slider)
}

func (h *Handler) UpdateProductSlider(w http.ResponseWriter, r *http.Request) {
	h.updateSlider(w, r, models.SliderKindProduct)
}

func (h *Handler) UpdateSmallProductSlider(w http.ResponseWriter, r *http.Request) {
	h.updateSlider(w, r, models.SliderKindSmall)
}

func (h *Handler) deleteSlider(w http.ResponseWriter, r *http.Request, kind string) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		WriteError(w, models.ErrValidation)
		return
	}
	if err := h.sls.DeleteSlider(id, kind); err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) DeleteProductSlider(w http.ResponseWriter, r *http.Request) {
	h.deleteSlider(w, r, models.SliderKindProduct)
}

func (h *Handler) DeleteSmallProductSlider(w http.ResponseWriter, r *http.Request) {
	h.deleteSlider(w, r, models.SliderKindSmall)
}

func (h *Handler) GetViralSlider(w http.ResponseWriter, r *http.Request) {
	slider, err := h.sls.GetViralSlider()
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, slider)
}

func (h *Handler) UpdateViralSlider(w http.ResponseWriter, r *http.Request) {
	var slider models.ProductSlider_db
	if err := json.NewDecoder(r.Body).Decode(&slider); err != nil {
		log.Printf("UpdateViralSlider: %v", err)
		WriteError(w, models.ErrValidation)
		return
	}
	stored, err := h.sls.UpdateViralSlider(slider)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

// orders admin

func (h *Handler) SearchOrders(w http.ResponseWriter, r *http.Request) {
	var query models.OrderSearchQuery
	if err := queryDecoder.Decode(&query, r.URL.Query()); err != nil {
		log.Printf("SearchOrders: %v", err)
		WriteError(w, models.ErrValidation)
		return
	}

	data := models.OrderSearchData{}
	if query.TimeStart != "" || query.TimeEnd != "" {
		start, err := time.Parse("2006-01-02 15:04:05", query.TimeStart)
		end, err2 := time.Parse("2006-01-02 15:04:05", query.TimeEnd)
		if err != nil || err2 != nil || !start.Before(end) {
			WriteError(w, models.ErrValidation)
			return
		}
		data.DateStart = &start
		data.DateEnd = &end
	}
	if query.Status != "" {
		if !models.IsOrderStatus(query.Status) {
			WriteError(w, models.ErrValidation)
			return
		}
		data.Status = &query.Status
	}
	if query.Email != "" {
		data.Email = &query.Email
	}

	orders, err := h.chs.SearchOrders(data)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) SetOrderStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		WriteError(w, models.ErrValidation)
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Printf("SetOrderStatus: %v", err)
		WriteError(w, models.ErrValidation)
		return
	}
	if err := h.chs.SetOrderStatus(id, body.Status); err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// dashboard

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dbs.GetStats()
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
