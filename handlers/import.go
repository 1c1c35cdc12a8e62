package handlers

import (
	"io"
	"log"
	"net/http"

	"storefront/entities"
	"storefront/models"
)

const maxUploadSize = 32 << 20

func readUpload(r *http.Request) (data []byte, filename string, err error) {
	if e := r.ParseMultipartForm(maxUploadSize); e != nil {
		log.Printf("readUpload: %v", e)
		err = models.ErrValidation
		return
	}
	file, header, e := r.FormFile("file")
	if e != nil {
		log.Printf("readUpload: %v", e)
		err = models.ErrValidation
		return
	}
	defer file.Close()
	data, e = io.ReadAll(file)
	if e != nil {
		log.Printf("readUpload: %v", e)
		err = models.ErrUpstream
		return
	}
	filename = header.Filename
	return
}

func (h *Handler) ImportProducts(w http.ResponseWriter, r *http.Request) {
	data, filename, err := readUpload(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	stored, err := h.ims.ImportProducts(data, filename)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.ProductImportResult{
		ImportResult: entities.ImportResult{Success: true, Count: len(stored)},
		Products:     stored,
	})
}

func (h *Handler) ImportOffers(w http.ResponseWriter, r *http.Request) {
	data, filename, err := readUpload(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	stored, err := h.ims.ImportOffers(data, filename)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.OfferImportResult{
		ImportResult: entities.ImportResult{Success: true, Count: len(stored)},
		Offers:       stored,
	})
}

func (h *Handler) ImportSiteConfig(w http.ResponseWriter, r *http.Request) {
	data, filename, err := readUpload(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	stored, err := h.ims.ImportSiteConfig(data, filename)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "count": 1, "config": stored})
}

func (h *Handler) ImportSliderConfig(w http.ResponseWriter, r *http.Request) {
	data, filename, err := readUpload(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	stored, err := h.ims.ImportSliderConfig(data, filename)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "count": len(stored.Images), "config": stored})
}

func (h *Handler) ImportProductSliders(w http.ResponseWriter, r *http.Request) {
	data, filename, err := readUpload(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	stored, err := h.ims.ImportProductSliders(data, filename)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.SliderImportResult{
		ImportResult: entities.ImportResult{Success: true, Count: len(stored)},
		Sliders:      stored,
	})
}

func (h *Handler) ImportBackgroundConfig(w http.ResponseWriter, r *http.Request) {
	data, filename, err := readUpload(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	stored, err := h.ims.ImportBackgroundConfig(data, filename)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "count": 1, "config": stored})
}
