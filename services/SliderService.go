package services

import (
	"storefront/models"
	"storefront/repository"
)

type SliderService struct {
	sr repository.SliderRepository
}

func NewSliderService(sliderRepo repository.SliderRepository) SliderService {
	return SliderService{
		sr: sliderRepo,
	}
}

func (ss *SliderService) ListSliders(kind string) (sliders []models.ProductSlider_db, err error) {
	sliders, err = ss.sr.ListSliders(kind)
	if sliders == nil {
		sliders = []models.ProductSlider_db{}
	}
	return
}

func (ss *SliderService) CreateSlider(slider models.ProductSlider_db) (created models.ProductSlider_db, err error) {
	if slider.Title == "" {
		err = models.ErrValidation
		return
	}
	slider.Id, err = ss.sr.CreateSlider(slider)
	created = slider
	return
}

func (ss *SliderService) UpdateSlider(slider models.ProductSlider_db) (err error) {
	if slider.Title == "" {
		err = models.ErrValidation
		return
	}
	err = ss.sr.UpdateSlider(slider)
	return
}

func (ss *SliderService) DeleteSlider(id int, kind string) (err error) {
	err = ss.sr.DeleteSlider(id, kind)
	return
}

// GetViralSlider returns the default strip when none has been saved yet.
func (ss *SliderService) GetViralSlider() (slider models.ProductSlider_db, err error) {
	slider, exists, err := ss.sr.GetViralSlider()
	if err != nil {
		return
	}
	if !exists {
		slider = models.DefaultViralSlider()
	}
	return
}

func (ss *SliderService) UpdateViralSlider(slider models.ProductSlider_db) (stored models.ProductSlider_db, err error) {
	if slider.Title == "" {
		err = models.ErrValidation
		return
	}
	err = ss.sr.UpsertViralSlider(slider)
	stored = slider
	return
}
