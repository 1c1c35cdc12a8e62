package services

import (
	"log"

	"storefront/importer"
	"storefront/models"
	"storefront/repository"
)

// ImportService drives the shared pipeline behind every admin import
// endpoint: decode the upload, normalize each row against the entity's
// field table, drop rows failing the minimal required-field checks, and
// hand the survivors to the persistence layer. Dropped rows surface only
// in the final count.
type ImportService struct {
	pr repository.ProductRepository
	or repository.OfferRepository
	cr repository.ConfigRepository
	sr repository.SliderRepository
}

func NewImportService(productRepo repository.ProductRepository, offerRepo repository.OfferRepository,
	configRepo repository.ConfigRepository, sliderRepo repository.SliderRepository) ImportService {
	return ImportService{
		pr: productRepo,
		or: offerRepo,
		cr: configRepo,
		sr: sliderRepo,
	}
}

func (is *ImportService) ImportProducts(data []byte, filename string) (stored []models.Product_db, err error) {
	rows, err := importer.Read(data, filename)
	if err != nil {
		return
	}
	accepted := make([]models.Product_db, 0, len(rows))
	for _, row := range rows {
		prod := importer.ProductFromRow(row)
		if importer.AcceptProduct(prod) {
			accepted = append(accepted, prod)
		}
	}
	log.Printf("ImportProducts: accepted %d of %d rows", len(accepted), len(rows))
	stored, err = is.pr.CreateProducts(accepted)
	if stored == nil {
		stored = []models.Product_db{}
	}
	return
}

func (is *ImportService) ImportOffers(data []byte, filename string) (stored []models.Offer_db, err error) {
	rows, err := importer.Read(data, filename)
	if err != nil {
		return
	}
	stored = []models.Offer_db{}
	accepted := 0
	for i, row := range rows {
		offer := importer.OfferFromRow(row, i)
		if !importer.AcceptOffer(offer) {
			continue
		}
		accepted++
		offer, err = is.or.UpsertOffer(offer)
		if err != nil {
			return
		}
		stored = append(stored, offer)
	}
	log.Printf("ImportOffers: accepted %d of %d rows", accepted, len(rows))
	return
}

// ImportSiteConfig takes the first valid row; the target is a singleton.
func (is *ImportService) ImportSiteConfig(data []byte, filename string) (stored models.SiteConfig_db, err error) {
	rows, err := importer.Read(data, filename)
	if err != nil {
		return
	}
	for _, row := range rows {
		cfg := importer.SiteConfigFromRow(row)
		if !importer.AcceptSiteConfig(cfg) {
			continue
		}
		err = is.cr.UpsertSiteConfig(cfg)
		stored = cfg
		return
	}
	log.Printf("ImportSiteConfig: no valid row among %d", len(rows))
	err = models.ErrValidation
	return
}

// ImportSliderConfig collects one image per row into the singleton slider;
// autoplay comes from the first row that sets it. The image cap is checked
// before any write.
func (is *ImportService) ImportSliderConfig(data []byte, filename string) (stored models.SliderConfig_db, err error) {
	rows, err := importer.Read(data, filename)
	if err != nil {
		return
	}
	cfg := models.SliderConfig_db{Id: models.SingletonId, Images: []string{}, Autoplay: true}
	for i, row := range rows {
		image, autoplay := importer.SliderImageFromRow(row)
		if i == 0 {
			cfg.Autoplay = autoplay
		}
		if importer.AcceptSliderImage(image) {
			cfg.Images = append(cfg.Images, image)
		}
	}
	log.Printf("ImportSliderConfig: accepted %d of %d rows", len(cfg.Images), len(rows))
	if len(cfg.Images) == 0 {
		err = models.ErrValidation
		return
	}
	if len(cfg.Images) > models.SliderMaxImages {
		log.Printf("ImportSliderConfig: %d images exceeds the cap of %d", len(cfg.Images), models.SliderMaxImages)
		err = models.ErrValidation
		return
	}
	err = is.cr.UpsertSliderConfig(cfg)
	stored = cfg
	return
}

func (is *ImportService) ImportProductSliders(data []byte, filename string) (stored []models.ProductSlider_db, err error) {
	rows, err := importer.Read(data, filename)
	if err != nil {
		return
	}
	stored = []models.ProductSlider_db{}
	for i, row := range rows {
		slider := importer.ProductSliderFromRow(row, models.SliderKindProduct, i)
		if !importer.AcceptProductSlider(slider) {
			continue
		}
		slider.Id, err = is.sr.CreateSlider(slider)
		if err != nil {
			return
		}
		stored = append(stored, slider)
	}
	log.Printf("ImportProductSliders: accepted %d of %d rows", len(stored), len(rows))
	return
}

// ImportBackgroundConfig takes the first row; invalid effect types already
// fell back to "gradient" during normalization.
func (is *ImportService) ImportBackgroundConfig(data []byte, filename string) (stored models.BackgroundConfig_db, err error) {
	rows, err := importer.Read(data, filename)
	if err != nil {
		return
	}
	cfg := importer.BackgroundConfigFromRow(rows[0])
	err = is.cr.UpsertBackgroundConfig(cfg)
	stored = cfg
	return
}
