package services

import (
	"log"

	"storefront/models"
	"storefront/repository"
)

// SeedService populates demo data so a fresh install has something to show.
// Products are inserted only when the catalog is empty; offers and configs
// are upserts, so re-seeding is harmless.
type SeedService struct {
	pr repository.ProductRepository
	or repository.OfferRepository
	cr repository.ConfigRepository
	sr repository.SliderRepository
}

func NewSeedService(productRepo repository.ProductRepository, offerRepo repository.OfferRepository,
	configRepo repository.ConfigRepository, sliderRepo repository.SliderRepository) SeedService {
	return SeedService{
		pr: productRepo,
		or: offerRepo,
		cr: configRepo,
		sr: sliderRepo,
	}
}

var demoProducts = []models.Product_db{
	{Name: "Classic White Tee", Description: "Heavyweight cotton, boxy fit", Price: 24.99, Category: "apparel", Stock: 120, Featured: true},
	{Name: "Canvas Tote", Description: "Reinforced straps, inner pocket", Price: 18.50, Category: "accessories", Stock: 80},
	{Name: "Ceramic Mug", Description: "350ml, dishwasher safe", Price: 12.00, Category: "home", Stock: 200, Featured: true},
	{Name: "Linen Throw", Description: "Stonewashed, 130x170cm", Price: 59.00, Category: "home", Stock: 35},
	{Name: "Enamel Pin Set", Description: "Set of four", Price: 9.99, Category: "accessories", Stock: 300},
}

var demoOffers = []models.Offer_db{
	{OfferId: "OFF001", Title: "Summer Sale", Description: "Up to 40% off selected items", CtaText: "Shop Now", CtaLink: "/sale", Discount: 40, IsActive: true, DisplayOrder: 1},
	{OfferId: "OFF002", Title: "Free Shipping", Description: "On orders over $50", CtaText: "Learn More", CtaLink: "/shipping", IsActive: true, DisplayOrder: 2},
}

func (ss *SeedService) Seed() (err error) {
	count, err := ss.pr.CountProducts()
	if err != nil {
		return
	}
	if count == 0 {
		_, err = ss.pr.CreateProducts(demoProducts)
		if err != nil {
			return
		}
	}
	for _, offer := range demoOffers {
		_, err = ss.or.UpsertOffer(offer)
		if err != nil {
			return
		}
	}
	_, exists, err := ss.cr.GetSiteConfig()
	if err != nil {
		return
	}
	if !exists {
		err = ss.cr.UpsertSiteConfig(models.DefaultSiteConfig())
		if err != nil {
			return
		}
	}
	_, exists, err = ss.cr.GetBackgroundConfig()
	if err != nil {
		return
	}
	if !exists {
		err = ss.cr.UpsertBackgroundConfig(models.DefaultBackgroundConfig())
		if err != nil {
			return
		}
	}
	_, exists, err = ss.sr.GetViralSlider()
	if err != nil {
		return
	}
	if !exists {
		err = ss.sr.UpsertViralSlider(models.DefaultViralSlider())
		if err != nil {
			return
		}
	}
	log.Printf("Seed: demo data in place")
	return
}
