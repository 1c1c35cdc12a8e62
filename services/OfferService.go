package services

import (
	"storefront/models"
	"storefront/repository"
)

type OfferService struct {
	or repository.OfferRepository
}

func NewOfferService(offerRepo repository.OfferRepository) OfferService {
	return OfferService{
		or: offerRepo,
	}
}

func (os *OfferService) ListActiveOffers() (offers []models.Offer_db, err error) {
	offers, err = os.or.ListOffers(true)
	if offers == nil {
		offers = []models.Offer_db{}
	}
	return
}

func (os *OfferService) ListAllOffers() (offers []models.Offer_db, err error) {
	offers, err = os.or.ListOffers(false)
	if offers == nil {
		offers = []models.Offer_db{}
	}
	return
}

func (os *OfferService) SaveOffer(offer models.Offer_db) (stored models.Offer_db, err error) {
	if offer.Title == "" || offer.OfferId == "" {
		err = models.ErrValidation
		return
	}
	if offer.CtaText == "" {
		offer.CtaText = "Shop Now"
	}
	stored, err = os.or.UpsertOffer(offer)
	return
}

func (os *OfferService) DeleteOffer(id int) (err error) {
	err = os.or.DeleteOffer(id)
	return
}
