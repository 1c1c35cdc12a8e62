package repository

import (
	"database/sql"
	"errors"
	"log"

	"storefront/models"
)

type OfferRepository interface {
	ListOffers(activeOnly bool) (offers []models.Offer_db, err error)
	UpsertOffer(offer models.Offer_db) (stored models.Offer_db, err error)
	DeleteOffer(id int) (err error)
}

type OfferRepo struct {
	db *sql.DB
}

func NewOfferRepository(conn *sql.DB) (OfferRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := conn.Ping()
	if err != nil {
		return nil, err
	}
	return &OfferRepo{
		db: conn,
	}, nil
}

func (o *OfferRepo) ListOffers(activeOnly bool) (offers []models.Offer_db, err error) {
	query := "SELECT Id, OfferId, Title, Description, ImageUrl, CtaText, CtaLink, Discount, BgGradient, IsActive, DisplayOrder FROM Offers"
	if activeOnly {
		query += " WHERE IsActive"
	}
	query += " ORDER BY DisplayOrder"

	rows, e := o.db.Query(query)
	if e != nil {
		log.Printf("ListOffers: %v", e)
		err = models.ErrUpstream
		return
	}
	defer rows.Close()
	for rows.Next() {
		offer := models.Offer_db{}
		err = rows.Scan(&offer.Id, &offer.OfferId, &offer.Title, &offer.Description,
			&offer.ImageUrl, &offer.CtaText, &offer.CtaLink, &offer.Discount,
			&offer.BgGradient, &offer.IsActive, &offer.DisplayOrder)
		if err != nil {
			log.Printf("ListOffers: %v", err)
			err = models.ErrUpstream
			return
		}
		offers = append(offers, offer)
	}
	return
}

// UpsertOffer keys on OfferId so re-importing the same sheet is idempotent:
// the second import's values replace the first's, never a duplicate row.
func (o *OfferRepo) UpsertOffer(offer models.Offer_db) (stored models.Offer_db, err error) {
	stored = offer
	err = o.db.QueryRow(
		`INSERT INTO Offers (OfferId, Title, Description, ImageUrl, CtaText, CtaLink, Discount, BgGradient, IsActive, DisplayOrder)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 ON CONFLICT (OfferId) DO UPDATE SET
			Title = EXCLUDED.Title, Description = EXCLUDED.Description,
			ImageUrl = EXCLUDED.ImageUrl, CtaText = EXCLUDED.CtaText,
			CtaLink = EXCLUDED.CtaLink, Discount = EXCLUDED.Discount,
			BgGradient = EXCLUDED.BgGradient, IsActive = EXCLUDED.IsActive,
			DisplayOrder = EXCLUDED.DisplayOrder
		 RETURNING Id`,
		offer.OfferId, offer.Title, offer.Description, offer.ImageUrl, offer.CtaText,
		offer.CtaLink, offer.Discount, offer.BgGradient, offer.IsActive, offer.DisplayOrder,
	).Scan(&stored.Id)
	if err != nil {
		log.Printf("UpsertOffer: %v", err)
		err = models.ErrUpstream
	}
	return
}

func (o *OfferRepo) DeleteOffer(id int) (err error) {
	res, e := o.db.Exec("DELETE FROM Offers WHERE Id = $1", id)
	if e != nil {
		log.Printf("DeleteOffer: %v", e)
		err = models.ErrUpstream
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = models.ErrNotFound
	}
	return
}
