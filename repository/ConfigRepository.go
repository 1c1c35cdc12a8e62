package repository

import (
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"

	"storefront/models"
)

// ConfigRepository owns the three singleton configuration rows. Every write
// is an upsert keyed on the fixed id, never an insert of a second row.
type ConfigRepository interface {
	GetSiteConfig() (cfg models.SiteConfig_db, exists bool, err error)
	UpsertSiteConfig(cfg models.SiteConfig_db) (err error)
	GetSliderConfig() (cfg models.SliderConfig_db, exists bool, err error)
	UpsertSliderConfig(cfg models.SliderConfig_db) (err error)
	GetBackgroundConfig() (cfg models.BackgroundConfig_db, exists bool, err error)
	UpsertBackgroundConfig(cfg models.BackgroundConfig_db) (err error)
}

type ConfigRepo struct {
	db *sql.DB
}

func NewConfigRepository(conn *sql.DB) (ConfigRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := conn.Ping()
	if err != nil {
		return nil, err
	}
	return &ConfigRepo{
		db: conn,
	}, nil
}

func (c *ConfigRepo) GetSiteConfig() (cfg models.SiteConfig_db, exists bool, err error) {
	row := c.db.QueryRow(
		"SELECT Id, SiteName, BannerImage, Description, ThemeColor, ContactEmail, ContactPhone, ContactAddress, SocialFacebook, SocialInstagram, SocialTwitter FROM SiteConfig WHERE Id = $1",
		models.SingletonId,
	)
	err = row.Scan(&cfg.Id, &cfg.SiteName, &cfg.BannerImage, &cfg.Description, &cfg.ThemeColor,
		&cfg.ContactEmail, &cfg.ContactPhone, &cfg.ContactAddress,
		&cfg.SocialFacebook, &cfg.SocialInstagram, &cfg.SocialTwitter)
	if err != nil {
		if err == sql.ErrNoRows {
			err = nil
		} else {
			log.Printf("GetSiteConfig: %v", err)
			err = models.ErrUpstream
		}
		return
	}
	exists = true
	return
}

func (c *ConfigRepo) UpsertSiteConfig(cfg models.SiteConfig_db) (err error) {
	_, err = c.db.Exec(
		`INSERT INTO SiteConfig (Id, SiteName, BannerImage, Description, ThemeColor, ContactEmail, ContactPhone, ContactAddress, SocialFacebook, SocialInstagram, SocialTwitter)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		 ON CONFLICT (Id) DO UPDATE SET
			SiteName = EXCLUDED.SiteName, BannerImage = EXCLUDED.BannerImage,
			Description = EXCLUDED.Description, ThemeColor = EXCLUDED.ThemeColor,
			ContactEmail = EXCLUDED.ContactEmail, ContactPhone = EXCLUDED.ContactPhone,
			ContactAddress = EXCLUDED.ContactAddress, SocialFacebook = EXCLUDED.SocialFacebook,
			SocialInstagram = EXCLUDED.SocialInstagram, SocialTwitter = EXCLUDED.SocialTwitter`,
		models.SingletonId, cfg.SiteName, cfg.BannerImage, cfg.Description, cfg.ThemeColor,
		cfg.ContactEmail, cfg.ContactPhone, cfg.ContactAddress,
		cfg.SocialFacebook, cfg.SocialInstagram, cfg.SocialTwitter,
	)
	if err != nil {
		log.Printf("UpsertSiteConfig: %v", err)
		err = models.ErrUpstream
	}
	return
}

func (c *ConfigRepo) GetSliderConfig() (cfg models.SliderConfig_db, exists bool, err error) {
	row := c.db.QueryRow("SELECT Id, Images, Autoplay FROM SliderConfig WHERE Id = $1", models.SingletonId)
	err = row.Scan(&cfg.Id, pq.Array(&cfg.Images), &cfg.Autoplay)
	if err != nil {
		if err == sql.ErrNoRows {
			err = nil
		} else {
			log.Printf("GetSliderConfig: %v", err)
			err = models.ErrUpstream
		}
		return
	}
	exists = true
	return
}

func (c *ConfigRepo) UpsertSliderConfig(cfg models.SliderConfig_db) (err error) {
	_, err = c.db.Exec(
		`INSERT INTO SliderConfig (Id, Images, Autoplay) VALUES ($1,$2,$3)
		 ON CONFLICT (Id) DO UPDATE SET Images = EXCLUDED.Images, Autoplay = EXCLUDED.Autoplay`,
		models.SingletonId, pq.Array(cfg.Images), cfg.Autoplay,
	)
	if err != nil {
		log.Printf("UpsertSliderConfig: %v", err)
		err = models.ErrUpstream
	}
	return
}

func (c *ConfigRepo) GetBackgroundConfig() (cfg models.BackgroundConfig_db, exists bool, err error) {
	row := c.db.QueryRow(
		"SELECT Id, Type, PrimaryColor, SecondaryColor, TertiaryColor, Speed, Direction, Opacity, Blur, IsActive FROM BackgroundConfig WHERE Id = $1",
		models.SingletonId,
	)
	err = row.Scan(&cfg.Id, &cfg.Type, &cfg.PrimaryColor, &cfg.SecondaryColor, &cfg.TertiaryColor,
		&cfg.Speed, &cfg.Direction, &cfg.Opacity, &cfg.Blur, &cfg.IsActive)
	if err != nil {
		if err == sql.ErrNoRows {
			err = nil
		} else {
			log.Printf("GetBackgroundConfig: %v", err)
			err = models.ErrUpstream
		}
		return
	}
	exists = true
	return
}

func (c *ConfigRepo) UpsertBackgroundConfig(cfg models.BackgroundConfig_db) (err error) {
	_, err = c.db.Exec(
		`INSERT INTO BackgroundConfig (Id, Type, PrimaryColor, SecondaryColor, TertiaryColor, Speed, Direction, Opacity, Blur, IsActive)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 ON CONFLICT (Id) DO UPDATE SET
			Type = EXCLUDED.Type, PrimaryColor = EXCLUDED.PrimaryColor,
			SecondaryColor = EXCLUDED.SecondaryColor, TertiaryColor = EXCLUDED.TertiaryColor,
			Speed = EXCLUDED.Speed, Direction = EXCLUDED.Direction,
			Opacity = EXCLUDED.Opacity, Blur = EXCLUDED.Blur, IsActive = EXCLUDED.IsActive`,
		models.SingletonId, cfg.Type, cfg.PrimaryColor, cfg.SecondaryColor, cfg.TertiaryColor,
		cfg.Speed, cfg.Direction, cfg.Opacity, cfg.Blur, cfg.IsActive,
	)
	if err != nil {
		log.Printf("UpsertBackgroundConfig: %v", err)
		err = models.ErrUpstream
	}
	return
}
