package services

import (
	"log"

	"storefront/models"
	"storefront/repository"
)

type ConfigService struct {
	cr repository.ConfigRepository
}

func NewConfigService(configRepo repository.ConfigRepository) ConfigService {
	return ConfigService{
		cr: configRepo,
	}
}

// Getters return the hardcoded default object when no row exists yet, so
// reads never fail on a fresh database.

func (cs *ConfigService) GetSiteConfig() (cfg models.SiteConfig_db, err error) {
	cfg, exists, err := cs.cr.GetSiteConfig()
	if err != nil {
		return
	}
	if !exists {
		cfg = models.DefaultSiteConfig()
	}
	return
}

func (cs *ConfigService) UpdateSiteConfig(cfg models.SiteConfig_db) (stored models.SiteConfig_db, err error) {
	if cfg.SiteName == "" {
		err = models.ErrValidation
		return
	}
	cfg.Id = models.SingletonId
	err = cs.cr.UpsertSiteConfig(cfg)
	stored = cfg
	return
}

func (cs *ConfigService) GetSliderConfig() (cfg models.SliderConfig_db, err error) {
	cfg, exists, err := cs.cr.GetSliderConfig()
	if err != nil {
		return
	}
	if !exists {
		cfg = models.DefaultSliderConfig()
	}
	if cfg.Images == nil {
		cfg.Images = []string{}
	}
	return
}

// UpdateSliderConfig enforces the image cap before touching the store, so a
// rejected write leaves the prior state unchanged.
func (cs *ConfigService) UpdateSliderConfig(cfg models.SliderConfig_db) (stored models.SliderConfig_db, err error) {
	if len(cfg.Images) > models.SliderMaxImages {
		log.Printf("UpdateSliderConfig: %d images exceeds the cap of %d", len(cfg.Images), models.SliderMaxImages)
		err = models.ErrValidation
		return
	}
	if cfg.Images == nil {
		cfg.Images = []string{}
	}
	cfg.Id = models.SingletonId
	err = cs.cr.UpsertSliderConfig(cfg)
	stored = cfg
	return
}

func (cs *ConfigService) GetBackgroundConfig() (cfg models.BackgroundConfig_db, err error) {
	cfg, exists, err := cs.cr.GetBackgroundConfig()
	if err != nil {
		return
	}
	if !exists {
		cfg = models.DefaultBackgroundConfig()
	}
	return
}

func (cs *ConfigService) UpdateBackgroundConfig(cfg models.BackgroundConfig_db) (stored models.BackgroundConfig_db, err error) {
	switch cfg.Type {
	case "gradient", "mesh", "particles", "grid":
	default:
		// unknown effect types fall back rather than reject, same as import
		cfg.Type = "gradient"
	}
	cfg.Id = models.SingletonId
	err = cs.cr.UpsertBackgroundConfig(cfg)
	stored = cfg
	return
}
