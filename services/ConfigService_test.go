package services

import (
	"errors"
	"testing"

	"storefront/models"
)

func TestGetSiteConfigDefaultsWhenUnset(t *testing.T) {
	cs := NewConfigService(&fakeConfigRepo{})

	cfg, err := cs.GetSiteConfig()
	if err != nil {
		t.Fatalf("GetSiteConfig: %v", err)
	}
	if cfg.SiteName != "Storefront" {
		t.Errorf("SiteName = %q, want the default", cfg.SiteName)
	}
}

func TestUpdateSiteConfigRequiresName(t *testing.T) {
	cr := &fakeConfigRepo{}
	cs := NewConfigService(cr)

	_, err := cs.UpdateSiteConfig(models.SiteConfig_db{})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if cr.site != nil {
		t.Error("config persisted without a site name")
	}
}

func TestUpdateSliderConfigEnforcesImageCap(t *testing.T) {
	cr := &fakeConfigRepo{}
	cs := NewConfigService(cr)

	images := make([]string, models.SliderMaxImages+1)
	for i := range images {
		images[i] = "/img/slide.jpg"
	}
	_, err := cs.UpdateSliderConfig(models.SliderConfig_db{Images: images})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if cr.sliderUpserts != 0 {
		t.Error("oversized slider config reached the repository")
	}

	_, err = cs.UpdateSliderConfig(models.SliderConfig_db{Images: images[:models.SliderMaxImages]})
	if err != nil {
		t.Fatalf("update at the cap: %v", err)
	}
	if cr.sliderUpserts != 1 {
		t.Errorf("sliderUpserts = %d, want 1", cr.sliderUpserts)
	}
}

func TestUpdateBackgroundConfigNormalizesType(t *testing.T) {
	cr := &fakeConfigRepo{}
	cs := NewConfigService(cr)

	stored, err := cs.UpdateBackgroundConfig(models.BackgroundConfig_db{Type: "plasma"})
	if err != nil {
		t.Fatalf("UpdateBackgroundConfig: %v", err)
	}
	if stored.Type != "gradient" {
		t.Errorf("Type = %q, want gradient", stored.Type)
	}

	stored, err = cs.UpdateBackgroundConfig(models.BackgroundConfig_db{Type: "mesh"})
	if err != nil {
		t.Fatalf("UpdateBackgroundConfig: %v", err)
	}
	if stored.Type != "mesh" {
		t.Errorf("Type = %q, want mesh preserved", stored.Type)
	}
}
