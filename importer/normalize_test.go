package importer

import "testing"

func TestBoolCoercion(t *testing.T) {
	spec := []FieldSpec{{Field: "featured", Keys: []string{"featured"}, Kind: KindBool}}
	cases := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"1", true},
		{"false", false},
		{"0", false},
		{"yes", false},
		{"2", false},
		{"", false},
	}
	for _, c := range cases {
		got := Normalize(spec, RawRow{"featured": c.raw}).Bool("featured")
		if got != c.want {
			t.Errorf("coerce %q: got %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestBoolDefaultTrueOnlyWhenAbsent(t *testing.T) {
	spec := []FieldSpec{{Field: "is_active", Keys: []string{"isActive", "is_active"}, Kind: KindBool, Default: "true"}}

	if got := Normalize(spec, RawRow{}).Bool("is_active"); !got {
		t.Error("wholly absent field should default true")
	}
	// header present with an empty cell is not absence
	if got := Normalize(spec, RawRow{"is_active": ""}).Bool("is_active"); got {
		t.Error("present-but-empty field should coerce false")
	}
	if got := Normalize(spec, RawRow{"isActive": "false"}).Bool("is_active"); got {
		t.Error("explicit false must win over the true default")
	}
}

func TestProbePrecedence(t *testing.T) {
	spec := []FieldSpec{{Field: "image_url", Keys: []string{"imageUrl", "image_url", "Image URL"}, Kind: KindString}}

	row := RawRow{"imageUrl": "camel.png", "image_url": "snake.png", "Image URL": "title.png"}
	if got := Normalize(spec, row).String("image_url"); got != "camel.png" {
		t.Errorf("camelCase should win, got %q", got)
	}
	row = RawRow{"image_url": "snake.png", "Image URL": "title.png"}
	if got := Normalize(spec, row).String("image_url"); got != "snake.png" {
		t.Errorf("snake_case should win over Title Case, got %q", got)
	}
	// an empty earlier variant yields to a filled later one
	row = RawRow{"imageUrl": "", "Image URL": "title.png"}
	if got := Normalize(spec, row).String("image_url"); got != "title.png" {
		t.Errorf("empty camelCase should fall through, got %q", got)
	}
}

func TestNumericFallback(t *testing.T) {
	spec := []FieldSpec{
		{Field: "price", Keys: []string{"price"}, Kind: KindFloat},
		{Field: "speed", Keys: []string{"speed"}, Kind: KindInt, Default: "10"},
	}
	v := Normalize(spec, RawRow{"price": "abc", "speed": "fast"})
	if v.Float("price") != 0 {
		t.Errorf("non-numeric price should coerce to 0, got %v", v.Float("price"))
	}
	if v.Int("speed") != 10 {
		t.Errorf("non-numeric speed should coerce to its default, got %v", v.Int("speed"))
	}
}

func TestProductFromRowMinimalCSVRow(t *testing.T) {
	p := ProductFromRow(RawRow{"name": "Widget", "price": "19.99"})
	if p.Name != "Widget" || p.Price != 19.99 {
		t.Fatalf("unexpected product: %+v", p)
	}
	if p.Description != "" || p.ImageUrl != "" || p.Category != "" {
		t.Errorf("absent string fields should be empty: %+v", p)
	}
	if p.Stock != 0 || p.Featured {
		t.Errorf("absent stock/featured should be zero/false: %+v", p)
	}
	if !AcceptProduct(p) {
		t.Error("row with name and positive price must pass validation")
	}
}

func TestOfferIdSynthesis(t *testing.T) {
	offer := OfferFromRow(RawRow{"title": "Summer Sale"}, 0)
	if offer.OfferId != "OFF001" {
		t.Errorf("expected OFF001, got %q", offer.OfferId)
	}
	offer = OfferFromRow(RawRow{"title": "Autumn Sale"}, 11)
	if offer.OfferId != "OFF012" {
		t.Errorf("expected OFF012, got %q", offer.OfferId)
	}
	offer = OfferFromRow(RawRow{"title": "Keyed", "offer_id": "SALE1"}, 0)
	if offer.OfferId != "SALE1" {
		t.Errorf("explicit key must win, got %q", offer.OfferId)
	}
}

func TestOfferDefaults(t *testing.T) {
	offer := OfferFromRow(RawRow{"title": "Summer Sale"}, 0)
	if offer.CtaText != "Shop Now" {
		t.Errorf("expected Shop Now default, got %q", offer.CtaText)
	}
	if !offer.IsActive {
		t.Error("is_active should default true")
	}
}

func TestBackgroundTypeFallback(t *testing.T) {
	cfg := BackgroundConfigFromRow(RawRow{"type": "unknown_type"})
	if cfg.Type != "gradient" {
		t.Errorf("unknown type should fall back to gradient, got %q", cfg.Type)
	}
	cfg = BackgroundConfigFromRow(RawRow{"type": "MESH"})
	if cfg.Type != "mesh" {
		t.Errorf("enum match should be case-insensitive, got %q", cfg.Type)
	}
	cfg = BackgroundConfigFromRow(RawRow{})
	if cfg.Type != "gradient" || cfg.PrimaryColor != "#6366f1" || cfg.Opacity != 0.8 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestProductSliderFromRow(t *testing.T) {
	s := ProductSliderFromRow(RawRow{"headline": "Hot Picks", "type": "weird"}, "viral", 0)
	if s.Title != "Hot Picks" {
		t.Errorf("headline should map to title, got %q", s.Title)
	}
	if s.Type != "featured" {
		t.Errorf("invalid type should fall back to featured, got %q", s.Type)
	}
	if !s.ShowTitle || !s.AutoScroll || !s.IsActive {
		t.Errorf("boolean defaults should be true: %+v", s)
	}
	if s.LimitCount != 6 || s.ScrollSpeed != 5 {
		t.Errorf("unexpected numeric defaults: %+v", s)
	}
	if s.DisplayOrder != 1 {
		t.Errorf("display order should fall back to the row position, got %d", s.DisplayOrder)
	}
}
