package importer

import (
	"testing"

	"storefront/models"
)

func TestAcceptProduct(t *testing.T) {
	cases := []struct {
		name    string
		product models.Product_db
		want    bool
	}{
		{"valid", models.Product_db{Name: "Widget", Price: 19.99}, true},
		{"empty name", models.Product_db{Price: 19.99}, false},
		{"zero price", models.Product_db{Name: "Widget"}, false},
		{"negative price", models.Product_db{Name: "Widget", Price: -1}, false},
	}
	for _, c := range cases {
		if got := AcceptProduct(c.product); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestAcceptOffer(t *testing.T) {
	if AcceptOffer(models.Offer_db{OfferId: "OFF001"}) {
		t.Error("offer without title must be dropped")
	}
	if AcceptOffer(models.Offer_db{Title: "Sale"}) {
		t.Error("offer without offer_id must be dropped")
	}
	if !AcceptOffer(models.Offer_db{OfferId: "OFF001", Title: "Sale"}) {
		t.Error("offer with title and offer_id must pass")
	}
}

func TestAcceptProductSlider(t *testing.T) {
	if AcceptProductSlider(models.ProductSlider_db{}) {
		t.Error("slider without title must be dropped")
	}
	if !AcceptProductSlider(models.ProductSlider_db{Title: "Hot Picks"}) {
		t.Error("slider with title must pass")
	}
}

func TestDroppedRowsDoNotErrorBatch(t *testing.T) {
	rows := []RawRow{
		{"name": "Widget", "price": "19.99"},
		{"name": "", "price": "5"},
		{"name": "Broken", "price": "abc"},
	}
	accepted := 0
	for _, row := range rows {
		if AcceptProduct(ProductFromRow(row)) {
			accepted++
		}
	}
	if accepted != 1 {
		t.Fatalf("expected 1 surviving row, got %d", accepted)
	}
}
