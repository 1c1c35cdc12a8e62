package services

import (
	"testing"

	"storefront/models"
)

func TestSeedIsIdempotent(t *testing.T) {
	pr := newFakeProductRepo()
	or := newFakeOfferRepo()
	cr := &fakeConfigRepo{}
	sr := newFakeSliderRepo()
	ss := NewSeedService(pr, or, cr, sr)

	if err := ss.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	firstCount, _ := pr.CountProducts()
	if firstCount == 0 {
		t.Fatal("seeding an empty catalog stored no products")
	}
	if len(or.offers) == 0 {
		t.Fatal("seeding stored no offers")
	}
	if cr.site == nil || cr.background == nil {
		t.Fatal("seeding left singleton configs unset")
	}
	if sr.viral == nil {
		t.Fatal("seeding left the viral slider unset")
	}

	if err := ss.Seed(); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if n, _ := pr.CountProducts(); n != firstCount {
		t.Errorf("re-seeding grew the catalog from %d to %d products", firstCount, n)
	}
}

func TestSeedKeepsExistingProducts(t *testing.T) {
	pr := newFakeProductRepo(models.Product_db{Id: 1, Name: "Existing", Price: 1, Stock: 1})
	ss := NewSeedService(pr, newFakeOfferRepo(), &fakeConfigRepo{}, newFakeSliderRepo())

	if err := ss.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n, _ := pr.CountProducts(); n != 1 {
		t.Errorf("seeding a non-empty catalog stored demo products, count = %d", n)
	}
}

func TestGetViralSliderDefault(t *testing.T) {
	ss := NewSliderService(newFakeSliderRepo())

	slider, err := ss.GetViralSlider()
	if err != nil {
		t.Fatalf("GetViralSlider: %v", err)
	}
	if slider.Kind != models.SliderKindViral {
		t.Errorf("Kind = %q, want viral", slider.Kind)
	}
	if slider.Title == "" {
		t.Error("default viral slider has no title")
	}
}

func TestSaveOfferValidation(t *testing.T) {
	or := newFakeOfferRepo()
	os := NewOfferService(or)

	if _, err := os.SaveOffer(models.Offer_db{Title: "No id"}); err == nil {
		t.Error("offer without an OfferId accepted")
	}
	stored, err := os.SaveOffer(models.Offer_db{OfferId: "OFF001", Title: "Sale"})
	if err != nil {
		t.Fatalf("SaveOffer: %v", err)
	}
	if stored.CtaText != "Shop Now" {
		t.Errorf("CtaText = %q, want the default", stored.CtaText)
	}
}

func TestDashboardStats(t *testing.T) {
	pr := newFakeProductRepo(models.Product_db{Id: 1, Name: "Widget", Price: 1, Stock: 1})
	or := newFakeOrderRepo()
	or.CreateOrder(models.Order_db{Email: "a@b.c", Total: 10, Status: models.OrderPending})
	or.CreateOrder(models.Order_db{Email: "a@b.c", Total: 5, Status: models.OrderCompleted})
	ds := NewDashboardService(or, pr)

	stats, err := ds.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", stats.TotalOrders)
	}
	if stats.TotalProducts != 1 {
		t.Errorf("TotalProducts = %d, want 1", stats.TotalProducts)
	}
	if stats.Recent == nil {
		t.Error("Recent is nil, want an empty slice at minimum")
	}
}
