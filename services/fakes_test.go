package services

import (
	"errors"

	"storefront/entities"
	"storefront/models"
	"storefront/payments"
)

// In-memory stand-ins for the repositories. Each one records enough of
// the calls it receives for the tests to assert on.

type fakeProductRepo struct {
	products map[int]models.Product_db
	nextId   int
}

func newFakeProductRepo(seed ...models.Product_db) *fakeProductRepo {
	f := &fakeProductRepo{products: map[int]models.Product_db{}, nextId: 1}
	for _, p := range seed {
		f.products[p.Id] = p
		if p.Id >= f.nextId {
			f.nextId = p.Id + 1
		}
	}
	return f
}

func (f *fakeProductRepo) ListProducts() ([]models.Product_db, error) {
	prods := make([]models.Product_db, 0, len(f.products))
	for _, p := range f.products {
		prods = append(prods, p)
	}
	return prods, nil
}

func (f *fakeProductRepo) GetProductById(id int) (models.Product_db, bool, error) {
	p, ok := f.products[id]
	return p, ok, nil
}

func (f *fakeProductRepo) CreateProduct(prod models.Product_db) (int, error) {
	prod.Id = f.nextId
	f.nextId++
	f.products[prod.Id] = prod
	return prod.Id, nil
}

func (f *fakeProductRepo) CreateProducts(prods []models.Product_db) ([]models.Product_db, error) {
	stored := make([]models.Product_db, 0, len(prods))
	for _, p := range prods {
		id, _ := f.CreateProduct(p)
		p.Id = id
		stored = append(stored, p)
	}
	return stored, nil
}

func (f *fakeProductRepo) UpdateProductById(prod models.Product_db) (models.Product_db, error) {
	if _, ok := f.products[prod.Id]; !ok {
		return models.Product_db{}, models.ErrNotFound
	}
	f.products[prod.Id] = prod
	return prod, nil
}

func (f *fakeProductRepo) DeleteProduct(id int) error {
	if _, ok := f.products[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) CountProducts() (int, error) {
	return len(f.products), nil
}

type fakeOfferRepo struct {
	offers map[string]models.Offer_db
	nextId int
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{offers: map[string]models.Offer_db{}, nextId: 1}
}

func (f *fakeOfferRepo) ListOffers(activeOnly bool) ([]models.Offer_db, error) {
	offers := []models.Offer_db{}
	for _, o := range f.offers {
		if activeOnly && !o.IsActive {
			continue
		}
		offers = append(offers, o)
	}
	return offers, nil
}

func (f *fakeOfferRepo) UpsertOffer(offer models.Offer_db) (models.Offer_db, error) {
	if prev, ok := f.offers[offer.OfferId]; ok {
		offer.Id = prev.Id
	} else {
		offer.Id = f.nextId
		f.nextId++
	}
	f.offers[offer.OfferId] = offer
	return offer, nil
}

func (f *fakeOfferRepo) DeleteOffer(id int) error {
	for key, o := range f.offers {
		if o.Id == id {
			delete(f.offers, key)
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeConfigRepo struct {
	site          *models.SiteConfig_db
	slider        *models.SliderConfig_db
	background    *models.BackgroundConfig_db
	sliderUpserts int
}

func (f *fakeConfigRepo) GetSiteConfig() (models.SiteConfig_db, bool, error) {
	if f.site == nil {
		return models.SiteConfig_db{}, false, nil
	}
	return *f.site, true, nil
}

func (f *fakeConfigRepo) UpsertSiteConfig(cfg models.SiteConfig_db) error {
	f.site = &cfg
	return nil
}

func (f *fakeConfigRepo) GetSliderConfig() (models.SliderConfig_db, bool, error) {
	if f.slider == nil {
		return models.SliderConfig_db{}, false, nil
	}
	return *f.slider, true, nil
}

func (f *fakeConfigRepo) UpsertSliderConfig(cfg models.SliderConfig_db) error {
	f.slider = &cfg
	f.sliderUpserts++
	return nil
}

func (f *fakeConfigRepo) GetBackgroundConfig() (models.BackgroundConfig_db, bool, error) {
	if f.background == nil {
		return models.BackgroundConfig_db{}, false, nil
	}
	return *f.background, true, nil
}

func (f *fakeConfigRepo) UpsertBackgroundConfig(cfg models.BackgroundConfig_db) error {
	f.background = &cfg
	return nil
}

type fakeSliderRepo struct {
	sliders map[int]models.ProductSlider_db
	viral   *models.ProductSlider_db
	nextId  int
}

func newFakeSliderRepo() *fakeSliderRepo {
	return &fakeSliderRepo{sliders: map[int]models.ProductSlider_db{}, nextId: 1}
}

func (f *fakeSliderRepo) ListSliders(kind string) ([]models.ProductSlider_db, error) {
	sliders := []models.ProductSlider_db{}
	for _, s := range f.sliders {
		if s.Kind == kind {
			sliders = append(sliders, s)
		}
	}
	return sliders, nil
}

func (f *fakeSliderRepo) CreateSlider(slider models.ProductSlider_db) (int, error) {
	slider.Id = f.nextId
	f.nextId++
	f.sliders[slider.Id] = slider
	return slider.Id, nil
}

func (f *fakeSliderRepo) UpdateSlider(slider models.ProductSlider_db) error {
	prev, ok := f.sliders[slider.Id]
	if !ok || prev.Kind != slider.Kind {
		return models.ErrNotFound
	}
	f.sliders[slider.Id] = slider
	return nil
}

func (f *fakeSliderRepo) DeleteSlider(id int, kind string) error {
	prev, ok := f.sliders[id]
	if !ok || prev.Kind != kind {
		return models.ErrNotFound
	}
	delete(f.sliders, id)
	return nil
}

func (f *fakeSliderRepo) GetViralSlider() (models.ProductSlider_db, bool, error) {
	if f.viral == nil {
		return models.ProductSlider_db{}, false, nil
	}
	return *f.viral, true, nil
}

func (f *fakeSliderRepo) UpsertViralSlider(slider models.ProductSlider_db) error {
	f.viral = &slider
	return nil
}

type fakeOrderRepo struct {
	orders     map[int]models.Order_db
	items      map[int][]models.OrdersProducts_db
	nextId     int
	statusSets int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int]models.Order_db{}, items: map[int][]models.OrdersProducts_db{}, nextId: 1}
}

func (f *fakeOrderRepo) CreateOrder(order models.Order_db) (int, error) {
	order.Id = f.nextId
	f.nextId++
	f.orders[order.Id] = order
	return order.Id, nil
}

func (f *fakeOrderRepo) SetOrderItems(orderId int, items []models.OrdersProducts_db) error {
	f.items[orderId] = items
	return nil
}

func (f *fakeOrderRepo) GetOrderById(orderId int) (entities.Order, error) {
	o, ok := f.orders[orderId]
	if !ok {
		return entities.Order{}, models.ErrNotFound
	}
	return entities.Order{OrderId: o.Id, Email: o.Email, Total: o.Total, Status: o.Status}, nil
}

func (f *fakeOrderRepo) SetStripeSession(orderId int, sessionId string) error {
	o, ok := f.orders[orderId]
	if !ok {
		return models.ErrNotFound
	}
	o.StripeSessionId = sessionId
	f.orders[orderId] = o
	return nil
}

func (f *fakeOrderRepo) SetOrderStatus(orderId int, status string) error {
	o, ok := f.orders[orderId]
	if !ok {
		return models.ErrNotFound
	}
	o.Status = status
	f.orders[orderId] = o
	f.statusSets++
	return nil
}

func (f *fakeOrderRepo) CompleteOrderBySession(sessionId string) error {
	for id, o := range f.orders {
		if o.StripeSessionId == sessionId {
			o.Status = models.OrderCompleted
			f.orders[id] = o
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeOrderRepo) SearchOrders(data models.OrderSearchData) ([]entities.Order, error) {
	orders := []entities.Order{}
	for _, o := range f.orders {
		orders = append(orders, entities.Order{OrderId: o.Id, Email: o.Email, Total: o.Total, Status: o.Status})
	}
	return orders, nil
}

func (f *fakeOrderRepo) OrderStats() (entities.DashboardStats, error) {
	stats := entities.DashboardStats{TotalOrders: len(f.orders)}
	for _, o := range f.orders {
		if o.Status != models.OrderCancelled {
			stats.TotalRevenue += o.Total
		}
		if o.Status == models.OrderPending {
			stats.PendingOrders++
		}
	}
	return stats, nil
}

type fakeSessionRepo struct {
	sessions map[string]struct {
		userId int
		role   string
	}
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]struct {
		userId int
		role   string
	}{}}
}

func (f *fakeSessionRepo) put(sessionId string, userId int, role string) {
	f.sessions[sessionId] = struct {
		userId int
		role   string
	}{userId, role}
}

func (f *fakeSessionRepo) CreateSession(userId int, role string) (string, error) {
	sessionId := "sess-fake"
	f.put(sessionId, userId, role)
	return sessionId, nil
}

func (f *fakeSessionRepo) CheckSession(sessionId string) (bool, error) {
	_, ok := f.sessions[sessionId]
	return ok, nil
}

func (f *fakeSessionRepo) DeleteSession(sessionId string) error {
	delete(f.sessions, sessionId)
	return nil
}

func (f *fakeSessionRepo) RefreshSession(sessionId string) error {
	return nil
}

func (f *fakeSessionRepo) GetUserSessionInfo(sessionId string) (int, string, bool, error) {
	s, ok := f.sessions[sessionId]
	if !ok {
		return 0, "", false, nil
	}
	return s.userId, s.role, true, nil
}

type fakeGateway struct {
	sessionId string
	calls     int
	fail      bool
	lastEmail string
	lastItems []payments.LineItem
}

func (f *fakeGateway) CreateSession(email string, items []payments.LineItem) (string, error) {
	f.calls++
	f.lastEmail = email
	f.lastItems = items
	if f.fail {
		return "", errors.New("gateway down")
	}
	return f.sessionId, nil
}

func (f *fakeGateway) ParseWebhook(payload []byte, signature string) (string, bool, error) {
	if f.fail {
		return "", false, models.ErrValidation
	}
	return f.sessionId, true, nil
}
