package importer

import "storefront/models"

// Accept predicates implement the minimal required-field checks. Rows
// failing them are dropped silently; callers report only the surviving
// count against the input row count.

func AcceptProduct(p models.Product_db) bool {
	return p.Name != "" && p.Price > 0
}

func AcceptOffer(o models.Offer_db) bool {
	return o.Title != "" && o.OfferId != ""
}

func AcceptProductSlider(s models.ProductSlider_db) bool {
	return s.Title != ""
}

func AcceptSliderImage(image string) bool {
	return image != ""
}

func AcceptSiteConfig(c models.SiteConfig_db) bool {
	return c.SiteName != ""
}
