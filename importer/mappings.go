package importer

import (
	"fmt"

	"storefront/models"
)

// Field tables per entity kind. Key order is the probing precedence:
// camelCase, snake_case, Title Case.

var productFields = []FieldSpec{
	{Field: "name", Keys: []string{"name", "Name", "productName", "product_name", "Product Name"}, Kind: KindString},
	{Field: "description", Keys: []string{"description", "Description"}, Kind: KindString},
	{Field: "price", Keys: []string{"price", "Price"}, Kind: KindFloat},
	{Field: "image_url", Keys: []string{"imageUrl", "image_url", "Image URL", "image", "Image"}, Kind: KindString},
	{Field: "category", Keys: []string{"category", "Category"}, Kind: KindString},
	{Field: "stock", Keys: []string{"stock", "Stock"}, Kind: KindInt},
	{Field: "featured", Keys: []string{"featured", "Featured"}, Kind: KindBool},
}

var offerFields = []FieldSpec{
	{Field: "offer_id", Keys: []string{"offerId", "offer_id", "Offer ID"}, Kind: KindString},
	{Field: "title", Keys: []string{"title", "Title"}, Kind: KindString},
	{Field: "description", Keys: []string{"description", "Description"}, Kind: KindString},
	{Field: "image_url", Keys: []string{"imageUrl", "image_url", "Image URL"}, Kind: KindString},
	{Field: "cta_text", Keys: []string{"ctaText", "cta_text", "CTA Text"}, Kind: KindString, Default: "Shop Now"},
	{Field: "cta_link", Keys: []string{"ctaLink", "cta_link", "CTA Link"}, Kind: KindString},
	{Field: "discount", Keys: []string{"discount", "Discount"}, Kind: KindInt},
	{Field: "bg_gradient", Keys: []string{"bgGradient", "bg_gradient", "Background Gradient"}, Kind: KindString},
	{Field: "is_active", Keys: []string{"isActive", "is_active", "Active"}, Kind: KindBool, Default: "true"},
	{Field: "display_order", Keys: []string{"displayOrder", "display_order", "Display Order"}, Kind: KindInt},
}

var siteConfigFields = []FieldSpec{
	{Field: "site_name", Keys: []string{"siteName", "site_name", "Site Name"}, Kind: KindString},
	{Field: "banner_image", Keys: []string{"bannerImage", "banner_image", "Banner Image"}, Kind: KindString},
	{Field: "description", Keys: []string{"description", "Description"}, Kind: KindString},
	{Field: "theme_color", Keys: []string{"themeColor", "theme_color", "Theme Color"}, Kind: KindString},
	{Field: "contact_email", Keys: []string{"contactEmail", "contact_email", "Contact Email"}, Kind: KindString},
	{Field: "contact_phone", Keys: []string{"contactPhone", "contact_phone", "Contact Phone"}, Kind: KindString},
	{Field: "contact_address", Keys: []string{"contactAddress", "contact_address", "Contact Address"}, Kind: KindString},
	{Field: "social_media_facebook", Keys: []string{"socialMediaFacebook", "social_media_facebook", "Facebook"}, Kind: KindString},
	{Field: "social_media_instagram", Keys: []string{"socialMediaInstagram", "social_media_instagram", "Instagram"}, Kind: KindString},
	{Field: "social_media_twitter", Keys: []string{"socialMediaTwitter", "social_media_twitter", "Twitter"}, Kind: KindString},
}

var sliderImageFields = []FieldSpec{
	{Field: "image", Keys: []string{"imageUrl", "image_url", "Image URL", "image", "Image"}, Kind: KindString},
	{Field: "autoplay", Keys: []string{"autoplay", "Autoplay"}, Kind: KindBool, Default: "true"},
}

var productSliderFields = []FieldSpec{
	{Field: "title", Keys: []string{"title", "Title", "headline", "Headline"}, Kind: KindString},
	{Field: "type", Keys: []string{"type", "Type"}, Kind: KindEnum, Default: "featured",
		Allowed: []string{"featured", "latest", "category", "custom"}},
	{Field: "category", Keys: []string{"category", "Category"}, Kind: KindString},
	{Field: "limit_count", Keys: []string{"limitCount", "limit_count", "Limit"}, Kind: KindInt, Default: "6"},
	{Field: "display_order", Keys: []string{"displayOrder", "display_order", "Display Order"}, Kind: KindInt},
	{Field: "show_title", Keys: []string{"showTitle", "show_title", "Show Title"}, Kind: KindBool, Default: "true"},
	{Field: "auto_scroll", Keys: []string{"autoScroll", "auto_scroll", "Auto Scroll"}, Kind: KindBool, Default: "true"},
	{Field: "scroll_speed", Keys: []string{"scrollSpeed", "scroll_speed", "Scroll Speed"}, Kind: KindInt, Default: "5"},
	{Field: "is_active", Keys: []string{"isActive", "is_active", "Active"}, Kind: KindBool, Default: "true"},
}

var backgroundConfigFields = []FieldSpec{
	{Field: "type", Keys: []string{"type", "Type"}, Kind: KindEnum, Default: "gradient",
		Allowed: []string{"gradient", "mesh", "particles", "grid"}},
	{Field: "primary_color", Keys: []string{"primaryColor", "primary_color", "Primary Color"}, Kind: KindString, Default: "#6366f1"},
	{Field: "secondary_color", Keys: []string{"secondaryColor", "secondary_color", "Secondary Color"}, Kind: KindString, Default: "#8b5cf6"},
	{Field: "tertiary_color", Keys: []string{"tertiaryColor", "tertiary_color", "Tertiary Color"}, Kind: KindString, Default: "#ec4899"},
	{Field: "speed", Keys: []string{"speed", "Speed"}, Kind: KindInt, Default: "10"},
	{Field: "direction", Keys: []string{"direction", "Direction"}, Kind: KindString, Default: "diagonal"},
	{Field: "opacity", Keys: []string{"opacity", "Opacity"}, Kind: KindFloat, Default: "0.8"},
	{Field: "blur", Keys: []string{"blur", "Blur"}, Kind: KindInt},
	{Field: "is_active", Keys: []string{"isActive", "is_active", "Active"}, Kind: KindBool, Default: "true"},
}

func ProductFromRow(row RawRow) models.Product_db {
	v := Normalize(productFields, row)
	return models.Product_db{
		Name:        v.String("name"),
		Description: v.String("description"),
		Price:       v.Float("price"),
		ImageUrl:    v.String("image_url"),
		Category:    v.String("category"),
		Stock:       v.Int("stock"),
		Featured:    v.Bool("featured"),
	}
}

// OfferFromRow synthesizes a natural key for rows that carry none:
// a fixed prefix plus the 1-based row index, zero-padded to 3 digits.
func OfferFromRow(row RawRow, index int) models.Offer_db {
	v := Normalize(offerFields, row)
	offer := models.Offer_db{
		OfferId:      v.String("offer_id"),
		Title:        v.String("title"),
		Description:  v.String("description"),
		ImageUrl:     v.String("image_url"),
		CtaText:      v.String("cta_text"),
		CtaLink:      v.String("cta_link"),
		Discount:     v.Int("discount"),
		BgGradient:   v.String("bg_gradient"),
		IsActive:     v.Bool("is_active"),
		DisplayOrder: v.Int("display_order"),
	}
	if offer.OfferId == "" {
		offer.OfferId = fmt.Sprintf("OFF%03d", index+1)
	}
	if offer.DisplayOrder == 0 {
		offer.DisplayOrder = index + 1
	}
	return offer
}

func SiteConfigFromRow(row RawRow) models.SiteConfig_db {
	v := Normalize(siteConfigFields, row)
	return models.SiteConfig_db{
		Id:              models.SingletonId,
		SiteName:        v.String("site_name"),
		BannerImage:     v.String("banner_image"),
		Description:     v.String("description"),
		ThemeColor:      v.String("theme_color"),
		ContactEmail:    v.String("contact_email"),
		ContactPhone:    v.String("contact_phone"),
		ContactAddress:  v.String("contact_address"),
		SocialFacebook:  v.String("social_media_facebook"),
		SocialInstagram: v.String("social_media_instagram"),
		SocialTwitter:   v.String("social_media_twitter"),
	}
}

// SliderImageFromRow pulls the image URL one row contributes to the
// homepage slider, plus the row's autoplay flag.
func SliderImageFromRow(row RawRow) (image string, autoplay bool) {
	v := Normalize(sliderImageFields, row)
	return v.String("image"), v.Bool("autoplay")
}

func ProductSliderFromRow(row RawRow, kind string, index int) models.ProductSlider_db {
	v := Normalize(productSliderFields, row)
	slider := models.ProductSlider_db{
		Kind:         kind,
		Title:        v.String("title"),
		Type:         v.String("type"),
		Category:     v.String("category"),
		LimitCount:   v.Int("limit_count"),
		DisplayOrder: v.Int("display_order"),
		ShowTitle:    v.Bool("show_title"),
		AutoScroll:   v.Bool("auto_scroll"),
		ScrollSpeed:  v.Int("scroll_speed"),
		IsActive:     v.Bool("is_active"),
	}
	if slider.DisplayOrder == 0 {
		slider.DisplayOrder = index + 1
	}
	return slider
}

func BackgroundConfigFromRow(row RawRow) models.BackgroundConfig_db {
	v := Normalize(backgroundConfigFields, row)
	return models.BackgroundConfig_db{
		Id:             models.SingletonId,
		Type:           v.String("type"),
		PrimaryColor:   v.String("primary_color"),
		SecondaryColor: v.String("secondary_color"),
		TertiaryColor:  v.String("tertiary_color"),
		Speed:          v.Int("speed"),
		Direction:      v.String("direction"),
		Opacity:        v.Float("opacity"),
		Blur:           v.Int("blur"),
		IsActive:       v.Bool("is_active"),
	}
}
