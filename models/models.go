package models

import (
	"database/sql"
	"errors"
	"time"
)

var ErrValidation = errors.New("bad request")
var ErrUnauthorized = errors.New("unauthorized")
var ErrForbidden = errors.New("forbidden")
var ErrNotFound = errors.New("not found")
var ErrUpstream = errors.New("server error")

type Credentials struct {
	Password string `json:"password"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type User_db struct {
	Id       int
	Nickname string `json:"username" db:"Nickname"`
	Password string `json:"password" db:"Password"`
	Role     string `json:"role" db:"Role"`
}

type Product_db struct {
	Id          int     `json:"id" db:"Id"`
	Name        string  `json:"name" db:"Name"`
	Description string  `json:"description" db:"Description"`
	Price       float64 `json:"price" db:"Price"`
	ImageUrl    string  `json:"image_url" db:"ImageUrl"`
	Category    string  `json:"category" db:"Category"`
	Stock       int     `json:"stock" db:"Stock"`
	Featured    bool    `json:"featured" db:"Featured"`
}

// Order statuses follow the payment lifecycle; an order is created
// pending and only the webhook or an admin moves it forward.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

func IsOrderStatus(s string) bool {
	return s == OrderPending || s == OrderProcessing || s == OrderCompleted || s == OrderCancelled
}

type Order_db struct {
	Id              int           `json:"id"`
	UserId          sql.NullInt64 `json:"-"`
	Email           string        `json:"email"`
	Date            time.Time     `json:"date"`
	Total           float64       `json:"total"`
	Status          string        `json:"status"`
	StripeSessionId string        `json:"stripe_session_id"`
}

type OrdersProducts_db struct {
	Id        int
	OrderId   int
	ProductId int
	Quantity  int
	Price     float64
}

// SiteConfig_db is a singleton row, always addressed by SingletonId.
type SiteConfig_db struct {
	Id              string `json:"id"`
	SiteName        string `json:"site_name"`
	BannerImage     string `json:"banner_image"`
	Description     string `json:"description"`
	ThemeColor      string `json:"theme_color"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	ContactAddress  string `json:"contact_address"`
	SocialFacebook  string `json:"social_media_facebook"`
	SocialInstagram string `json:"social_media_instagram"`
	SocialTwitter   string `json:"social_media_twitter"`
}

type SliderConfig_db struct {
	Id       string   `json:"id"`
	Images   []string `json:"images"`
	Autoplay bool     `json:"autoplay"`
}

type Offer_db struct {
	Id           int    `json:"id"`
	OfferId      string `json:"offer_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageUrl     string `json:"image_url"`
	CtaText      string `json:"cta_text"`
	CtaLink      string `json:"cta_link"`
	Discount     int    `json:"discount"`
	BgGradient   string `json:"bg_gradient,omitempty"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

// Product slider strips come in three families stored in one table,
// discriminated by Kind. The viral strip is constrained to one row.
const (
	SliderKindProduct = "product"
	SliderKindSmall   = "small"
	SliderKindViral   = "viral"
)

type ProductSlider_db struct {
	Id           int    `json:"id"`
	Kind         string `json:"kind"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	Category     string `json:"category"`
	LimitCount   int    `json:"limit_count"`
	DisplayOrder int    `json:"display_order"`
	ShowTitle    bool   `json:"show_title"`
	AutoScroll   bool   `json:"auto_scroll"`
	ScrollSpeed  int    `json:"scroll_speed"`
	IsActive     bool   `json:"is_active"`
}

type BackgroundConfig_db struct {
	Id             string  `json:"id"`
	Type           string  `json:"type"`
	PrimaryColor   string  `json:"primary_color"`
	SecondaryColor string  `json:"secondary_color"`
	TertiaryColor  string  `json:"tertiary_color"`
	Speed          int     `json:"speed"`
	Direction      string  `json:"direction"`
	Opacity        float64 `json:"opacity"`
	Blur           int     `json:"blur"`
	IsActive       bool    `json:"is_active"`
}

// SingletonId addresses the one logical row of each singleton config table.
const SingletonId = "1"

const SliderMaxImages = 10

func DefaultSiteConfig() SiteConfig_db {
	return SiteConfig_db{
		Id:         SingletonId,
		SiteName:   "Storefront",
		ThemeColor: "#6366f1",
	}
}

func DefaultSliderConfig() SliderConfig_db {
	return SliderConfig_db{
		Id:       SingletonId,
		Images:   []string{},
		Autoplay: true,
	}
}

func DefaultBackgroundConfig() BackgroundConfig_db {
	return BackgroundConfig_db{
		Id:             SingletonId,
		Type:           "gradient",
		PrimaryColor:   "#6366f1",
		SecondaryColor: "#8b5cf6",
		TertiaryColor:  "#ec4899",
		Speed:          10,
		Direction:      "diagonal",
		Opacity:        0.8,
		Blur:           0,
		IsActive:       true,
	}
}

func DefaultViralSlider() ProductSlider_db {
	return ProductSlider_db{
		Kind:        SliderKindViral,
		Title:       "Trending Now",
		Type:        "featured",
		LimitCount:  6,
		ShowTitle:   true,
		AutoScroll:  true,
		ScrollSpeed: 5,
		IsActive:    true,
	}
}

type OrderSearchData struct {
	DateStart *time.Time `schema:"-"`
	DateEnd   *time.Time `schema:"-"`
	Status    *string    `schema:"status"`
	Email     *string    `schema:"email"`
}

// OrderSearchQuery is the raw query-string shape decoded by gorilla/schema;
// dates come in as strings and are parsed by the handler.
type OrderSearchQuery struct {
	TimeStart string `schema:"timestart"`
	TimeEnd   string `schema:"timeend"`
	Status    string `schema:"status"`
	Email     string `schema:"email"`
}
