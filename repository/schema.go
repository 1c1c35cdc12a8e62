package repository

import (
	"database/sql"
	"log"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS Users (
		Id SERIAL PRIMARY KEY,
		Nickname TEXT UNIQUE NOT NULL,
		Password TEXT NOT NULL,
		Role TEXT NOT NULL DEFAULT 'user'
	)`,
	`CREATE TABLE IF NOT EXISTS Products (
		Id SERIAL PRIMARY KEY,
		Name TEXT NOT NULL,
		Description TEXT NOT NULL DEFAULT '',
		Price NUMERIC(12,2) NOT NULL,
		ImageUrl TEXT NOT NULL DEFAULT '',
		Category TEXT NOT NULL DEFAULT '',
		Stock INT NOT NULL DEFAULT 0,
		Featured BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS Orders (
		Id SERIAL PRIMARY KEY,
		UserId INT REFERENCES Users(Id),
		Email TEXT NOT NULL,
		Date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		Total NUMERIC(12,2) NOT NULL,
		Status TEXT NOT NULL DEFAULT 'pending',
		StripeSessionId TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS OrdersProducts (
		Id SERIAL PRIMARY KEY,
		OrderId INT NOT NULL REFERENCES Orders(Id),
		ProductId INT NOT NULL REFERENCES Products(Id),
		Quantity INT NOT NULL,
		Price NUMERIC(12,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS Offers (
		Id SERIAL PRIMARY KEY,
		OfferId TEXT UNIQUE NOT NULL,
		Title TEXT NOT NULL,
		Description TEXT NOT NULL DEFAULT '',
		ImageUrl TEXT NOT NULL DEFAULT '',
		CtaText TEXT NOT NULL DEFAULT 'Shop Now',
		CtaLink TEXT NOT NULL DEFAULT '',
		Discount INT NOT NULL DEFAULT 0,
		BgGradient TEXT NOT NULL DEFAULT '',
		IsActive BOOLEAN NOT NULL DEFAULT TRUE,
		DisplayOrder INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS SiteConfig (
		Id TEXT PRIMARY KEY,
		SiteName TEXT NOT NULL DEFAULT '',
		BannerImage TEXT NOT NULL DEFAULT '',
		Description TEXT NOT NULL DEFAULT '',
		ThemeColor TEXT NOT NULL DEFAULT '',
		ContactEmail TEXT NOT NULL DEFAULT '',
		ContactPhone TEXT NOT NULL DEFAULT '',
		ContactAddress TEXT NOT NULL DEFAULT '',
		SocialFacebook TEXT NOT NULL DEFAULT '',
		SocialInstagram TEXT NOT NULL DEFAULT '',
		SocialTwitter TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS SliderConfig (
		Id TEXT PRIMARY KEY,
		Images TEXT[] NOT NULL DEFAULT '{}',
		Autoplay BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS BackgroundConfig (
		Id TEXT PRIMARY KEY,
		Type TEXT NOT NULL DEFAULT 'gradient',
		PrimaryColor TEXT NOT NULL DEFAULT '',
		SecondaryColor TEXT NOT NULL DEFAULT '',
		TertiaryColor TEXT NOT NULL DEFAULT '',
		Speed INT NOT NULL DEFAULT 10,
		Direction TEXT NOT NULL DEFAULT 'diagonal',
		Opacity NUMERIC(4,2) NOT NULL DEFAULT 0.8,
		Blur INT NOT NULL DEFAULT 0,
		IsActive BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS ProductSliders (
		Id SERIAL PRIMARY KEY,
		Kind TEXT NOT NULL,
		Title TEXT NOT NULL,
		Type TEXT NOT NULL DEFAULT 'featured',
		Category TEXT NOT NULL DEFAULT '',
		LimitCount INT NOT NULL DEFAULT 6,
		DisplayOrder INT NOT NULL DEFAULT 0,
		ShowTitle BOOLEAN NOT NULL DEFAULT TRUE,
		AutoScroll BOOLEAN NOT NULL DEFAULT TRUE,
		ScrollSpeed INT NOT NULL DEFAULT 5,
		IsActive BOOLEAN NOT NULL DEFAULT TRUE
	)`,
}

// Migrate creates any missing tables. Statements are idempotent so it runs
// unconditionally at startup.
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migrate: %v", err)
			return err
		}
	}
	return nil
}
