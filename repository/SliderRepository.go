package repository

import (
	"database/sql"
	"errors"
	"log"

	"storefront/models"
)

type SliderRepository interface {
	ListSliders(kind string) (sliders []models.ProductSlider_db, err error)
	CreateSlider(slider models.ProductSlider_db) (id int, err error)
	UpdateSlider(slider models.ProductSlider_db) (err error)
	DeleteSlider(id int, kind string) (err error)
	GetViralSlider() (slider models.ProductSlider_db, exists bool, err error)
	UpsertViralSlider(slider models.ProductSlider_db) (err error)
}

type SliderRepo struct {
	db *sql.DB
}

func NewSliderRepository(conn *sql.DB) (SliderRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := conn.Ping()
	if err != nil {
		return nil, err
	}
	return &SliderRepo{
		db: conn,
	}, nil
}

func (s *SliderRepo) ListSliders(kind string) (sliders []models.ProductSlider_db, err error) {
	rows, e := s.db.Query(
		"SELECT Id, Kind, Title, Type, Category, LimitCount, DisplayOrder, ShowTitle, AutoScroll, ScrollSpeed, IsActive FROM ProductSliders WHERE Kind = $1 ORDER BY DisplayOrder",
		kind,
	)
	if e != nil {
		log.Printf("ListSliders: %v", e)
		err = models.ErrUpstream
		return
	}
	defer rows.Close()
	for rows.Next() {
		slider := models.ProductSlider_db{}
		err = rows.Scan(&slider.Id, &slider.Kind, &slider.Title, &slider.Type, &slider.Category,
			&slider.LimitCount, &slider.DisplayOrder, &slider.ShowTitle,
			&slider.AutoScroll, &slider.ScrollSpeed, &slider.IsActive)
		if err != nil {
			log.Printf("ListSliders: %v", err)
			err = models.ErrUpstream
			return
		}
		sliders = append(sliders, slider)
	}
	return
}

func (s *SliderRepo) CreateSlider(slider models.ProductSlider_db) (id int, err error) {
	err = s.db.QueryRow(
		`INSERT INTO ProductSliders (Kind, Title, Type, Category, LimitCount, DisplayOrder, ShowTitle, AutoScroll, ScrollSpeed, IsActive)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING Id`,
		slider.Kind, slider.Title, slider.Type, slider.Category, slider.LimitCount,
		slider.DisplayOrder, slider.ShowTitle, slider.AutoScroll, slider.ScrollSpeed, slider.IsActive,
	).Scan(&id)
	if err != nil {
		log.Printf("CreateSlider: %v", err)
		err = models.ErrUpstream
	}
	return
}

func (s *SliderRepo) UpdateSlider(slider models.ProductSlider_db) (err error) {
	res, e := s.db.Exec(
		`UPDATE ProductSliders SET Title=$1, Type=$2, Category=$3, LimitCount=$4, DisplayOrder=$5,
			ShowTitle=$6, AutoScroll=$7, ScrollSpeed=$8, IsActive=$9
		 WHERE Id = $10 AND Kind = $11`,
		slider.Title, slider.Type, slider.Category, slider.LimitCount, slider.DisplayOrder,
		slider.ShowTitle, slider.AutoScroll, slider.ScrollSpeed, slider.IsActive,
		slider.Id, slider.Kind,
	)
	if e != nil {
		log.Printf("UpdateSlider: %v", e)
		err = models.ErrUpstream
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = models.ErrNotFound
	}
	return
}

func (s *SliderRepo) DeleteSlider(id int, kind string) (err error) {
	res, e := s.db.Exec("DELETE FROM ProductSliders WHERE Id = $1 AND Kind = $2", id, kind)
	if e != nil {
		log.Printf("DeleteSlider: %v", e)
		err = models.ErrUpstream
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = models.ErrNotFound
	}
	return
}

func (s *SliderRepo) GetViralSlider() (slider models.ProductSlider_db, exists bool, err error) {
	row := s.db.QueryRow(
		"SELECT Id, Kind, Title, Type, Category, LimitCount, DisplayOrder, ShowTitle, AutoScroll, ScrollSpeed, IsActive FROM ProductSliders WHERE Kind = $1",
		models.SliderKindViral,
	)
	err = row.Scan(&slider.Id, &slider.Kind, &slider.Title, &slider.Type, &slider.Category,
		&slider.LimitCount, &slider.DisplayOrder, &slider.ShowTitle,
		&slider.AutoScroll, &slider.ScrollSpeed, &slider.IsActive)
	if err != nil {
		if err == sql.ErrNoRows {
			err = nil
		} else {
			log.Printf("GetViralSlider: %v", err)
			err = models.ErrUpstream
		}
		return
	}
	exists = true
	return
}

// UpsertViralSlider keeps the viral strip a single logical row: update the
// existing row if one is there, insert only the first time.
func (s *SliderRepo) UpsertViralSlider(slider models.ProductSlider_db) (err error) {
	slider.Kind = models.SliderKindViral
	current, exists, e := s.GetViralSlider()
	if e != nil {
		err = e
		return
	}
	if !exists {
		_, err = s.CreateSlider(slider)
		return
	}
	slider.Id = current.Id
	err = s.UpdateSlider(slider)
	return
}
