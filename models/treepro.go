package models

import (
	"strings"
	"time"
)

// PriceUnit says whether a price covers a single item or a pair.
type PriceUnit string

const (
	PriceUnitSingle PriceUnit = "single"
	PriceUnitPair   PriceUnit = "pair"
)

// PriceUnitFromString maps a free-text unit to a PriceUnit, defaulting
// to single.
func PriceUnitFromString(unit string) PriceUnit {
	if strings.Contains(strings.ToLower(unit), "pair") {
		return PriceUnitPair
	}
	return PriceUnitSingle
}

// TreePro is protective padding placed between webbing or anchor and
// the tree trunk.
type TreePro struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	Name                string     `json:"name" gorm:"index;not null"`
	BrandID             uint       `json:"brand_id" gorm:"not null"`
	Brand               Brand      `json:"brand" gorm:"foreignKey:BrandID"`
	ReleaseDate         *int64     `json:"release_date"` // Unix timestamp
	ProductURL          *string    `json:"product_url"`
	Weight              *float64   `json:"weight"`    // g
	Width               *float64   `json:"width"`     // cm
	Length              *int       `json:"length"`    // cm
	Thickness           *int       `json:"thickness"` // mm
	HasSlingAttachment  bool       `json:"has_sling_attachment"`
	Price               *float64   `json:"price"`
	PriceUnit           *PriceUnit `json:"price_unit"`
	Currency            *Currency  `json:"currency"`
	Description         *string    `json:"description"`
	Version             *string    `json:"version"`
	Notes               *string    `json:"notes"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// TreeProCreate is the request shape for creating a tree protector.
type TreeProCreate struct {
	Name               string     `json:"name" binding:"required"`
	BrandID            uint       `json:"brand_id" binding:"required"`
	ReleaseDate        *int64     `json:"release_date"`
	ProductURL         *string    `json:"product_url"`
	Weight             *float64   `json:"weight"`
	Width              *float64   `json:"width"`
	Length             *int       `json:"length"`
	Thickness          *int       `json:"thickness"`
	HasSlingAttachment bool       `json:"has_sling_attachment"`
	Price              *float64   `json:"price"`
	PriceUnit          *PriceUnit `json:"price_unit"`
	Currency           *Currency  `json:"currency"`
	Description        *string    `json:"description"`
	Version            *string    `json:"version"`
	Notes              *string    `json:"notes"`
}

func (c *TreeProCreate) Model() *TreePro {
	return &TreePro{
		Name:               c.Name,
		BrandID:            c.BrandID,
		ReleaseDate:        c.ReleaseDate,
		ProductURL:         c.ProductURL,
		Weight:             c.Weight,
		Width:              c.Width,
		Length:             c.Length,
		Thickness:          c.Thickness,
		HasSlingAttachment: c.HasSlingAttachment,
		Price:              c.Price,
		PriceUnit:          c.PriceUnit,
		Currency:           c.Currency,
		Description:        c.Description,
		Version:            c.Version,
		Notes:              c.Notes,
	}
}

// TreeProUpdate is the request shape for partially updating a tree
// protector.
type TreeProUpdate struct {
	Name               *string    `json:"name"`
	BrandID            *uint      `json:"brand_id"`
	ReleaseDate        *int64     `json:"release_date"`
	ProductURL         *string    `json:"product_url"`
	Weight             *float64   `json:"weight"`
	Width              *float64   `json:"width"`
	Length             *int       `json:"length"`
	Thickness          *int       `json:"thickness"`
	HasSlingAttachment *bool      `json:"has_sling_attachment"`
	Price              *float64   `json:"price"`
	PriceUnit          *PriceUnit `json:"price_unit"`
	Currency           *Currency  `json:"currency"`
	Description        *string    `json:"description"`
	Version            *string    `json:"version"`
	Notes              *string    `json:"notes"`
}

func (u *TreeProUpdate) Apply(t *TreePro) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.BrandID != nil {
		t.BrandID = *u.BrandID
	}
	if u.ReleaseDate != nil {
		t.ReleaseDate = u.ReleaseDate
	}
	if u.ProductURL != nil {
		t.ProductURL = u.ProductURL
	}
	if u.Weight != nil {
		t.Weight = u.Weight
	}
	if u.Width != nil {
		t.Width = u.Width
	}
	if u.Length != nil {
		t.Length = u.Length
	}
	if u.Thickness != nil {
		t.Thickness = u.Thickness
	}
	if u.HasSlingAttachment != nil {
		t.HasSlingAttachment = *u.HasSlingAttachment
	}
	if u.Price != nil {
		t.Price = u.Price
	}
	if u.PriceUnit != nil {
		t.PriceUnit = u.PriceUnit
	}
	if u.Currency != nil {
		t.Currency = u.Currency
	}
	if u.Description != nil {
		t.Description = u.Description
	}
	if u.Version != nil {
		t.Version = u.Version
	}
	if u.Notes != nil {
		t.Notes = u.Notes
	}
}
