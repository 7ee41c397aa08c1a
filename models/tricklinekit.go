package models

import (
	"time"
)

// TricklineKit is a bundled trickline set; structurally a starter kit
// tuned for bouncier webbing and heavier tensioning.
type TricklineKit struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	Name            string         `json:"name" gorm:"index;not null"`
	BrandID         uint           `json:"brand_id" gorm:"not null"`
	Brand           Brand          `json:"brand" gorm:"foreignKey:BrandID"`
	ReleaseDate     *int64         `json:"release_date"` // Unix timestamp
	ProductURL      *string        `json:"product_url"`
	WebbingLength   int            `json:"webbing_length"` // m
	WebbingWidth    int            `json:"webbing_width"`  // mm
	Weight          *float64       `json:"weight"`         // g
	TensioningType  TensioningType `json:"tensioning_type"`
	IncludesTreePro bool           `json:"includes_treepro"`
	ISACertified    bool           `json:"isa_certified"`
	Price           *float64       `json:"price"`
	Currency        *Currency      `json:"currency"`
	Description     *string        `json:"description"`
	Version         *string        `json:"version"`
	Notes           *string        `json:"notes"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// TricklineKitCreate is the request shape for creating a trickline kit.
type TricklineKitCreate struct {
	Name            string         `json:"name" binding:"required"`
	BrandID         uint           `json:"brand_id" binding:"required"`
	ReleaseDate     *int64         `json:"release_date"`
	ProductURL      *string        `json:"product_url"`
	WebbingLength   int            `json:"webbing_length"`
	WebbingWidth    int            `json:"webbing_width"`
	Weight          *float64       `json:"weight"`
	TensioningType  TensioningType `json:"tensioning_type"`
	IncludesTreePro bool           `json:"includes_treepro"`
	ISACertified    bool           `json:"isa_certified"`
	Price           *float64       `json:"price"`
	Currency        *Currency      `json:"currency"`
	Description     *string        `json:"description"`
	Version         *string        `json:"version"`
	Notes           *string        `json:"notes"`
}

func (c *TricklineKitCreate) Model() *TricklineKit {
	return &TricklineKit{
		Name:            c.Name,
		BrandID:         c.BrandID,
		ReleaseDate:     c.ReleaseDate,
		ProductURL:      c.ProductURL,
		WebbingLength:   c.WebbingLength,
		WebbingWidth:    c.WebbingWidth,
		Weight:          c.Weight,
		TensioningType:  c.TensioningType,
		IncludesTreePro: c.IncludesTreePro,
		ISACertified:    c.ISACertified,
		Price:           c.Price,
		Currency:        c.Currency,
		Description:     c.Description,
		Version:         c.Version,
		Notes:           c.Notes,
	}
}

// TricklineKitUpdate is the request shape for partially updating a
// trickline kit.
type TricklineKitUpdate struct {
	Name            *string         `json:"name"`
	BrandID         *uint           `json:"brand_id"`
	ReleaseDate     *int64          `json:"release_date"`
	ProductURL      *string         `json:"product_url"`
	WebbingLength   *int            `json:"webbing_length"`
	WebbingWidth    *int            `json:"webbing_width"`
	Weight          *float64        `json:"weight"`
	TensioningType  *TensioningType `json:"tensioning_type"`
	IncludesTreePro *bool           `json:"includes_treepro"`
	ISACertified    *bool           `json:"isa_certified"`
	Price           *float64        `json:"price"`
	Currency        *Currency       `json:"currency"`
	Description     *string         `json:"description"`
	Version         *string         `json:"version"`
	Notes           *string         `json:"notes"`
}

func (u *TricklineKitUpdate) Apply(t *TricklineKit) {
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
	if u.WebbingLength != nil {
		t.WebbingLength = *u.WebbingLength
	}
	if u.WebbingWidth != nil {
		t.WebbingWidth = *u.WebbingWidth
	}
	if u.Weight != nil {
		t.Weight = u.Weight
	}
	if u.TensioningType != nil {
		t.TensioningType = *u.TensioningType
	}
	if u.IncludesTreePro != nil {
		t.IncludesTreePro = *u.IncludesTreePro
	}
	if u.ISACertified != nil {
		t.ISACertified = *u.ISACertified
	}
	if u.Price != nil {
		t.Price = u.Price
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
