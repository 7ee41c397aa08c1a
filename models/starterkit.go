package models

import (
	"strings"
	"time"
)

// TensioningType is the mechanism class used to tighten the line.
type TensioningType string

const (
	TensioningSingleRatchet TensioningType = "Single Ratchet"
	TensioningDoubleRatchet TensioningType = "Double Ratchet"
	TensioningPrimitive     TensioningType = "Primitive"
	TensioningOther         TensioningType = "Other"
)

// TensioningTypeFromString maps a free-text tensioning description to a
// TensioningType. Datasets abbreviate ratchet systems as "RAT1"/"RAT2";
// the double-ratchet keywords are tested first so "rat2" never falls
// through to the bare "rat" rule.
func TensioningTypeFromString(tensioningType string) TensioningType {
	tensioningType = strings.ToLower(tensioningType)
	switch {
	case strings.Contains(tensioningType, "rat2"), strings.Contains(tensioningType, "double"):
		return TensioningDoubleRatchet
	case strings.Contains(tensioningType, "rat1"), strings.Contains(tensioningType, "rat"),
		strings.Contains(tensioningType, "single"):
		return TensioningSingleRatchet
	case strings.Contains(tensioningType, "prim"):
		return TensioningPrimitive
	default:
		return TensioningOther
	}
}

// StarterKit is a bundled beginner set of webbing, tensioning hardware
// and accessories.
type StarterKit struct {
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

// StarterKitCreate is the request shape for creating a starter kit.
type StarterKitCreate struct {
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

func (c *StarterKitCreate) Model() *StarterKit {
	return &StarterKit{
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

// StarterKitUpdate is the request shape for partially updating a
// starter kit.
type StarterKitUpdate struct {
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

func (u *StarterKitUpdate) Apply(s *StarterKit) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.BrandID != nil {
		s.BrandID = *u.BrandID
	}
	if u.ReleaseDate != nil {
		s.ReleaseDate = u.ReleaseDate
	}
	if u.ProductURL != nil {
		s.ProductURL = u.ProductURL
	}
	if u.WebbingLength != nil {
		s.WebbingLength = *u.WebbingLength
	}
	if u.WebbingWidth != nil {
		s.WebbingWidth = *u.WebbingWidth
	}
	if u.Weight != nil {
		s.Weight = u.Weight
	}
	if u.TensioningType != nil {
		s.TensioningType = *u.TensioningType
	}
	if u.IncludesTreePro != nil {
		s.IncludesTreePro = *u.IncludesTreePro
	}
	if u.ISACertified != nil {
		s.ISACertified = *u.ISACertified
	}
	if u.Price != nil {
		s.Price = u.Price
	}
	if u.Currency != nil {
		s.Currency = u.Currency
	}
	if u.Description != nil {
		s.Description = u.Description
	}
	if u.Version != nil {
		s.Version = u.Version
	}
	if u.Notes != nil {
		s.Notes = u.Notes
	}
}
