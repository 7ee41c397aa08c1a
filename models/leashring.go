package models

import (
	"time"
)

// LeashRing is a metal ring riding on the webbing that the leash
// attaches to.
type LeashRing struct {
	ID               uint          `json:"id" gorm:"primaryKey"`
	Name             string        `json:"name" gorm:"index;not null"`
	BrandID          uint          `json:"brand_id" gorm:"not null"`
	Brand            Brand         `json:"brand" gorm:"foreignKey:BrandID"`
	ReleaseDate      *string       `json:"release_date"`
	Material         MetalMaterial `json:"material"`
	InnerDiameter    *float64      `json:"inner_diameter"` // mm
	OuterDiameter    *float64      `json:"outer_diameter"` // mm
	Weight           *float64      `json:"weight"`            // g
	BreakingStrength *float64      `json:"breaking_strength"` // kN
	ISACertified     bool          `json:"isa_certified"`
	Price            *float64      `json:"price"`
	Currency         *Currency     `json:"currency"`
	Description      *string       `json:"description"`
	Version          *string       `json:"version"`
	Notes            *string       `json:"notes"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// LeashRingCreate is the request shape for creating a leash ring.
type LeashRingCreate struct {
	Name             string        `json:"name" binding:"required"`
	BrandID          uint          `json:"brand_id" binding:"required"`
	ReleaseDate      *string       `json:"release_date"`
	Material         MetalMaterial `json:"material"`
	InnerDiameter    *float64      `json:"inner_diameter"`
	OuterDiameter    *float64      `json:"outer_diameter"`
	Weight           *float64      `json:"weight"`
	BreakingStrength *float64      `json:"breaking_strength"`
	ISACertified     bool          `json:"isa_certified"`
	Price            *float64      `json:"price"`
	Currency         *Currency     `json:"currency"`
	Description      *string       `json:"description"`
	Version          *string       `json:"version"`
	Notes            *string       `json:"notes"`
}

func (c *LeashRingCreate) Model() *LeashRing {
	return &LeashRing{
		Name:             c.Name,
		BrandID:          c.BrandID,
		ReleaseDate:      c.ReleaseDate,
		Material:         c.Material,
		InnerDiameter:    c.InnerDiameter,
		OuterDiameter:    c.OuterDiameter,
		Weight:           c.Weight,
		BreakingStrength: c.BreakingStrength,
		ISACertified:     c.ISACertified,
		Price:            c.Price,
		Currency:         c.Currency,
		Description:      c.Description,
		Version:          c.Version,
		Notes:            c.Notes,
	}
}

// LeashRingUpdate is the request shape for partially updating a leash ring.
type LeashRingUpdate struct {
	Name             *string        `json:"name"`
	BrandID          *uint          `json:"brand_id"`
	ReleaseDate      *string        `json:"release_date"`
	Material         *MetalMaterial `json:"material"`
	InnerDiameter    *float64       `json:"inner_diameter"`
	OuterDiameter    *float64       `json:"outer_diameter"`
	Weight           *float64       `json:"weight"`
	BreakingStrength *float64       `json:"breaking_strength"`
	ISACertified     *bool          `json:"isa_certified"`
	Price            *float64       `json:"price"`
	Currency         *Currency      `json:"currency"`
	Description      *string        `json:"description"`
	Version          *string        `json:"version"`
	Notes            *string        `json:"notes"`
}

func (u *LeashRingUpdate) Apply(l *LeashRing) {
	if u.Name != nil {
		l.Name = *u.Name
	}
	if u.BrandID != nil {
		l.BrandID = *u.BrandID
	}
	if u.ReleaseDate != nil {
		l.ReleaseDate = u.ReleaseDate
	}
	if u.Material != nil {
		l.Material = *u.Material
	}
	if u.InnerDiameter != nil {
		l.InnerDiameter = u.InnerDiameter
	}
	if u.OuterDiameter != nil {
		l.OuterDiameter = u.OuterDiameter
	}
	if u.Weight != nil {
		l.Weight = u.Weight
	}
	if u.BreakingStrength != nil {
		l.BreakingStrength = u.BreakingStrength
	}
	if u.ISACertified != nil {
		l.ISACertified = *u.ISACertified
	}
	if u.Price != nil {
		l.Price = u.Price
	}
	if u.Currency != nil {
		l.Currency = u.Currency
	}
	if u.Description != nil {
		l.Description = u.Description
	}
	if u.Version != nil {
		l.Version = u.Version
	}
	if u.Notes != nil {
		l.Notes = u.Notes
	}
}
