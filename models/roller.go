package models

import (
	"time"
)

// Roller is a pulley-style device that rides on the webbing.
type Roller struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	Name             string         `json:"name" gorm:"index;not null"`
	BrandID          uint           `json:"brand_id" gorm:"not null"`
	Brand            Brand          `json:"brand" gorm:"foreignKey:BrandID"`
	Material         RollerMaterial `json:"material"`
	WidthMin         int            `json:"width_min"` // mm, compatible webbing width
	WidthMax         int            `json:"width_max"` // mm
	Weight           *float64       `json:"weight"`            // g
	BreakingStrength *float64       `json:"breaking_strength"` // kN
	ISACertified     bool           `json:"isa_certified"`
	Price            *float64       `json:"price"`
	Currency         *Currency      `json:"currency"`
	Description      *string        `json:"description"`
	Version          *string        `json:"version"`
	Notes            *string        `json:"notes"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// RollerCreate is the request shape for creating a roller.
type RollerCreate struct {
	Name             string         `json:"name" binding:"required"`
	BrandID          uint           `json:"brand_id" binding:"required"`
	Material         RollerMaterial `json:"material"`
	WidthMin         int            `json:"width_min"`
	WidthMax         int            `json:"width_max"`
	Weight           *float64       `json:"weight"`
	BreakingStrength *float64       `json:"breaking_strength"`
	ISACertified     bool           `json:"isa_certified"`
	Price            *float64       `json:"price"`
	Currency         *Currency      `json:"currency"`
	Description      *string        `json:"description"`
	Version          *string        `json:"version"`
	Notes            *string        `json:"notes"`
}

func (c *RollerCreate) Model() *Roller {
	return &Roller{
		Name:             c.Name,
		BrandID:          c.BrandID,
		Material:         c.Material,
		WidthMin:         c.WidthMin,
		WidthMax:         c.WidthMax,
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

// RollerUpdate is the request shape for partially updating a roller.
type RollerUpdate struct {
	Name             *string         `json:"name"`
	BrandID          *uint           `json:"brand_id"`
	Material         *RollerMaterial `json:"material"`
	WidthMin         *int            `json:"width_min"`
	WidthMax         *int            `json:"width_max"`
	Weight           *float64        `json:"weight"`
	BreakingStrength *float64        `json:"breaking_strength"`
	ISACertified     *bool           `json:"isa_certified"`
	Price            *float64        `json:"price"`
	Currency         *Currency       `json:"currency"`
	Description      *string         `json:"description"`
	Version          *string         `json:"version"`
	Notes            *string         `json:"notes"`
}

func (u *RollerUpdate) Apply(r *Roller) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.BrandID != nil {
		r.BrandID = *u.BrandID
	}
	if u.Material != nil {
		r.Material = *u.Material
	}
	if u.WidthMin != nil {
		r.WidthMin = *u.WidthMin
	}
	if u.WidthMax != nil {
		r.WidthMax = *u.WidthMax
	}
	if u.Weight != nil {
		r.Weight = u.Weight
	}
	if u.BreakingStrength != nil {
		r.BreakingStrength = u.BreakingStrength
	}
	if u.ISACertified != nil {
		r.ISACertified = *u.ISACertified
	}
	if u.Price != nil {
		r.Price = u.Price
	}
	if u.Currency != nil {
		r.Currency = u.Currency
	}
	if u.Description != nil {
		r.Description = u.Description
	}
	if u.Version != nil {
		r.Version = u.Version
	}
	if u.Notes != nil {
		r.Notes = u.Notes
	}
}
