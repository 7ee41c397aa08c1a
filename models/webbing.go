package models

import (
	"time"
)

// Webbing is the flat fiber strap walked on, categorized by fiber
// material and width.
type Webbing struct {
	ID               uint          `json:"id" gorm:"primaryKey"`
	Name             string        `json:"name" gorm:"index;not null"`
	BrandID          uint          `json:"brand_id" gorm:"not null"`
	Brand            Brand         `json:"brand" gorm:"foreignKey:BrandID"`
	Material         FiberMaterial `json:"material"`
	Width            int           `json:"width"`  // mm
	Weight           float64       `json:"weight"` // g/m
	BreakingStrength *float64      `json:"breaking_strength"` // kN
	Stretch          *float64      `json:"stretch"`           // % at 10 kN
	ISACertified     bool          `json:"isa_certified"`
	Price            *float64      `json:"price"`
	Currency         *Currency     `json:"currency"`
	Description      *string       `json:"description"`
	Version          *string       `json:"version"`
	Notes            *string       `json:"notes"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// WebbingCreate is the request shape for creating a webbing.
type WebbingCreate struct {
	Name             string        `json:"name" binding:"required"`
	BrandID          uint          `json:"brand_id" binding:"required"`
	Material         FiberMaterial `json:"material"`
	Width            int           `json:"width"`
	Weight           float64       `json:"weight"`
	BreakingStrength *float64      `json:"breaking_strength"`
	Stretch          *float64      `json:"stretch"`
	ISACertified     bool          `json:"isa_certified"`
	Price            *float64      `json:"price"`
	Currency         *Currency     `json:"currency"`
	Description      *string       `json:"description"`
	Version          *string       `json:"version"`
	Notes            *string       `json:"notes"`
}

func (c *WebbingCreate) Model() *Webbing {
	return &Webbing{
		Name:             c.Name,
		BrandID:          c.BrandID,
		Material:         c.Material,
		Width:            c.Width,
		Weight:           c.Weight,
		BreakingStrength: c.BreakingStrength,
		Stretch:          c.Stretch,
		ISACertified:     c.ISACertified,
		Price:            c.Price,
		Currency:         c.Currency,
		Description:      c.Description,
		Version:          c.Version,
		Notes:            c.Notes,
	}
}

// WebbingUpdate is the request shape for partially updating a webbing.
type WebbingUpdate struct {
	Name             *string        `json:"name"`
	BrandID          *uint          `json:"brand_id"`
	Material         *FiberMaterial `json:"material"`
	Width            *int           `json:"width"`
	Weight           *float64       `json:"weight"`
	BreakingStrength *float64       `json:"breaking_strength"`
	Stretch          *float64       `json:"stretch"`
	ISACertified     *bool          `json:"isa_certified"`
	Price            *float64       `json:"price"`
	Currency         *Currency      `json:"currency"`
	Description      *string        `json:"description"`
	Version          *string        `json:"version"`
	Notes            *string        `json:"notes"`
}

func (u *WebbingUpdate) Apply(w *Webbing) {
	if u.Name != nil {
		w.Name = *u.Name
	}
	if u.BrandID != nil {
		w.BrandID = *u.BrandID
	}
	if u.Material != nil {
		w.Material = *u.Material
	}
	if u.Width != nil {
		w.Width = *u.Width
	}
	if u.Weight != nil {
		w.Weight = *u.Weight
	}
	if u.BreakingStrength != nil {
		w.BreakingStrength = u.BreakingStrength
	}
	if u.Stretch != nil {
		w.Stretch = u.Stretch
	}
	if u.ISACertified != nil {
		w.ISACertified = *u.ISACertified
	}
	if u.Price != nil {
		w.Price = u.Price
	}
	if u.Currency != nil {
		w.Currency = u.Currency
	}
	if u.Description != nil {
		w.Description = u.Description
	}
	if u.Version != nil {
		w.Version = u.Version
	}
	if u.Notes != nil {
		w.Notes = u.Notes
	}
}
