package models

import (
	"strings"
	"time"
)

// FrontPin is the pin mechanism closing the front of a weblock.
type FrontPin string

const (
	FrontPinPush    FrontPin = "Push Pin"
	FrontPinPull    FrontPin = "Pull Pin"
	FrontPinCaptive FrontPin = "Captive Pin"
	FrontPinFixed   FrontPin = "Fixed Bolt"
	FrontPinOther   FrontPin = "Other"
)

// FrontPinFromString maps a free-text pin description to a FrontPin.
func FrontPinFromString(pinType string) FrontPin {
	pinType = strings.ToLower(pinType)
	switch {
	case strings.Contains(pinType, "push"):
		return FrontPinPush
	case strings.Contains(pinType, "pull"):
		return FrontPinPull
	case strings.Contains(pinType, "captive"):
		return FrontPinCaptive
	case strings.Contains(pinType, "fixed"):
		return FrontPinFixed
	default:
		return FrontPinOther
	}
}

// AttachmentPoint is how a weblock connects to the anchor side.
type AttachmentPoint string

const (
	AttachmentUniversal AttachmentPoint = "Universal"
	AttachmentPin       AttachmentPoint = "Pin"
	AttachmentBolt      AttachmentPoint = "Bolt"
	AttachmentBentPlate AttachmentPoint = "Bent Plate"
	AttachmentSling     AttachmentPoint = "Sling"
	AttachmentHole      AttachmentPoint = "Hole"
	AttachmentOther     AttachmentPoint = "Other"
)

// AttachmentPointFromString maps a free-text attachment description to an
// AttachmentPoint. "pin" is tested before "bolt" and "hole" so combined
// descriptions resolve to the more specific mechanism.
func AttachmentPointFromString(attachmentType string) AttachmentPoint {
	attachmentType = strings.ToLower(attachmentType)
	switch {
	case strings.Contains(attachmentType, "universal"):
		return AttachmentUniversal
	case strings.Contains(attachmentType, "pin"):
		return AttachmentPin
	case strings.Contains(attachmentType, "bolt"):
		return AttachmentBolt
	case strings.Contains(attachmentType, "bent"):
		return AttachmentBentPlate
	case strings.Contains(attachmentType, "sling"):
		return AttachmentSling
	case strings.Contains(attachmentType, "hole"):
		return AttachmentHole
	default:
		return AttachmentOther
	}
}

// Weblock is a metal connector joining webbing to an anchor.
type Weblock struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	Name             string          `json:"name" gorm:"index;not null"`
	BrandID          uint            `json:"brand_id" gorm:"not null"`
	Brand            Brand           `json:"brand" gorm:"foreignKey:BrandID"`
	Material         MetalMaterial   `json:"material"`
	WidthMin         int             `json:"width_min"` // mm, compatible webbing width
	WidthMax         int             `json:"width_max"` // mm
	Weight           *float64        `json:"weight"`            // g
	BreakingStrength *float64        `json:"breaking_strength"` // kN
	FrontPin         FrontPin        `json:"front_pin"`
	AttachmentPoint  AttachmentPoint `json:"attachment_point"`
	ISACertified     bool            `json:"isa_certified"`
	Price            *float64        `json:"price"`
	Currency         Currency        `json:"currency"`
	Description      *string         `json:"description"`
	Version          *string         `json:"version"`
	Notes            *string         `json:"notes"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// WeblockCreate is the request shape for creating a weblock.
type WeblockCreate struct {
	Name             string          `json:"name" binding:"required"`
	BrandID          uint            `json:"brand_id" binding:"required"`
	Material         MetalMaterial   `json:"material"`
	WidthMin         int             `json:"width_min"`
	WidthMax         int             `json:"width_max"`
	Weight           *float64        `json:"weight"`
	BreakingStrength *float64        `json:"breaking_strength"`
	FrontPin         FrontPin        `json:"front_pin"`
	AttachmentPoint  AttachmentPoint `json:"attachment_point"`
	ISACertified     bool            `json:"isa_certified"`
	Price            *float64        `json:"price"`
	Currency         Currency        `json:"currency"`
	Description      *string         `json:"description"`
	Version          *string         `json:"version"`
	Notes            *string         `json:"notes"`
}

func (c *WeblockCreate) Model() *Weblock {
	return &Weblock{
		Name:             c.Name,
		BrandID:          c.BrandID,
		Material:         c.Material,
		WidthMin:         c.WidthMin,
		WidthMax:         c.WidthMax,
		Weight:           c.Weight,
		BreakingStrength: c.BreakingStrength,
		FrontPin:         c.FrontPin,
		AttachmentPoint:  c.AttachmentPoint,
		ISACertified:     c.ISACertified,
		Price:            c.Price,
		Currency:         c.Currency,
		Description:      c.Description,
		Version:          c.Version,
		Notes:            c.Notes,
	}
}

// WeblockUpdate is the request shape for partially updating a weblock.
type WeblockUpdate struct {
	Name             *string          `json:"name"`
	BrandID          *uint            `json:"brand_id"`
	Material         *MetalMaterial   `json:"material"`
	WidthMin         *int             `json:"width_min"`
	WidthMax         *int             `json:"width_max"`
	Weight           *float64         `json:"weight"`
	BreakingStrength *float64         `json:"breaking_strength"`
	FrontPin         *FrontPin        `json:"front_pin"`
	AttachmentPoint  *AttachmentPoint `json:"attachment_point"`
	ISACertified     *bool            `json:"isa_certified"`
	Price            *float64         `json:"price"`
	Currency         *Currency        `json:"currency"`
	Description      *string          `json:"description"`
	Version          *string          `json:"version"`
	Notes            *string          `json:"notes"`
}

func (u *WeblockUpdate) Apply(w *Weblock) {
	if u.Name != nil {
		w.Name = *u.Name
	}
	if u.BrandID != nil {
		w.BrandID = *u.BrandID
	}
	if u.Material != nil {
		w.Material = *u.Material
	}
	if u.WidthMin != nil {
		w.WidthMin = *u.WidthMin
	}
	if u.WidthMax != nil {
		w.WidthMax = *u.WidthMax
	}
	if u.Weight != nil {
		w.Weight = u.Weight
	}
	if u.BreakingStrength != nil {
		w.BreakingStrength = u.BreakingStrength
	}
	if u.FrontPin != nil {
		w.FrontPin = *u.FrontPin
	}
	if u.AttachmentPoint != nil {
		w.AttachmentPoint = *u.AttachmentPoint
	}
	if u.ISACertified != nil {
		w.ISACertified = *u.ISACertified
	}
	if u.Price != nil {
		w.Price = u.Price
	}
	if u.Currency != nil {
		w.Currency = *u.Currency
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
