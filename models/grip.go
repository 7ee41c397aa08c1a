package models

import (
	"strings"
	"time"
)

// ConnectionType is how a grip connects to the tensioning system.
type ConnectionType string

const (
	ConnectionDyneemaSlingLoop ConnectionType = "Dyneema Sling Loop"
	ConnectionMountingHole     ConnectionType = "Mounting Hole"
	ConnectionOther            ConnectionType = "Other"
)

// ConnectionTypeFromString maps a free-text connection description to a
// ConnectionType.
func ConnectionTypeFromString(connectionType string) ConnectionType {
	connectionType = strings.ToLower(connectionType)
	switch {
	case strings.Contains(connectionType, "dyneema sling loop"):
		return ConnectionDyneemaSlingLoop
	case strings.Contains(connectionType, "mounting hole"):
		return ConnectionMountingHole
	default:
		return ConnectionOther
	}
}

// Grip is a webbing grab used for pulling slack out of a line.
type Grip struct {
	ID                      uint           `json:"id" gorm:"primaryKey"`
	Name                    string         `json:"name" gorm:"index;not null"`
	BrandID                 uint           `json:"brand_id" gorm:"not null"`
	Brand                   Brand          `json:"brand" gorm:"foreignKey:BrandID"`
	ReleaseDate             *string        `json:"release_date"`
	ProductURL              *string        `json:"product_url"`
	Material                MetalMaterial  `json:"material"`
	WidthMin                int            `json:"width_min"` // mm
	WidthMax                *int           `json:"width_max"` // mm
	Weight                  *float64       `json:"weight"` // g
	WLL                     *float64       `json:"wll"`    // kN
	MBS                     *float64       `json:"mbs"`    // kN
	CommonSlippingThreshold *float64       `json:"common_slipping_threshold"` // kN
	ConnectionType          ConnectionType `json:"connection_type"`
	ISACertified            bool           `json:"isa_certified"`
	Price                   *float64       `json:"price"`
	Currency                *Currency      `json:"currency"`
	Description             *string        `json:"description"`
	Version                 *string        `json:"version"`
	Notes                   *string        `json:"notes"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
}

// GripCreate is the request shape for creating a grip.
type GripCreate struct {
	Name                    string         `json:"name" binding:"required"`
	BrandID                 uint           `json:"brand_id" binding:"required"`
	ReleaseDate             *string        `json:"release_date"`
	ProductURL              *string        `json:"product_url"`
	Material                MetalMaterial  `json:"material"`
	WidthMin                int            `json:"width_min"`
	WidthMax                *int           `json:"width_max"`
	Weight                  *float64       `json:"weight"`
	WLL                     *float64       `json:"wll"`
	MBS                     *float64       `json:"mbs"`
	CommonSlippingThreshold *float64       `json:"common_slipping_threshold"`
	ConnectionType          ConnectionType `json:"connection_type"`
	ISACertified            bool           `json:"isa_certified"`
	Price                   *float64       `json:"price"`
	Currency                *Currency      `json:"currency"`
	Description             *string        `json:"description"`
	Version                 *string        `json:"version"`
	Notes                   *string        `json:"notes"`
}

func (c *GripCreate) Model() *Grip {
	return &Grip{
		Name:                    c.Name,
		BrandID:                 c.BrandID,
		ReleaseDate:             c.ReleaseDate,
		ProductURL:              c.ProductURL,
		Material:                c.Material,
		WidthMin:                c.WidthMin,
		WidthMax:                c.WidthMax,
		Weight:                  c.Weight,
		WLL:                     c.WLL,
		MBS:                     c.MBS,
		CommonSlippingThreshold: c.CommonSlippingThreshold,
		ConnectionType:          c.ConnectionType,
		ISACertified:            c.ISACertified,
		Price:                   c.Price,
		Currency:                c.Currency,
		Description:             c.Description,
		Version:                 c.Version,
		Notes:                   c.Notes,
	}
}

// GripUpdate is the request shape for partially updating a grip.
type GripUpdate struct {
	Name                    *string         `json:"name"`
	BrandID                 *uint           `json:"brand_id"`
	ReleaseDate             *string         `json:"release_date"`
	ProductURL              *string         `json:"product_url"`
	Material                *MetalMaterial  `json:"material"`
	WidthMin                *int            `json:"width_min"`
	WidthMax                *int            `json:"width_max"`
	Weight                  *float64        `json:"weight"`
	WLL                     *float64        `json:"wll"`
	MBS                     *float64        `json:"mbs"`
	CommonSlippingThreshold *float64        `json:"common_slipping_threshold"`
	ConnectionType          *ConnectionType `json:"connection_type"`
	ISACertified            *bool           `json:"isa_certified"`
	Price                   *float64        `json:"price"`
	Currency                *Currency       `json:"currency"`
	Description             *string         `json:"description"`
	Version                 *string         `json:"version"`
	Notes                   *string         `json:"notes"`
}

func (u *GripUpdate) Apply(g *Grip) {
	if u.Name != nil {
		g.Name = *u.Name
	}
	if u.BrandID != nil {
		g.BrandID = *u.BrandID
	}
	if u.ReleaseDate != nil {
		g.ReleaseDate = u.ReleaseDate
	}
	if u.ProductURL != nil {
		g.ProductURL = u.ProductURL
	}
	if u.Material != nil {
		g.Material = *u.Material
	}
	if u.WidthMin != nil {
		g.WidthMin = *u.WidthMin
	}
	if u.WidthMax != nil {
		g.WidthMax = u.WidthMax
	}
	if u.Weight != nil {
		g.Weight = u.Weight
	}
	if u.WLL != nil {
		g.WLL = u.WLL
	}
	if u.MBS != nil {
		g.MBS = u.MBS
	}
	if u.CommonSlippingThreshold != nil {
		g.CommonSlippingThreshold = u.CommonSlippingThreshold
	}
	if u.ConnectionType != nil {
		g.ConnectionType = *u.ConnectionType
	}
	if u.ISACertified != nil {
		g.ISACertified = *u.ISACertified
	}
	if u.Price != nil {
		g.Price = u.Price
	}
	if u.Currency != nil {
		g.Currency = u.Currency
	}
	if u.Description != nil {
		g.Description = u.Description
	}
	if u.Version != nil {
		g.Version = u.Version
	}
	if u.Notes != nil {
		g.Notes = u.Notes
	}
}
