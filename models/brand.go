package models

import (
	"time"
)

// Brand is a manufacturer of slackline equipment. Brands are created lazily
// the first time a dataset record references them, so only Name is
// guaranteed to be populated.
type Brand struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"type:varchar(200);uniqueIndex;not null"`
	Country          *string   `json:"country"`
	YearFounded      *int      `json:"year_founded"`
	Active           bool      `json:"active"`
	SlacklineFocused bool      `json:"slackline_focused"`
	Website          *string   `json:"website"`
	Socials          *string   `json:"socials"`
	Description      *string   `json:"description"`
	Notes            *string   `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BrandCreate is the request shape for creating a brand.
type BrandCreate struct {
	Name             string  `json:"name" binding:"required"`
	Country          *string `json:"country"`
	YearFounded      *int    `json:"year_founded"`
	Active           *bool   `json:"active"`
	SlacklineFocused *bool   `json:"slackline_focused"`
	Website          *string `json:"website"`
	Socials          *string `json:"socials"`
	Description      *string `json:"description"`
	Notes            *string `json:"notes"`
}

// Model builds a Brand from the create request. Active and
// SlacklineFocused default to true when omitted.
func (c *BrandCreate) Model() *Brand {
	brand := &Brand{
		Name:             c.Name,
		Country:          c.Country,
		YearFounded:      c.YearFounded,
		Active:           true,
		SlacklineFocused: true,
		Website:          c.Website,
		Socials:          c.Socials,
		Description:      c.Description,
		Notes:            c.Notes,
	}
	if c.Active != nil {
		brand.Active = *c.Active
	}
	if c.SlacklineFocused != nil {
		brand.SlacklineFocused = *c.SlacklineFocused
	}
	return brand
}

// BrandUpdate is the request shape for partially updating a brand.
// Unknown fields are rejected at bind time.
type BrandUpdate struct {
	Name             *string `json:"name"`
	Country          *string `json:"country"`
	YearFounded      *int    `json:"year_founded"`
	Active           *bool   `json:"active"`
	SlacklineFocused *bool   `json:"slackline_focused"`
	Website          *string `json:"website"`
	Socials          *string `json:"socials"`
	Description      *string `json:"description"`
	Notes            *string `json:"notes"`
}

// Apply copies the set fields onto an existing brand.
func (u *BrandUpdate) Apply(brand *Brand) {
	if u.Name != nil {
		brand.Name = *u.Name
	}
	if u.Country != nil {
		brand.Country = u.Country
	}
	if u.YearFounded != nil {
		brand.YearFounded = u.YearFounded
	}
	if u.Active != nil {
		brand.Active = *u.Active
	}
	if u.SlacklineFocused != nil {
		brand.SlacklineFocused = *u.SlacklineFocused
	}
	if u.Website != nil {
		brand.Website = u.Website
	}
	if u.Socials != nil {
		brand.Socials = u.Socials
	}
	if u.Description != nil {
		brand.Description = u.Description
	}
	if u.Notes != nil {
		brand.Notes = u.Notes
	}
}
