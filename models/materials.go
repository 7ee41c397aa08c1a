package models

import "strings"

// MetalMaterial classifies metal hardware (weblocks, rings, grips).
type MetalMaterial string

const (
	MetalAluminum       MetalMaterial = "Aluminum"
	MetalSteel          MetalMaterial = "Steel"
	MetalStainlessSteel MetalMaterial = "Stainless Steel"
	MetalTitanium       MetalMaterial = "Titanium"
	MetalOther          MetalMaterial = "Other"
)

// MetalMaterialFromString maps a free-text material description to a
// MetalMaterial. Unrecognized or empty input maps to MetalOther.
// "stainless" is tested before "steel" so "stainless steel" does not
// fall through to plain steel.
func MetalMaterialFromString(material string) MetalMaterial {
	material = strings.ToLower(material)
	switch {
	case strings.Contains(material, "aluminum"):
		return MetalAluminum
	case strings.Contains(material, "stainless"):
		return MetalStainlessSteel
	case strings.Contains(material, "steel"):
		return MetalSteel
	case strings.Contains(material, "titanium"):
		return MetalTitanium
	default:
		return MetalOther
	}
}

// FiberMaterial classifies webbing fiber.
type FiberMaterial string

const (
	FiberNylon     FiberMaterial = "Nylon"
	FiberPolyester FiberMaterial = "Polyester"
	FiberDyneema   FiberMaterial = "Dyneema"
	FiberVectran   FiberMaterial = "Vectran"
	FiberHybrid    FiberMaterial = "Hybrid"
	FiberOther     FiberMaterial = "Other"
)

// FiberMaterialFromString maps a free-text material description to a
// FiberMaterial. Unrecognized or empty input maps to FiberOther.
// Vendor datasets use "PES" for polyester and "polyamid" for nylon;
// the mixed "PES/polyamid" form must match before either keyword alone.
func FiberMaterialFromString(material string) FiberMaterial {
	material = strings.ToLower(material)
	switch {
	case strings.Contains(material, "pes/polyamid"):
		return FiberHybrid
	case strings.Contains(material, "nylon"), strings.Contains(material, "polyamid"):
		return FiberNylon
	case strings.Contains(material, "polyester"), strings.Contains(material, "pes"):
		return FiberPolyester
	case strings.Contains(material, "dyneema"):
		return FiberDyneema
	case strings.Contains(material, "vectran"):
		return FiberVectran
	default:
		return FiberOther
	}
}

// RollerMaterial classifies roller bodies, which unlike other hardware
// may be plastic.
type RollerMaterial string

const (
	RollerAluminum       RollerMaterial = "Aluminum"
	RollerSteel          RollerMaterial = "Steel"
	RollerStainlessSteel RollerMaterial = "Stainless Steel"
	RollerPlastic        RollerMaterial = "Plastic"
	RollerOther          RollerMaterial = "Other"
)

// RollerMaterialFromString maps a free-text material description to a
// RollerMaterial. Unrecognized or empty input maps to RollerOther.
func RollerMaterialFromString(material string) RollerMaterial {
	material = strings.ToLower(material)
	switch {
	case strings.Contains(material, "aluminum"):
		return RollerAluminum
	case strings.Contains(material, "stainless"):
		return RollerStainlessSteel
	case strings.Contains(material, "steel"):
		return RollerSteel
	case strings.Contains(material, "plastic"), strings.Contains(material, "nylon"):
		return RollerPlastic
	default:
		return RollerOther
	}
}
