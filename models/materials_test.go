package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetalMaterialFromString(t *testing.T) {
	cases := []struct {
		input string
		want  MetalMaterial
	}{
		{input: "Aluminum 7075", want: MetalAluminum},
		{input: "stainless steel", want: MetalStainlessSteel},
		{input: "Steel", want: MetalSteel},
		{input: "titanium grade 5", want: MetalTitanium},
		{input: "unknown-alloy", want: MetalOther},
		{input: "", want: MetalOther},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, MetalMaterialFromString(tc.input))
		})
	}
}

func TestFiberMaterialFromString(t *testing.T) {
	cases := []struct {
		input string
		want  FiberMaterial
	}{
		{input: "PES/Polyamid", want: FiberHybrid},
		{input: "Nylon", want: FiberNylon},
		{input: "Polyamid", want: FiberNylon},
		{input: "Polyester", want: FiberPolyester},
		{input: "PES", want: FiberPolyester},
		{input: "Dyneema", want: FiberDyneema},
		{input: "Vectran", want: FiberVectran},
		{input: "hemp", want: FiberOther},
		{input: "", want: FiberOther},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, FiberMaterialFromString(tc.input))
		})
	}
}

func TestRollerMaterialFromString(t *testing.T) {
	assert.Equal(t, RollerPlastic, RollerMaterialFromString("Nylon composite"))
	assert.Equal(t, RollerStainlessSteel, RollerMaterialFromString("Stainless Steel"))
	assert.Equal(t, RollerOther, RollerMaterialFromString("wood"))
}

func TestEnumFallbacks(t *testing.T) {
	assert.Equal(t, FrontPinOther, FrontPinFromString("latch"))
	assert.Equal(t, FrontPinPush, FrontPinFromString("Push Pin"))
	assert.Equal(t, FrontPinCaptive, FrontPinFromString("captive"))

	assert.Equal(t, AttachmentOther, AttachmentPointFromString("velcro"))
	assert.Equal(t, AttachmentUniversal, AttachmentPointFromString("Universal"))
	assert.Equal(t, AttachmentBentPlate, AttachmentPointFromString("bent plate"))
	// "pin" outranks "hole" in combined descriptions
	assert.Equal(t, AttachmentPin, AttachmentPointFromString("pin through hole"))

	assert.Equal(t, ConnectionDyneemaSlingLoop, ConnectionTypeFromString("Dyneema Sling Loop"))
	assert.Equal(t, ConnectionMountingHole, ConnectionTypeFromString("mounting hole"))
	assert.Equal(t, ConnectionOther, ConnectionTypeFromString("carabiner"))
}

func TestTensioningTypeFromString(t *testing.T) {
	cases := []struct {
		input string
		want  TensioningType
	}{
		{input: "RAT2", want: TensioningDoubleRatchet},
		{input: "double ratchet", want: TensioningDoubleRatchet},
		{input: "RAT1", want: TensioningSingleRatchet},
		{input: "ratchet", want: TensioningSingleRatchet},
		{input: "single ratchet", want: TensioningSingleRatchet},
		{input: "primitive", want: TensioningPrimitive},
		{input: "PRIM", want: TensioningPrimitive},
		{input: "pulleys", want: TensioningOther},
		{input: "", want: TensioningOther},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, TensioningTypeFromString(tc.input))
		})
	}
}

func TestPriceUnitFromString(t *testing.T) {
	assert.Equal(t, PriceUnitPair, PriceUnitFromString("per pair"))
	assert.Equal(t, PriceUnitSingle, PriceUnitFromString("each"))
}
