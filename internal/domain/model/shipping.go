// Package model defines the core domain entities for the checkout service.
package model

import "github.com/shopspring/decimal"

// Shipping service codes accepted by the rate engine.
const (
	ServiceStandard    = "STANDARD"
	ServiceExpress     = "EXPRESS"
	ServicePickupPoint = "PICKUP_POINT"
	ServiceLocker      = "LOCKER"
)

// Locker delivery limits. Parcels above either limit are repriced
// at the pickup point rate.
const (
	LockerMaxWeightKg = 20.0
	LockerMaxSideCm   = 40.0
)

// CartItem is a single order line as submitted by the storefront.
// Physical attributes are optional; defaults apply when absent.
type CartItem struct {
	// WeightKg is the unit weight in kilograms. Defaults to 1.0 when zero.
	WeightKg float64 `json:"weight_kg" example:"0.5"`
	// LengthCm, WidthCm, HeightCm are the unit dimensions in centimeters.
	// Each defaults to 10 when zero.
	LengthCm float64 `json:"length_cm" example:"20"`
	WidthCm  float64 `json:"width_cm" example:"15"`
	HeightCm float64 `json:"height_cm" example:"10"`
	// UnitPriceCents is the unit price in minor currency units.
	UnitPriceCents int64 `json:"unit_price_cents" example:"2599"`
	// Quantity is the ordered quantity. Defaults to 1 when zero.
	Quantity int `json:"quantity" example:"2"`
}

// Box is one of the fixed standard shipping boxes.
type Box struct {
	Name     string  `json:"name" example:"M"`
	LengthCm float64 `json:"length_cm" example:"40"`
	WidthCm  float64 `json:"width_cm" example:"30"`
	HeightCm float64 `json:"height_cm" example:"20"`
}

// VolumeCm3 returns the box volume in cubic centimeters.
func (b Box) VolumeCm3() float64 {
	return b.LengthCm * b.WidthCm * b.HeightCm
}

// MaxSideCm returns the longest box dimension in centimeters.
func (b Box) MaxSideCm() float64 {
	max := b.LengthCm
	if b.WidthCm > max {
		max = b.WidthCm
	}
	if b.HeightCm > max {
		max = b.HeightCm
	}
	return max
}

// Package is the derived shipping package for a cart. It is recomputed
// per request and never persisted.
type Package struct {
	// WeightKg is the total actual weight, floored at 0.1 kg.
	WeightKg float64 `json:"weight_kg" example:"1.5"`
	// Box is the selected standard box.
	Box Box `json:"box"`
	// DeclaredValue is the order value in euros.
	DeclaredValue decimal.Decimal `json:"declared_value" swaggertype:"string" example:"51.98"`
	// Oversized is set when the summed item volume exceeded the largest box.
	Oversized bool `json:"oversized,omitempty"`
}

// ChargeableWeightKg returns the billable weight: the greater of actual
// weight and the volumetric weight (L*W*H / 5000).
func (p Package) ChargeableWeightKg() float64 {
	volumetric := p.Box.VolumeCm3() / 5000
	if volumetric > p.WeightKg {
		return volumetric
	}
	return p.WeightKg
}

// PricingBreakdown itemizes how a quote price was assembled.
type PricingBreakdown struct {
	BasePriceCents    int64   `json:"base_price_cents" example:"399"`
	SizeMultiplier    float64 `json:"size_multiplier" example:"1"`
	ServiceMultiplier float64 `json:"service_multiplier" example:"1"`
	InsuranceCents    int64   `json:"insurance_cents,omitempty" example:"0"`
	// LockerFallback is set when a LOCKER quote was repriced at the
	// pickup point rate because the package exceeded locker limits.
	LockerFallback bool `json:"locker_fallback,omitempty"`
}

// RateQuote is the result of pricing a package to a destination.
type RateQuote struct {
	PriceCents         int64            `json:"price_cents" example:"399"`
	Currency           string           `json:"currency" example:"EUR"`
	TaxInclusive       bool             `json:"tax_inclusive" example:"false"`
	ChargeableWeightKg float64          `json:"chargeable_weight_kg" example:"0.5"`
	ServiceCode        string           `json:"service_code" example:"STANDARD"`
	Breakdown          PricingBreakdown `json:"breakdown"`
	// Fallback is set when quoting failed internally and the static
	// default price was returned instead.
	Fallback bool `json:"fallback,omitempty"`
}

// PickupPoint is a carrier pickup location. Sourced live from the
// carrier API per request; request-scoped, never persisted.
type PickupPoint struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	Country      string  `json:"country"`
	Zip          string  `json:"zip"`
	Code         string  `json:"code,omitempty"`
	Type         string  `json:"type"` // pickup_point, locker or post_office
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`
	WorkingHours string  `json:"working_hours,omitempty"`
	MaxWeightKg  float64 `json:"max_weight_kg,omitempty"`
	Available    bool    `json:"available"`
}

// Shipment describes a registered carrier shipment.
type Shipment struct {
	TrackingNumber string `json:"tracking_number"`
	LabelURL       string `json:"label_url,omitempty"`
	Carrier        string `json:"carrier" example:"venipak"`
}

// TrackingEvent is a single scan event for a shipment.
type TrackingEvent struct {
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
	Location  string `json:"location,omitempty"`
}
