// Package service implements the checkout business logic: package
// derivation, rate quoting, payments and carrier shipments.
package service

import (
	"github.com/shopspring/decimal"

	"github.com/ScriptVenture/checkout-service/internal/domain/model"
)

// Defaults applied to cart items missing physical attributes.
const (
	DefaultItemWeightKg = 1.0
	DefaultItemSideCm   = 10.0
	// MinPackageWeightKg floors the package weight.
	MinPackageWeightKg = 0.1
	// DefaultItemValueCents is the declared value assumed for an empty cart.
	DefaultItemValueCents = 1000
)

// StandardBoxes are the fixed shipping boxes, smallest first. Every
// derived package uses exactly one of these.
var StandardBoxes = []model.Box{
	{Name: "XS", LengthCm: 20, WidthCm: 15, HeightCm: 10},
	{Name: "S", LengthCm: 30, WidthCm: 20, HeightCm: 15},
	{Name: "M", LengthCm: 40, WidthCm: 30, HeightCm: 20},
	{Name: "L", LengthCm: 50, WidthCm: 40, HeightCm: 30},
	{Name: "XL", LengthCm: 60, WidthCm: 50, HeightCm: 40},
}

// PackageBuilder derives a shipping package from cart items.
type PackageBuilder interface {
	BuildPackage(items []model.CartItem) model.Package
}

// PackageBuilderService implements PackageBuilder with the fixed
// standard box set.
type PackageBuilderService struct {
	boxes []model.Box
}

// NewPackageBuilderService creates a package builder.
func NewPackageBuilderService() *PackageBuilderService {
	return &PackageBuilderService{boxes: StandardBoxes}
}

// BuildPackage sums item weight, volume and value, then selects the
// smallest standard box that fits the total volume. An empty cart is
// treated as one default item so quoting still works mid-checkout.
func (s *PackageBuilderService) BuildPackage(items []model.CartItem) model.Package {
	if len(items) == 0 {
		items = []model.CartItem{{
			WeightKg:       DefaultItemWeightKg,
			LengthCm:       DefaultItemSideCm,
			WidthCm:        DefaultItemSideCm,
			HeightCm:       DefaultItemSideCm,
			UnitPriceCents: DefaultItemValueCents,
			Quantity:       1,
		}}
	}

	var totalWeight, totalVolume float64
	var totalValueCents int64

	for _, item := range items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}

		weight := item.WeightKg
		if weight <= 0 {
			weight = DefaultItemWeightKg
		}

		length := orDefault(item.LengthCm)
		width := orDefault(item.WidthCm)
		height := orDefault(item.HeightCm)

		totalWeight += weight * float64(qty)
		totalVolume += length * width * height * float64(qty)
		totalValueCents += item.UnitPriceCents * int64(qty)
	}

	if totalWeight < MinPackageWeightKg {
		totalWeight = MinPackageWeightKg
	}

	box, oversized := s.selectBox(totalVolume)

	return model.Package{
		WeightKg:      totalWeight,
		Box:           box,
		DeclaredValue: decimal.NewFromInt(totalValueCents).Div(decimal.NewFromInt(100)),
		Oversized:     oversized,
	}
}

// selectBox returns the smallest box whose volume fits the items.
// Volumes beyond the largest box still get the largest box, flagged
// oversized.
func (s *PackageBuilderService) selectBox(volumeCm3 float64) (model.Box, bool) {
	for _, box := range s.boxes {
		if volumeCm3 <= box.VolumeCm3() {
			return box, false
		}
	}
	return s.boxes[len(s.boxes)-1], true
}

func orDefault(sideCm float64) float64 {
	if sideCm <= 0 {
		return DefaultItemSideCm
	}
	return sideCm
}
