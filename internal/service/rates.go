package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ScriptVenture/checkout-service/internal/domain/model"
)

// Pricing constants.
const (
	// DefaultRateCents is the fail-open price when quoting errors out.
	DefaultRateCents = 399
	// QuoteCurrency is the only currency the rate engine prices in.
	QuoteCurrency = "EUR"

	// Size surcharge thresholds on the longest box side.
	largeSideCm     = 80.0
	largeMultiplier = 1.25
	hugeSideCm      = 120.0
	hugeMultiplier  = 1.5

	// Insurance applies above this declared value, at 1% capped at €5.
	insuranceThresholdEur = 100
	insuranceRate         = 0.01
	insuranceCapCents     = 500
)

// domesticCountries are destinations priced on the domestic tariff.
var domesticCountries = map[string]bool{
	"LT": true,
	"LV": true,
	"EE": true,
}

// weightTiersKg are the tier upper bounds; weights above the last
// bound fall into the final open tier.
var weightTiersKg = []float64{1, 2, 5, 10, 20, 30}

// Base prices in cents per weight tier (one extra entry for the open
// tier above the last bound).
var (
	domesticTierCents      = []int64{399, 499, 699, 999, 1499, 1999, 2999}
	internationalTierCents = []int64{899, 1099, 1499, 1999, 2999, 3999, 5999}
)

// serviceMultipliers scale the base price per delivery service.
var serviceMultipliers = map[string]float64{
	model.ServiceStandard:    1.0,
	model.ServiceExpress:     1.5,
	model.ServicePickupPoint: 0.85,
	model.ServiceLocker:      0.75,
}

// RateEngine prices a package to a destination.
type RateEngine interface {
	Quote(pkg model.Package, destinationCountry, serviceCode string) (model.RateQuote, error)
}

// RateEngineService implements RateEngine with the tiered tariff.
type RateEngineService struct{}

// NewRateEngineService creates a rate engine.
func NewRateEngineService() *RateEngineService {
	return &RateEngineService{}
}

// Quote prices a package. The price is assembled in a fixed order:
// tier base price, size surcharge, service multiplier, insurance.
func (s *RateEngineService) Quote(pkg model.Package, destinationCountry, serviceCode string) (model.RateQuote, error) {
	country := strings.ToUpper(strings.TrimSpace(destinationCountry))
	if len(country) != 2 {
		return model.RateQuote{}, fmt.Errorf("invalid destination country %q", destinationCountry)
	}

	service := strings.ToUpper(strings.TrimSpace(serviceCode))
	if service == "" {
		service = model.ServiceStandard
	}
	serviceMultiplier, ok := serviceMultipliers[service]
	if !ok {
		return model.RateQuote{}, fmt.Errorf("unknown service code %q", serviceCode)
	}

	breakdown := model.PricingBreakdown{ServiceMultiplier: serviceMultiplier}

	// Locker parcels above the size or weight limits are repriced at
	// the pickup point rate instead.
	if service == model.ServiceLocker && exceedsLockerLimits(pkg) {
		service = model.ServicePickupPoint
		serviceMultiplier = serviceMultipliers[service]
		breakdown.ServiceMultiplier = serviceMultiplier
		breakdown.LockerFallback = true
	}

	chargeableWeight := pkg.ChargeableWeightKg()
	basePriceCents := tierPrice(chargeableWeight, country)
	breakdown.BasePriceCents = basePriceCents

	breakdown.SizeMultiplier = sizeMultiplier(pkg.Box)

	price := float64(basePriceCents) * breakdown.SizeMultiplier * serviceMultiplier
	priceCents := int64(math.Round(price))

	breakdown.InsuranceCents = insuranceCents(pkg.DeclaredValue)
	priceCents += breakdown.InsuranceCents

	if priceCents < 0 {
		priceCents = 0
	}

	return model.RateQuote{
		PriceCents:         priceCents,
		Currency:           QuoteCurrency,
		TaxInclusive:       false,
		ChargeableWeightKg: chargeableWeight,
		ServiceCode:        service,
		Breakdown:          breakdown,
	}, nil
}

// tierPrice returns the base price for a chargeable weight and
// destination.
func tierPrice(weightKg float64, country string) int64 {
	table := internationalTierCents
	if domesticCountries[country] {
		table = domesticTierCents
	}

	for i, bound := range weightTiersKg {
		if weightKg <= bound {
			return table[i]
		}
	}
	return table[len(table)-1]
}

// sizeMultiplier returns the surcharge for the longest box side.
func sizeMultiplier(box model.Box) float64 {
	side := box.MaxSideCm()
	switch {
	case side > hugeSideCm:
		return hugeMultiplier
	case side > largeSideCm:
		return largeMultiplier
	default:
		return 1.0
	}
}

// insuranceCents returns the insurance fee for a declared value: 1% of
// the value, capped at €5, only above the €100 threshold.
func insuranceCents(declaredValue decimal.Decimal) int64 {
	if declaredValue.LessThanOrEqual(decimal.NewFromInt(insuranceThresholdEur)) {
		return 0
	}

	fee := declaredValue.
		Mul(decimal.NewFromFloat(insuranceRate)).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	if fee > insuranceCapCents {
		return insuranceCapCents
	}
	return fee
}

// exceedsLockerLimits reports whether a package is too heavy or too
// long for locker delivery.
func exceedsLockerLimits(pkg model.Package) bool {
	return pkg.WeightKg > model.LockerMaxWeightKg || pkg.Box.MaxSideCm() > model.LockerMaxSideCm
}

// DefaultQuote is the fail-open quote used when the engine errors.
func DefaultQuote(serviceCode string) model.RateQuote {
	service := strings.ToUpper(strings.TrimSpace(serviceCode))
	if service == "" {
		service = model.ServiceStandard
	}
	return model.RateQuote{
		PriceCents:   DefaultRateCents,
		Currency:     QuoteCurrency,
		TaxInclusive: false,
		ServiceCode:  service,
		Fallback:     true,
		Breakdown: model.PricingBreakdown{
			BasePriceCents:    DefaultRateCents,
			SizeMultiplier:    1.0,
			ServiceMultiplier: 1.0,
		},
	}
}
