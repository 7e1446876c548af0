package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScriptVenture/checkout-service/internal/domain/model"
	"github.com/ScriptVenture/checkout-service/internal/service"
)

func xsPackage(weightKg float64) model.Package {
	return model.Package{
		WeightKg:      weightKg,
		Box:           model.Box{Name: "XS", LengthCm: 20, WidthCm: 15, HeightCm: 10},
		DeclaredValue: decimal.NewFromInt(50),
	}
}

func TestRateEngine_Quote(t *testing.T) {
	engine := service.NewRateEngineService()

	tests := []struct {
		name        string
		pkg         model.Package
		country     string
		serviceCode string
		expected    int64
	}{
		{
			name:        "small domestic standard",
			pkg:         xsPackage(0.5),
			country:     "LT",
			serviceCode: model.ServiceStandard,
			expected:    399,
		},
		{
			name:        "small domestic express",
			pkg:         xsPackage(0.5),
			country:     "LT",
			serviceCode: model.ServiceExpress,
			expected:    599,
		},
		{
			name:        "small international standard",
			pkg:         xsPackage(0.5),
			country:     "DE",
			serviceCode: model.ServiceStandard,
			expected:    899,
		},
		{
			name:        "latvia and estonia price domestic",
			pkg:         xsPackage(0.5),
			country:     "LV",
			serviceCode: model.ServiceStandard,
			expected:    399,
		},
		{
			name:        "empty service defaults to standard",
			pkg:         xsPackage(0.5),
			country:     "EE",
			serviceCode: "",
			expected:    399,
		},
		{
			name:        "lowercase country accepted",
			pkg:         xsPackage(0.5),
			country:     "lt",
			serviceCode: model.ServiceStandard,
			expected:    399,
		},
		{
			name:        "pickup point discount",
			pkg:         xsPackage(0.5),
			country:     "LT",
			serviceCode: model.ServicePickupPoint,
			expected:    339, // round(399 * 0.85)
		},
		{
			name:        "locker discount",
			pkg:         xsPackage(0.5),
			country:     "LT",
			serviceCode: model.ServiceLocker,
			expected:    299, // round(399 * 0.75)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := engine.Quote(tt.pkg, tt.country, tt.serviceCode)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, quote.PriceCents)
			assert.Equal(t, "EUR", quote.Currency)
			assert.False(t, quote.TaxInclusive)
			assert.False(t, quote.Fallback)
		})
	}
}

func TestRateEngine_WeightTiers(t *testing.T) {
	engine := service.NewRateEngineService()

	// Small box keeps volumetric weight below the actual weight so the
	// tier is driven by the actual weight alone.
	tests := []struct {
		weightKg float64
		expected int64
	}{
		{1, 399},
		{1.01, 499},
		{2, 499},
		{4.5, 699},
		{10, 999},
		{15, 1499},
		{30, 1999},
		{31, 2999},
		{80, 2999},
	}

	for _, tt := range tests {
		quote, err := engine.Quote(xsPackage(tt.weightKg), "LT", model.ServiceStandard)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, quote.PriceCents, "weight %.2f kg", tt.weightKg)
	}
}

func TestRateEngine_VolumetricWeight(t *testing.T) {
	engine := service.NewRateEngineService()

	// M box is 24000 cm3 so the volumetric weight is 4.8 kg; a light
	// parcel in it is billed into the 5 kg tier.
	pkg := model.Package{
		WeightKg:      0.5,
		Box:           model.Box{Name: "M", LengthCm: 40, WidthCm: 30, HeightCm: 20},
		DeclaredValue: decimal.NewFromInt(50),
	}

	quote, err := engine.Quote(pkg, "LT", model.ServiceStandard)
	require.NoError(t, err)
	assert.InDelta(t, 4.8, quote.ChargeableWeightKg, 1e-9)
	assert.Equal(t, int64(699), quote.PriceCents)
}

func TestRateEngine_LockerFallback(t *testing.T) {
	engine := service.NewRateEngineService()

	t.Run("overweight parcel repriced at pickup rate", func(t *testing.T) {
		pkg := model.Package{
			WeightKg:      25,
			Box:           model.Box{Name: "S", LengthCm: 30, WidthCm: 20, HeightCm: 15},
			DeclaredValue: decimal.NewFromInt(50),
		}

		quote, err := engine.Quote(pkg, "LT", model.ServiceLocker)
		require.NoError(t, err)
		assert.True(t, quote.Breakdown.LockerFallback)
		assert.Equal(t, model.ServicePickupPoint, quote.ServiceCode)
		// 25 kg tier is 1999; pickup multiplier 0.85.
		assert.Equal(t, int64(1699), quote.PriceCents)
	})

	t.Run("oversized parcel repriced at pickup rate", func(t *testing.T) {
		pkg := model.Package{
			WeightKg:      2,
			Box:           model.Box{Name: "L", LengthCm: 50, WidthCm: 40, HeightCm: 30},
			DeclaredValue: decimal.NewFromInt(50),
		}

		quote, err := engine.Quote(pkg, "LT", model.ServiceLocker)
		require.NoError(t, err)
		assert.True(t, quote.Breakdown.LockerFallback)
		assert.Equal(t, model.ServicePickupPoint, quote.ServiceCode)
	})

	t.Run("parcel within limits keeps locker rate", func(t *testing.T) {
		quote, err := engine.Quote(xsPackage(1), "LT", model.ServiceLocker)
		require.NoError(t, err)
		assert.False(t, quote.Breakdown.LockerFallback)
		assert.Equal(t, model.ServiceLocker, quote.ServiceCode)
	})
}

func TestRateEngine_Insurance(t *testing.T) {
	engine := service.NewRateEngineService()

	withValue := func(eur string) model.Package {
		pkg := xsPackage(0.5)
		pkg.DeclaredValue = decimal.RequireFromString(eur)
		return pkg
	}

	tests := []struct {
		name              string
		declaredEur       string
		expectedInsurance int64
	}{
		{"below threshold", "50", 0},
		{"at threshold", "100", 0},
		{"just above threshold", "150", 150},
		{"one percent", "250.50", 251},
		{"capped at five euros", "800", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := engine.Quote(withValue(tt.declaredEur), "LT", model.ServiceStandard)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedInsurance, quote.Breakdown.InsuranceCents)
			assert.Equal(t, int64(399)+tt.expectedInsurance, quote.PriceCents)
		})
	}

	t.Run("insurance applies after service multiplier", func(t *testing.T) {
		quote, err := engine.Quote(withValue("200"), "LT", model.ServiceExpress)
		require.NoError(t, err)
		// round(399 * 1.5) + 200, not round((399 + 200) * 1.5)
		assert.Equal(t, int64(599+200), quote.PriceCents)
	})
}

func TestRateEngine_InvalidInput(t *testing.T) {
	engine := service.NewRateEngineService()

	t.Run("bad country", func(t *testing.T) {
		_, err := engine.Quote(xsPackage(1), "LTU", model.ServiceStandard)
		assert.Error(t, err)

		_, err = engine.Quote(xsPackage(1), "", model.ServiceStandard)
		assert.Error(t, err)
	})

	t.Run("unknown service code", func(t *testing.T) {
		_, err := engine.Quote(xsPackage(1), "LT", "DRONE")
		assert.Error(t, err)
	})
}

func TestDefaultQuote(t *testing.T) {
	quote := service.DefaultQuote("")

	assert.Equal(t, int64(service.DefaultRateCents), quote.PriceCents)
	assert.Equal(t, "EUR", quote.Currency)
	assert.Equal(t, model.ServiceStandard, quote.ServiceCode)
	assert.True(t, quote.Fallback)

	express := service.DefaultQuote("express")
	assert.Equal(t, model.ServiceExpress, express.ServiceCode)
	assert.Equal(t, int64(service.DefaultRateCents), express.PriceCents)
}
