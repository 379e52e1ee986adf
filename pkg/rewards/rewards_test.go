package rewards

import (
	"testing"

	"streampoint-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionAward(t *testing.T) {
	plan := &entity.Plan{FirstPurchasePoints: 120, RenewalPoints: 60}

	tests := []struct {
		name          string
		plan          *entity.Plan
		firstPurchase bool
		method        entity.PaymentMethod
		expected      int
	}{
		{"first purchase uses plan value", plan, true, entity.PaymentCard, 120},
		{"renewal uses plan value", plan, false, entity.PaymentPSE, 60},
		{"points funded earns nothing", plan, true, entity.PaymentPoints, 0},
		{"points funded renewal earns nothing", plan, false, entity.PaymentPoints, 0},
		{"nil plan falls back to default first", nil, true, entity.PaymentCash, 100},
		{"nil plan falls back to default renewal", nil, false, entity.PaymentCash, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SubscriptionAward(tt.plan, tt.firstPurchase, tt.method))
		})
	}
}

func TestSuggestedPurchasePoints(t *testing.T) {
	plan := &entity.Plan{FirstPurchasePoints: 200, RenewalPoints: 80}
	cfg := &Config{PointsPerPeso: 10, MinRedeemPoints: 500}

	tests := []struct {
		name          string
		amount        float64
		plan          *entity.Plan
		cfg           *Config
		firstPurchase bool
		expected      int
	}{
		{"config drives suggestion", 32900, plan, cfg, true, 329000},
		{"config floors fractional result", 10.59, nil, cfg, true, 105},
		{"no config uses plan first purchase", 32900, plan, nil, true, 200},
		{"no config uses plan renewal", 32900, plan, nil, false, 80},
		{"no config no plan defaults first", 5000, nil, nil, true, 100},
		{"no config no plan defaults renewal", 5000, nil, nil, false, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SuggestedPurchasePoints(tt.amount, tt.plan, tt.cfg, tt.firstPurchase))
		})
	}
}

func TestPointsPriceAndValue(t *testing.T) {
	cfg := Config{PointsPerPeso: 10, MinRedeemPoints: 500}

	assert.Equal(t, 329000, PointsPrice(32900, cfg))
	assert.Equal(t, 105, PointsPrice(10.5, cfg))
	assert.InDelta(t, 10000.0, PointsValue(100000, cfg), 0.001)
	assert.Zero(t, PointsValue(500, Config{PointsPerPeso: 0}))
}

func TestBreakdown(t *testing.T) {
	cfg := Config{PointsPerPeso: 10, MinRedeemPoints: 500}

	t.Run("full points payment", func(t *testing.T) {
		b := Breakdown(32900, 329000, cfg, entity.PaymentCard)
		assert.Equal(t, entity.PaymentPoints, b.Method)
		assert.InDelta(t, 32900.0, b.PointsValue, 0.001)
		assert.InDelta(t, 0.0, b.PendingAmount, 0.001)
	})

	t.Run("mixed payment", func(t *testing.T) {
		b := Breakdown(32900, 100000, cfg, entity.PaymentCard)
		assert.Equal(t, entity.PaymentMixed, b.Method)
		assert.InDelta(t, 10000.0, b.PointsValue, 0.001)
		assert.InDelta(t, 22900.0, b.PendingAmount, 0.001)
	})

	t.Run("pure cash keeps instrument", func(t *testing.T) {
		b := Breakdown(32900, 0, cfg, entity.PaymentPSE)
		assert.Equal(t, entity.PaymentPSE, b.Method)
		assert.Zero(t, b.PointsValue)
		assert.InDelta(t, 32900.0, b.PendingAmount, 0.001)
	})

	t.Run("points value capped at total", func(t *testing.T) {
		b := Breakdown(1000, 50000, cfg, entity.PaymentCard)
		assert.InDelta(t, 1000.0, b.PointsValue, 0.001)
		assert.InDelta(t, 0.0, b.PendingAmount, 0.001)
		assert.Equal(t, entity.PaymentPoints, b.Method)
	})
}

func TestCanRedeem(t *testing.T) {
	cfg := Config{PointsPerPeso: 10, MinRedeemPoints: 500}

	tests := []struct {
		name      string
		points    int
		available int
		expected  bool
	}{
		{"below minimum", 400, 100000, false},
		{"exactly minimum", 500, 100000, true},
		{"insufficient balance", 1000, 999, false},
		{"exact balance", 1000, 1000, true},
		{"zero points", 0, 100000, false},
		{"negative points", -100, 100000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanRedeem(tt.points, tt.available, cfg))
		})
	}
}
