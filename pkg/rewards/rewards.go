// Package rewards holds the points accrual and redemption arithmetic.
// Everything here is pure so policy changes stay testable in isolation.
package rewards

import (
	"math"

	"streampoint-be/internal/entity"
)

// Defaults used when neither a reward config nor a plan override exists.
const (
	DefaultFirstPurchasePoints = 100
	DefaultRenewalPoints       = 50
	DefaultPointsPerPeso       = 10
	DefaultMinRedeemPoints     = 500
)

// Config is a snapshot of the live reward policy.
type Config struct {
	PointsPerPeso   int
	MinRedeemPoints int
}

// DefaultConfig covers installations that never configured rewards.
func DefaultConfig() Config {
	return Config{
		PointsPerPeso:   DefaultPointsPerPeso,
		MinRedeemPoints: DefaultMinRedeemPoints,
	}
}

// SubscriptionAward is the number of points a validated subscription earns.
// Points-funded subscriptions never earn cashback.
func SubscriptionAward(plan *entity.Plan, firstPurchase bool, method entity.PaymentMethod) int {
	if method == entity.PaymentPoints {
		return 0
	}
	if plan == nil {
		if firstPurchase {
			return DefaultFirstPurchasePoints
		}
		return DefaultRenewalPoints
	}
	if firstPurchase {
		return plan.FirstPurchasePoints
	}
	return plan.RenewalPoints
}

// SuggestedPurchasePoints computes the award proposed to staff when a purchase
// proof is submitted. With a config present the amount drives the suggestion;
// otherwise the plan's own award applies, falling back to the global defaults.
func SuggestedPurchasePoints(amount float64, plan *entity.Plan, cfg *Config, firstPurchase bool) int {
	if cfg != nil {
		return int(math.Floor(amount * float64(cfg.PointsPerPeso)))
	}
	if plan != nil {
		if firstPurchase {
			return plan.FirstPurchasePoints
		}
		return plan.RenewalPoints
	}
	if firstPurchase {
		return DefaultFirstPurchasePoints
	}
	return DefaultRenewalPoints
}

// PointsPrice is how many points fully fund the given peso price.
func PointsPrice(price float64, cfg Config) int {
	return int(math.Ceil(price * float64(cfg.PointsPerPeso)))
}

// PointsValue is the peso value of a number of points.
func PointsValue(points int, cfg Config) float64 {
	if cfg.PointsPerPeso <= 0 {
		return 0
	}
	return float64(points) / float64(cfg.PointsPerPeso)
}

// PaymentBreakdown is the result of splitting a checkout total between the
// points wallet and a cash instrument.
type PaymentBreakdown struct {
	Total         float64
	PointsUsed    int
	PointsValue   float64
	PendingAmount float64
	Method        entity.PaymentMethod
}

// Breakdown computes the checkout split. Zero points used means a pure cash
// payment; points covering the whole total means a pure points payment.
func Breakdown(total float64, pointsUsed int, cfg Config, cashMethod entity.PaymentMethod) PaymentBreakdown {
	value := PointsValue(pointsUsed, cfg)
	if value > total {
		value = total
	}
	pending := total - value

	method := cashMethod
	switch {
	case pointsUsed > 0 && pending > 0:
		method = entity.PaymentMixed
	case pointsUsed > 0:
		method = entity.PaymentPoints
	}

	return PaymentBreakdown{
		Total:         total,
		PointsUsed:    pointsUsed,
		PointsValue:   value,
		PendingAmount: pending,
		Method:        method,
	}
}

// CanRedeem checks both the minimum redemption floor and the wallet balance.
func CanRedeem(points, available int, cfg Config) bool {
	if points <= 0 {
		return false
	}
	if points < cfg.MinRedeemPoints {
		return false
	}
	return points <= available
}
