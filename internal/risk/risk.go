// Package risk implements the weighted-rule transaction risk scorer.
//
// A submission is evaluated against a fixed additive rule table over five
// dimensions: amount, hour of day, location tier, payment method, and
// customer age (plus a small device surcharge). Rules within a dimension are
// mutually exclusive; points across dimensions accumulate. The final score is
// capped at 98 and mapped onto three classification bands.
package risk

// Location is the coarse location risk tier of a submission.
type Location string

const (
	LocationLow    Location = "low"
	LocationMedium Location = "medium"
	LocationHigh   Location = "high"
)

// Device identifies the device class a transaction originated from.
type Device string

const (
	DeviceMobile Device = "mobile"
	DeviceOther  Device = "other"
)

// PaymentMethod identifies how a transaction is funded.
type PaymentMethod string

const (
	PaymentCrypto PaymentMethod = "crypto"
	PaymentOther  PaymentMethod = "other"
)

// Classification is the risk band a score falls into.
type Classification string

const (
	ClassificationLow    Classification = "low-risk"
	ClassificationMedium Classification = "medium-risk"
	ClassificationHigh   Classification = "high-risk"
)

// Impact is the qualitative contribution of a single factor.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Tier is the display badge grouping for a score. Badge tiers use their own
// thresholds (80/50), deliberately distinct from classification bands (70/40).
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Classification band thresholds.
const (
	HighRiskThreshold   = 70
	MediumRiskThreshold = 40
)

// Badge tier thresholds. These drive table and feed badge coloring only.
const (
	BadgeHighThreshold   = 80
	BadgeMediumThreshold = 50
)

// MaxScore caps the accumulated rule points.
const MaxScore = 98

// Input carries the pre-validated fields a submission is scored on.
type Input struct {
	Amount   float64       `json:"amount"`
	Age      int           `json:"age"`
	Hour     int           `json:"hour"`
	Location Location      `json:"location"`
	Device   Device        `json:"device"`
	Payment  PaymentMethod `json:"payment"`
}

// Factor is one row of the per-dimension explanation attached to a result.
type Factor struct {
	Name   string `json:"name"`
	Impact Impact `json:"impact"`
}

// Result is the outcome of scoring a single submission.
type Result struct {
	Score          int            `json:"score"`
	Classification Classification `json:"classification"`
	Factors        []Factor       `json:"factors"`
}

// Classify maps a score onto its classification band.
func Classify(score int) Classification {
	switch {
	case score >= HighRiskThreshold:
		return ClassificationHigh
	case score >= MediumRiskThreshold:
		return ClassificationMedium
	default:
		return ClassificationLow
	}
}

// BadgeTier maps a score onto its display badge tier.
func BadgeTier(score int) Tier {
	switch {
	case score >= BadgeHighThreshold:
		return TierHigh
	case score >= BadgeMediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}
