package risk

// Rule point values, one block per dimension.
const (
	pointsAmountHigh   = 30 // amount > 3000
	pointsAmountMedium = 15 // 1000 < amount <= 3000

	pointsDeadOfNight = 25 // hour in [2,5]
	pointsLateNight   = 15 // hour >= 22 or hour <= 1

	pointsLocationHigh   = 20
	pointsLocationMedium = 10

	pointsPaymentCrypto = 15

	pointsAgeOutlier = 10 // age < 20 or age > 70

	pointsDeviceMobile = 5
)

// Assess scores a submission against the rule table. Pure and total: every
// input produces a result, identical inputs produce identical results.
func Assess(in Input) Result {
	score := amountPoints(in.Amount) +
		hourPoints(in.Hour) +
		locationPoints(in.Location) +
		paymentPoints(in.Payment) +
		agePoints(in.Age) +
		devicePoints(in.Device)

	if score > MaxScore {
		score = MaxScore
	}

	return Result{
		Score:          score,
		Classification: Classify(score),
		Factors:        explain(in),
	}
}

func amountPoints(amount float64) int {
	switch {
	case amount > 3000:
		return pointsAmountHigh
	case amount > 1000:
		return pointsAmountMedium
	default:
		return 0
	}
}

func hourPoints(hour int) int {
	switch {
	case hour >= 2 && hour <= 5:
		return pointsDeadOfNight
	case hour >= 22 || hour <= 1:
		return pointsLateNight
	default:
		return 0
	}
}

func locationPoints(loc Location) int {
	switch loc {
	case LocationHigh:
		return pointsLocationHigh
	case LocationMedium:
		return pointsLocationMedium
	default:
		return 0
	}
}

func paymentPoints(p PaymentMethod) int {
	if p == PaymentCrypto {
		return pointsPaymentCrypto
	}
	return 0
}

func agePoints(age int) int {
	if age < 20 || age > 70 {
		return pointsAgeOutlier
	}
	return 0
}

func devicePoints(d Device) int {
	if d == DeviceMobile {
		return pointsDeviceMobile
	}
	return 0
}

// explain derives the ordered per-dimension impact labels. Labels reuse the
// scoring thresholds but are display-only; they never feed back into the
// score.
func explain(in Input) []Factor {
	return []Factor{
		{Name: "Transaction Amount", Impact: amountImpact(in.Amount)},
		{Name: "Transaction Time", Impact: hourImpact(in.Hour)},
		{Name: "Location Risk", Impact: Impact(in.Location)},
		{Name: "Payment Method", Impact: paymentImpact(in.Payment)},
		{Name: "Customer Age", Impact: ageImpact(in.Age)},
	}
}

func amountImpact(amount float64) Impact {
	switch {
	case amount > 3000:
		return ImpactHigh
	case amount > 1000:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

func hourImpact(hour int) Impact {
	switch {
	case hour >= 2 && hour <= 5:
		return ImpactHigh
	case hour >= 22 || hour <= 1:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

func paymentImpact(p PaymentMethod) Impact {
	if p == PaymentCrypto {
		return ImpactHigh
	}
	return ImpactLow
}

func ageImpact(age int) Impact {
	if age < 20 || age > 70 {
		return ImpactMedium
	}
	return ImpactLow
}
