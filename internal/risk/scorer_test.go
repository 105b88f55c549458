package risk

import "testing"

func TestAssessScenarios(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		score int
		class Classification
	}{
		{
			name:  "large amount at dead of night from high-risk location",
			in:    Input{Amount: 5000, Age: 30, Hour: 3, Location: LocationHigh, Device: DeviceOther, Payment: PaymentOther},
			score: 75, // 30 + 25 + 20
			class: ClassificationHigh,
		},
		{
			name:  "small daytime transaction",
			in:    Input{Amount: 500, Age: 30, Hour: 14, Location: LocationLow, Device: DeviceOther, Payment: PaymentOther},
			score: 0,
			class: ClassificationLow,
		},
		{
			name:  "every rule short of the amount band cap",
			in:    Input{Amount: 1500, Age: 75, Hour: 23, Location: LocationMedium, Device: DeviceMobile, Payment: PaymentCrypto},
			score: 70, // 15 + 15 + 10 + 15 + 10 + 5
			class: ClassificationHigh,
		},
		{
			name:  "crypto from high-risk location at midday",
			in:    Input{Amount: 4000, Age: 25, Hour: 12, Location: LocationHigh, Device: DeviceOther, Payment: PaymentCrypto},
			score: 65, // 30 + 20 + 15
			class: ClassificationMedium,
		},
		{
			name:  "all rules fire, score capped",
			in:    Input{Amount: 9000, Age: 18, Hour: 3, Location: LocationHigh, Device: DeviceMobile, Payment: PaymentCrypto},
			score: MaxScore, // 30+25+20+15+10+5 = 105 -> 98
			class: ClassificationHigh,
		},
		{
			name:  "late-night band is exclusive of dead-of-night band",
			in:    Input{Amount: 0, Age: 30, Hour: 1, Location: LocationLow, Device: DeviceOther, Payment: PaymentOther},
			score: 15,
			class: ClassificationLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assess(tt.in)
			if got.Score != tt.score {
				t.Errorf("score = %d, want %d", got.Score, tt.score)
			}
			if got.Classification != tt.class {
				t.Errorf("classification = %s, want %s", got.Classification, tt.class)
			}
		})
	}
}

func TestAssessDeterministic(t *testing.T) {
	in := Input{Amount: 2500, Age: 19, Hour: 23, Location: LocationMedium, Device: DeviceMobile, Payment: PaymentCrypto}

	first := Assess(in)
	for i := 0; i < 10; i++ {
		again := Assess(in)
		if again.Score != first.Score || again.Classification != first.Classification {
			t.Fatalf("assess not deterministic: %+v vs %+v", again, first)
		}
		for j, f := range again.Factors {
			if f != first.Factors[j] {
				t.Fatalf("factor %d differs between runs: %+v vs %+v", j, f, first.Factors[j])
			}
		}
	}
}

func TestAssessScoreBounds(t *testing.T) {
	// Sweep a coarse grid over all dimensions; every score must stay in [0, 98].
	for _, amount := range []float64{-50, 0, 999, 1000, 1001, 3000, 3001, 100000} {
		for _, hour := range []int{0, 1, 2, 5, 6, 21, 22, 23} {
			for _, loc := range []Location{LocationLow, LocationMedium, LocationHigh} {
				for _, age := range []int{10, 20, 45, 70, 71} {
					r := Assess(Input{Amount: amount, Age: age, Hour: hour, Location: loc, Device: DeviceMobile, Payment: PaymentCrypto})
					if r.Score < 0 || r.Score > MaxScore {
						t.Fatalf("score %d out of range for amount=%v hour=%d loc=%s age=%d", r.Score, amount, hour, loc, age)
					}
				}
			}
		}
	}
}

func TestAssessAmountMonotonic(t *testing.T) {
	base := Input{Age: 30, Hour: 14, Location: LocationLow, Device: DeviceOther, Payment: PaymentOther}

	prev := -1
	for _, amount := range []float64{100, 1000, 1001, 3000, 3001, 50000} {
		in := base
		in.Amount = amount
		score := Assess(in).Score
		if score < prev {
			t.Errorf("score decreased from %d to %d as amount rose to %v", prev, score, amount)
		}
		prev = score
	}
}

func TestAssessHourBands(t *testing.T) {
	base := Input{Amount: 500, Age: 30, Location: LocationLow, Device: DeviceOther, Payment: PaymentOther}

	daytime := base
	daytime.Hour = 14
	quiet := Assess(daytime).Score

	for _, hour := range []int{2, 3, 4, 5} {
		in := base
		in.Hour = hour
		if got := Assess(in).Score; got != quiet+pointsDeadOfNight {
			t.Errorf("hour %d: score = %d, want %d", hour, got, quiet+pointsDeadOfNight)
		}
	}
	for _, hour := range []int{22, 23, 0, 1} {
		in := base
		in.Hour = hour
		if got := Assess(in).Score; got != quiet+pointsLateNight {
			t.Errorf("hour %d: score = %d, want %d", hour, got, quiet+pointsLateNight)
		}
	}
}

func TestClassifyBands(t *testing.T) {
	tests := []struct {
		score int
		want  Classification
	}{
		{0, ClassificationLow},
		{39, ClassificationLow},
		{40, ClassificationMedium},
		{69, ClassificationMedium},
		{70, ClassificationHigh},
		{98, ClassificationHigh},
	}
	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestBadgeTierUsesOwnThresholds(t *testing.T) {
	// Badge tiers split at 80/50, not at the 70/40 classification bands.
	tests := []struct {
		score int
		want  Tier
	}{
		{49, TierLow},
		{50, TierMedium},
		{70, TierMedium}, // high-risk classification, medium badge
		{79, TierMedium},
		{80, TierHigh},
	}
	for _, tt := range tests {
		if got := BadgeTier(tt.score); got != tt.want {
			t.Errorf("BadgeTier(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestExplainFactorLabels(t *testing.T) {
	r := Assess(Input{Amount: 1500, Age: 75, Hour: 23, Location: LocationMedium, Device: DeviceMobile, Payment: PaymentCrypto})

	want := []Factor{
		{Name: "Transaction Amount", Impact: ImpactMedium},
		{Name: "Transaction Time", Impact: ImpactMedium},
		{Name: "Location Risk", Impact: Impact(LocationMedium)},
		{Name: "Payment Method", Impact: ImpactHigh},
		{Name: "Customer Age", Impact: ImpactMedium},
	}

	if len(r.Factors) != len(want) {
		t.Fatalf("got %d factors, want %d", len(r.Factors), len(want))
	}
	for i, f := range r.Factors {
		if f != want[i] {
			t.Errorf("factor %d = %+v, want %+v", i, f, want[i])
		}
	}
}
