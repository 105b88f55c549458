package views

import "github.com/abarnes/fraudlens/internal/risk"

// Gauge geometry and animation pacing for the assessment result ring.
const (
	// GaugeCircumference is the stroke length of the score ring.
	GaugeCircumference = 283.0
	// CountupStep is the per-frame increment of the animated readout.
	CountupStep = 2
)

// Frame is one step of the score countup: the displayed value and the ring's
// stroke-dashoffset at that value.
type Frame struct {
	Value  int     `json:"value"`
	Offset float64 `json:"offset"`
}

// Gradient is the color stop pair applied to the ring for a band.
type Gradient struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// AssessmentView is the full presentation of a scoring result: the final
// values plus the deterministic animation frames that reach them.
type AssessmentView struct {
	Score          int                 `json:"score"`
	Classification risk.Classification `json:"classification"`
	StatusLine     string              `json:"statusLine"`
	StatusClass    string              `json:"statusClass"`
	Gradient       Gradient            `json:"gradient"`
	Factors        []FactorRow         `json:"factors"`
	Frames         []Frame             `json:"frames"`
}

// FactorRow is one rendered factor explanation.
type FactorRow struct {
	Name   string `json:"name"`
	Impact string `json:"impact"`
}

// NewAssessmentView builds the presentation for a scoring result. The last
// frame always equals the final score exactly.
func NewAssessmentView(res risk.Result) AssessmentView {
	factors := make([]FactorRow, len(res.Factors))
	for i, f := range res.Factors {
		factors[i] = FactorRow{Name: f.Name, Impact: string(f.Impact)}
	}
	return AssessmentView{
		Score:          res.Score,
		Classification: res.Classification,
		StatusLine:     statusLine(res.Classification),
		StatusClass:    string(res.Classification),
		Gradient:       gradientFor(res.Classification),
		Factors:        factors,
		Frames:         CountupFrames(res.Score),
	}
}

// CountupFrames returns the frame sequence from 0 to score in CountupStep
// increments, ending on the exact score.
func CountupFrames(score int) []Frame {
	if score < 0 {
		score = 0
	}
	frames := make([]Frame, 0, score/CountupStep+2)
	for v := 0; v < score; v += CountupStep {
		frames = append(frames, frameAt(v))
	}
	frames = append(frames, frameAt(score))
	return frames
}

func frameAt(value int) Frame {
	return Frame{
		Value:  value,
		Offset: GaugeCircumference - float64(value)/100*GaugeCircumference,
	}
}

func gradientFor(c risk.Classification) Gradient {
	switch c {
	case risk.ClassificationHigh:
		return Gradient{From: "#f56565", To: "#c53030"}
	case risk.ClassificationMedium:
		return Gradient{From: "#ed8936", To: "#c05621"}
	default:
		return Gradient{From: "#48bb78", To: "#38a169"}
	}
}

func statusLine(c risk.Classification) string {
	switch c {
	case risk.ClassificationHigh:
		return "HIGH RISK - Transaction Flagged"
	case risk.ClassificationMedium:
		return "MEDIUM RISK - Manual Review Recommended"
	default:
		return "LOW RISK - Transaction Approved"
	}
}
