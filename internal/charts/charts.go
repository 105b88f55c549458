// Package charts holds the static dataset descriptors the dashboard charts
// are drawn from. The charting library on the page treats each descriptor as
// an opaque data-plus-styling sink.
package charts

// Dataset is one labelled series with its styling.
type Dataset struct {
	Label            string    `json:"label,omitempty"`
	Data             []float64 `json:"data"`
	BorderColor      string    `json:"borderColor,omitempty"`
	BackgroundColor  any       `json:"backgroundColor,omitempty"` // string or []string
	Tension          float64   `json:"tension,omitempty"`
	Fill             bool      `json:"fill,omitempty"`
	BorderWidth      int       `json:"borderWidth"`
	BorderRadius     int       `json:"borderRadius,omitempty"`
	PointBackground  string    `json:"pointBackgroundColor,omitempty"`
	PointBorderColor string    `json:"pointBorderColor,omitempty"`
}

// Descriptor is a complete chart definition.
type Descriptor struct {
	Type     string         `json:"type"`
	Labels   []string       `json:"labels"`
	Datasets []Dataset      `json:"datasets"`
	Options  map[string]any `json:"options,omitempty"`
}

// Trend returns the weekly transactions-vs-fraud line chart.
func Trend() Descriptor {
	return Descriptor{
		Type:   "line",
		Labels: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Datasets: []Dataset{
			{
				Label:            "Total Transactions",
				Data:             []float64{2450, 2680, 2340, 2890, 2560, 2120, 2890},
				BorderColor:      "#667eea",
				BackgroundColor:  "rgba(102, 126, 234, 0.1)",
				Tension:          0.4,
				Fill:             true,
				PointBackground:  "#667eea",
				PointBorderColor: "#fff",
				BorderWidth:      2,
			},
			{
				Label:            "Fraud Detected",
				Data:             []float64{48, 52, 45, 58, 51, 42, 55},
				BorderColor:      "#f56565",
				BackgroundColor:  "rgba(245, 101, 101, 0.1)",
				Tension:          0.4,
				Fill:             true,
				PointBackground:  "#f56565",
				PointBorderColor: "#fff",
				BorderWidth:      2,
			},
		},
	}
}

// RiskDistribution returns the low/medium/high doughnut.
func RiskDistribution() Descriptor {
	return Descriptor{
		Type:   "doughnut",
		Labels: []string{"Low Risk", "Medium Risk", "High Risk"},
		Datasets: []Dataset{
			{
				Data:            []float64{14856, 649, 342},
				BackgroundColor: []string{"#48bb78", "#ed8936", "#f56565"},
				BorderWidth:     0,
			},
		},
		Options: map[string]any{"cutout": "65%"},
	}
}

// Performance returns the model-performance bar chart.
func Performance() Descriptor {
	return Descriptor{
		Type:   "bar",
		Labels: []string{"Accuracy", "Precision", "Recall", "F1-Score"},
		Datasets: []Dataset{
			{
				Label: "Performance (%)",
				Data:  []float64{98.2, 97.6, 96.8, 97.2},
				BackgroundColor: []string{
					"rgba(102, 126, 234, 0.8)",
					"rgba(118, 75, 162, 0.8)",
					"rgba(72, 187, 120, 0.8)",
					"rgba(79, 172, 254, 0.8)",
				},
				BorderRadius: 8,
			},
		},
	}
}
