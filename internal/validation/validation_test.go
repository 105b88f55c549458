package validation

import (
	"math"
	"testing"

	"github.com/abarnes/fraudlens/internal/risk"
)

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

func validRequest() AssessRequest {
	return AssessRequest{
		Amount:   f(1500),
		Age:      i(30),
		Hour:     i(14),
		Location: "medium",
		Device:   "mobile",
		Payment:  "crypto",
	}
}

func TestValidateAccepts(t *testing.T) {
	req := validRequest()
	in, errs := req.Validate()
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := risk.Input{
		Amount: 1500, Age: 30, Hour: 14,
		Location: risk.LocationMedium, Device: risk.DeviceMobile, Payment: risk.PaymentCrypto,
	}
	if in != want {
		t.Errorf("input = %+v, want %+v", in, want)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AssessRequest)
		field  string
	}{
		{"missing amount", func(r *AssessRequest) { r.Amount = nil }, "amount"},
		{"NaN amount", func(r *AssessRequest) { r.Amount = f(math.NaN()) }, "amount"},
		{"infinite amount", func(r *AssessRequest) { r.Amount = f(math.Inf(1)) }, "amount"},
		{"negative amount", func(r *AssessRequest) { r.Amount = f(-10) }, "amount"},
		{"missing age", func(r *AssessRequest) { r.Age = nil }, "age"},
		{"absurd age", func(r *AssessRequest) { r.Age = i(200) }, "age"},
		{"missing hour", func(r *AssessRequest) { r.Hour = nil }, "hour"},
		{"hour 24", func(r *AssessRequest) { r.Hour = i(24) }, "hour"},
		{"negative hour", func(r *AssessRequest) { r.Hour = i(-1) }, "hour"},
		{"bad location", func(r *AssessRequest) { r.Location = "mars" }, "location"},
		{"empty device", func(r *AssessRequest) { r.Device = "" }, "device"},
		{"bad payment", func(r *AssessRequest) { r.Payment = "cash" }, "payment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, errs := req.Validate()
			if len(errs) == 0 {
				t.Fatal("expected validation errors")
			}
			found := false
			for _, e := range errs {
				if e.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("no error for field %q in %v", tt.field, errs)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	req := AssessRequest{}
	_, errs := req.Validate()
	if len(errs) != 6 {
		t.Errorf("got %d errors for empty request, want 6: %v", len(errs), errs)
	}
	if errs.Error() == "" {
		t.Error("expected non-empty error string")
	}
}
