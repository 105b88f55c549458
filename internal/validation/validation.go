// Package validation provides input validation for the FraudLens API.
package validation

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abarnes/fraudlens/internal/risk"
)

// MaxRequestSize is the maximum request body size (1MB).
const MaxRequestSize = 1 << 20

// RequestSizeMiddleware limits request body size.
func RequestSizeMiddleware(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is a collection of field errors.
type FieldErrors []FieldError

// Error implements the error interface.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return e[0].Field + ": " + e[0].Message
}

// AssessRequest is the wire form of a risk assessment submission. Numeric
// fields are pointers so that absent and zero are distinguishable; invalid
// numerics are rejected rather than silently scoring zero points.
type AssessRequest struct {
	Amount   *float64 `json:"amount"`
	Age      *int     `json:"age"`
	Hour     *int     `json:"hour"`
	Location string   `json:"location"`
	Device   string   `json:"device"`
	Payment  string   `json:"payment"`
}

// Validate checks the request and converts it into a scorer input.
func (r *AssessRequest) Validate() (risk.Input, FieldErrors) {
	var errs FieldErrors

	var in risk.Input

	switch {
	case r.Amount == nil:
		errs = append(errs, FieldError{Field: "amount", Message: "is required"})
	case math.IsNaN(*r.Amount) || math.IsInf(*r.Amount, 0):
		errs = append(errs, FieldError{Field: "amount", Message: "must be a finite number"})
	case *r.Amount <= 0:
		errs = append(errs, FieldError{Field: "amount", Message: "must be positive"})
	default:
		in.Amount = *r.Amount
	}

	switch {
	case r.Age == nil:
		errs = append(errs, FieldError{Field: "age", Message: "is required"})
	case *r.Age < 0 || *r.Age > 130:
		errs = append(errs, FieldError{Field: "age", Message: "must be between 0 and 130"})
	default:
		in.Age = *r.Age
	}

	switch {
	case r.Hour == nil:
		errs = append(errs, FieldError{Field: "hour", Message: "is required"})
	case *r.Hour < 0 || *r.Hour > 23:
		errs = append(errs, FieldError{Field: "hour", Message: "must be between 0 and 23"})
	default:
		in.Hour = *r.Hour
	}

	switch risk.Location(r.Location) {
	case risk.LocationLow, risk.LocationMedium, risk.LocationHigh:
		in.Location = risk.Location(r.Location)
	default:
		errs = append(errs, FieldError{Field: "location", Message: "must be low, medium, or high"})
	}

	switch risk.Device(r.Device) {
	case risk.DeviceMobile, risk.DeviceOther:
		in.Device = risk.Device(r.Device)
	default:
		errs = append(errs, FieldError{Field: "device", Message: "must be mobile or other"})
	}

	switch risk.PaymentMethod(r.Payment) {
	case risk.PaymentCrypto, risk.PaymentOther:
		in.Payment = risk.PaymentMethod(r.Payment)
	default:
		errs = append(errs, FieldError{Field: "payment", Message: "must be crypto or other"})
	}

	if len(errs) > 0 {
		return risk.Input{}, errs
	}
	return in, nil
}
