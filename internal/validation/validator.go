package validation

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// RawSubmission maps the seven purchase field names to raw form text.
// Missing keys are read as the empty string. A RawSubmission lives for one
// validation+submission cycle and is echoed back verbatim on failure so the
// form can re-render with the user's input intact.
type RawSubmission map[string]string

// Get returns the raw value for field, with missing keys as "".
func (r RawSubmission) Get(field string) string {
	if r == nil {
		return ""
	}
	return r[field]
}

// FieldErrors maps a field name to the ordered list of messages it failed
// with. Fields that passed map to an empty (non-nil) list.
type FieldErrors map[string][]string

// HasErrors reports whether any field carries at least one message.
func (fe FieldErrors) HasErrors() bool {
	for _, msgs := range fe {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}

// PurchaseInput is the coerced, typed record produced by a successful
// whole-record check. It is ready for persistence as-is.
type PurchaseInput struct {
	ItemName      string
	UnitPrice     float64
	Quantity      float64
	SupplierName  string
	PurchaseDate  time.Time
	PaymentMethod string
	Note          string
}

// Result is the outcome of a whole-record check: either a coerced record,
// or the full per-field error map together with the unmodified raw input.
type Result struct {
	OK          bool
	Record      *PurchaseInput
	FieldErrors FieldErrors
	Echo        RawSubmission
}

// CheckField validates a single raw value against its field's rules and
// returns the error messages (empty slice means valid). It is the reactive
// entry point, invoked e.g. when an input loses focus. Unknown field names
// report no errors. The note field always passes.
func CheckField(field, raw string) []string {
	for _, r := range rules {
		if r.field == field {
			msgs, _ := checkRule(r, raw)
			return msgs
		}
	}
	return nil
}

// Check runs the whole-record validation over raw. Every field in the schema
// is evaluated in declared order and all messages are collected; one failing
// field never suppresses another's report. Within one field, evaluation stops
// at the first failing rule (the required check precedes coercion).
//
// On total success the Result carries the coerced record; on any failure it
// carries the field error map (valid fields included, with empty lists) and
// the original raw input for echoing. Check is pure: running it twice over
// the same input yields the same Result.
func Check(raw RawSubmission) Result {
	errs := make(FieldErrors, len(rules))
	vals := make(map[string]any, len(rules))

	for _, r := range rules {
		msgs, v := checkRule(r, raw.Get(r.field))
		errs[r.field] = msgs
		if len(msgs) == 0 {
			vals[r.field] = v
		}
	}

	if errs.HasErrors() {
		return Result{OK: false, FieldErrors: errs, Echo: raw}
	}

	rec := &PurchaseInput{
		ItemName:      vals[FieldItemName].(string),
		UnitPrice:     vals[FieldUnitPrice].(float64),
		Quantity:      vals[FieldQuantity].(float64),
		SupplierName:  vals[FieldSupplierName].(string),
		PurchaseDate:  vals[FieldPurchaseDate].(time.Time),
		PaymentMethod: vals[FieldPaymentMethod].(string),
		Note:          vals[FieldNote].(string),
	}
	return Result{OK: true, Record: rec}
}

// checkRule applies one field's two-stage contract to a raw value. It
// returns the ordered messages (empty slice means valid) and, when valid,
// the coerced value (string, float64 or time.Time depending on the rule).
func checkRule(r rule, raw string) ([]string, any) {
	// Optional text passes through untouched (identity, may be absent).
	if !r.required && r.kind == kindText {
		return []string{}, raw
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []string{r.requiredMsg}, nil
	}

	switch r.kind {
	case kindNumber:
		n, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return []string{r.typeMsg}, nil
		}
		// ParseFloat accepts "NaN" and "Inf"; neither is a number a
		// purchase can carry, and NaN would slip past the minimum check.
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return []string{r.typeMsg}, nil
		}
		if n < 1 {
			return []string{r.minMsg}, nil
		}
		return []string{}, n

	case kindDate:
		d, err := time.Parse(DateLayout, trimmed)
		if err != nil {
			return []string{r.typeMsg}, nil
		}
		return []string{}, d

	case kindEnum:
		if !enumMember(trimmed) {
			return []string{r.typeMsg}, nil
		}
		return []string{}, trimmed

	default: // kindText
		return []string{}, trimmed
	}
}
