// Package validation implements the validated-submission pipeline for
// purchase forms: a declarative field schema plus the two validation entry
// points built on it (single-field checks for reactive per-input feedback,
// and the whole-record check run before any persistence).
//
// The schema below is the single source of truth for both entry points.
// Every rule a field carries lives here, so the reactive check and the
// pre-persistence check can never drift apart.
package validation

import "github.com/sho-kiritani/purchase-ledger/internal/domain"

// Field names as they appear in submissions. These match the JSON keys of
// domain.Purchase so a form can bind inputs one-to-one.
const (
	FieldItemName      = "itemName"
	FieldUnitPrice     = "unitPrice"
	FieldQuantity      = "quantity"
	FieldSupplierName  = "supplierName"
	FieldPurchaseDate  = "purchaseDate"
	FieldPaymentMethod = "paymentMethod"
	FieldNote          = "note"
)

// DateLayout is the single calendar-date parse rule for purchaseDate.
// Submissions use the HTML date-input wire format; no other layouts are
// accepted.
const DateLayout = "2006-01-02"

// kind selects how a trimmed raw value is coerced into its stored type.
type kind int

const (
	kindText   kind = iota // identity
	kindNumber             // base-10 parse, then >= 1
	kindDate               // DateLayout parse
	kindEnum               // membership in domain.PaymentMethods
)

// rule is the two-stage contract of one field: the raw-shape constraint
// (required after trim) and the coercion applied to the trimmed value,
// with the message each specific failure reports.
type rule struct {
	field       string
	required    bool
	requiredMsg string
	kind        kind
	typeMsg     string // coercion/parse/membership failure
	minMsg      string // numeric value below 1
}

// rules declares the seven purchase fields in evaluation (and display)
// order. The whole-record check walks this slice; the single-field check
// looks its field up here.
var rules = []rule{
	{
		field:       FieldItemName,
		required:    true,
		requiredMsg: "Item name is required.",
		kind:        kindText,
	},
	{
		field:       FieldUnitPrice,
		required:    true,
		requiredMsg: "Unit price is required.",
		kind:        kindNumber,
		typeMsg:     "Unit price must be a number.",
		minMsg:      "Unit price must be at least 1.",
	},
	{
		field:       FieldQuantity,
		required:    true,
		requiredMsg: "Quantity is required.",
		kind:        kindNumber,
		typeMsg:     "Quantity must be a number.",
		minMsg:      "Quantity must be at least 1.",
	},
	{
		field:       FieldSupplierName,
		required:    true,
		requiredMsg: "Supplier name is required.",
		kind:        kindText,
	},
	{
		field:       FieldPurchaseDate,
		required:    true,
		requiredMsg: "Purchase date is required.",
		kind:        kindDate,
		typeMsg:     "Purchase date must be a valid date.",
	},
	{
		field:       FieldPaymentMethod,
		required:    true,
		requiredMsg: "Please select a payment method.",
		kind:        kindEnum,
		typeMsg:     "Invalid payment method.",
	},
	{
		field: FieldNote,
		kind:  kindText, // optional free text, no constraints
	},
}

// Fields returns the field names in schema order.
func Fields() []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.field
	}
	return out
}

// IsField reports whether name is one of the seven purchase fields.
func IsField(name string) bool {
	for _, r := range rules {
		if r.field == name {
			return true
		}
	}
	return false
}

// enumMember delegates membership to the domain package so the schema never
// hardcodes the payment-method set a second time.
func enumMember(v string) bool { return domain.IsPaymentMethod(v) }
