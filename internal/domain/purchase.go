// Package domain defines the persistence model for purchase records.
// The type is mapped with GORM and forms the single table this
// application reads and writes.
package domain

import "time"

// Payment method values accepted for a purchase. Once persisted,
// PaymentMethod is always one of these; free text never reaches the table.
const (
	PaymentCash       = "cash"
	PaymentCreditCard = "creditCard"
	PaymentLease      = "lease"
)

// PaymentMethodOption pairs a stored enum value with its display label.
// Form clients render these as the options of the payment-method select.
type PaymentMethodOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PaymentMethods lists the selectable payment methods in display order.
var PaymentMethods = []PaymentMethodOption{
	{Value: PaymentCash, Label: "Cash"},
	{Value: PaymentCreditCard, Label: "Credit card"},
	{Value: PaymentLease, Label: "Lease"},
}

// IsPaymentMethod reports whether v is one of the accepted payment methods.
func IsPaymentMethod(v string) bool {
	for _, m := range PaymentMethods {
		if m.Value == v {
			return true
		}
	}
	return false
}

// Purchase represents one purchase record.
//
// Fields:
//   - ID: stable UUID primary key (char(36)), assigned on creation.
//   - ItemName / SupplierName: non-empty text.
//   - UnitPrice / Quantity: numeric, >= 1 (enforced by validation before
//     any write; see internal/validation).
//   - PurchaseDate: calendar date, stored at midnight UTC.
//   - PaymentMethod: one of the Payment* constants (DB check as backstop).
//   - Note: optional free text, unbounded.
//   - CreatedAt: set on insertion; used only for default list ordering
//     (descending). UpdatedAt is managed by GORM.
type Purchase struct {
	ID            string    `json:"id"            gorm:"type:char(36);primaryKey"`
	ItemName      string    `json:"itemName"      gorm:"type:varchar(255);not null"`
	UnitPrice     float64   `json:"unitPrice"     gorm:"not null"`
	Quantity      float64   `json:"quantity"      gorm:"not null"`
	SupplierName  string    `json:"supplierName"  gorm:"type:varchar(255);not null"`
	PurchaseDate  time.Time `json:"purchaseDate"  gorm:"not null"`
	PaymentMethod string    `json:"paymentMethod" gorm:"type:varchar(16);not null;check:payment_method IN ('cash','creditCard','lease')"`
	Note          string    `json:"note"          gorm:"type:text"`
	CreatedAt     time.Time `json:"createdAt"     gorm:"index"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName returns the database table name for Purchase.
func (Purchase) TableName() string { return "purchases" }

// PurchaseSummary is the projection returned by the listing view:
// identifier plus the columns shown in the overview table.
type PurchaseSummary struct {
	ID        string  `json:"id"`
	ItemName  string  `json:"itemName"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  float64 `json:"quantity"`
}
