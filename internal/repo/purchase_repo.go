// Package repo implements the data persistence layer for purchase records,
// backed by GORM. This file provides the repository functions for the
// Purchase model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no validation, only CRUD persistence
// and query composition. Every value that reaches this layer has already
// passed the whole-record check in internal/validation.
//
// Error semantics:
//   - When a purchase is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sho-kiritani/purchase-ledger/internal/domain"
	"github.com/sho-kiritani/purchase-ledger/internal/validation"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service
// layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreatePurchase inserts a new purchase row from coerced input. The id is a
// randomly generated UUID (string) and CreatedAt is set to UTC at insertion.
//
// On success it returns the persisted Purchase. On failure, a DB error.
func CreatePurchase(ctx context.Context, db *gorm.DB, in *validation.PurchaseInput) (*domain.Purchase, error) {
	p := &domain.Purchase{
		ID:            uuid.NewString(),
		ItemName:      in.ItemName,
		UnitPrice:     in.UnitPrice,
		Quantity:      in.Quantity,
		SupplierName:  in.SupplierName,
		PurchaseDate:  in.PurchaseDate,
		PaymentMethod: in.PaymentMethod,
		Note:          in.Note,
		CreatedAt:     time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePurchase replaces all seven field values of the row matching id.
// The id and CreatedAt of the row are left untouched. Returns ErrNotFound
// when no row matches id (zero rows affected), mirroring a keyed update
// against a missing record.
func UpdatePurchase(ctx context.Context, db *gorm.DB, id string, in *validation.PurchaseInput) error {
	res := db.WithContext(ctx).
		Model(&domain.Purchase{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"item_name":      in.ItemName,
			"unit_price":     in.UnitPrice,
			"quantity":       in.Quantity,
			"supplier_name":  in.SupplierName,
			"purchase_date":  in.PurchaseDate,
			"payment_method": in.PaymentMethod,
			"note":           in.Note,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPurchases returns the summary projection of every purchase, ordered by
// creation time descending (most recent first), unbounded. It returns an
// empty slice when the table is empty. On DB error, it returns the error.
func ListPurchases(ctx context.Context, db *gorm.DB) ([]domain.PurchaseSummary, error) {
	var out []domain.PurchaseSummary
	err := db.WithContext(ctx).
		Model(&domain.Purchase{}).
		Select("id", "item_name", "unit_price", "quantity").
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// GetPurchase fetches a full purchase record by id, or ErrNotFound.
func GetPurchase(ctx context.Context, db *gorm.DB, id string) (*domain.Purchase, error) {
	var p domain.Purchase
	if err := db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
