// Package services – PurchaseService
//
// This file implements PurchaseService, the application-level component that
// owns the submission pipeline for purchase records: it runs the whole-record
// validation, persists the coerced record through the injected repository,
// and tells the caller whether to navigate to the listing view or re-render
// the form with errors and the echoed input.
//
// Persistence failures never escape this layer as raw errors; they are folded
// into the rejected outcome with a single non-field server message so the
// user's input survives a failed write.
//
// Observability: public methods are OpenTelemetry-instrumented; spans carry
// the submission mode and record identifier where applicable.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sho-kiritani/purchase-ledger/internal/domain"
	"github.com/sho-kiritani/purchase-ledger/internal/validation"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Submission modes. Register creates a new record; Update replaces the
// fields of an existing one by id.
const (
	ModeRegister = "register"
	ModeUpdate   = "update"
)

// msgServerError is the single non-field message surfaced when the store
// rejects a write. The original input is echoed alongside it.
const msgServerError = "Database operation failed."

// PurchaseRepo defines the persistence gateway contract required by
// PurchaseService. Implementations own exactly the four single-table
// operations; tests substitute a fake to observe gateway calls.
type PurchaseRepo interface {
	// CreatePurchase inserts a new row from coerced input and returns it.
	CreatePurchase(ctx context.Context, db *gorm.DB, in *validation.PurchaseInput) (*domain.Purchase, error)

	// UpdatePurchase replaces all field values of the row matching id.
	UpdatePurchase(ctx context.Context, db *gorm.DB, id string, in *validation.PurchaseInput) error

	// ListPurchases returns summary projections ordered by creation time descending.
	ListPurchases(ctx context.Context, db *gorm.DB) ([]domain.PurchaseSummary, error)

	// GetPurchase fetches a full record by id.
	GetPurchase(ctx context.Context, db *gorm.DB, id string) (*domain.Purchase, error)
}

// PurchaseService coordinates validation and persistence for purchase
// submissions and serves the read paths of the listing and detail views.
type PurchaseService struct {
	// DB is the GORM handle passed to the repository on every call.
	DB *gorm.DB
	// Repo is the injected persistence gateway.
	Repo PurchaseRepo
}

// NewPurchaseService constructs a PurchaseService bound to db and repo.
func NewPurchaseService(db *gorm.DB, r PurchaseRepo) *PurchaseService {
	return &PurchaseService{DB: db, Repo: r}
}

// SubmitResult is the terminal outcome of one submission.
//
// Exactly one of the two shapes is populated:
//   - persisted: Navigate is true and everything else is zero; the caller
//     should move to the listing view. The record is not echoed back.
//   - rejected: Navigate is false and either FieldErrors (validation) or
//     ServerError (persistence) is set, always together with Echo so no
//     user input is lost on re-render.
type SubmitResult struct {
	Navigate    bool
	FieldErrors validation.FieldErrors
	ServerError string
	Echo        validation.RawSubmission
}

// Submit runs one submission through the pipeline: whole-record validation,
// then exactly one of {create, update} depending on mode.
//
// Semantics:
//   - Validation failure: no persistence is attempted; the result carries the
//     full field error map and the raw input verbatim.
//   - mode=register: the gateway's create is invoked once.
//   - mode=update with a non-blank id: the gateway's update is invoked once
//     with that id. A blank id skips persistence entirely yet still signals
//     navigation; callers that care should not pass one.
//   - Gateway failure (unreachable store, rejected write, unresolved update
//     id): the result carries a single server message plus the raw echo, and
//     does not signal navigation.
func (s *PurchaseService) Submit(ctx context.Context, mode, id string, raw validation.RawSubmission) SubmitResult {
	tr := otel.Tracer("services/PurchaseService")
	ctx, span := tr.Start(ctx, "Submit",
		trace.WithAttributes(
			attribute.String("submission.mode", mode),
			attribute.String("purchase.id", id),
		),
	)
	defer span.End()

	res := validation.Check(raw)
	if !res.OK {
		return SubmitResult{FieldErrors: res.FieldErrors, Echo: res.Echo}
	}

	var err error
	switch {
	case mode == ModeRegister:
		_, err = s.Repo.CreatePurchase(ctx, s.DB, res.Record)
	case mode == ModeUpdate && id != "":
		err = s.Repo.UpdatePurchase(ctx, s.DB, id, res.Record)
	}
	if err != nil {
		span.RecordError(err)
		return SubmitResult{ServerError: msgServerError, Echo: raw}
	}

	return SubmitResult{Navigate: true}
}

// List returns the summary projections for the listing view, most recent
// first.
func (s *PurchaseService) List(ctx context.Context) ([]domain.PurchaseSummary, error) {
	tr := otel.Tracer("services/PurchaseService")
	ctx, span := tr.Start(ctx, "List")
	defer span.End()

	return s.Repo.ListPurchases(ctx, s.DB)
}

// Get fetches a full record by id for the detail/edit view. A missing record
// yields ErrPurchaseNotFound so the handler can redirect to the creation form.
func (s *PurchaseService) Get(ctx context.Context, id string) (*domain.Purchase, error) {
	tr := otel.Tracer("services/PurchaseService")
	ctx, span := tr.Start(ctx, "Get",
		trace.WithAttributes(attribute.String("purchase.id", id)),
	)
	defer span.End()

	p, err := s.Repo.GetPurchase(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, err
	}
	return p, nil
}
