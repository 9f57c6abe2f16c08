// Purchase HTTP handlers.
//
// This file exposes the endpoints of the validated-submission pipeline:
//   - GET  /purchases            (listing view: summaries, newest first)
//   - GET  /purchases/{id}       (detail/edit view; unresolved id redirects
//     to the creation form instead of erroring)
//   - POST /purchases            (register submission)
//   - PUT  /purchases/{id}       (update submission)
//   - POST /purchases/validate   (single-field check, e.g. on input blur)
//   - GET  /payment-methods      (enum options for the form select)
//
// Handlers are transport-thin: they bind the raw field map, delegate to
// PurchaseService, and translate the submission outcome into HTTP. A
// persisted submission answers with a navigation signal (Location header and
// a redirect path in the body) rather than echoing the record; a rejected one
// answers with the structured field errors or the single server message, in
// both cases alongside the caller's raw input so nothing typed is lost.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sho-kiritani/purchase-ledger/internal/domain"
	"github.com/sho-kiritani/purchase-ledger/internal/http/middleware"
	"github.com/sho-kiritani/purchase-ledger/internal/services"
	"github.com/sho-kiritani/purchase-ledger/internal/validation"
)

// Client-side destinations signalled by the API. The form application mounts
// its listing and creation views at these paths.
const (
	PathListing      = "/purchases"
	PathCreationForm = "/purchases/new"
)

//
// Service contract (context-aware)
//

// PurchaseService defines the submission and read operations consumed by the
// HTTP handlers. Implementations must honor the provided context.
type PurchaseService interface {
	// Submit runs one submission through validation and persistence.
	Submit(ctx context.Context, mode, id string, raw validation.RawSubmission) services.SubmitResult
	// List returns summary projections, most recent first.
	List(ctx context.Context) ([]domain.PurchaseSummary, error)
	// Get fetches a full record by id.
	Get(ctx context.Context, id string) (*domain.Purchase, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints of the purchase API. It depends on the
// abstract service interface to keep transport concerns separate from the
// submission pipeline.
type Handlers struct {
	svc PurchaseService
}

// New constructs a Handlers instance bound to the given service.
func New(svc PurchaseService) *Handlers {
	return &Handlers{svc: svc}
}

//
// DTOs
//

// SubmissionRequest is the JSON payload of a register or update submission:
// the seven purchase fields as raw text. Missing keys bind to the empty
// string, matching how an HTML form posts untouched inputs.
type SubmissionRequest struct {
	ItemName      string `json:"itemName"      example:"Laptop stand"`
	UnitPrice     string `json:"unitPrice"     example:"12000"`
	Quantity      string `json:"quantity"      example:"2"`
	SupplierName  string `json:"supplierName"  example:"Acme Supplies"`
	PurchaseDate  string `json:"purchaseDate"  example:"2026-04-01"`
	PaymentMethod string `json:"paymentMethod" example:"creditCard"`
	Note          string `json:"note"          example:"for the new desk"`
}

// raw converts the payload into the field map consumed by the validator.
func (r SubmissionRequest) raw() validation.RawSubmission {
	return validation.RawSubmission{
		validation.FieldItemName:      r.ItemName,
		validation.FieldUnitPrice:     r.UnitPrice,
		validation.FieldQuantity:      r.Quantity,
		validation.FieldSupplierName:  r.SupplierName,
		validation.FieldPurchaseDate:  r.PurchaseDate,
		validation.FieldPaymentMethod: r.PaymentMethod,
		validation.FieldNote:          r.Note,
	}
}

// SubmitAccepted is the success body of a submission: a navigation signal
// pointing at the listing view. The persisted record is not echoed back.
type SubmitAccepted struct {
	Redirect string `json:"redirect" example:"/purchases"`
}

// SubmitRejected is the failure body of a submission. For a validation
// failure Errors maps every field to its ordered message list (empty for
// fields that passed); for a persistence failure Message carries the single
// server error. Form always echoes the submitted raw input verbatim.
type SubmitRejected struct {
	RequestID string                   `json:"request_id,omitempty"`
	Code      string                   `json:"code" example:"validation_failed"`
	Message   string                   `json:"message,omitempty"`
	Errors    validation.FieldErrors   `json:"errors,omitempty"`
	Form      validation.RawSubmission `json:"form"`
}

// ValidateFieldRequest asks for a reactive single-field check.
type ValidateFieldRequest struct {
	Field string `json:"field" binding:"required" example:"unitPrice"`
	Value string `json:"value" example:"0"`
}

// ValidateFieldResponse carries the messages for one checked field; an empty
// list means the value is valid.
type ValidateFieldResponse struct {
	Field  string   `json:"field"`
	Errors []string `json:"errors"`
}

// ListPurchasesResponse wraps the listing view projections.
type ListPurchasesResponse struct {
	Purchases []domain.PurchaseSummary `json:"purchases"`
}

// PaymentMethodsResponse lists the selectable payment methods with labels.
type PaymentMethodsResponse struct {
	PaymentMethods []domain.PaymentMethodOption `json:"paymentMethods"`
}

//
// Handlers
//

// ListPurchases godoc
// @ID          listPurchases
// @Summary     List purchases
// @Description Returns summary projections of all purchases, newest first.
// @Tags        Purchases
// @Produce     json
// @Success     200  {object}  handlers.ListPurchasesResponse
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /purchases [get]
func (h *Handlers) ListPurchases(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	if items == nil {
		items = []domain.PurchaseSummary{}
	}
	ok(c, http.StatusOK, ListPurchasesResponse{Purchases: items})
}

// GetPurchase godoc
// @ID          getPurchase
// @Summary     Fetch one purchase
// @Description Returns the full record for the edit form. An id that does not
// @Description resolve redirects to the creation form instead of answering 404.
// @Tags        Purchases
// @Produce     json
// @Param       id  path  string  true  "Purchase ID (UUID)"  format(uuid)
// @Success     200  {object}  domain.Purchase
// @Success     303  "Redirect to the creation form"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /purchases/{id} [get]
func (h *Handlers) GetPurchase(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrPurchaseNotFound) {
			// Silent redirect to the creation flow, never an error page.
			c.Redirect(http.StatusSeeOther, PathCreationForm)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, p)
}

// RegisterPurchase godoc
// @ID          registerPurchase
// @Summary     Submit a new purchase
// @Description Validates the raw field map and inserts a record on success.
// @Tags        Purchases
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.SubmissionRequest  true  "Raw form fields"
// @Success     201  {object}  handlers.SubmitAccepted  "Navigate to the listing view"
// @Failure     400  {object}  handlers.ErrorResponse   "Malformed payload"
// @Failure     422  {object}  handlers.SubmitRejected  "Field validation errors"
// @Failure     500  {object}  handlers.SubmitRejected  "Store rejected the write"
// @Router      /purchases [post]
func (h *Handlers) RegisterPurchase(c *gin.Context) {
	var req SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	res := h.svc.Submit(c.Request.Context(), services.ModeRegister, "", req.raw())
	h.writeSubmitResult(c, res, http.StatusCreated)
}

// UpdatePurchase godoc
// @ID          updatePurchase
// @Summary     Submit changes to a purchase
// @Description Validates the raw field map and replaces the record's fields.
// @Tags        Purchases
// @Accept      json
// @Produce     json
// @Param       id    path  string                      true  "Purchase ID (UUID)"  format(uuid)
// @Param       body  body  handlers.SubmissionRequest  true  "Raw form fields"
// @Success     200  {object}  handlers.SubmitAccepted  "Navigate to the listing view"
// @Failure     400  {object}  handlers.ErrorResponse   "Malformed payload"
// @Failure     422  {object}  handlers.SubmitRejected  "Field validation errors"
// @Failure     500  {object}  handlers.SubmitRejected  "Store rejected the write"
// @Router      /purchases/{id} [put]
func (h *Handlers) UpdatePurchase(c *gin.Context) {
	var req SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	res := h.svc.Submit(c.Request.Context(), services.ModeUpdate, c.Param("id"), req.raw())
	h.writeSubmitResult(c, res, http.StatusOK)
}

// ValidateField godoc
// @ID          validateField
// @Summary     Check a single field
// @Description Reactive per-field validation, invoked by the form on blur.
// @Tags        Purchases
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.ValidateFieldRequest  true  "Field name and raw value"
// @Success     200  {object}  handlers.ValidateFieldResponse
// @Failure     400  {object}  handlers.ErrorResponse "Unknown field"
// @Router      /purchases/validate [post]
func (h *Handlers) ValidateField(c *gin.Context) {
	var req ValidateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "field required")
		return
	}
	if !validation.IsField(req.Field) {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unknown field: "+req.Field)
		return
	}
	msgs := validation.CheckField(req.Field, req.Value)
	if msgs == nil {
		msgs = []string{}
	}
	ok(c, http.StatusOK, ValidateFieldResponse{Field: req.Field, Errors: msgs})
}

// ListPaymentMethods godoc
// @ID          listPaymentMethods
// @Summary     List payment method options
// @Description Returns the enum values and display labels for the form select.
// @Tags        Purchases
// @Produce     json
// @Success     200  {object}  handlers.PaymentMethodsResponse
// @Router      /payment-methods [get]
func (h *Handlers) ListPaymentMethods(c *gin.Context) {
	ok(c, http.StatusOK, PaymentMethodsResponse{PaymentMethods: domain.PaymentMethods})
}

// writeSubmitResult translates a SubmitResult into HTTP. successStatus is the
// status used for the navigation signal (201 for register, 200 for update).
func (h *Handlers) writeSubmitResult(c *gin.Context, res services.SubmitResult, successStatus int) {
	if res.Navigate {
		c.Header("Location", PathListing)
		ok(c, successStatus, SubmitAccepted{Redirect: PathListing})
		return
	}

	reqID := c.Writer.Header().Get("X-Request-ID")
	if res.ServerError != "" {
		lg := middleware.LoggerFrom(c)
		lg.Error().Str("code", ErrCodeStoreFailed).Msg("submission rejected by store")
		c.AbortWithStatusJSON(http.StatusInternalServerError, SubmitRejected{
			RequestID: reqID,
			Code:      ErrCodeStoreFailed,
			Message:   res.ServerError,
			Form:      res.Echo,
		})
		return
	}

	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, SubmitRejected{
		RequestID: reqID,
		Code:      ErrCodeValidationFailed,
		Errors:    res.FieldErrors,
		Form:      res.Echo,
	})
}
