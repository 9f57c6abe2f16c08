package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sho-kiritani/purchase-ledger/internal/domain"
	"github.com/sho-kiritani/purchase-ledger/internal/repo"
	"github.com/sho-kiritani/purchase-ledger/internal/services"
	"github.com/sho-kiritani/purchase-ledger/internal/validation"
)

// ---------- test DB + repo shim ----------

func newHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique DSN per call to avoid cross-test contamination
	dsn := fmt.Sprintf("file:purchase_handlers_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Purchase{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Minimal shim implementing services.PurchaseRepo using the repo package
// (like router.go does).
type testPurchaseRepo struct{}

func (testPurchaseRepo) CreatePurchase(ctx context.Context, db *gorm.DB, in *validation.PurchaseInput) (*domain.Purchase, error) {
	return repo.CreatePurchase(ctx, db, in)
}

func (testPurchaseRepo) UpdatePurchase(ctx context.Context, db *gorm.DB, id string, in *validation.PurchaseInput) error {
	return repo.UpdatePurchase(ctx, db, id, in)
}

func (testPurchaseRepo) ListPurchases(ctx context.Context, db *gorm.DB) ([]domain.PurchaseSummary, error) {
	return repo.ListPurchases(ctx, db)
}

func (testPurchaseRepo) GetPurchase(ctx context.Context, db *gorm.DB, id string) (*domain.Purchase, error) {
	return repo.GetPurchase(ctx, db, id)
}

// Flexible stub for failure-path tests.
type stubPurchaseSvc struct {
	submit func(context.Context, string, string, validation.RawSubmission) services.SubmitResult
	list   func(context.Context) ([]domain.PurchaseSummary, error)
	get    func(context.Context, string) (*domain.Purchase, error)
}

func (s stubPurchaseSvc) Submit(ctx context.Context, mode, id string, raw validation.RawSubmission) services.SubmitResult {
	return s.submit(ctx, mode, id, raw)
}

func (s stubPurchaseSvc) List(ctx context.Context) ([]domain.PurchaseSummary, error) {
	return s.list(ctx)
}

func (s stubPurchaseSvc) Get(ctx context.Context, id string) (*domain.Purchase, error) {
	return s.get(ctx, id)
}

func newTestRouter(t *testing.T, svc PurchaseService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(svc)
	r.GET("/purchases", h.ListPurchases)
	r.GET("/purchases/:id", h.GetPurchase)
	r.POST("/purchases", h.RegisterPurchase)
	r.PUT("/purchases/:id", h.UpdatePurchase)
	r.POST("/purchases/validate", h.ValidateField)
	r.GET("/payment-methods", h.ListPaymentMethods)
	return r
}

func newRealRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := newHandlerDB(t)
	svc := services.NewPurchaseService(db, testPurchaseRepo{})
	return newTestRouter(t, svc), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validPayload() map[string]string {
	return map[string]string{
		"itemName":      "Laptop stand",
		"unitPrice":     "12000",
		"quantity":      "2",
		"supplierName":  "Acme Supplies",
		"purchaseDate":  "2026-04-01",
		"paymentMethod": "creditCard",
		"note":          "for the new desk",
	}
}

// ---------- submission ----------

func TestRegisterPurchase_Valid_NavigatesToListing(t *testing.T) {
	r, db := newRealRouter(t)

	w := doJSON(t, r, http.MethodPost, "/purchases", validPayload())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != PathListing {
		t.Fatalf("expected Location %q, got %q", PathListing, loc)
	}
	var resp SubmitAccepted
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Redirect != PathListing {
		t.Fatalf("expected redirect to listing, got %q", resp.Redirect)
	}

	var count int64
	if err := db.Model(&domain.Purchase{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one persisted record, got %d", count)
	}
}

func TestRegisterPurchase_ValidationFailure_EchoesInput(t *testing.T) {
	r, db := newRealRouter(t)

	payload := validPayload()
	payload["itemName"] = ""
	payload["unitPrice"] = "0"

	w := doJSON(t, r, http.MethodPost, "/purchases", payload)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
	var resp SubmitRejected
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrCodeValidationFailed {
		t.Fatalf("expected code %q, got %q", ErrCodeValidationFailed, resp.Code)
	}
	if len(resp.Errors["itemName"]) == 0 || len(resp.Errors["unitPrice"]) == 0 {
		t.Fatalf("expected errors on failing fields: %#v", resp.Errors)
	}
	if len(resp.Errors["supplierName"]) != 0 {
		t.Fatalf("clean fields must map to empty lists: %#v", resp.Errors["supplierName"])
	}
	if resp.Form["unitPrice"] != "0" || resp.Form["note"] != "for the new desk" {
		t.Fatalf("raw input must be echoed verbatim: %#v", resp.Form)
	}

	var count int64
	if err := db.Model(&domain.Purchase{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected submission must not persist, found %d rows", count)
	}
}

func TestRegisterPurchase_MalformedJSON(t *testing.T) {
	r, _ := newRealRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/purchases", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRegisterPurchase_MissingKeysTreatedAsEmpty(t *testing.T) {
	r, _ := newRealRouter(t)

	// Only one field present; the rest bind to "" and fail as required.
	w := doJSON(t, r, http.MethodPost, "/purchases", map[string]string{"itemName": "x"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	var resp SubmitRejected
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Errors["itemName"]) != 0 {
		t.Fatalf("present field should pass: %#v", resp.Errors["itemName"])
	}
	if len(resp.Errors["supplierName"]) == 0 {
		t.Fatalf("absent required field should fail: %#v", resp.Errors)
	}
}

func TestUpdatePurchase_RewritesRecord(t *testing.T) {
	r, db := newRealRouter(t)

	// Seed via the register endpoint.
	if w := doJSON(t, r, http.MethodPost, "/purchases", validPayload()); w.Code != http.StatusCreated {
		t.Fatalf("seed: %d", w.Code)
	}
	var seeded domain.Purchase
	if err := db.First(&seeded).Error; err != nil {
		t.Fatalf("load seeded: %v", err)
	}

	payload := validPayload()
	payload["itemName"] = "Monitor arm"
	payload["paymentMethod"] = "cash"

	w := doJSON(t, r, http.MethodPut, "/purchases/"+seeded.ID, payload)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got domain.Purchase
	if err := db.First(&got, "id = ?", seeded.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.ItemName != "Monitor arm" || got.PaymentMethod != domain.PaymentCash {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestUpdatePurchase_UnresolvedID_ServerErrorWithEcho(t *testing.T) {
	r, _ := newRealRouter(t)

	w := doJSON(t, r, http.MethodPut, "/purchases/"+uuid.NewString(), validPayload())
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
	var resp SubmitRejected
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrCodeStoreFailed || resp.Message == "" {
		t.Fatalf("expected store_failed with message, got %+v", resp)
	}
	if resp.Form["itemName"] != "Laptop stand" {
		t.Fatalf("server error must echo the raw input: %#v", resp.Form)
	}
	if w.Header().Get("Location") != "" {
		t.Fatal("failed submission must not signal navigation")
	}
}

func TestSubmit_GatewayFailure_NoNavigation(t *testing.T) {
	svc := stubPurchaseSvc{
		submit: func(ctx context.Context, mode, id string, raw validation.RawSubmission) services.SubmitResult {
			return services.SubmitResult{ServerError: "Database operation failed.", Echo: raw}
		},
	}
	r := newTestRouter(t, svc)

	w := doJSON(t, r, http.MethodPost, "/purchases", validPayload())
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if w.Header().Get("Location") != "" {
		t.Fatal("no Location header on failure")
	}
}

// ---------- reads ----------

func TestListPurchases_NewestFirst(t *testing.T) {
	r, _ := newRealRouter(t)

	for _, name := range []string{"first", "second"} {
		p := validPayload()
		p["itemName"] = name
		if w := doJSON(t, r, http.MethodPost, "/purchases", p); w.Code != http.StatusCreated {
			t.Fatalf("seed %s: %d", name, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/purchases", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp ListPurchasesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Purchases) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(resp.Purchases))
	}
}

func TestListPurchases_Error(t *testing.T) {
	svc := stubPurchaseSvc{
		list: func(ctx context.Context) ([]domain.PurchaseSummary, error) {
			return nil, errors.New("boom")
		},
	}
	r := newTestRouter(t, svc)

	w := doJSON(t, r, http.MethodGet, "/purchases", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrCodeListFailed {
		t.Fatalf("expected %q, got %q", ErrCodeListFailed, resp.Code)
	}
}

func TestGetPurchase_Found(t *testing.T) {
	r, db := newRealRouter(t)

	if w := doJSON(t, r, http.MethodPost, "/purchases", validPayload()); w.Code != http.StatusCreated {
		t.Fatalf("seed: %d", w.Code)
	}
	var seeded domain.Purchase
	if err := db.First(&seeded).Error; err != nil {
		t.Fatalf("load seeded: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/purchases/"+seeded.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got domain.Purchase
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != seeded.ID || got.ItemName != "Laptop stand" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestGetPurchase_Missing_RedirectsToCreationForm(t *testing.T) {
	r, _ := newRealRouter(t)

	w := doJSON(t, r, http.MethodGet, "/purchases/"+uuid.NewString(), nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != PathCreationForm {
		t.Fatalf("expected redirect to %q, got %q", PathCreationForm, loc)
	}
}

func TestGetPurchase_WrappedNotFound_StillRedirects(t *testing.T) {
	svc := stubPurchaseSvc{
		get: func(ctx context.Context, id string) (*domain.Purchase, error) {
			return nil, fmt.Errorf("lookup %s: %w", id, services.ErrPurchaseNotFound)
		},
	}
	r := newTestRouter(t, svc)

	w := doJSON(t, r, http.MethodGet, "/purchases/some-id", nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 for wrapped not-found, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != PathCreationForm {
		t.Fatalf("expected redirect to %q, got %q", PathCreationForm, loc)
	}
}

// ---------- field validation + meta ----------

func TestValidateField_ReturnsMessages(t *testing.T) {
	r, _ := newRealRouter(t)

	w := doJSON(t, r, http.MethodPost, "/purchases/validate", ValidateFieldRequest{Field: "unitPrice", Value: "0"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp ValidateFieldResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Field != "unitPrice" || len(resp.Errors) != 1 {
		t.Fatalf("expected one message on unitPrice, got %+v", resp)
	}
}

func TestValidateField_ValidValue_EmptyList(t *testing.T) {
	r, _ := newRealRouter(t)

	w := doJSON(t, r, http.MethodPost, "/purchases/validate", ValidateFieldRequest{Field: "itemName", Value: "x"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp ValidateFieldResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Errors == nil || len(resp.Errors) != 0 {
		t.Fatalf("valid value must yield an empty (non-null) list, got %#v", resp.Errors)
	}
}

func TestValidateField_UnknownField(t *testing.T) {
	r, _ := newRealRouter(t)

	w := doJSON(t, r, http.MethodPost, "/purchases/validate", ValidateFieldRequest{Field: "totallyBogus", Value: "x"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListPaymentMethods(t *testing.T) {
	r, _ := newRealRouter(t)

	w := doJSON(t, r, http.MethodGet, "/payment-methods", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp PaymentMethodsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.PaymentMethods) != 3 {
		t.Fatalf("expected 3 options, got %#v", resp.PaymentMethods)
	}
	if resp.PaymentMethods[1].Value != domain.PaymentCreditCard {
		t.Fatalf("unexpected option order: %#v", resp.PaymentMethods)
	}
}
