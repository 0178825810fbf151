package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-generator/internal/server"
	"github.com/rezonia/invoice-generator/internal/store"
)

func newTestServer(opts ...server.Option) *server.Server {
	config := &server.Config{
		Address: ":8080",
		Debug:   true,
	}
	return server.NewServer(config, opts...)
}

const validInvoiceJSON = `{
	"from": {"name": "Acme", "email": "a@acme.com"},
	"to": {"name": "Bob", "email": "b@b.com"},
	"items": [{"description": "Widget", "quantity": 3, "unitPrice": 10}],
	"currency": "USD",
	"taxRate": 8,
	"discount": 5
}`

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
}

func TestIndexEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.IndexResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Invoice Generator API", response.Message)
	assert.NotEmpty(t, response.Endpoints)
}

func TestGenerateEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/generate", strings.NewReader(validInvoiceJSON))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))

	disposition := w.Header().Get("Content-Disposition")
	assert.True(t, strings.HasPrefix(disposition, "attachment; filename=invoice-"))
	assert.True(t, strings.HasSuffix(disposition, ".pdf"))

	require.True(t, w.Body.Len() > 4)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestGenerateEndpoint_ValidationFailure(t *testing.T) {
	srv := newTestServer()

	// Missing both names and all items: exactly three violations expected.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/generate", strings.NewReader(`{"items": []}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response server.GenerateErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.False(t, response.Success)
	assert.Equal(t, []string{
		"Sender name is required",
		"Client name is required",
		"At least one item is required",
	}, response.Errors)
}

func TestGenerateEndpoint_MalformedBody(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/generate", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateEndpoint_ArchivesInvoice(t *testing.T) {
	archive := store.NewMemory()
	srv := newTestServer(server.WithStore(archive))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/generate", strings.NewReader(validInvoiceJSON))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := archive.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 27.0, stored[0].Total)
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/validate", strings.NewReader(validInvoiceJSON))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.ValidateResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.True(t, response.Valid)
	assert.Empty(t, response.Errors)
	require.NotNil(t, response.Invoice)
	assert.Equal(t, 30.0, response.Invoice.Subtotal)
	assert.Equal(t, 2.0, response.Invoice.TaxAmount)
	assert.Equal(t, 27.0, response.Invoice.Total)
	assert.NotEmpty(t, response.Invoice.InvoiceNumber)
}

func TestValidateEndpoint_Invalid(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/validate", strings.NewReader(`{"from": {"name": "Acme"}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.ValidateResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.False(t, response.Valid)
	assert.Equal(t, []string{
		"Client name is required",
		"At least one item is required",
	}, response.Errors)
}

func TestCurrenciesEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Currencies []server.CurrencyResponse `json:"currencies"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Len(t, response.Currencies, 30)
}

func TestCurrencyEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies/GBP", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.CurrencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "GBP", response.Code)
	assert.True(t, response.Known)
	assert.Equal(t, "VAT", response.TaxName)
	assert.Equal(t, 20.0, response.DefaultRate)
}

func TestCurrencyEndpoint_UnknownCode(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies/XYZ", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.CurrencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.False(t, response.Known)
	assert.Equal(t, "Tax ID", response.TaxIDShortLabel)
	assert.Equal(t, "Tax", response.TaxName)
	assert.Equal(t, 0.0, response.DefaultRate)
}
