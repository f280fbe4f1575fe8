// Package e2e provides end-to-end tests for the catalog service.
// The real application handler, backed by a freshly seeded in-memory store, runs in an
// httptest.Server and is driven over HTTP. The suite uses testify/suite; SetupTest starts a
// new server for every test so that updates never leak between cases.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/abgdnv/gocatalog/internal/config"
	"github.com/abgdnv/gocatalog/internal/platform/web"
	"github.com/abgdnv/gocatalog/internal/product/app"
	"github.com/abgdnv/gocatalog/internal/product/service"
	"github.com/abgdnv/gocatalog/internal/product/store"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// skipE2ETests is the environment variable that can be set to skip E2E tests.
const skipE2ETests = "CATALOG_SKIP_E2E_TESTS"

// productURL is the base URL of the product API.
const productURL = "/v1/products"

// CatalogE2ESuite is a test suite for end-to-end tests of the catalog service.
type CatalogE2ESuite struct {
	suite.Suite                  // Embedding testify's suite for structured testing
	server      *httptest.Server // HTTP server for the catalog application
	httpClient  *http.Client     // HTTP client for making requests to the server
	logger      *slog.Logger     // Logger for the test suite
	ctx         context.Context  // Context for the test suite
}

// testConfig creates a configuration for the catalog application with metrics enabled.
func testConfig() *config.Config {
	var cfg config.Config
	cfg.Metrics.Enabled = true
	cfg.Metrics.Path = "/metrics"
	return &cfg
}

func (s *CatalogE2ESuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	s.httpClient = &http.Client{Timeout: 5 * time.Second}
}

// SetupTest starts a server over a freshly seeded store.
func (s *CatalogE2ESuite) SetupTest() {
	deps := app.SetupDependencies(s.logger)
	s.server = httptest.NewServer(app.SetupHttpHandler(deps, testConfig()))
}

func (s *CatalogE2ESuite) TearDownTest() {
	s.server.Close()
}

func TestCatalogE2E(t *testing.T) {
	if os.Getenv(skipE2ETests) != "" {
		t.Skip("Skipping E2E tests")
	}
	suite.Run(t, new(CatalogE2ESuite))
}

// do sends a request with an optional JSON body and returns the status code and response body.
func (s *CatalogE2ESuite) do(method, path string, body any) (int, []byte) {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			payload, err := json.Marshal(b)
			s.Require().NoError(err)
			reader = bytes.NewReader(payload)
		}
	}
	req, err := http.NewRequestWithContext(s.ctx, method, s.server.URL+path, reader)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	respBody, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, respBody
}

func (s *CatalogE2ESuite) getProduct(id int64) service.ProductDto {
	code, body := s.do(http.MethodGet, fmt.Sprintf("%s/%d", productURL, id), nil)
	s.Require().Equal(http.StatusOK, code, string(body))
	var product service.ProductDto
	s.Require().NoError(json.Unmarshal(body, &product))
	return product
}

func (s *CatalogE2ESuite) decodeError(body []byte) web.ErrorResponse {
	var errResp web.ErrorResponse
	s.Require().NoError(json.Unmarshal(body, &errResp), string(body))
	return errResp
}

func (s *CatalogE2ESuite) TestGetProduct_AllSeeded() {
	for _, seeded := range store.SeedProducts() {
		product := s.getProduct(seeded.ID)
		s.Equal(seeded.ID, product.ID)
		s.Equal(seeded.Name, product.Name)
		s.Equal(seeded.Price, product.Price)
		s.Equal(seeded.Description, product.Description)
	}
}

func (s *CatalogE2ESuite) TestGetProduct_Errors() {
	testCases := []struct {
		name         string
		path         string
		expectedCode int
		expectedErr  string
		expectedMsg  string
	}{
		{"unknown id", productURL + "/9999", http.StatusNotFound, web.CodeNotFound, "Product 9999 not found"},
		{"zero id", productURL + "/0", http.StatusBadRequest, web.CodeBadRequest, "Invalid productId: 0"},
		{"negative id", productURL + "/-1", http.StatusBadRequest, web.CodeBadRequest, "Invalid productId: -1"},
		{"non-integer id", productURL + "/abc", http.StatusBadRequest, web.CodeBadRequest, "Invalid productId: abc"},
		{"unknown route", "/v1/unknown", http.StatusNotFound, web.CodeNotFound, "Path /v1/unknown not found"},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			code, body := s.do(http.MethodGet, tc.path, nil)
			s.Equal(tc.expectedCode, code)
			errResp := s.decodeError(body)
			s.Equal(tc.expectedErr, errResp.Code)
			s.Equal(tc.expectedMsg, errResp.Message)
		})
	}
}

func (s *CatalogE2ESuite) TestUpdateDetails_PriceOnly() {
	// given
	before := s.getProduct(1)
	// when
	code, body := s.do(http.MethodPost, productURL+"/1/details", `{"id":1,"price":99.99}`)
	// then
	s.Require().Equal(http.StatusNoContent, code, string(body))
	s.Empty(body)
	after := s.getProduct(1)
	s.Equal(99.99, after.Price)
	s.Equal(before.Name, after.Name)
	s.Equal(before.Description, after.Description)
}

func (s *CatalogE2ESuite) TestUpdateDetails_AllFields() {
	// when
	code, _ := s.do(http.MethodPost, productURL+"/4/details",
		map[string]any{"id": 4, "name": "Thick Yoga Mat", "price": 0, "description": "Extra thick"})
	// then
	s.Require().Equal(http.StatusNoContent, code)
	after := s.getProduct(4)
	s.Equal(int64(4), after.ID)
	s.Equal("Thick Yoga Mat", after.Name)
	s.Equal(0.0, after.Price)
	s.Require().NotNil(after.Description)
	s.Equal("Extra thick", *after.Description)
}

func (s *CatalogE2ESuite) TestUpdateDetails_NullDescriptionClearsIt() {
	// when
	code, _ := s.do(http.MethodPost, productURL+"/7/details", `{"id":7,"description":null}`)
	// then
	s.Require().Equal(http.StatusNoContent, code)
	after := s.getProduct(7)
	s.Nil(after.Description)
	s.Equal("Coffee Mug", after.Name)
}

func (s *CatalogE2ESuite) TestUpdateDetails_Errors() {
	testCases := []struct {
		name         string
		path         string
		body         string
		expectedCode int
		expectedErr  string
		expectedMsg  string
	}{
		{"id mismatch", "/1/details", `{"id":2,"name":"Other"}`, http.StatusBadRequest, web.CodeBadRequest,
			"Invalid input data: Body id must match path productId"},
		{"id missing", "/1/details", `{"price":1}`, http.StatusBadRequest, web.CodeBadRequest,
			"Invalid input data: Body id must match path productId"},
		{"unknown product", "/9999/details", `{"id":9999,"name":"Ghost"}`, http.StatusNotFound, web.CodeNotFound,
			"Product 9999 not found"},
		{"negative price", "/1/details", `{"id":1,"price":-5}`, http.StatusBadRequest, web.CodeBadRequest,
			"Invalid input data: price failed on rule: gte"},
		{"empty name", "/1/details", `{"id":1,"name":""}`, http.StatusBadRequest, web.CodeBadRequest,
			"Invalid input data: name failed on rule: min"},
		{"null name", "/1/details", `{"id":1,"name":null}`, http.StatusBadRequest, web.CodeBadRequest,
			"Invalid input data: name must not be null"},
		{"malformed body", "/1/details", `{"id":`, http.StatusBadRequest, web.CodeBadRequest,
			"Invalid request body"},
		{"trailing data", "/1/details", `{"id":1,"price":99.99}garbage`, http.StatusBadRequest, web.CodeBadRequest,
			"Invalid request body"},
		{"invalid path id", "/zero/details", `{"id":1}`, http.StatusBadRequest, web.CodeBadRequest,
			"Invalid productId: zero"},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			code, body := s.do(http.MethodPost, productURL+tc.path, tc.body)
			s.Equal(tc.expectedCode, code)
			errResp := s.decodeError(body)
			s.Equal(tc.expectedErr, errResp.Code)
			s.Equal(tc.expectedMsg, errResp.Message)
		})
	}
	// nothing was changed by the rejected updates
	after := s.getProduct(1)
	s.Equal(store.SeedProducts()[0].Name, after.Name)
	s.Equal(store.SeedProducts()[0].Price, after.Price)
}

func (s *CatalogE2ESuite) TestUpdateDetails_TrailingDataIsNotApplied() {
	// when
	code, body := s.do(http.MethodPost, productURL+"/1/details", `{"id":1,"price":99.99}garbage`)
	// then
	s.Require().Equal(http.StatusBadRequest, code, string(body))
	s.Equal(web.CodeBadRequest, s.decodeError(body).Code)
	s.Equal(12.99, s.getProduct(1).Price)
}

func (s *CatalogE2ESuite) TestUpdateDetails_Idempotent() {
	update := `{"id":3,"name":"Bottle","price":21.5}`

	code, _ := s.do(http.MethodPost, productURL+"/3/details", update)
	s.Require().Equal(http.StatusNoContent, code)
	once := s.getProduct(3)

	code, _ = s.do(http.MethodPost, productURL+"/3/details", update)
	s.Require().Equal(http.StatusNoContent, code)
	twice := s.getProduct(3)

	s.Equal(once, twice)
}

func (s *CatalogE2ESuite) TestUpdateDetails_WrongMethod() {
	code, body := s.do(http.MethodPut, productURL+"/1/details", `{"id":1}`)
	s.Equal(http.StatusMethodNotAllowed, code)
	s.Equal(web.CodeError, s.decodeError(body).Code)
}

func (s *CatalogE2ESuite) TestOperationalEndpoints() {
	code, _ := s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusOK, code)

	s.getProduct(2)
	code, body := s.do(http.MethodGet, "/metrics", nil)
	s.Equal(http.StatusOK, code)
	s.Contains(string(body), "http_requests_total")
}

func TestCatalogE2E_RequestIDEcho(t *testing.T) {
	srv := httptest.NewServer(app.SetupHttpHandler(app.SetupDependencies(slog.New(slog.NewTextHandler(io.Discard, nil))), testConfig()))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+productURL+"/1", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "req-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "req-123", resp.Header.Get("X-Request-Id"))
}
