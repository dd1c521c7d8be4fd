package router_test

import (
	"net/http"
	"os"
	"testing"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/internal/ledger"
	"github.com/fintrack-app/backend/internal/reports"
	"github.com/fintrack-app/backend/internal/router"
	"github.com/fintrack-app/backend/internal/tenant"
	"github.com/fintrack-app/backend/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testController() v1.Controller {
	store := ledger.NewMemoryStore()
	return v1.NewController(store, reports.NewEngine(store), tenant.NewRegistry(store, []byte("test-secret")))
}

func TestGinMode(t *testing.T) {
	gin.SetMode("debug")

	r, teardown, err := router.Config()
	defer teardown()

	assert.Nil(t, err, "Error on router initialization")

	router.AttachRoutes(testController(), r.Group("/"))

	assert.True(t, gin.IsDebugging())

	gin.SetMode(gin.TestMode)
}

func TestPprofOn(t *testing.T) {
	os.Setenv("ENABLE_PPROF", "true")

	r, teardown, err := router.Config()
	defer teardown()
	assert.Nil(t, err, "Error on router initialization")

	router.AttachRoutes(testController(), r.Group("/"))

	var routes []string
	for _, r := range r.Routes() {
		routes = append(routes, r.Path)
	}
	assert.Contains(t, routes, "/debug/pprof/")

	os.Unsetenv("ENABLE_PPROF")
}

func TestPprofOff(t *testing.T) {
	r, teardown, err := router.Config()
	defer teardown()
	assert.Nil(t, err, "Error on router initialization")

	router.AttachRoutes(testController(), r.Group("/"))

	for _, r := range r.Routes() {
		assert.NotContains(t, r.Path, "pprof", "pprof routes are registered erroneously! Route: %s", r)
	}
}

// TestCorsSetting checks that setting of CORS works.
// It does not check the actual headers as this is already done in testing of the module.
func TestCorsSetting(t *testing.T) {
	os.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000 https://example.com")

	_, teardown, err := router.Config()
	defer teardown()

	assert.Nil(t, err)
	os.Unsetenv("CORS_ALLOW_ORIGINS")
}

func TestGetRoot(t *testing.T) {
	r, teardown, err := router.Config()
	defer teardown()
	assert.Nil(t, err, "Error on router initialization")

	router.AttachRoutes(testController(), r.Group("/"))

	recorder := test.Request(t, r, http.MethodGet, "/", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response router.RootResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.Equal(t, "/version", response.Links.Version)
	assert.Equal(t, "/v1", response.Links.V1)
}

func TestGetVersion(t *testing.T) {
	r, teardown, err := router.Config()
	defer teardown()
	assert.Nil(t, err, "Error on router initialization")

	router.AttachRoutes(testController(), r.Group("/"))

	recorder := test.Request(t, r, http.MethodGet, "/version", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response router.VersionResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.NotEmpty(t, response.Data.Version)
}

func TestGetV1(t *testing.T) {
	r, teardown, err := router.Config()
	defer teardown()
	assert.Nil(t, err, "Error on router initialization")

	router.AttachRoutes(testController(), r.Group("/"))

	recorder := test.Request(t, r, http.MethodGet, "/v1", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response router.V1Response
	test.DecodeResponse(t, &recorder, &response)
	assert.Equal(t, "/v1/transactions", response.Links.Transactions)
	assert.Equal(t, "/v1/dashboard", response.Links.Dashboard)
}

func TestMethodNotAllowed(t *testing.T) {
	r, teardown, err := router.Config()
	defer teardown()
	assert.Nil(t, err, "Error on router initialization")

	router.AttachRoutes(testController(), r.Group("/"))

	recorder := test.Request(t, r, http.MethodDelete, "/", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusMethodNotAllowed)
}

func TestMetrics(t *testing.T) {
	r, teardown, err := router.Config()
	defer teardown()
	assert.Nil(t, err, "Error on router initialization")

	router.AttachRoutes(testController(), r.Group("/"))

	recorder := test.Request(t, r, http.MethodGet, "/metrics", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)
	assert.Contains(t, recorder.Body.String(), "go_goroutines", "Metrics endpoint does not expose go runtime metrics")
}
