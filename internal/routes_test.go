package internal

import (
	"dialogd/internal/controllers"
	"dialogd/internal/providers"
	"dialogd/internal/testutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(svc *testutil.MockDialogService, metrics *testutil.MockMetrics) (providers.RouterProviderInterface, http.Handler) {
	dc := controllers.NewDialogController(&testutil.MockLogger{}, svc, testutil.NewMockCache(), &testutil.MockCompressor{}, metrics)
	router := InitRoutes(dc)

	mux := http.NewServeMux()
	for _, r := range router.GetRoutes() {
		mux.Handle(r.Url, r.Handler)
	}
	return router, providers.MetricsMiddleware(metrics, router.GetRoutes(), mux)
}

func TestInitRoutes_RegistersDialogRoutes(t *testing.T) {
	router, _ := newRouter(&testutil.MockDialogService{}, testutil.NewMockMetrics())
	routes := router.GetRoutes()

	require.Len(t, routes, 4)
	methods := make(map[string]string, len(routes))
	for _, r := range routes {
		methods[r.Url] = r.Method
	}
	assert.Equal(t, map[string]string{
		"/dialog":   http.MethodGet,
		"/segments": http.MethodGet,
		"/summary":  http.MethodGet,
		"/rotate":   http.MethodPost,
	}, methods)
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	_, handler := newRouter(&testutil.MockDialogService{}, testutil.NewMockMetrics())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/dialog", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/rotate", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestInitRoutes_RotateThenFetch(t *testing.T) {
	svc := &testutil.MockDialogService{Seed: 40}
	metrics := testutil.NewMockMetrics()
	_, handler := newRouter(svc, metrics)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/rotate", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/segments", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "41", rr.Header().Get(controllers.SeedHeader))
	assert.Equal(t, []int64{41}, svc.Generated)

	assert.Equal(t, 1, metrics.Requests["/rotate"])
	assert.Equal(t, 1, metrics.Requests["/segments"])
	assert.Equal(t, 1, metrics.Generations)
}
