package cart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crismov/storefront/internal/catalog"
	"github.com/crismov/storefront/internal/storage"
)

// The handler registers its Prometheus collectors globally, so the test
// package builds it exactly once and resets cart state between tests.
var (
	handlerOnce sync.Once
	testRouter  *mux.Router
	testService *Service
)

func setupRouter(t *testing.T) *mux.Router {
	t.Helper()
	handlerOnce.Do(func() {
		testService = NewService(storage.NewMemoryStore())
		handler := NewHandler(testService, catalog.NewProvider())
		testRouter = mux.NewRouter()
		handler.RegisterRoutes(testRouter)
	})
	require.NoError(t, testService.Clear(context.Background()))
	return testRouter
}

func doRequest(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandlerAddItem(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(router, http.MethodPost, "/cart/items", `{"productId":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	items := testService.Items(context.Background())
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Product.ID)
}

func TestHandlerAddUnknownProduct(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(router, http.MethodPost, "/cart/items", `{"productId":999}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerUpdateQuantity(t *testing.T) {
	router := setupRouter(t)

	doRequest(router, http.MethodPost, "/cart/items", `{"productId":1}`)
	rec := doRequest(router, http.MethodPut, "/cart/items/1", `{"quantity":4}`)
	require.Equal(t, http.StatusOK, rec.Code)

	items := testService.Items(context.Background())
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestHandlerQuantityZeroRemovesItem(t *testing.T) {
	router := setupRouter(t)

	doRequest(router, http.MethodPost, "/cart/items", `{"productId":1}`)
	rec := doRequest(router, http.MethodPut, "/cart/items/1", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Empty(t, testService.Items(context.Background()))
}

func TestHandlerUpdateMissingProduct(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(router, http.MethodPut, "/cart/items/42", `{"quantity":2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerClear(t *testing.T) {
	router := setupRouter(t)

	doRequest(router, http.MethodPost, "/cart/items", `{"productId":1}`)
	rec := doRequest(router, http.MethodDelete, "/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Empty(t, testService.Items(context.Background()))
}
