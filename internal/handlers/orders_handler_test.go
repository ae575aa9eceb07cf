package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dabirisdesserts/order-intake/internal/airtable"
	"github.com/dabirisdesserts/order-intake/internal/validation"
	"github.com/dabirisdesserts/order-intake/internal/workflow"
)

type stubSubmitter struct {
	res workflow.Result
	err error
	got *validation.SubmitOrderRequest
}

func (s *stubSubmitter) Submit(ctx context.Context, req validation.SubmitOrderRequest) (workflow.Result, error) {
	s.got = &req
	return s.res, s.err
}

func newTestRouter(s Submitter, dev bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterOrderRoutes(r, HandlerConfig{Submitter: s, DevMode: dev})
	return r
}

const validBody = `{
	"firstName": "Ava",
	"lastName": "Lee",
	"email": "a@x.com",
	"phone": "555-1111",
	"pickupDate": "2025-06-01",
	"products": [{"name": "6in cake", "price": 45, "quantity": 1}]
}`

func postOrder(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/submit-order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitOrder_Success(t *testing.T) {
	stub := &stubSubmitter{res: workflow.Result{OrderID: "DD-TEST1-ABCDE", Total: 45}}
	w := postOrder(newTestRouter(stub, false), validBody)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "DD-TEST1-ABCDE", resp["orderId"])
	assert.Equal(t, 45.0, resp["total"])
	assert.NotEmpty(t, resp["message"])

	require.NotNil(t, stub.got)
	assert.Equal(t, "Ava", stub.got.FirstName)
}

func TestSubmitOrder_MissingFields(t *testing.T) {
	stub := &stubSubmitter{}
	w := postOrder(newTestRouter(stub, false), `{"firstName":"Ava"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, stub.got, "submitter must not run for invalid input")

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "validation_failed", resp["error"])
}

func TestSubmitOrder_MalformedJSON(t *testing.T) {
	w := postOrder(newTestRouter(&stubSubmitter{}, false), `{"firstName":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitOrder_DatastoreFailure(t *testing.T) {
	stub := &stubSubmitter{err: &airtable.APIError{StatusCode: 503, Body: "unavailable"}}
	w := postOrder(newTestRouter(stub, false), validBody)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "datastore_failed", resp["error"])
	assert.NotContains(t, resp, "details", "no internal detail outside development mode")
}

func TestSubmitOrder_DevModeDetails(t *testing.T) {
	stub := &stubSubmitter{err: &airtable.APIError{StatusCode: 503, Body: "unavailable"}}
	w := postOrder(newTestRouter(stub, true), validBody)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["details"], "503")
}

func TestSubmitOrder_NotificationFailure(t *testing.T) {
	stub := &stubSubmitter{err: &workflow.NotificationError{Err: assert.AnError}}
	w := postOrder(newTestRouter(stub, false), validBody)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "notification_failed", resp["error"])
}

func TestSubmitOrder_GetNotAllowed(t *testing.T) {
	r := newTestRouter(&stubSubmitter{}, false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/submit-order", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestOptionsPreflight(t *testing.T) {
	r := newTestRouter(&stubSubmitter{}, false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/submit-order", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&stubSubmitter{}, false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp["status"])
	assert.NotEmpty(t, resp["timestamp"])
}
