package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/nycopportunity/benefits-screener/rules/catalog"
)

func validBody() []byte {
	return []byte(`{
		"household": [{"livingRenting": true}],
		"person": [{"age": 35, "householdMemberType": "HeadOfHousehold"}]
	}`)
}

func doScreen(t *testing.T, router http.Handler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/screen", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleScreen_Success(t *testing.T) {
	router := NewRouter(nil)
	rec := doScreen(t, router, validBody())

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var body successEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !body.Success {
		t.Error("expected success=true")
	}
}

func TestHandleScreen_MalformedJSON(t *testing.T) {
	router := NewRouter(nil)
	rec := doScreen(t, router, []byte(`not json`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body.Success {
		t.Error("expected success=false for malformed JSON")
	}
}

func TestHandleScreen_ValidationFailure(t *testing.T) {
	router := NewRouter(nil)
	rec := doScreen(t, router, []byte(`{"household": [{}], "person": []}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleScreen_RequestIDHeaderSet(t *testing.T) {
	router := NewRouter(nil)
	rec := doScreen(t, router, validBody())

	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id header to be set")
	}
}
