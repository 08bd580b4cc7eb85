package main

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Beka01247/restaurant-api/internal/domain"
)

func TestWriteJson(t *testing.T) {
	rr := httptest.NewRecorder()

	if err := writeJson(rr, http.StatusCreated, map[string]string{"id": "abc"}); err != nil {
		t.Fatalf("writeJson() error = %v", err)
	}

	checkResponseCode(t, http.StatusCreated, rr.Code)
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := rr.Body.String(); got != "{\"id\":\"abc\"}\n" {
		t.Errorf("body = %q", got)
	}
}

func TestWriteJsonUnencodableLeavesResponseUntouched(t *testing.T) {
	rr := httptest.NewRecorder()

	if err := writeJson(rr, http.StatusOK, map[string]float64{"price": math.NaN()}); err == nil {
		t.Fatal("expected an encoding error")
	}
	if rr.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "" {
		t.Errorf("Content-Type = %q, want unset", ct)
	}

	// the status is still free for the error response
	writeJSONError(rr, http.StatusInternalServerError, "the server encountered a problem")
	checkResponseCode(t, http.StatusInternalServerError, rr.Code)
}

func TestListMenuHandlerUnencodableItem(t *testing.T) {
	app := newTestApplication(t, config{})
	app.menuRepo.items = []domain.MenuItem{{Name: "Ghost", Price: math.Inf(1), Category: "Mains", IsAvailable: true}}

	rr := app.do(t, http.MethodGet, "/api/menu", "")
	checkResponseCode(t, http.StatusInternalServerError, rr.Code)

	var body map[string]string
	if err := json.NewDecoder(strings.NewReader(rr.Body.String())).Decode(&body); err != nil {
		t.Fatalf("body %q is not a single JSON object: %v", rr.Body.String(), err)
	}
	if body["error"] != "the server encountered a problem" {
		t.Errorf("error = %q", body["error"])
	}
}
