package fleet_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/carhub/fleet"
	"github.com/skillsenselab/carhub/fleet/memory"
	"github.com/skillsenselab/carhub/logger"
)

func newTestHandler(t *testing.T, store fleet.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	fleet.NewHandler(store, logger.NewDefault()).RegisterRoutes(engine)
	return engine
}

func do(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding %q: %v", w.Body.String(), err)
	}
	return body
}

func TestCarLifecycle(t *testing.T) {
	engine := newTestHandler(t, memory.New())

	w := do(engine, http.MethodPost, "/api/cars", `{"brand":"Ford","model":"Mustang","year":2021}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", w.Code, w.Body.String())
	}
	created := decode(t, w)
	id := int64(created["id"].(float64))
	if created["brand"] != "Ford" {
		t.Errorf("brand = %v", created["brand"])
	}

	w = do(engine, http.MethodGet, fmt.Sprintf("/api/cars/%d", id), "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: status = %d", w.Code)
	}

	w = do(engine, http.MethodDelete, fmt.Sprintf("/api/cars/%d", id), "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: status = %d", w.Code)
	}

	w = do(engine, http.MethodGet, fmt.Sprintf("/api/cars/%d", id), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: status = %d, want 404", w.Code)
	}
	if body := decode(t, w); body["error"] != "not_found" {
		t.Errorf("error = %v, want not_found", body["error"])
	}
}

func TestListCars_Pagination(t *testing.T) {
	store := memory.New()
	engine := newTestHandler(t, store)

	for i := 0; i < 25; i++ {
		body := fmt.Sprintf(`{"brand":"Brand%d","model":"M","year":2020}`, i)
		if w := do(engine, http.MethodPost, "/api/cars", body); w.Code != http.StatusCreated {
			t.Fatalf("seeding car %d: status = %d", i, w.Code)
		}
	}

	// Default page size is 10.
	w := do(engine, http.MethodGet, "/api/cars", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: status = %d", w.Code)
	}
	body := decode(t, w)
	data := body["data"].([]any)
	if len(data) != 10 {
		t.Errorf("default page size = %d, want 10", len(data))
	}
	meta := body["meta"].(map[string]any)
	if meta["total"] != float64(25) || meta["totalPages"] != float64(3) {
		t.Errorf("meta = %v", meta)
	}

	// Last page holds the remainder.
	w = do(engine, http.MethodGet, "/api/cars?page=3", "")
	body = decode(t, w)
	if data := body["data"].([]any); len(data) != 5 {
		t.Errorf("last page size = %d, want 5", len(data))
	}

	// Beyond the last page: empty data, not an error.
	w = do(engine, http.MethodGet, "/api/cars?page=9", "")
	if w.Code != http.StatusOK {
		t.Fatalf("out-of-range page: status = %d", w.Code)
	}
	body = decode(t, w)
	if data := body["data"].([]any); len(data) != 0 {
		t.Errorf("out-of-range page size = %d, want 0", len(data))
	}
}

func TestCreateCar_Validation(t *testing.T) {
	engine := newTestHandler(t, memory.New())

	tests := []struct {
		name string
		body string
	}{
		{"missing brand", `{"model":"Mustang","year":2021}`},
		{"missing year", `{"brand":"Ford","model":"Mustang"}`},
		{"implausible year", `{"brand":"Ford","model":"Mustang","year":1600}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := do(engine, http.MethodPost, "/api/cars", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
			}
			if body := decode(t, w); body["error"] != "validation_failed" {
				t.Errorf("error = %v, want validation_failed", body["error"])
			}
		})
	}
}

func TestOwners_HALLinks(t *testing.T) {
	engine := newTestHandler(t, memory.New())

	w := do(engine, http.MethodPost, "/api/owners", `{"firstName":"John","lastName":"Johnson"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create owner: status = %d, body %s", w.Code, w.Body.String())
	}
	created := decode(t, w)
	id := int64(created["id"].(float64))

	w = do(engine, http.MethodGet, fmt.Sprintf("/api/owners/%d", id), "")
	if w.Code != http.StatusOK {
		t.Fatalf("get owner: status = %d", w.Code)
	}
	body := decode(t, w)
	links, ok := body["_links"].(map[string]any)
	if !ok {
		t.Fatalf("_links missing in %v", body)
	}
	self := links["self"].(map[string]any)
	if self["href"] != fmt.Sprintf("/api/owners/%d", id) {
		t.Errorf("self link = %v", self["href"])
	}
	if _, ok := links["owners"]; !ok {
		t.Error("owners collection link missing")
	}
}

func TestGet_BadID(t *testing.T) {
	engine := newTestHandler(t, memory.New())

	w := do(engine, http.MethodGet, "/api/cars/not-a-number", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decode(t, w); body["error"] != "bad_request" {
		t.Errorf("error = %v, want bad_request", body["error"])
	}
}
