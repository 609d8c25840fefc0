package fooditems_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/robinspt/food-inventory-system/internal/fooditems"
	"github.com/robinspt/food-inventory-system/pkg/openapi"
	"github.com/robinspt/food-inventory-system/pkg/pagination"
	"github.com/robinspt/food-inventory-system/pkg/routes"
)

type fakeSystem struct {
	today  fooditems.Date
	items  map[int64]fooditems.Item
	nextID int64
}

func newFake(t *testing.T) *fakeSystem {
	return &fakeSystem{
		today: mustDate(t, "2024-06-10"),
		items: map[int64]fooditems.Item{},
	}
}

func (f *fakeSystem) List(ctx context.Context, page pagination.PageRequest, filters fooditems.Filters) (*pagination.PageResult[fooditems.Item], error) {
	var out []fooditems.Item
	for _, it := range f.sorted() {
		if filters.Status != nil && it.Status != *filters.Status {
			continue
		}
		out = append(out, it)
	}
	result := pagination.NewPageResult(out, len(out), page.Page, page.PageSize)
	return &result, nil
}

func (f *fakeSystem) Find(ctx context.Context, id int64) (*fooditems.Item, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, fooditems.ErrNotFound
	}
	return &it, nil
}

func (f *fakeSystem) Create(ctx context.Context, cmd fooditems.CreateCommand) (*fooditems.Item, error) {
	it, err := cmd.Resolve(f.today, fooditems.DefaultWarningDays)
	if err != nil {
		return nil, err
	}
	f.nextID++
	it.ID = f.nextID
	f.items[it.ID] = it
	return &it, nil
}

func (f *fakeSystem) Update(ctx context.Context, id int64, cmd fooditems.UpdateCommand) (*fooditems.Item, error) {
	if cmd.Empty() {
		return nil, fooditems.ErrNoFieldsToUpdate
	}
	existing, ok := f.items[id]
	if !ok {
		return nil, fooditems.ErrNotFound
	}
	it, err := cmd.Apply(existing, f.today, fooditems.DefaultWarningDays)
	if err != nil {
		return nil, err
	}
	f.items[id] = it
	return &it, nil
}

func (f *fakeSystem) Delete(ctx context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return fooditems.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeSystem) Notifications(ctx context.Context) ([]fooditems.Item, error) {
	out := []fooditems.Item{}
	for _, it := range f.sorted() {
		if it.Status == fooditems.StatusWarning || it.Status == fooditems.StatusExpired {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeSystem) RefreshStatuses(ctx context.Context, today fooditems.Date) ([]fooditems.StatusChange, error) {
	var changes []fooditems.StatusChange
	for id, it := range f.items {
		next := fooditems.StatusFor(it.ExpirationDate, today, fooditems.DefaultWarningDays)
		if next != it.Status {
			changes = append(changes, fooditems.StatusChange{ID: id, Name: it.Name, From: it.Status, To: next})
			it.Status = next
			f.items[id] = it
		}
	}
	return changes, nil
}

func (f *fakeSystem) sorted() []fooditems.Item {
	out := make([]fooditems.Item, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	slices.SortFunc(out, func(a, b fooditems.Item) int {
		return a.ExpirationDate.Time().Compare(b.ExpirationDate.Time())
	})
	return out
}

func newMux(sys fooditems.System) *http.ServeMux {
	h := fooditems.NewHandler(sys, slog.New(slog.DiscardHandler), pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
	mux := http.NewServeMux()
	routes.Register(mux, "/api", openapi.NewSpec("test", "0"), h.Routes())
	return mux
}

func do(t *testing.T, mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))
	return w
}

func decodeInto[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHandlerCreate(t *testing.T) {
	mux := newMux(newFake(t))

	w := do(t, mux, "POST", "/food_items", `{
		"name": "Bread",
		"quantity": 1,
		"storage_location": "Pantry",
		"production_date": "2024-06-08",
		"expiry_period_value": 5,
		"expiry_period_unit": "days"
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}

	item := decodeInto[fooditems.Item](t, w)
	if item.ID == 0 || item.ExpirationDate.String() != "2024-06-13" || item.Status != fooditems.StatusWarning {
		t.Errorf("item = %+v", item)
	}
}

func TestHandlerCreateErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing dates", `{"name":"x","quantity":1}`, fooditems.ErrMissingDates.Error()},
		{"missing name", `{"quantity":1,"expiration_date":"2024-07-01"}`, fooditems.ErrMissingFields.Error()},
		{"bad date", `{"name":"x","quantity":1,"expiration_date":"07/01/2024"}`, "invalid request body"},
		{"empty body", ``, "invalid request body"},
	}

	mux := newMux(newFake(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, mux, "POST", "/food_items", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", w.Code)
			}
			body := decodeInto[map[string]string](t, w)
			if !strings.Contains(body["error"], tt.want) {
				t.Errorf("error = %q, want it to contain %q", body["error"], tt.want)
			}
		})
	}
}

func TestHandlerItemLifecycle(t *testing.T) {
	mux := newMux(newFake(t))

	w := do(t, mux, "POST", "/food_items", `{"name":"Rice","quantity":3,"expiration_date":"2025-01-01"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}

	if w := do(t, mux, "GET", "/food_items/1", ""); w.Code != http.StatusOK {
		t.Errorf("get status = %d", w.Code)
	}

	w = do(t, mux, "PUT", "/food_items/1", `{"quantity":0,"status":"expired"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body)
	}
	item := decodeInto[fooditems.Item](t, w)
	if item.Quantity != 0 || item.Status != fooditems.StatusExpired {
		t.Errorf("updated = %+v", item)
	}

	if w := do(t, mux, "PUT", "/food_items/1", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("empty update status = %d", w.Code)
	}

	if w := do(t, mux, "DELETE", "/food_items/1", ""); w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", w.Code)
	}
	if w := do(t, mux, "GET", "/food_items/1", ""); w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d", w.Code)
	}
	if w := do(t, mux, "DELETE", "/food_items/1", ""); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d", w.Code)
	}
}

func TestHandlerInvalidID(t *testing.T) {
	mux := newMux(newFake(t))

	for _, path := range []string{"/food_items/abc", "/food_items/0", "/food_items/-3"} {
		if w := do(t, mux, "GET", path, ""); w.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d", path, w.Code)
		}
	}
}

func TestHandlerList(t *testing.T) {
	sys := newFake(t)
	mux := newMux(sys)

	for _, body := range []string{
		`{"name":"A","quantity":1,"expiration_date":"2024-06-05"}`,
		`{"name":"B","quantity":1,"expiration_date":"2024-09-01"}`,
		`{"name":"C","quantity":1,"expiration_date":"2024-06-12"}`,
	} {
		if w := do(t, mux, "POST", "/food_items", body); w.Code != http.StatusCreated {
			t.Fatalf("seed status = %d", w.Code)
		}
	}

	w := do(t, mux, "GET", "/food_items?status=active", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	page := decodeInto[pagination.PageResult[fooditems.Item]](t, w)
	if page.Total != 1 || page.Data[0].Name != "B" {
		t.Errorf("page = %+v", page)
	}
	if page.Page != 1 || page.PageSize != 20 {
		t.Errorf("page meta = %d/%d", page.Page, page.PageSize)
	}

	if w := do(t, mux, "GET", "/food_items?status=stale", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad status filter = %d", w.Code)
	}
}

func TestHandlerNotifications(t *testing.T) {
	sys := newFake(t)
	mux := newMux(sys)

	for _, body := range []string{
		`{"name":"Soon","quantity":1,"expiration_date":"2024-06-15"}`,
		`{"name":"Later","quantity":1,"expiration_date":"2024-12-01"}`,
		`{"name":"Gone","quantity":1,"expiration_date":"2024-06-01"}`,
	} {
		do(t, mux, "POST", "/food_items", body)
	}

	w := do(t, mux, "GET", "/notifications", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	items := decodeInto[[]fooditems.Item](t, w)
	var names []string
	for _, it := range items {
		names = append(names, it.Name)
	}
	if !slices.Equal(names, []string{"Gone", "Soon"}) {
		t.Errorf("notifications = %v, want [Gone Soon]", names)
	}
}

func TestRoutesDocumented(t *testing.T) {
	h := fooditems.NewHandler(newFake(t), slog.New(slog.DiscardHandler), pagination.Config{})
	spec := openapi.NewSpec("test", "0")
	h.Routes().AddToSpec("/api", spec)

	for _, path := range []string{"/api/food_items", "/api/food_items/{id}", "/api/notifications"} {
		if _, ok := spec.Paths[path]; !ok {
			t.Errorf("missing path %s", path)
		}
	}

	item := spec.Paths["/api/food_items/{id}"]
	if item.Get == nil || item.Put == nil || item.Delete == nil {
		t.Error("expected GET, PUT and DELETE on /api/food_items/{id}")
	}
	if _, ok := spec.Components.Schemas["FoodItem"]; !ok {
		t.Error("FoodItem schema not registered")
	}
}
