package query_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/robinspt/food-inventory-system/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "food_items", "f").
		Project("id", "id").
		Project("name", "name").
		Project("status", "status").
		Project("expiration_date", "expiration_date")
}

var byName = query.SortField{Field: "name"}

func TestProjectionMap(t *testing.T) {
	pm := testProjection()

	if pm.Alias() != "f" {
		t.Errorf("Alias() = %q, want f", pm.Alias())
	}
	if pm.Table() != "public.food_items f" {
		t.Errorf("Table() = %q, want public.food_items f", pm.Table())
	}
	if pm.Column("name") != "f.name" {
		t.Errorf("Column(name) = %q, want f.name", pm.Column("name"))
	}
	if pm.Column("unknown") != "unknown" {
		t.Errorf("Column(unknown) = %q, want unknown", pm.Column("unknown"))
	}
	if !pm.Has("status") || pm.Has("unknown") {
		t.Error("Has() reported wrong membership")
	}
	if pm.Columns() != "f.id, f.name, f.status, f.expiration_date" {
		t.Errorf("Columns() = %q", pm.Columns())
	}

	list := pm.ColumnList()
	list[0] = "changed"
	if pm.ColumnList()[0] != "f.id" {
		t.Error("ColumnList() exposed internal slice")
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		in   string
		want []query.SortField
	}{
		{"", nil},
		{"name", []query.SortField{{Field: "name"}}},
		{"-expiration_date,name", []query.SortField{{Field: "expiration_date", Descending: true}, {Field: "name"}}},
		{" name , ,-", []query.SortField{{Field: "name"}}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := query.ParseSortFields(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSortFields(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuilderBuildCount(t *testing.T) {
	sql, args := query.NewBuilder(testProjection(), byName).BuildCount()

	if sql != "SELECT COUNT(*) FROM public.food_items f" {
		t.Errorf("sql = %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestBuilderBuildPage(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection(), byName).BuildPage(3, 10)

	want := "SELECT f.id, f.name, f.status, f.expiration_date FROM public.food_items f ORDER BY f.name ASC LIMIT 10 OFFSET 20"
	if sql != want {
		t.Errorf("sql = %q\nwant %q", sql, want)
	}
}

func TestBuilderBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("id", int64(5))

	if sql != "SELECT f.id, f.name, f.status, f.expiration_date FROM public.food_items f WHERE f.id = $1" {
		t.Errorf("sql = %q", sql)
	}
	if len(args) != 1 || args[0] != int64(5) {
		t.Errorf("args = %v", args)
	}
}

func TestBuilderOrderByFields(t *testing.T) {
	tests := []struct {
		name   string
		fields []query.SortField
		want   string
	}{
		{"default", nil, " ORDER BY f.name ASC"},
		{"multiple", []query.SortField{{Field: "expiration_date", Descending: true}, {Field: "name"}}, " ORDER BY f.expiration_date DESC, f.name ASC"},
		{"unknown dropped", []query.SortField{{Field: "name; DROP TABLE users"}}, " ORDER BY f.name ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _ := query.NewBuilder(testProjection(), byName).OrderByFields(tt.fields).BuildSelect()
			if !strings.HasSuffix(sql, tt.want) {
				t.Errorf("sql = %q, want suffix %q", sql, tt.want)
			}
		})
	}
}

func TestBuilderOrderByEmptyKeepsDefault(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection(), byName).OrderBy("", true).BuildSelect()
	if !strings.HasSuffix(sql, " ORDER BY f.name ASC") {
		t.Errorf("sql = %q", sql)
	}
}

func TestBuilderNoDefaultSort(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection()).BuildSelect()
	if strings.Contains(sql, "ORDER BY") {
		t.Errorf("sql = %q, want no ORDER BY", sql)
	}
}

func TestBuilderConditions(t *testing.T) {
	status := "warning"
	empty := ""
	var nilString *string
	search := "milk"

	sql, args := query.NewBuilder(testProjection(), byName).
		WhereEquals("status", &status).
		WhereEquals("status", nilString).
		WhereEquals("status", &empty).
		WhereEquals("id", nil).
		WhereContains("name", nilString).
		WhereIn("status", "warning", "expired").
		WhereIn("status").
		WhereSearch(&search, "name", "status").
		BuildCount()

	want := "SELECT COUNT(*) FROM public.food_items f WHERE f.status = $1 AND f.status IN ($2, $3) AND (f.name ILIKE $4 OR f.status ILIKE $5)"
	if sql != want {
		t.Errorf("sql = %q\nwant %q", sql, want)
	}

	wantArgs := []any{"warning", "warning", "expired", "%milk%", "%milk%"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}

func TestBuilderWhereContains(t *testing.T) {
	name := "rice"
	sql, args := query.NewBuilder(testProjection()).WhereContains("name", &name).BuildCount()

	if !strings.HasSuffix(sql, "WHERE f.name ILIKE $1") {
		t.Errorf("sql = %q", sql)
	}
	if len(args) != 1 || args[0] != "%rice%" {
		t.Errorf("args = %v", args)
	}
}
