package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"campaign/internal/console"
)

// The generic helpers below wire the console engine into the per-kind admin
// endpoints. They are free functions because methods cannot take type
// parameters.

func parseViewQuery[T any](a *App, w http.ResponseWriter, r *http.Request, fields console.FieldMap[T], searchFields []string) (console.ViewQuery, bool) {
	params := r.URL.Query()

	dateRange, err := console.ParseDateRange(params.Get("range"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return console.ViewQuery{}, false
	}
	direction, err := console.ParseSortDirection(params.Get("dir"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return console.ViewQuery{}, false
	}
	sortField := params.Get("sort")
	if sortField == "" {
		sortField = console.CreatedAtField
	}
	if _, ok := fields[sortField]; !ok {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown sort field "+strconv.Quote(sortField))
		return console.ViewQuery{}, false
	}

	return console.ViewQuery{
		Search:       params.Get("q"),
		SearchFields: searchFields,
		Range:        dateRange,
		SortField:    sortField,
		Direction:    direction,
	}, true
}

func listView[T any](a *App, w http.ResponseWriter, r *http.Request,
	list func(ctx context.Context) ([]T, error),
	fields console.FieldMap[T], searchFields []string,
	payload func(T) map[string]any,
) {
	q, ok := parseViewQuery(a, w, r, fields, searchFields)
	if !ok {
		return
	}
	records, err := list(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load records")
		return
	}
	view := console.ComputeView(records, fields, q, time.Now())
	items := make([]map[string]any, 0, len(view))
	for _, rec := range view {
		items = append(items, payload(rec))
	}
	a.json(w, http.StatusOK, items)
}

// exportCSV streams the selected records (or all of them when no ids are
// given) as a CSV attachment. Ids absent from the store are dropped silently.
func exportCSV[T any](a *App, w http.ResponseWriter, r *http.Request,
	list func(ctx context.Context) ([]T, error),
	idOf func(T) int, cols []console.Column[T], baseName string,
) {
	requested, ok := parseIDList(a, w, r.URL.Query().Get("ids"))
	if !ok {
		return
	}
	records, err := list(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load records")
		return
	}

	sel := console.NewSelection()
	for _, id := range requested {
		sel.Toggle(id)
	}
	valid := make([]int, 0, len(records))
	for _, rec := range records {
		valid = append(valid, idOf(rec))
	}
	sel.Prune(valid)

	subset := console.ExportSelected(records, idOf, sel, len(requested) == 0)
	body := console.Serialize(subset, cols)
	filename := console.ExportFilename(baseName, time.Now())

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, body)
}

// bulkDelete prunes the requested ids against the store, attempts each
// remaining id independently, and reports counts.
func bulkDelete[T any](a *App, w http.ResponseWriter, r *http.Request,
	list func(ctx context.Context) ([]T, error),
	idOf func(T) int,
	del func(ctx context.Context, id int) error,
) {
	var req struct {
		IDs []int `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	records, err := list(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load records")
		return
	}
	valid := make([]int, 0, len(records))
	for _, rec := range records {
		valid = append(valid, idOf(rec))
	}

	sel := console.NewSelection()
	for _, id := range req.IDs {
		if !sel.IsSelected(id) {
			sel.Toggle(id)
		}
	}
	sel.Prune(valid)

	res := console.BulkDelete(r.Context(), sel, del)
	a.json(w, http.StatusOK, res)
}

func parseIDList(a *App, w http.ResponseWriter, raw string) ([]int, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, true
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		id, err := strconv.Atoi(trimmed)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "invalid id "+strconv.Quote(trimmed))
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
