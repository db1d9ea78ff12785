package console

import "context"

// BulkResult reports per-id outcomes of a bulk delete.
type BulkResult struct {
	Deleted int `json:"deleted"`
	Failed  int `json:"failed"`
}

// BulkDelete attempts every selected id independently; one failure never
// aborts the rest. Ids that deleted successfully are removed from the
// selection, failed ones stay selected for a retry.
func BulkDelete(ctx context.Context, sel *Selection, del func(context.Context, int) error) BulkResult {
	var res BulkResult
	for _, id := range sel.IDs() {
		if err := del(ctx, id); err != nil {
			res.Failed++
			continue
		}
		delete(sel.ids, id)
		res.Deleted++
	}
	return res
}

// ExportSelected resolves the subset of records whose id is selected,
// preserving record order. An empty selection with exportAll set returns the
// whole list; an empty selection without it returns nothing.
func ExportSelected[T any](records []T, idOf func(T) int, sel *Selection, exportAll bool) []T {
	if sel.Size() == 0 {
		if exportAll {
			out := make([]T, len(records))
			copy(out, records)
			return out
		}
		return nil
	}
	out := make([]T, 0, sel.Size())
	for _, rec := range records {
		if sel.IsSelected(idOf(rec)) {
			out = append(out, rec)
		}
	}
	return out
}
