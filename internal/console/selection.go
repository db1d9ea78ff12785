package console

import "sort"

// Selection tracks the admin's multi-select of record ids within one kind.
// It only ever holds ids; resolving them back to records happens at dispatch
// time so deletions elsewhere cannot leave dangling references.
type Selection struct {
	ids map[int]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[int]struct{})}
}

// Toggle flips membership of a single id.
func (s *Selection) Toggle(id int) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// ToggleAll implements the select-all checkbox: when the selection already
// equals the view's id set exactly, it empties; otherwise it is replaced by
// the view's ids, discarding any prior selection from another view.
func (s *Selection) ToggleAll(viewIDs []int) {
	if s.equals(viewIDs) {
		s.Clear()
		return
	}
	s.ids = make(map[int]struct{}, len(viewIDs))
	for _, id := range viewIDs {
		s.ids[id] = struct{}{}
	}
}

func (s *Selection) equals(viewIDs []int) bool {
	if len(s.ids) != len(viewIDs) {
		return false
	}
	for _, id := range viewIDs {
		if _, ok := s.ids[id]; !ok {
			return false
		}
	}
	return true
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[int]struct{})
}

// IsSelected reports membership of id.
func (s *Selection) IsSelected(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// Size returns the number of selected ids.
func (s *Selection) Size() int {
	return len(s.ids)
}

// IDs returns the selected ids in ascending order.
func (s *Selection) IDs() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Prune drops ids no longer present in the backing store. Stale ids from
// records deleted elsewhere disappear silently.
func (s *Selection) Prune(valid []int) {
	keep := make(map[int]struct{}, len(valid))
	for _, id := range valid {
		keep[id] = struct{}{}
	}
	for id := range s.ids {
		if _, ok := keep[id]; !ok {
			delete(s.ids, id)
		}
	}
}
