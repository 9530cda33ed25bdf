// Package query holds the lookup, search, status filter and pagination helpers
// every catalog endpoint is built from. All helpers are pure and keep input order.
package query

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownField = errors.New("unknown search field")

// Identified is anything addressable by a string id.
type Identified interface {
	Key() string
}

// Field is a named searchable text attribute of T.
type Field[T any] struct {
	Name string
	Get  func(T) string
}

// FindByID returns the first item whose Key equals id.
func FindByID[T Identified](items []T, id string) (T, bool) {
	for _, it := range items {
		if it.Key() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// FilterByQuery keeps items where at least one field contains q, ignoring case.
// A blank query returns items unchanged.
func FilterByQuery[T any](items []T, q string, fields ...Field[T]) []T {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f.Get(it)), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// FilterByStatus keeps items whose status is in allowed. Empty allowed means no filter.
func FilterByStatus[T any, S comparable](items []T, status func(T) S, allowed []S) []T {
	if len(allowed) == 0 {
		return items
	}
	set := make(map[S]struct{}, len(allowed))
	for _, s := range allowed {
		set[s] = struct{}{}
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if _, ok := set[status(it)]; ok {
			out = append(out, it)
		}
	}
	return out
}

// SelectFields resolves field names against the searchable set of an entity.
// No names selects every field.
func SelectFields[T any](all []Field[T], names []string) ([]Field[T], error) {
	if len(names) == 0 {
		return all, nil
	}
	out := make([]Field[T], 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		found := false
		for _, f := range all {
			if strings.EqualFold(f.Name, name) {
				out = append(out, f)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}
	if len(out) == 0 {
		return all, nil
	}
	return out, nil
}
