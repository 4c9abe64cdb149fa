package pctoolbox

import (
	"reflect"
	"strings"
)

// Linear search helpers over lists of decoded JSON/CSV objects.
//
// All helpers share first-match semantics: scanning stops at the first
// object whose field equals the search value, including SearchListObjects,
// which therefore returns at most one element. Objects missing the search
// field are skipped. Nothing matching yields nil (or an empty list).

// SearchListValue returns the value of returnField from the first object
// whose searchField equals searchValue, or nil when nothing matches.
func SearchListValue(list []map[string]any, searchField, returnField string, searchValue any) any {
	for _, item := range list {
		v, ok := item[searchField]
		if !ok {
			continue
		}
		if reflect.DeepEqual(v, searchValue) {
			return item[returnField]
		}
	}
	return nil
}

// SearchListValueFold is the case-insensitive variant of SearchListValue.
// Only string field values can match.
func SearchListValueFold(list []map[string]any, searchField, returnField, searchValue string) any {
	for _, item := range list {
		if fieldEqualsFold(item, searchField, searchValue) {
			return item[returnField]
		}
	}
	return nil
}

// SearchListObject returns the first object whose searchField equals
// searchValue, or nil when nothing matches.
func SearchListObject(list []map[string]any, searchField string, searchValue any) map[string]any {
	for _, item := range list {
		v, ok := item[searchField]
		if !ok {
			continue
		}
		if reflect.DeepEqual(v, searchValue) {
			return item
		}
	}
	return nil
}

// SearchListObjectFold is the case-insensitive variant of SearchListObject.
func SearchListObjectFold(list []map[string]any, searchField, searchValue string) map[string]any {
	for _, item := range list {
		if fieldEqualsFold(item, searchField, searchValue) {
			return item
		}
	}
	return nil
}

// SearchListObjects returns the objects whose searchField equals
// searchValue. Scanning stops at the first match, so the result holds at
// most one element; an empty (non-nil) list means nothing matched. The
// at-most-one behavior is historical and callers depend on it.
func SearchListObjects(list []map[string]any, searchField string, searchValue any) []map[string]any {
	matches := []map[string]any{}
	for _, item := range list {
		v, ok := item[searchField]
		if !ok {
			continue
		}
		if reflect.DeepEqual(v, searchValue) {
			matches = append(matches, item)
			break
		}
	}
	return matches
}

// SearchListObjectsFold is the case-insensitive variant of
// SearchListObjects, with the same first-match cutoff.
func SearchListObjectsFold(list []map[string]any, searchField, searchValue string) []map[string]any {
	matches := []map[string]any{}
	for _, item := range list {
		if fieldEqualsFold(item, searchField, searchValue) {
			matches = append(matches, item)
			break
		}
	}
	return matches
}

func fieldEqualsFold(item map[string]any, field, value string) bool {
	v, ok := item[field]
	if !ok {
		return false
	}
	s, ok := v.(string)
	return ok && strings.EqualFold(s, value)
}
