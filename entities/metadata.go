package entities

import (
	"bytes"
	"encoding/json"
	"reflect"
)

const (
	metadataSlotsKey   = "slots"
	displayScopesKey   = "displayScopes"
	displayFilterKey   = "filter"
	encodedFilterTrail = "\n"
)

// normalizeMetadata returns metadata in its stored form: every
// slots[i].displayScopes[j].filter held as a JSON object is replaced by its
// string encoding. md itself is left untouched; only the containers on the
// path to a filter are copied.
func normalizeMetadata(md map[string]any) (map[string]any, error) {
	slots, ok := asList(md[metadataSlotsKey])
	if !ok {
		return md, nil
	}

	outSlots := make([]any, len(slots))

	for i, slot := range slots {
		normalized, err := normalizeSlot(slot)
		if err != nil {
			return nil, err
		}

		outSlots[i] = normalized
	}

	out := make(map[string]any, len(md))
	for k, v := range md {
		out[k] = v
	}

	out[metadataSlotsKey] = outSlots

	return out, nil
}

func normalizeSlot(slot any) (any, error) {
	m, ok := slot.(map[string]any)
	if !ok {
		return slot, nil
	}

	scopes, ok := asList(m[displayScopesKey])
	if !ok || len(scopes) == 0 {
		return slot, nil
	}

	outScopes := make([]any, len(scopes))

	for i, ds := range scopes {
		scope, isMap := ds.(map[string]any)
		if !isMap {
			outScopes[i] = ds
			continue
		}

		filter := scope[displayFilterKey]
		if !isMapping(filter) {
			outScopes[i] = scope
			continue
		}

		encoded, err := EncodeFilter(filter)
		if err != nil {
			return nil, err
		}

		copied := make(map[string]any, len(scope))
		for k, v := range scope {
			copied[k] = v
		}

		copied[displayFilterKey] = encoded
		outScopes[i] = copied
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}

	out[displayScopesKey] = outScopes

	return out, nil
}

// isMapping reports whether v is a JSON object built in Go, of any map type.
func isMapping(v any) bool {
	if v == nil {
		return false
	}

	return reflect.ValueOf(v).Kind() == reflect.Map
}

// EncodeFilter returns the string form a display scope filter is stored in.
func EncodeFilter(filter any) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(filter); err != nil {
		return "", err
	}

	return string(bytes.TrimSuffix(buf.Bytes(), []byte(encodedFilterTrail))), nil
}

// DecodeFilter parses a stored display scope filter back into a JSON object.
func DecodeFilter(encoded string) (map[string]any, error) {
	var out map[string]any

	dec := json.NewDecoder(bytes.NewReader([]byte(encoded)))
	dec.UseNumber()

	if err := dec.Decode(&out); err != nil {
		return nil, err
	}

	return out, nil
}

// asList accepts the list shapes metadata is built with in Go code as well
// as the one produced by decoding JSON.
func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []map[string]any:
		out := make([]any, len(l))
		for i := range l {
			out[i] = l[i]
		}

		return out, true
	default:
		return nil, false
	}
}
