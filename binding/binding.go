// Package binding substitutes ${path.to.value} placeholders in document text
// with values from a decoded data tree, typically the result of unmarshaling
// YAML or JSON into a generic map.
package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var placeholder = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate replaces every ${path} in text with the value found at that
// path in data. Paths are dot-separated map keys with optional [i] index
// suffixes, e.g. ${invoice.items[0].price}. A nil data tree or an unresolved
// path leaves the placeholder untouched so the gap is visible in the output.
func Interpolate(text string, data any) string {
	if data == nil {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-1])
		if path == "" {
			return match
		}
		val, ok := lookup(data, path)
		if !ok {
			return match
		}
		return fmt.Sprint(val)
	})
}

func lookup(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		key, indexes, ok := splitSegment(segment)
		if !ok {
			return nil, false
		}
		if key != "" {
			if current, ok = mapValue(current, key); !ok {
				return nil, false
			}
		}
		for _, idx := range indexes {
			if current, ok = sliceValue(current, idx); !ok {
				return nil, false
			}
		}
	}
	return current, true
}

// splitSegment decomposes "items[0][1]" into its key and index list.
func splitSegment(segment string) (string, []int, bool) {
	open := strings.IndexByte(segment, '[')
	if open == -1 {
		return segment, nil, true
	}
	key := segment[:open]
	var indexes []int
	rest := segment[open:]
	for len(rest) > 0 {
		if rest[0] != '[' {
			return "", nil, false
		}
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			return "", nil, false
		}
		idx, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return "", nil, false
		}
		indexes = append(indexes, idx)
		rest = rest[end+1:]
	}
	return key, indexes, true
}

func mapValue(current any, key string) (any, bool) {
	switch m := current.(type) {
	case map[string]any:
		v, ok := m[key]
		return v, ok
	case map[any]any:
		v, ok := m[key]
		return v, ok
	default:
		return nil, false
	}
}

func sliceValue(current any, idx int) (any, bool) {
	s, ok := current.([]any)
	if !ok || idx < 0 || idx >= len(s) {
		return nil, false
	}
	return s[idx], true
}
