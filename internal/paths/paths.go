// Package paths reads and writes values at dotted paths inside nested
// map[string]any records, such as the system data of a sheet document.
package paths

import (
	"strings"

	apperr "github.com/KirkDiggler/cp2020-sheet/internal/errors"
)

// Separator splits path segments
const Separator = "."

// Get walks path through root. Any missing segment, or an intermediate
// value that is not a map, is a PathNotFound error.
func Get(root map[string]any, path string) (any, error) {
	current := root
	segments := strings.Split(path, Separator)

	for i, segment := range segments {
		value, ok := current[segment]
		if !ok {
			return nil, apperr.PathNotFound(path, segment)
		}
		if i == len(segments)-1 {
			return value, nil
		}

		next, ok := value.(map[string]any)
		if !ok {
			return nil, apperr.PathNotFound(path, segments[i+1])
		}
		current = next
	}

	return nil, apperr.PathNotFound(path, path)
}

// Lookup is Get without the error
func Lookup(root map[string]any, path string) (any, bool) {
	value, err := Get(root, path)
	if err != nil {
		return nil, false
	}
	return value, true
}

// Set writes value at path, creating empty maps for missing intermediate
// segments. An existing terminal value is only replaced when overwrite is
// true. Existing intermediates are never replaced; a non-map intermediate is
// an InvalidArgument error. A nil root is replaced by a new map, which is
// returned.
func Set(root map[string]any, path string, value any, overwrite bool) (map[string]any, error) {
	if path == "" {
		return root, apperr.InvalidArgument("path is required")
	}
	if root == nil {
		root = make(map[string]any)
	}

	segments := strings.Split(path, Separator)
	last := segments[len(segments)-1]

	current := root
	for _, segment := range segments[:len(segments)-1] {
		existing, ok := current[segment]
		if !ok {
			child := make(map[string]any)
			current[segment] = child
			current = child
			continue
		}

		child, isMap := existing.(map[string]any)
		if !isMap {
			return root, apperr.InvalidArgumentf("cannot set %q: %q is not a mapping", path, segment).
				WithMeta("path", path).
				WithMeta("segment", segment)
		}
		current = child
	}

	if _, exists := current[last]; !exists || overwrite {
		current[last] = value
	}

	return root, nil
}

// Clone deep copies nested maps and slices. Other values are shared.
func Clone(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return Clone(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
