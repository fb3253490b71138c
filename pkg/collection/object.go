package collection

import (
	"maps"
	"strconv"
	"strings"
	apperrors "utilkit/pkg/errors"

	"dario.cat/mergo"
)

// Merge overlays src onto a copy of dst; values in src win. Neither input is
// modified.
func Merge(dst, src map[string]any) (map[string]any, error) {
	out := cloneDeep(dst)
	if out == nil {
		out = make(map[string]any)
	}
	if len(src) == 0 {
		return out, nil
	}
	if err := mergo.Merge(&out, cloneDeep(src), mergo.WithOverride); err != nil {
		return nil, apperrors.Internal("failed to merge maps", err)
	}
	return out, nil
}

func cloneDeep(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := maps.Clone(m)
	for k, v := range out {
		if nested, ok := v.(map[string]any); ok {
			out[k] = cloneDeep(nested)
		}
	}
	return out
}

// Get walks a dot separated path through nested map[string]any and []any values.
// Slice segments are decimal indexes: Get(doc, "items.0.name").
func Get(root any, path string) (any, bool) {
	if path == "" {
		return root, root != nil
	}
	cur := root
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}
