package seq

import (
	"fmt"
	"maps"

	"github.com/samber/lo"

	"github.com/kbukum/funkit/errors"
)

// RenameKeys returns a copy of m with keys renamed according to renames.
// Keys absent from renames keep their name. A renamed entry overwrites an
// existing key of the same name.
func RenameKeys[K comparable, V any](m map[K]V, renames map[K]K) map[K]V {
	out := lo.OmitByKeys(m, lo.Keys(renames))
	for from, to := range renames {
		if v, ok := m[from]; ok {
			out[to] = v
		}
	}
	return out
}

// SelectKeys returns a copy of m holding only the given keys.
func SelectKeys[K comparable, V any](m map[K]V, keys []K) map[K]V {
	return lo.PickByKeys(m, keys)
}

// AssocIn returns a copy of m with value stored at the nested path. Maps
// along the path are copied, never modified; missing levels are created.
func AssocIn(m map[string]any, path []string, value any) (map[string]any, error) {
	return UpdateIn(m, path, func(any) any { return value })
}

// UpdateIn returns a copy of m with the value at the nested path replaced
// by update(current). current is nil when the path does not exist yet.
func UpdateIn(m map[string]any, path []string, update func(any) any) (map[string]any, error) {
	if len(path) == 0 {
		return nil, errors.InvalidArgument("updateIn", "empty key path")
	}
	return updateIn(m, path, 0, update)
}

func updateIn(m map[string]any, path []string, depth int, update func(any) any) (map[string]any, error) {
	out := maps.Clone(m)
	if out == nil {
		out = make(map[string]any)
	}

	key := path[depth]
	if depth == len(path)-1 {
		out[key] = update(out[key])
		return out, nil
	}

	var child map[string]any
	switch next := out[key].(type) {
	case nil:
	case map[string]any:
		child = next
	default:
		return nil, errors.InvalidArgument("updateIn",
			fmt.Sprintf("value at %q is %T, not a map", path[:depth+1], next))
	}

	updated, err := updateIn(child, path, depth+1, update)
	if err != nil {
		return nil, err
	}
	out[key] = updated
	return out, nil
}
