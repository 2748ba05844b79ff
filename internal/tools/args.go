package tools

import (
	"encoding/json"
	"strconv"
)

// The host sends tool arguments as loosely typed JSON. These helpers decode
// them into pointers so that an omitted argument stays nil: the query builder
// must see absence, not a zero value.

func intArg(args map[string]any, key string) *int {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}
	switch n := v.(type) {
	case float64:
		i := int(n)
		return &i
	case int:
		return &n
	case json.Number:
		if i, err := strconv.Atoi(n.String()); err == nil {
			return &i
		}
	}
	return nil
}

func strArg(args map[string]any, key string) *string {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func strListArg(args map[string]any, key string) []string {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
