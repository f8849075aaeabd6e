package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bogaczig73/realitypuchyr-admin/internal/model"
)

// splitList normalizes the three list payload shapes the API emits:
// {<itemsKey>: [...], pagination: {...}}, a bare array, or either of those
// wrapped in a {data: ...} envelope. It returns the raw items slice and the
// server pagination when present (nil when the caller must synthesize one).
func splitList(body []byte, itemsKey string) (json.RawMessage, *model.Pagination, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return json.RawMessage("[]"), nil, nil
	}

	// Bare array: items only, single page synthesized by the caller.
	if trimmed[0] == '[' {
		return json.RawMessage(trimmed), nil, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, nil, fmt.Errorf("unexpected list payload: %w", err)
	}

	// Generic {data: ...} envelope wraps either of the other two shapes.
	if data, ok := fields["data"]; ok {
		return splitList(data, itemsKey)
	}

	items, ok := fields[itemsKey]
	if !ok {
		items, ok = fields["items"]
	}
	if !ok {
		return nil, nil, fmt.Errorf("list payload has no %q field", itemsKey)
	}

	var pagination *model.Pagination
	if raw, ok := fields["pagination"]; ok {
		pagination = &model.Pagination{}
		if err := json.Unmarshal(raw, pagination); err != nil {
			return nil, nil, fmt.Errorf("decode pagination: %w", err)
		}
	}

	return items, pagination, nil
}
