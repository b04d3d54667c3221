package dto

import (
	"fmt"
	"strconv"
)

// parseOptionalID decodes a client-supplied snowflake reference. IDs travel
// as strings on the wire because they exceed JavaScript's safe integer range.
func parseOptionalID(raw *string, field string) (*int64, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", field)
	}
	return &id, nil
}

func formatOptionalID(id *int64) *string {
	if id == nil {
		return nil
	}
	s := strconv.FormatInt(*id, 10)
	return &s
}
