package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number tolerates the API's habit of sending numeric fields either as JSON
// numbers or as numeric strings ("4500000"). null decodes to 0.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*n = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse number %q: %w", s, err)
	}
	*n = Number(f)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}

// Float64 returns the plain value.
func (n Number) Float64() float64 {
	return float64(n)
}
