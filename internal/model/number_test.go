package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"json number", `4500000`, 4500000},
		{"decimal", `120.5`, 120.5},
		{"numeric string", `"4500000"`, 4500000},
		{"decimal string", `"50.08"`, 50.08},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			assert.Equal(t, tt.want, n.Float64())
		})
	}
}

func TestNumberUnmarshalRejectsGarbage(t *testing.T) {
	var n Number
	err := json.Unmarshal([]byte(`"not a number"`), &n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}

func TestNumberMarshalsAsJSONNumber(t *testing.T) {
	out, err := json.Marshal(struct {
		Price Number `json:"price"`
	}{Price: 4500000})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":4500000}`, string(out))
}

func TestSinglePage(t *testing.T) {
	assert.Equal(t, Pagination{Total: 3, Page: 1, Limit: 3, TotalPages: 1}, SinglePage(3))
}
