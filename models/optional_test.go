package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalFloat_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValid bool
		wantValue float64
		wantErr   bool
	}{
		{name: "absent", body: `{}`},
		{name: "null", body: `{"price": null}`, wantSet: true},
		{name: "zero", body: `{"price": 0}`, wantSet: true, wantValid: true},
		{name: "number", body: `{"price": 499.99}`, wantSet: true, wantValid: true, wantValue: 499.99},
		{name: "numeric string", body: `{"price": "120.5"}`, wantSet: true, wantValid: true, wantValue: 120.5},
		{name: "empty string", body: `{"price": ""}`, wantSet: true},
		{name: "garbage string", body: `{"price": "cheap"}`, wantErr: true},
		{name: "boolean", body: `{"price": true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateTripRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantSet, req.Price.Set)
			assert.Equal(t, tt.wantValid, req.Price.Valid)
			assert.InDelta(t, tt.wantValue, req.Price.Value, 1e-9)
		})
	}
}

func TestOptionalFloat_Ptr(t *testing.T) {
	assert.Nil(t, OptionalFloat{Set: true}.Ptr())

	p := NewOptionalFloat(0).Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 0.0, *p)
}

func TestOptionalFloat_Marshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A OptionalFloat `json:"a"`
		B OptionalFloat `json:"b"`
	}{A: NewOptionalFloat(12.5)})
	require.NoError(t, err)

	assert.JSONEq(t, `{"a": 12.5, "b": null}`, string(b))
}
