package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountCoercion(t *testing.T) {
	tests := []struct {
		name string
		json string
		want float64
	}{
		{"Number", `42.5`, 42.5},
		{"Integer", `7`, 7},
		{"Negative", `-3.25`, -3.25},
		{"Numeric_String", `"19.99"`, 19.99},
		{"Padded_Numeric_String", `" 12 "`, 12},
		{"Junk_String", `"abc"`, 0},
		{"Empty_String", `""`, 0},
		{"Null", `null`, 0},
		{"Boolean", `true`, 0},
		{"NaN_String", `"NaN"`, 0},
		{"Infinity_String", `"Inf"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			err := json.Unmarshal([]byte(tt.json), &a)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, float64(a))
		})
	}
}

func TestAmountPresenceIsDistinguishable(t *testing.T) {
	var body struct {
		Balance      json.RawMessage `json:"balance"`
		DepositTotal json.RawMessage `json:"depositTotal"`
	}

	// Present-but-null keeps the raw bytes and coerces to 0; an absent key
	// leaves the raw message nil. A *Amount field cannot make this
	// distinction: encoding/json nils the pointer on null without calling
	// UnmarshalJSON.
	err := json.Unmarshal([]byte(`{"balance": null}`), &body)

	assert.NoError(t, err)
	assert.NotNil(t, body.Balance)
	assert.Equal(t, 0.0, coerceAmount(body.Balance))
	assert.Nil(t, body.DepositTotal)
}
