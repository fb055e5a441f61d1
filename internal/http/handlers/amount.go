package handlers

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a user-entered money field with a never-fail parse policy:
// JSON numbers pass through, numeric strings are parsed, and anything else
// (junk strings, null, booleans, NaN) coerces to 0. Tracker inputs come from
// hand-typed form fields, and a bad keystroke must not reject the whole
// update.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}

	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2 {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*a = 0
		return nil
	}

	*a = Amount(v)
	return nil
}

// coerceAmount runs one field's raw bytes through the Amount policy. The
// request struct keeps the fields as json.RawMessage because encoding/json
// nils a pointer field on an explicit null before any Unmarshaler runs,
// which would make `"balance": null` indistinguishable from an absent key;
// the raw bytes stay non-nil for null, so the caller can check presence with
// a nil test and still coerce null to 0 here.
func coerceAmount(raw json.RawMessage) float64 {
	var a Amount
	_ = a.UnmarshalJSON(raw)
	return float64(a)
}
