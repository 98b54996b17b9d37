package domain

import "encoding/json"

// RawNumber holds a numeric field as the client sent it. JSON numbers keep
// their literal text, even when it overflows float64, so both numbers and
// strings go through the same coercion. Any other JSON value becomes empty.
type RawNumber string

func (n *RawNumber) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		*n = ""
		return nil
	}

	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = RawNumber(s)
	case c == '-' || (c >= '0' && c <= '9'):
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return err
		}
		*n = RawNumber(num.String())
	default:
		*n = ""
	}
	return nil
}

func (n RawNumber) String() string {
	return string(n)
}
