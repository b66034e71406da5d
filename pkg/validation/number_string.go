package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// NumberString accepts either a JSON number or a JSON string and keeps its
// textual form, so form posts ("45000") and API clients (45000) bind alike.
// null, absent and a numeric zero bind to "", so required treats them alike;
// the string "0" is kept.
type NumberString string

func (n *NumberString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*n = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumberString(strings.TrimSpace(s))
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return errors.New("expected a number or numeric string")
	}
	if f, err := num.Float64(); err == nil && f == 0 {
		*n = ""
		return nil
	}
	*n = NumberString(num.String())
	return nil
}

func (n NumberString) String() string {
	return string(n)
}
