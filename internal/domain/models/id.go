package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ID tolerates string or number identifiers coming from the booking service.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || string(b) == "null":
		*id = ""
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	default:
		// number -> decimal text, best-effort for anything else
		*id = ID(strings.Trim(string(b), `"`))
		return nil
	}
}

// MarshalJSON writes integral ids as JSON numbers, everything else as strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, ok := id.Int(); ok {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	return json.Marshal(string(id))
}

// Int reports the id as an integer when it is one.
func (id ID) Int() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (id ID) String() string { return string(id) }

func (id ID) IsZero() bool { return strings.TrimSpace(string(id)) == "" }

// Same compares ids numerically when both are numbers ("01" matches 1).
func (id ID) Same(other ID) bool {
	a, okA := id.Int()
	b, okB := other.Int()
	if okA && okB {
		return a == b
	}
	return strings.TrimSpace(string(id)) == strings.TrimSpace(string(other))
}
