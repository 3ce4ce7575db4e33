package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ID is an integer record id. On decode it also accepts a numeric string,
// so a stored "1" and 1 refer to the same record.
type ID int

func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty id")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return ID(n), nil
}

func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// IsZero reports whether the id is unset.
func (id ID) IsZero() bool {
	return id == 0
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*id = 0
			return nil
		}
		v, err := ParseID(s)
		if err != nil {
			return err
		}
		*id = v
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil || n < 0 || n != math.Trunc(n) {
		return fmt.Errorf("invalid id %s", data)
	}
	*id = ID(n)
	return nil
}
