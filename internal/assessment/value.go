package assessment

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Value is a recorded answer: an integer for likert ratings or text for
// choice, ranking and scenario questions.
type Value struct {
	num   int
	text  string
	isInt bool
}

// Int returns an integer answer value.
func Int(n int) Value {
	return Value{num: n, isInt: true}
}

// Text returns a text answer value.
func Text(s string) Value {
	return Value{text: s}
}

// IsInt reports whether the value holds an integer.
func (v Value) IsInt() bool { return v.isInt }

// AsInt returns the integer payload and whether the value is an integer.
func (v Value) AsInt() (int, bool) { return v.num, v.isInt }

// AsText returns the text payload and whether the value is text.
func (v Value) AsText() (string, bool) { return v.text, !v.isInt }

// String renders the value for display.
func (v Value) String() string {
	if v.isInt {
		return strconv.Itoa(v.num)
	}
	return v.text
}

// Numeric converts the value to a number the way a browser's Number() does.
// Integers convert exactly. Text is trimmed; empty text is 0, "Infinity"
// with an optional sign is infinite, 0x/0o/0b prefixes read unsigned
// integers in that base, and otherwise only a decimal literal converts.
// Anything else reports ok=false.
func (v Value) Numeric() (float64, bool) {
	if v.isInt {
		return float64(v.num), true
	}
	s := strings.TrimSpace(v.text)
	switch s {
	case "":
		return 0, true
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' {
		if base, ok := radixPrefix[s[1]]; ok {
			n, ok := new(big.Int).SetString(s[2:], base)
			if !ok {
				return 0, false
			}
			f, _ := new(big.Float).SetInt(n).Float64()
			return f, true
		}
	}

	if strings.IndexFunc(s, notDecimal) >= 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

var radixPrefix = map[byte]int{
	'x': 16, 'X': 16,
	'o': 8, 'O': 8,
	'b': 2, 'B': 2,
}

func notDecimal(r rune) bool {
	return !(r >= '0' && r <= '9') && !strings.ContainsRune("+-.eE", r)
}

// Number is Numeric with non-numeric values collapsed to 0, the
// contribution an answer makes to a likert sum. Infinite values also
// collapse to 0 since scores are whole percentages.
func (v Value) Number() float64 {
	f, ok := v.Numeric()
	if !ok || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Equal reports whether two values hold the same kind and payload.
func (v Value) Equal(o Value) bool {
	return v == o
}

// MarshalJSON encodes integers as JSON numbers and text as JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isInt {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.text)
}

// UnmarshalJSON accepts a JSON number or string. Fractional numbers are
// rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("answer must be a number or string: %w", err)
	}
	i, err := n.Int64()
	if err != nil {
		return fmt.Errorf("answer %s is not an integer", n)
	}
	*v = Int(int(i))
	return nil
}
