package series

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/jts/errs"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Value is a record value: a number, a string, or null.
//
// The zero Value is null.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Text returns a string value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Float returns the numeric payload and true if v is a number.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Str returns the string payload and true if v is text.
func (v Value) Str() (string, bool) {
	return v.text, v.kind == KindText
}

// Truthy reports whether v counts as present when building a data field.
// Null, the number 0 and the empty string are not truthy; NaN is.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNumber:
		return v.num != 0 || math.IsNaN(v.num)
	case KindText:
		return v.text != ""
	default:
		return false
	}
}

// AsNumber casts v to float64. Text is parsed as a decimal number.
func (v Value) AsNumber() (float64, error) {
	switch v.kind {
	case KindNumber:
		return v.num, nil
	case KindText:
		f, err := strconv.ParseFloat(v.text, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidValue, v.text)
		}

		return f, nil
	default:
		return 0, fmt.Errorf("%w: null has no numeric form", errs.ErrInvalidValue)
	}
}

// AsText casts v to a string. Numbers use their shortest decimal form.
// Null yields the empty string.
func (v Value) AsText() string {
	switch v.kind {
	case KindNumber:
		return formatNumber(v.num)
	case KindText:
		return v.text
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.kind == KindNull {
		return "null"
	}

	return v.AsText()
}

// Equal reports whether v and other hold the same variant and payload.
// NaN numbers are equal to each other.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNumber:
		return v.num == other.num || (math.IsNaN(v.num) && math.IsNaN(other.num))
	case KindText:
		return v.text == other.text
	default:
		return true
	}
}

// MarshalJSON renders v as a JSON number, string or null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return nil, fmt.Errorf("%w: %v cannot be represented in JSON", errs.ErrInvalidValue, v.num)
		}

		return json.Marshal(v.num)
	case KindText:
		return json.Marshal(v.text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a JSON number, string or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%w: empty value", errs.ErrInvalidValue)
	}

	switch data[0] {
	case 'n':
		if !bytes.Equal(data, []byte("null")) {
			return fmt.Errorf("%w: %s", errs.ErrInvalidValue, data)
		}
		*v = Null()
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrInvalidValue, err)
		}
		*v = Text(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrInvalidValue, err)
		}
		*v = Number(f)
	default:
		return fmt.Errorf("%w: unsupported JSON value %s", errs.ErrInvalidValue, data)
	}

	return nil
}

// formatNumber renders f like a JavaScript number: plain decimal notation
// unless the magnitude calls for an exponent.
func formatNumber(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
