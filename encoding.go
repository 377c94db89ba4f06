package money

import (
	"database/sql/driver"
	"fmt"
	"math"
)

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both quoted strings and bare numbers are accepted, as long as they
// follow the format of [ParseAmount].
// See also constructor [ParseAmount].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*a, err = ParseAmount(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the canonical representation as a JSON string,
// so that no precision is lost by JSON decoders that use floats.
// See also method [Amount.String].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 26)
	text = append(text, '"')
	text = a.appendString(text)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseAmount].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	var err error
	*a, err = ParseAmount(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// See also method [Amount.String].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (a Amount) AppendText(text []byte) ([]byte, error) {
	return a.appendString(text), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Amount.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return a.appendString(nil), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// The binary form is the same as the text form.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (a *Amount) UnmarshalBinary(data []byte) error {
	var err error
	*a, err = ParseAmount(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (a Amount) AppendBinary(data []byte) ([]byte, error) {
	return a.appendString(data), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (a Amount) MarshalBinary() ([]byte, error) {
	return a.appendString(nil), nil
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// Only BSON strings and null are supported, null leaves the amount unchanged.
// See also constructor [ParseAmount].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (a *Amount) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	var err error
	switch typ {
	case 2:
		*a, err = parseBSONString(data)
	case 10:
		// null, do nothing
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, Amount{}, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// MarshalBSONValue always returns a BSON string holding the canonical
// representation.
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (a Amount) MarshalBSONValue() (typ byte, data []byte, err error) {
	return 2, a.bsonString(), nil
}

// parseBSONString parses a BSON string to an amount.
// The byte order of the input data must be little-endian.
func parseBSONString(data []byte) (Amount, error) {
	if len(data) < 4 {
		return Amount{}, fmt.Errorf("invalid data length %v", len(data))
	}
	u := uint32(data[0])
	u |= uint32(data[1]) << 8
	u |= uint32(data[2]) << 16
	u |= uint32(data[3]) << 24
	l := int(int32(u)) //nolint:gosec
	if l < 1 || len(data) < l+4 {
		return Amount{}, fmt.Errorf("invalid string length %v", l)
	}
	if data[l+4-1] != 0 {
		return Amount{}, fmt.Errorf("invalid null terminator %v", data[l+4-1])
	}
	return ParseAmount(string(data[4 : l+4-1]))
}

// bsonString returns the BSON string representation of the amount.
// The byte order of the result is little-endian.
func (a Amount) bsonString() []byte {
	data := make([]byte, 4, 30)
	data = a.appendString(data)
	data = append(data, 0)
	l := len(data) - 4
	data[0] = byte(l)
	data[1] = byte(l >> 8)
	data[2] = byte(l >> 16)
	data[3] = byte(l >> 24)
	return data
}

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices are parsed with [ParseAmount], integers are
// whole major units (see [NewAmountFromInt64]) and floats are converted
// with [NewAmountFromFloat64].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (a *Amount) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*a, err = ParseAmount(value)
	case []byte:
		*a, err = ParseAmount(string(value))
	case int64:
		if value > math.MaxInt64/ScaleFactor || value < math.MinInt64/ScaleFactor {
			err = ErrOverflow
			break
		}
		*a = NewAmountFromInt64(value)
	case float64:
		*a, err = NewAmountFromFloat64(value)
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Amount{}, NullAmount{}, Amount{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Amount{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The amount is stored as its canonical string, which every SQL numeric
// type with a scale of at least 2 accepts without loss.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// NullAmount represents an amount that can be null.
// Its zero value is null.
// NullAmount is not thread-safe.
type NullAmount struct {
	Amount Amount
	Valid  bool
}

// Scan implements the [sql.Scanner] interface.
// On failure n is left unchanged.
// See also method [Amount.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullAmount) Scan(value any) error {
	if value == nil {
		n.Amount = Amount{}
		n.Valid = false
		return nil
	}
	var a Amount
	if err := a.Scan(value); err != nil {
		return err
	}
	n.Amount = a
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Amount.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullAmount) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Amount.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Amount.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullAmount) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Amount = Amount{}
		n.Valid = false
		return nil
	}
	var a Amount
	if err := a.UnmarshalJSON(text); err != nil {
		return err
	}
	n.Amount = a
	n.Valid = true
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Amount.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullAmount) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Amount.MarshalJSON()
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// See also method [Amount.UnmarshalBSONValue].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (n *NullAmount) UnmarshalBSONValue(typ byte, data []byte) error {
	if typ == 10 {
		n.Amount = Amount{}
		n.Valid = false
		return nil
	}
	var a Amount
	if err := a.UnmarshalBSONValue(typ, data); err != nil {
		return err
	}
	n.Amount = a
	n.Valid = true
	return nil
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// See also method [Amount.MarshalBSONValue].
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (n NullAmount) MarshalBSONValue() (typ byte, data []byte, err error) {
	if !n.Valid {
		return 10, nil, nil
	}
	return n.Amount.MarshalBSONValue()
}
