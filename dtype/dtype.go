// Package dtype is the catalog of storable value types.
//
// Every type an Index label or Series value may take maps to one DType
// tag. Optional ("sparse") value types carry the same tag with the Opt
// flavor set, so Opt[Float64] and Float64 remain distinguishable at the
// column level while sharing one element tag.
package dtype

import "time"

// DType identifies a storable value type.
type DType uint8

// optFlavor marks the optional flavor of a base tag.
const optFlavor DType = 0x80

const (
	Invalid DType = iota
	Bool
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	String
	Time
)

// Opt returns the optional flavor of t.
func (t DType) Opt() DType { return t | optFlavor }

// IsOpt reports whether t is an optional flavor.
func (t DType) IsOpt() bool { return t&optFlavor != 0 }

// Elem returns the element tag of t, stripping the optional flavor.
func (t DType) Elem() DType { return t &^ optFlavor }

func (t DType) String() string {
	if t.IsOpt() {
		return "Opt[" + t.Elem().String() + "]"
	}
	switch t {
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case Int8:
		return "Int8"
	case Int16:
		return "Int16"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Uint:
		return "Uint"
	case Uint8:
		return "Uint8"
	case Uint16:
		return "Uint16"
	case Uint32:
		return "Uint32"
	case Uint64:
		return "Uint64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case String:
		return "String"
	case Time:
		return "Time"
	default:
		return "Invalid"
	}
}

// Typed lets composite types (such as optional value wrappers) report
// their own tag to Of.
type Typed interface {
	DType() DType
}

// Of resolves the DType of a value. Unknown types resolve to Invalid.
// Note that rune and byte are aliases, so they resolve to Int32 and
// Uint8 respectively.
func Of(v any) DType {
	switch v.(type) {
	case bool:
		return Bool
	case int:
		return Int
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint:
		return Uint
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	case string:
		return String
	case time.Time:
		return Time
	}
	if t, ok := v.(Typed); ok {
		return t.DType()
	}
	return Invalid
}
