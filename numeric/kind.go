// Package numeric models Go's numeric basic kinds and decides which catalog
// literals each kind can represent without loss. It is shared by the runtime
// binding surface (which sees types through reflect) and the code generator
// (which sees them through go/types).
package numeric

import (
	"go/types"
	"math"
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("bits amount requested for invalid kind: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	case KindFloat32:
		return 32
	case KindFloat64:
		return 64
	}
}

// FromReflectType maps a reflect type to its numeric kind. Named types
// reduce to the kind of their underlying type. Returns the zero KindEnum
// for non-numeric types.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	}
}

// FromBasicKind maps a go/types basic kind to its numeric kind.
// Returns the zero KindEnum for non-numeric basic kinds.
func FromBasicKind(basic types.BasicKind) KindEnum {
	switch basic {
	default:
		return 0
	case types.Int:
		return KindInt
	case types.Int8:
		return KindInt8
	case types.Int16:
		return KindInt16
	case types.Int32:
		return KindInt32
	case types.Int64:
		return KindInt64
	case types.Uint:
		return KindUint
	case types.Uint8:
		return KindUint8
	case types.Uint16:
		return KindUint16
	case types.Uint32:
		return KindUint32
	case types.Uint64:
		return KindUint64
	case types.Float32:
		return KindFloat32
	case types.Float64:
		return KindFloat64
	}
}
