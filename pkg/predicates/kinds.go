package predicates

import (
	"math"
	"reflect"

	"github.com/dmitrymomot/rulekit"
)

// Registered names of the kind predicates.
const (
	IsString  = "isString"
	IsNumber  = "isNumber"
	IsInt     = "isInt"
	IsBool    = "isBool"
	IsObject  = "isObject"
	IsArray   = "isArray"
	IsNull    = "isNull"
	IsDefined = "isDefined"
)

func isString(value any, _ rulekit.Params) bool {
	_, ok := value.(string)
	return ok
}

// isNumber accepts every Go integer and float type. NaN and the infinities
// fail: they are sentinel floats, not numbers.
func isNumber(value any, _ rulekit.Params) bool {
	_, ok := rulekit.Number(value)
	return ok
}

func isInt(value any, _ rulekit.Params) bool {
	f, ok := rulekit.Number(value)
	return ok && math.Trunc(f) == f
}

func isBool(value any, _ rulekit.Params) bool {
	_, ok := value.(bool)
	return ok
}

// isObject accepts string-keyed maps and structs, through pointers.
func isObject(value any, _ rulekit.Params) bool {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return true
	default:
		return false
	}
}

func isArray(value any, _ rulekit.Params) bool {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// isNull accepts untyped nil and nil values of nilable kinds, so a decoded
// JSON null passes whether it arrives as nil any or as a typed nil.
func isNull(value any, _ rulekit.Params) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// isDefined passes for every present value, null included. Absence itself is
// handled by the required/optional machinery, so this predicate exists for
// rule documents that want presence spelled out.
func isDefined(any, rulekit.Params) bool {
	return true
}
