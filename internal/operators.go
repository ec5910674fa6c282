package internal

import (
	"math"
	"strconv"
)

type operatorApply func(x, y float64) interface{}

// numberOperations are the binary operators defined only on numbers
var numberOperations = map[tokenType]operatorApply{
	tkMinus: func(x, y float64) interface{} {
		return x - y
	},
	tkSlash: func(x, y float64) interface{} {
		return x / y
	},
	tkStar: func(x, y float64) interface{} {
		return x * y
	},
	tkGreater: func(x, y float64) interface{} {
		return x > y
	},
	tkGreaterEqual: func(x, y float64) interface{} {
		return x >= y
	},
	tkLess: func(x, y float64) interface{} {
		return x < y
	},
	tkLessEqual: func(x, y float64) interface{} {
		return x <= y
	},
}

// add is the only operator that also accepts strings
func add(operator *token, left, right interface{}) (interface{}, error) {
	switch l := left.(type) {
	case float64:
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	case string:
		if r, ok := right.(string); ok {
			return l + r, nil
		}
	}
	return nil, newRuntimeError(operator, errNumbersOrStrings)
}

func applyNumbers(operator *token, left, right interface{}) (interface{}, error) {
	apply, ok := numberOperations[operator.token]
	if !ok {
		return nil, newRuntimeErrorf(operator, errUndefinedOp, "%s '%s'.", errUndefinedOp.Error(), operator.lexeme)
	}
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return nil, newRuntimeError(operator, errOnlyNumbers)
	}
	return apply(l, r), nil
}

// truthy is false only for nil and false
func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual never coerces. Callables and instances compare by identity.
func isEqual(a, b interface{}) bool {
	return a == b
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		switch {
		case math.IsNaN(v):
			return "NaN"
		case math.IsInf(v, 1):
			return "Infinity"
		case math.IsInf(v, -1):
			return "-Infinity"
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	case interface{ String() string }:
		return v.String()
	}
	return "<unknown>"
}
