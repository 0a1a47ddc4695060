package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// toInt64 accepts Go integers, floats (truncated toward zero), decimal
// strings and json.Number. nil is not accepted.
func toInt64(k Kind, v any) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint:
		return uintToInt64(k, uint64(x))
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		return uintToInt64(k, x)
	case float32:
		return floatToInt64(k, float64(x))
	case float64:
		return floatToInt64(k, x)
	case *big.Int:
		if x == nil || !x.IsInt64() {
			return 0, fmt.Errorf("%w: %s: %v", ErrOutOfRange, k, x)
		}
		return x.Int64(), nil
	case json.Number:
		return parseInt(k, string(x))
	case string:
		return parseInt(k, x)
	default:
		return 0, mismatch(k, v)
	}
}

func parseInt(k Kind, s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrTypeMismatch, k, err)
	}
	return n, nil
}

func uintToInt64(k Kind, u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %s: %d", ErrOutOfRange, k, u)
	}
	return int64(u), nil
}

func floatToInt64(k Kind, f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= 1<<63 || f < -(1<<63) {
		return 0, fmt.Errorf("%w: %s: %v", ErrOutOfRange, k, f)
	}
	return int64(f), nil
}

func toFloat64(k Kind, v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case json.Number:
		return parseFloat(k, string(x))
	case string:
		return parseFloat(k, x)
	case *big.Float:
		if x == nil {
			return 0, mismatch(k, v)
		}
		f, _ := x.Float64()
		return f, nil
	}
	n, err := toInt64(k, v)
	if err != nil {
		return 0, err
	}
	return float64(n), nil
}

func parseFloat(k Kind, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrTypeMismatch, k, err)
	}
	return f, nil
}
