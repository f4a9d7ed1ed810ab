package abibind

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

var (
	errNegative    = errors.New("negative value for unsigned type")
	errNonIntegral = errors.New("non-integral number")
	errOverflow    = errors.New("value out of range")
	errUnsupported = errors.New("unsupported Go type")
	errBadInteger  = errors.New("invalid integer")

	bigIntType = reflect.TypeOf((*big.Int)(nil))
)

// convertArg converts a caller-supplied Go value into the exact Go type the
// go-ethereum packer expects for t.
//
// Supported inputs:
//   - integers: all Go int/uint kinds, *big.Int, *uint256.Int, json.Number,
//     decimal or 0x-prefixed strings, and integral float32/float64
//   - address: common.Address, *common.Address, [20]byte, 20-byte slices, hex strings
//   - bool: bool or "true"/"false"
//   - bytes/bytesN: []byte, [N]byte, common.Hash, 0x-prefixed hex strings
//   - arrays/slices: any Go slice or array, or a JSON array string
//   - tuples: the packer's struct type, map[string]any keyed by component name, or []any
func convertArg(t abi.Type, value any) (any, error) {
	out, err := convert(t, value)
	if err != nil {
		return nil, &EncodingError{Type: t.String(), Value: value, Err: err}
	}
	return out, nil
}

func convert(t abi.Type, value any) (any, error) {
	if value == nil {
		return nil, errors.New("nil value")
	}

	switch t.T {
	case abi.IntTy, abi.UintTy:
		return convertInt(t, value)
	case abi.AddressTy:
		return convertAddress(value)
	case abi.BoolTy:
		return convertBool(value)
	case abi.StringTy:
		if s, ok := value.(string); ok {
			return s, nil
		}
		return nil, errUnsupported
	case abi.BytesTy:
		return convertBytes(value)
	case abi.FixedBytesTy:
		return convertFixedBytes(t, value)
	case abi.SliceTy, abi.ArrayTy:
		return convertList(t, value)
	case abi.TupleTy:
		return convertTuple(t, value)
	default:
		return value, nil
	}
}

func convertInt(t abi.Type, value any) (any, error) {
	n, err := toBigInt(value)
	if err != nil {
		return nil, err
	}

	if t.T == abi.UintTy {
		if n.Sign() < 0 {
			return nil, errNegative
		}
		if n.BitLen() > t.Size {
			return nil, errOverflow
		}
	} else {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
			return nil, errOverflow
		}
	}

	rt := t.GetType()
	if rt == bigIntType {
		return n, nil
	}
	v := reflect.New(rt).Elem()
	if t.T == abi.UintTy {
		v.SetUint(n.Uint64())
	} else {
		v.SetInt(n.Int64())
	}
	return v.Interface(), nil
}

func toBigInt(value any) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			return nil, errors.New("nil *big.Int")
		}
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case *uint256.Int:
		if v == nil {
			return nil, errors.New("nil *uint256.Int")
		}
		return v.ToBig(), nil
	case uint256.Int:
		return v.ToBig(), nil
	case int:
		return big.NewInt(int64(v)), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case float32:
		return floatToBig(float64(v))
	case float64:
		return floatToBig(v)
	case json.Number:
		return stringToBig(string(v))
	case string:
		return stringToBig(v)
	default:
		return nil, errUnsupported
	}
}

func floatToBig(f float64) (*big.Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, errNonIntegral
	}
	n, _ := big.NewFloat(f).Int(nil)
	return n, nil
}

func stringToBig(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")

	base := 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		base, digits = 16, digits[2:]
	}
	// big.Int.SetString takes its own sign, which would swallow "--5".
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		return nil, fmt.Errorf("%w %q", errBadInteger, s)
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok || digits == "" {
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return nil, errNonIntegral
		}
		return nil, fmt.Errorf("%w %q", errBadInteger, s)
	}
	if neg {
		n.Neg(n)
	}
	return n, nil
}

func convertAddress(value any) (any, error) {
	switch v := value.(type) {
	case common.Address:
		return v, nil
	case *common.Address:
		if v == nil {
			return nil, errors.New("nil *common.Address")
		}
		return *v, nil
	case [common.AddressLength]byte:
		return common.Address(v), nil
	case []byte:
		if len(v) != common.AddressLength {
			return nil, fmt.Errorf("address needs %d bytes, got %d", common.AddressLength, len(v))
		}
		return common.BytesToAddress(v), nil
	case string:
		return ParseAddress(v)
	default:
		return nil, errUnsupported
	}
}

func convertBool(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	default:
		return nil, errUnsupported
	}
}

func convertBytes(value any) (any, error) {
	switch v := value.(type) {
	case []byte:
		return bytes.Clone(v), nil
	case string:
		return hexutil.Decode(v)
	default:
		return nil, errUnsupported
	}
}

func convertFixedBytes(t abi.Type, value any) (any, error) {
	rt := t.GetType()
	if reflect.TypeOf(value) == rt {
		return value, nil
	}

	var raw []byte
	switch v := value.(type) {
	case common.Hash:
		raw = v.Bytes()
	case []byte:
		raw = v
	case string:
		b, err := hexutil.Decode(v)
		if err != nil {
			return nil, err
		}
		raw = b
	default:
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Array || rv.Type().Elem().Kind() != reflect.Uint8 {
			return nil, errUnsupported
		}
		raw = make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(raw), rv)
	}

	if len(raw) != t.Size {
		return nil, fmt.Errorf("bytes%d needs %d bytes, got %d", t.Size, t.Size, len(raw))
	}
	out := reflect.New(rt).Elem()
	reflect.Copy(out, reflect.ValueOf(raw))
	return out.Interface(), nil
}

func convertList(t abi.Type, value any) (any, error) {
	if s, ok := value.(string); ok {
		elems, err := decodeJSONList(s)
		if err != nil {
			return nil, err
		}
		value = elems
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errUnsupported
	}
	if t.T == abi.ArrayTy && rv.Len() != t.Size {
		return nil, fmt.Errorf("array needs %d elements, got %d", t.Size, rv.Len())
	}

	rt := t.GetType()
	var out reflect.Value
	if t.T == abi.ArrayTy {
		out = reflect.New(rt).Elem()
	} else {
		out = reflect.MakeSlice(rt, rv.Len(), rv.Len())
	}
	for i := 0; i < rv.Len(); i++ {
		elem, err := convert(*t.Elem, rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out.Index(i).Set(reflect.ValueOf(elem))
	}
	return out.Interface(), nil
}

func convertTuple(t abi.Type, value any) (any, error) {
	rt := t.GetType()
	if reflect.TypeOf(value) == rt {
		return value, nil
	}

	out := reflect.New(rt).Elem()
	switch v := value.(type) {
	case map[string]any:
		for i, elem := range t.TupleElems {
			name := t.TupleRawNames[i]
			raw, ok := v[name]
			if !ok {
				return nil, fmt.Errorf("missing tuple component %q", name)
			}
			field, err := convert(*elem, raw)
			if err != nil {
				return nil, fmt.Errorf("component %q: %w", name, err)
			}
			out.Field(i).Set(reflect.ValueOf(field))
		}
	case []any:
		if len(v) != len(t.TupleElems) {
			return nil, fmt.Errorf("tuple needs %d components, got %d", len(t.TupleElems), len(v))
		}
		for i, elem := range t.TupleElems {
			field, err := convert(*elem, v[i])
			if err != nil {
				return nil, fmt.Errorf("component %d: %w", i, err)
			}
			out.Field(i).Set(reflect.ValueOf(field))
		}
	default:
		return nil, errUnsupported
	}
	return out.Interface(), nil
}

func decodeJSONList(s string) ([]any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var elems []any
	if err := dec.Decode(&elems); err != nil {
		return nil, fmt.Errorf("expected JSON array: %w", err)
	}
	return elems, nil
}
