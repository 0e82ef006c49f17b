package markup

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/htmlnode/internal/errors"
)

// FormatAttribute renders one attribute. A false value renders as the
// empty string; FormatAttributes leaves those out before joining.
func FormatAttribute(key string, value any) (string, error) {
	if value == nil {
		return key, nil
	}

	quoted := func(s string) string {
		return key + `="` + EscapeAttr(s) + `"`
	}

	switch v := value.(type) {
	case bool:
		if !v {
			return "", nil
		}
		return quoted(key), nil
	case string:
		return quoted(v), nil
	case []string:
		return quoted(strings.Join(v, " ")), nil
	case map[string]bool:
		return quoted(strings.Join(TruthyKeys(v), " ")), nil
	case time.Time:
		return quoted(v.Format(time.RFC3339Nano)), nil
	}

	if s, ok := FormatNumber(value); ok {
		return quoted(s), nil
	}

	// Named types such as time.Duration format by their underlying kind.
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return FormatAttribute(key, rv.Bool())
	case reflect.String:
		return quoted(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return quoted(strconv.FormatInt(rv.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return quoted(strconv.FormatUint(rv.Uint(), 10)), nil
	case reflect.Float32:
		return quoted(strconv.FormatFloat(rv.Float(), 'f', -1, 32)), nil
	case reflect.Float64:
		return quoted(strconv.FormatFloat(rv.Float(), 'f', -1, 64)), nil
	}

	return "", errors.New(errors.CodeUnsupportedAttribute).
		WithDetailf("attribute %q has a value of type %T", key, value)
}

// FormatAttributes renders every attribute whose value is not literally
// false, space separated, in insertion order.
func FormatAttributes(attrs *Attributes) (string, error) {
	if attrs.Len() == 0 {
		return "", nil
	}

	parts := make([]string, 0, attrs.Len())
	var firstErr error
	attrs.Each(func(key string, value any) {
		if firstErr != nil {
			return
		}
		if b, ok := value.(bool); ok && !b {
			return
		}
		s, err := FormatAttribute(key, value)
		if err != nil {
			firstErr = err
			return
		}
		if s != "" {
			parts = append(parts, s)
		}
	})
	if firstErr != nil {
		return "", firstErr
	}
	return strings.Join(parts, " "), nil
}

// TruthyKeys returns the keys of m whose value is true, sorted so that
// output does not depend on map iteration order.
func TruthyKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k, v := range m {
		if v {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// FormatNumber stringifies any Go integer or floating point value.
func FormatNumber(value any) (string, bool) {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}
	return "", false
}

// Stringify converts a text child to its unescaped string form.
func Stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	}
	if s, ok := FormatNumber(value); ok {
		return s
	}
	return fmt.Sprint(value)
}
