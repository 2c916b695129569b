package typehandler

import (
	"database/sql/driver"
	"math"
	"strconv"
	"time"
)

// Builtins returns the builtin handlers, one per payload type.
func Builtins() []Handler {
	return []Handler{
		BoolHandler{},
		IntHandler{},
		Int64Handler{},
		Float64Handler{},
		StringHandler{},
		BytesHandler{},
		TimeHandler{},
	}
}

type BoolHandler struct{ Base[bool] }

func (h BoolHandler) Value(v any) (driver.Value, error) {
	return checked[bool](h.Check(v))
}

func (h BoolHandler) Scan(src any) (any, error) {
	switch s := src.(type) {
	case nil:
		return nil, nil
	case bool:
		return s, nil
	case int64:
		return s != 0, nil
	case string:
		return parseBool(h, s, src)
	case []byte:
		return parseBool(h, string(s), src)
	}
	return nil, unsupported(src, h.RawType())
}

func parseBool(h BoolHandler, s string, src any) (any, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, parseFailed(src, h.RawType(), err)
	}
	return b, nil
}

type IntHandler struct{ Base[int] }

func (h IntHandler) Value(v any) (driver.Value, error) {
	i, err := h.Check(v)
	if err != nil {
		return nil, err
	}
	return int64(i), nil
}

func (h IntHandler) Scan(src any) (any, error) {
	switch s := src.(type) {
	case nil:
		return nil, nil
	case int64:
		if s < math.MinInt || s > math.MaxInt {
			return nil, parseFailed(src, h.RawType(), strconv.ErrRange)
		}
		return int(s), nil
	case string:
		return parseInt(h, s, src)
	case []byte:
		return parseInt(h, string(s), src)
	}
	return nil, unsupported(src, h.RawType())
}

func parseInt(h IntHandler, s string, src any) (any, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil, parseFailed(src, h.RawType(), err)
	}
	return i, nil
}

type Int64Handler struct{ Base[int64] }

func (h Int64Handler) Value(v any) (driver.Value, error) {
	return checked[int64](h.Check(v))
}

func (h Int64Handler) Scan(src any) (any, error) {
	switch s := src.(type) {
	case nil:
		return nil, nil
	case int64:
		return s, nil
	case string:
		return parseInt64(h, s, src)
	case []byte:
		return parseInt64(h, string(s), src)
	}
	return nil, unsupported(src, h.RawType())
}

func parseInt64(h Int64Handler, s string, src any) (any, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, parseFailed(src, h.RawType(), err)
	}
	return i, nil
}

type Float64Handler struct{ Base[float64] }

func (h Float64Handler) Value(v any) (driver.Value, error) {
	return checked[float64](h.Check(v))
}

func (h Float64Handler) Scan(src any) (any, error) {
	switch s := src.(type) {
	case nil:
		return nil, nil
	case float64:
		return s, nil
	case int64:
		return float64(s), nil
	case string:
		return parseFloat64(h, s, src)
	case []byte:
		return parseFloat64(h, string(s), src)
	}
	return nil, unsupported(src, h.RawType())
}

func parseFloat64(h Float64Handler, s string, src any) (any, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, parseFailed(src, h.RawType(), err)
	}
	return f, nil
}

type StringHandler struct{ Base[string] }

func (h StringHandler) Value(v any) (driver.Value, error) {
	return checked[string](h.Check(v))
}

func (h StringHandler) Scan(src any) (any, error) {
	switch s := src.(type) {
	case nil:
		return nil, nil
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	}
	return nil, unsupported(src, h.RawType())
}

type BytesHandler struct{ Base[[]byte] }

func (h BytesHandler) Value(v any) (driver.Value, error) {
	b, err := h.Check(v)
	if err != nil {
		return nil, err
	}
	return cloneBytes(b), nil
}

func (h BytesHandler) Scan(src any) (any, error) {
	switch s := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		// Drivers may reuse the buffer after the scan.
		return cloneBytes(s), nil
	case string:
		return []byte(s), nil
	}
	return nil, unsupported(src, h.RawType())
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

type TimeHandler struct{ Base[time.Time] }

func (h TimeHandler) Value(v any) (driver.Value, error) {
	return checked[time.Time](h.Check(v))
}

func (h TimeHandler) Scan(src any) (any, error) {
	switch s := src.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return s, nil
	case string:
		return parseTime(h, s, src)
	case []byte:
		return parseTime(h, string(s), src)
	}
	return nil, unsupported(src, h.RawType())
}

func parseTime(h TimeHandler, s string, src any) (any, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, parseFailed(src, h.RawType(), err)
	}
	return t, nil
}

// checked drops the zero payload of a failed Check.
func checked[T any](v T, err error) (driver.Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
