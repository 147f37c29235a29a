/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package router

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xelabs/go-mysqlstack/sqlparser"
	"github.com/xelabs/go-mysqlstack/sqlparser/depends/common"
)

// KeyType is the key domain of a partitioned table.
type KeyType string

const (
	// KeyTypeInteger domain, backed by IntegerKey.
	KeyTypeInteger KeyType = "INTEGER"

	// KeyTypeString domain, backed by StringKey.
	KeyTypeString KeyType = "STRING"

	// KeyTypeTimestamp domain, backed by TimestampKey.
	KeyTypeTimestamp KeyType = "TIMESTAMP"

	// KeyTypeDecimal domain, backed by DecimalKey.
	KeyTypeDecimal KeyType = "DECIMAL"
)

// KeyTypeOf maps a catalog column type to its key domain.
func KeyTypeOf(columnType string) (KeyType, error) {
	switch strings.ToUpper(strings.TrimSpace(columnType)) {
	case "TINYINT", "SMALLINT", "INT", "INTEGER", "BIGINT":
		return KeyTypeInteger, nil
	case "CHAR", "VARCHAR", "STRING":
		return KeyTypeString, nil
	case "TIMESTAMP":
		return KeyTypeTimestamp, nil
	case "DECIMAL", "FLOAT":
		return KeyTypeDecimal, nil
	}
	return "", errors.Wrapf(ErrTypeMismatch, "router.unsupported.column.type[%s]", columnType)
}

// Key is the capability set of a key domain. The methods are value
// methods so they can be called on the zero value of T.
type Key[T any] interface {
	// Compare returns -1, 0 or +1.
	Compare(other T) int
	// Parse parses a range spec value.
	Parse(text string) (T, error)
	// Coerce converts a caller supplied lookup key, a key of another
	// domain is an ErrTypeMismatch.
	Coerce(v interface{}) (T, error)
	String() string
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func mismatch(domain KeyType, v interface{}) error {
	return errors.Wrapf(ErrTypeMismatch, "router.key[%v].type[%T].is.not.%s", v, v, domain)
}

// IntegerKey is a signed 64 bit key.
type IntegerKey int64

// Compare impl.
func (k IntegerKey) Compare(other IntegerKey) int {
	return compareInt64(int64(k), int64(other))
}

// Parse impl.
func (IntegerKey) Parse(text string) (IntegerKey, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, errors.Errorf("router.integer.key[%s].parse.error", text)
	}
	return IntegerKey(v), nil
}

// Coerce impl.
func (k IntegerKey) Coerce(v interface{}) (IntegerKey, error) {
	switch v := v.(type) {
	case IntegerKey:
		return v, nil
	case int:
		return IntegerKey(v), nil
	case int8:
		return IntegerKey(v), nil
	case int16:
		return IntegerKey(v), nil
	case int32:
		return IntegerKey(v), nil
	case int64:
		return IntegerKey(v), nil
	case uint8:
		return IntegerKey(v), nil
	case uint16:
		return IntegerKey(v), nil
	case uint32:
		return IntegerKey(v), nil
	case uint:
		if uint64(v) <= math.MaxInt64 {
			return IntegerKey(v), nil
		}
	case uint64:
		if v <= math.MaxInt64 {
			return IntegerKey(v), nil
		}
	case *sqlparser.SQLVal:
		if v.Type == sqlparser.IntVal {
			if key, err := k.Parse(common.BytesToString(v.Val)); err == nil {
				return key, nil
			}
		}
	}
	return 0, mismatch(KeyTypeInteger, v)
}

// String impl.
func (k IntegerKey) String() string {
	return strconv.FormatInt(int64(k), 10)
}

func (k IntegerKey) successor() (IntegerKey, bool) {
	if k == math.MaxInt64 {
		return k, false
	}
	return k + 1, true
}

// StringKey is a key ordered by bytes.
type StringKey string

// Compare impl.
func (k StringKey) Compare(other StringKey) int {
	return strings.Compare(string(k), string(other))
}

// Parse impl.
func (StringKey) Parse(text string) (StringKey, error) {
	return StringKey(text), nil
}

// Coerce impl.
func (StringKey) Coerce(v interface{}) (StringKey, error) {
	switch v := v.(type) {
	case StringKey:
		return v, nil
	case string:
		return StringKey(v), nil
	case []byte:
		return StringKey(v), nil
	case *sqlparser.SQLVal:
		if v.Type == sqlparser.StrVal {
			return StringKey(v.Val), nil
		}
	}
	return "", mismatch(KeyTypeString, v)
}

// String impl.
func (k StringKey) String() string {
	return string(k)
}

func (k StringKey) successor() (StringKey, bool) {
	return k + "\x00", true
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999",
	"2006-01-02",
}

// TimestampKey is a point in time, compared at nanosecond precision.
type TimestampKey time.Time

// Compare impl.
func (k TimestampKey) Compare(other TimestampKey) int {
	a, b := time.Time(k), time.Time(other)
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

// Parse impl, the text is one of the timestampLayouts in UTC or epoch
// microseconds.
func (TimestampKey) Parse(text string) (TimestampKey, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return TimestampKey(t.UTC()), nil
		}
	}
	if micros, err := strconv.ParseInt(text, 10, 64); err == nil {
		return TimestampKey(time.UnixMicro(micros).UTC()), nil
	}
	return TimestampKey{}, errors.Errorf("router.timestamp.key[%s].parse.error", text)
}

// Coerce impl.
func (TimestampKey) Coerce(v interface{}) (TimestampKey, error) {
	switch v := v.(type) {
	case TimestampKey:
		return v, nil
	case time.Time:
		return TimestampKey(v), nil
	}
	return TimestampKey{}, mismatch(KeyTypeTimestamp, v)
}

// String impl.
func (k TimestampKey) String() string {
	return time.Time(k).UTC().Format(time.RFC3339Nano)
}

func (k TimestampKey) successor() (TimestampKey, bool) {
	return TimestampKey(time.Time(k).Add(time.Nanosecond)), true
}

// DecimalKey is an arbitrary precision decimal key.
type DecimalKey decimal.Decimal

// Compare impl.
func (k DecimalKey) Compare(other DecimalKey) int {
	return decimal.Decimal(k).Cmp(decimal.Decimal(other))
}

// Parse impl.
func (DecimalKey) Parse(text string) (DecimalKey, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return DecimalKey{}, errors.Errorf("router.decimal.key[%s].parse.error", text)
	}
	return DecimalKey(d), nil
}

// Coerce impl.
func (k DecimalKey) Coerce(v interface{}) (DecimalKey, error) {
	switch v := v.(type) {
	case DecimalKey:
		return v, nil
	case decimal.Decimal:
		return DecimalKey(v), nil
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return DecimalKey{}, mismatch(KeyTypeDecimal, v)
		}
		return DecimalKey(decimal.NewFromFloat32(v)), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return DecimalKey{}, mismatch(KeyTypeDecimal, v)
		}
		return DecimalKey(decimal.NewFromFloat(v)), nil
	case *sqlparser.SQLVal:
		if v.Type == sqlparser.IntVal || v.Type == sqlparser.FloatVal {
			if key, err := k.Parse(common.BytesToString(v.Val)); err == nil {
				return key, nil
			}
		}
		return DecimalKey{}, mismatch(KeyTypeDecimal, v)
	}
	if i, err := IntegerKey(0).Coerce(v); err == nil {
		return DecimalKey(decimal.NewFromInt(int64(i))), nil
	}
	return DecimalKey{}, mismatch(KeyTypeDecimal, v)
}

// String impl.
func (k DecimalKey) String() string {
	return decimal.Decimal(k).String()
}
