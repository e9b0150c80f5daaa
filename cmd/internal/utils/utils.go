package utils

import (
	"reflect"
	"strings"
	"sync"
	"time"
)

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// IDClock hands out booking identifiers derived from the wall clock in
// epoch milliseconds. Values are strictly increasing within one process,
// even when two are requested inside the same millisecond. They are not
// unique across processes.
type IDClock struct {
	mu   sync.Mutex
	last int64
	now  func() int64
}

func NewIDClock() *IDClock {
	return &IDClock{now: NowUTC}
}

// NewIDClockFrom is used by tests to pin the time source.
func NewIDClockFrom(now func() int64) *IDClock {
	return &IDClock{now: now}
}

func (c *IDClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.now()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}

func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
