package cache

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Separator delimits segments within a key fingerprint.
const Separator = "::"

// MaxSegmentLength bounds a single argument segment. Longer segments are
// replaced by their xxhash64 digest, keeping keys cheap to compare while
// preserving the value-equality contract for all practical inputs.
const MaxSegmentLength = 128

// defaultKeyBuilder canonicalizes argument values with a reflection walk:
// pointers are dereferenced, slices and arrays recursed, map keys sorted,
// exported struct fields visited in declaration order. Functions and
// channels are identified by pointer, which is stable within a process.
// Values the walk cannot express deterministically fall back to msgpack
// with sorted map keys.
//
// Scalar fingerprints carry the concrete type name and every segment is
// length-prefixed before joining, so 1 and "1" never collide and separator
// bytes inside string arguments cannot forge segment boundaries.
type defaultKeyBuilder struct{}

// NewDefaultKeyBuilder creates the default key builder.
func NewDefaultKeyBuilder() KeyBuilder {
	return defaultKeyBuilder{}
}

// BuildKey implements KeyBuilder.
func (b defaultKeyBuilder) BuildKey(operation string, args ...any) Key {
	if len(args) == 0 {
		return Key{Operation: operation}
	}

	segments := make([]string, len(args))
	for i, arg := range args {
		segments[i] = frame(compact(b.fingerprint(arg)))
	}

	return Key{Operation: operation, Fingerprint: strings.Join(segments, Separator)}
}

// compact digests segments that exceed MaxSegmentLength.
func compact(segment string) string {
	if len(segment) <= MaxSegmentLength {
		return segment
	}
	return "xx64:" + strconv.FormatUint(xxhash.Sum64String(segment), 16)
}

// frame length-prefixes a fingerprint. Framed segments self-delimit, so an
// argument value containing the separator (or a nested delimiter) cannot
// collide with a differently shaped argument list.
func frame(segment string) string {
	return strconv.Itoa(len(segment)) + "#" + segment
}

func (b defaultKeyBuilder) fingerprint(v any) string {
	if v == nil {
		return "nil"
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Func:
		if rv.IsNil() {
			return "func:nil"
		}
		return fmt.Sprintf("func:%p", v)

	case reflect.Chan:
		return fmt.Sprintf("chan:%p", v)

	case reflect.Pointer:
		if rv.IsNil() {
			return "nil"
		}
		return b.fingerprint(rv.Elem().Interface())

	case reflect.Slice:
		if rv.IsNil() {
			return "slice:nil"
		}
		return b.sequence("slice", rv)

	case reflect.Array:
		return b.sequence("array", rv)

	case reflect.Map:
		if rv.IsNil() {
			return "map:nil"
		}
		return b.mapping(rv)

	case reflect.Struct:
		return b.structure(rv)

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		// The concrete type name keeps 1, "1", and int64(1) apart.
		return fmt.Sprintf("%s:%v", rv.Type().String(), v)
	}

	return b.encoded(v)
}

// sequence fingerprints slices and arrays element by element.
func (b defaultKeyBuilder) sequence(label string, rv reflect.Value) string {
	length := rv.Len()
	parts := make([]string, length)
	for i := 0; i < length; i++ {
		parts[i] = frame(b.fingerprint(rv.Index(i).Interface()))
	}
	return fmt.Sprintf("%s[%d]:{%s}", label, length, strings.Join(parts, ","))
}

// mapping fingerprints maps with sorted entries so iteration order never
// leaks into the key.
func (b defaultKeyBuilder) mapping(rv reflect.Value) string {
	pairs := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, frame(b.fingerprint(iter.Key().Interface()))+"="+frame(b.fingerprint(iter.Value().Interface())))
	}
	sort.Strings(pairs)
	return fmt.Sprintf("map[%d]:{%s}", len(pairs), strings.Join(pairs, ","))
}

// structure fingerprints exported fields in declaration order.
func (b defaultKeyBuilder) structure(rv reflect.Value) string {
	rt := rv.Type()
	parts := make([]string, 0, rv.NumField())

	for i := 0; i < rv.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		value := rv.Field(i)
		if !value.CanInterface() {
			continue
		}
		parts = append(parts, field.Name+":"+frame(b.fingerprint(value.Interface())))
	}

	return fmt.Sprintf("struct:{%s}", strings.Join(parts, ","))
}

// encoded is the last-resort fingerprint for values the reflection walk
// does not cover. Map keys are sorted so the encoding stays deterministic.
func (b defaultKeyBuilder) encoded(v any) string {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("opaque:%T", v)
	}
	return fmt.Sprintf("msgpack:%x", buf.Bytes())
}
