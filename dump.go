package logging

import (
	"fmt"
	"reflect"
)

// Maximum recursion depth to prevent stack overflow
const maxDumpDepth = 10

// Dump writes the contents of v as a series of debugging entries, one
// per field or element. Structs descend into their exported fields,
// maps and slices into their elements, and basic values print directly.
// The whole dump is gated like Debug, and every line carries the Dump
// call site as its origin.
func (l *Service) Dump(v interface{}) {
	if !l.ready() || !l.enabled(SeverityDebug) {
		return
	}

	origin := callerOrigin(callSiteSkip)

	if v == nil {
		l.emit(SeverityDebug, origin, "Dump: <nil>")
		return
	}

	// Track visited pointers to prevent infinite recursion.
	visited := make(map[uintptr]bool)
	l.dumpValue(origin, v, emptyString, visited, 0)
}

// dumpLine renders one dump entry through the regular emission path.
func (l *Service) dumpLine(origin, format string, args ...interface{}) {
	l.emit(SeverityDebug, origin, fmt.Sprintf(format, args...))
}

// dumpValue is a recursive helper function for Dump.
func (l *Service) dumpValue(origin string, v interface{}, prefix string, visited map[uintptr]bool, depth int) {
	if depth > maxDumpDepth {
		l.dumpLine(origin, "%s: <max depth reached>", prefix)
		return
	}

	if v == nil {
		l.dumpLine(origin, "%s: <nil>", prefix)
		return
	}

	val := reflect.ValueOf(v)

	// Unwrap interfaces and pointers with cycle detection. Pointer() is
	// only called on kinds that support it.
	for {
		switch val.Kind() {
		case reflect.Interface:
			if val.IsNil() {
				l.dumpLine(origin, "%s: <nil>", prefix)
				return
			}
			val = val.Elem()
			continue
		case reflect.Ptr:
			if val.IsNil() {
				l.dumpLine(origin, "%s: <nil>", prefix)
				return
			}
			ptr := val.Pointer()
			if visited[ptr] {
				l.dumpLine(origin, "%s: <circular reference>", prefix)
				return
			}
			visited[ptr] = true
			val = val.Elem()
		default:
		}
		break
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		structName := typ.Name()
		if prefix == emptyString {
			l.dumpLine(origin, "Struct: %s", structName)
		} else {
			l.dumpLine(origin, "%s: %s {", prefix, structName)
		}

		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			fieldVal := val.Field(i)

			// Skip unexported fields
			if !fieldVal.CanInterface() {
				continue
			}

			fieldPrefix := field.Name
			if prefix != emptyString {
				fieldPrefix = prefix + "." + field.Name
			}

			l.dumpValue(origin, fieldVal.Interface(), fieldPrefix, visited, depth+1)
		}

		if prefix != emptyString {
			l.dumpLine(origin, "%s: }", prefix)
		}

	case reflect.Map:
		l.dumpLine(origin, "%s: map[%s]%s (len: %d) {",
			prefix, typ.Key().String(), typ.Elem().String(), val.Len())

		iter := val.MapRange()
		for iter.Next() {
			k := iter.Key()
			vv := iter.Value()

			keyStr := fmt.Sprintf("%v", k.Interface())
			mapPrefix := prefix + "[" + keyStr + "]"

			l.dumpValue(origin, vv.Interface(), mapPrefix, visited, depth+1)
		}

		l.dumpLine(origin, "%s: }", prefix)

	case reflect.Slice, reflect.Array:
		l.dumpLine(origin, "%s: %s (len: %d, cap: %d) {",
			prefix, typ.String(), val.Len(), val.Cap())

		// Cap the element count for large slices and arrays.
		maxElements := 10
		for i := 0; i < val.Len() && i < maxElements; i++ {
			elemPrefix := fmt.Sprintf("%s[%d]", prefix, i)
			elem := val.Index(i)
			if elem.CanInterface() {
				l.dumpValue(origin, elem.Interface(), elemPrefix, visited, depth+1)
			} else {
				l.dumpValue(origin, reflect.New(elem.Type()).Elem().Interface(), elemPrefix, visited, depth+1)
			}
		}

		if val.Len() > maxElements {
			l.dumpLine(origin, "%s: ... (%d more elements)", prefix, val.Len()-maxElements)
		}

		l.dumpLine(origin, "%s: }", prefix)

	default:
		if val.IsValid() && val.CanInterface() {
			l.dumpLine(origin, "%s: %v", prefix, val.Interface())
		} else {
			l.dumpLine(origin, "%s: %v", prefix, v)
		}
	}
}
