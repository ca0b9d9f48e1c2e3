package stream

import (
	"reflect"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// convBufLen bounds the local text-conversion buffer: large enough for a
// 128-bit integer in decimal and for any float64.
const convBufLen = 39

// Byte appends a single byte as a length-1 write.
func (st *Stream) Byte(b byte) *Stream {
	buf := [1]byte{b}
	return st.Write(buf[:])
}

// Rune appends the UTF-8 encoding of r. Invalid runes emit the replacement
// character, as everywhere else in Go.
func (st *Stream) Rune(r rune) *Stream {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return st.Write(buf[:n])
}

// Int appends the canonical decimal text of v.
func (st *Stream) Int(v int64) *Stream {
	var buf [convBufLen]byte
	return st.Write(strconv.AppendInt(buf[:0], v, 10))
}

// Uint appends the canonical decimal text of v.
func (st *Stream) Uint(v uint64) *Stream {
	var buf [convBufLen]byte
	return st.Write(strconv.AppendUint(buf[:0], v, 10))
}

// Float appends the shortest decimal text that round-trips v.
func (st *Stream) Float(v float64) *Stream {
	var buf [convBufLen]byte
	return st.Write(strconv.AppendFloat(buf[:0], v, 'g', -1, 64))
}

// Pointer appends the address held by v as lowercase hexadecimal. A value
// that carries no address emits nothing.
func (st *Stream) Pointer(v interface{}) *Stream {
	if v == nil {
		return st
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer:
	default:
		return st
	}

	var buf [convBufLen]byte
	return st.Write(strconv.AppendUint(buf[:0], uint64(rv.Pointer()), 16))
}

// Str appends the bytes of s verbatim. An empty string is a no-op.
func (st *Stream) Str(s string) *Stream {
	if s == "" {
		return st
	}
	return st.Write([]byte(s))
}

// Bytes appends p verbatim. An empty slice is a no-op.
func (st *Stream) Bytes(p []byte) *Stream {
	if len(p) == 0 {
		return st
	}
	return st.Write(p)
}

// UTF16 appends a wide string. On UTF-16-native console devices the units
// are transcoded to UTF-8, emitting nothing when the transcode yields no
// output. Byte-oriented devices take the code units verbatim, little
// endian, with no transcoding.
func (st *Stream) UTF16(units []uint16) *Stream {
	if len(units) == 0 {
		return st
	}

	if st.wide {
		runes := utf16.Decode(units)
		if len(runes) == 0 {
			return st
		}
		return st.Str(string(runes))
	}

	buf := make([]byte, 0, len(units)*2)
	for _, u := range units {
		buf = append(buf, byte(u), byte(u>>8))
	}
	return st.Write(buf)
}

// Append emits each value in order, dispatching on its type: bytes and
// runes as characters, integers and floats as decimal text, strings and
// byte slices verbatim, []uint16 as wide strings, pointers as hexadecimal
// addresses, and the Flush/Endl markers as flush requests. Values of any
// other non-pointer type emit nothing.
func (st *Stream) Append(values ...interface{}) *Stream {
	for _, v := range values {
		st.appendValue(v)
	}
	return st
}

func (st *Stream) appendValue(v interface{}) {
	switch x := v.(type) {
	case Marker:
		if x == Endl {
			st.Byte('\n')
		}
		st.Flush()
	case byte:
		st.Byte(x)
	case rune:
		st.Rune(x)
	case string:
		st.Str(x)
	case []byte:
		st.Bytes(x)
	case []uint16:
		st.UTF16(x)
	case int:
		st.Int(int64(x))
	case int8:
		st.Int(int64(x))
	case int16:
		st.Int(int64(x))
	case int64:
		st.Int(x)
	case uint:
		st.Uint(uint64(x))
	case uint16:
		st.Uint(uint64(x))
	case uint32:
		st.Uint(uint64(x))
	case uint64:
		st.Uint(x)
	case uintptr:
		st.Uint(uint64(x))
	case float32:
		// Shortest round-trip text at 32-bit precision
		var buf [convBufLen]byte
		st.Write(strconv.AppendFloat(buf[:0], float64(x), 'g', -1, 32))
	case float64:
		st.Float(x)
	default:
		st.Pointer(v)
	}
}
