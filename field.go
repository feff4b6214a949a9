package metricline

import "strconv"

type fieldKind int

const (
	fieldMissing fieldKind = iota
	fieldText
	fieldNumber
	fieldError
)

// Field is a single renderer argument. The zero value is the missing
// variant; renderers branch on the variant instead of probing runtime
// types.
type Field struct {
	kind    fieldKind
	text    string
	num     float64
	integer bool
	err     error
}

func Text(s string) Field {
	return Field{kind: fieldText, text: s}
}

func Int(v int64) Field {
	return Field{kind: fieldNumber, num: float64(v), integer: true}
}

func Float(v float64) Field {
	return Field{kind: fieldNumber, num: v}
}

// Err wraps a caller-supplied error. Renderers print its message
// verbatim instead of their structured line.
func Err(err error) Field {
	return Field{kind: fieldError, err: err}
}

// Missing reports whether the field carries no value at all.
func (f Field) Missing() bool {
	return f.kind == fieldMissing
}

// IsErr reports whether the field carries a caller-supplied error.
func (f Field) IsErr() bool {
	return f.kind == fieldError
}

func (f Field) isInt() bool {
	return f.kind == fieldNumber && f.integer
}

// String renders the field for line output. A missing field renders
// empty.
func (f Field) String() string {
	switch f.kind {
	case fieldText:
		return f.text
	case fieldNumber:
		if f.integer {
			return strconv.FormatInt(int64(f.num), 10)
		}
		return strconv.FormatFloat(f.num, 'f', -1, 64)
	case fieldError:
		return f.err.Error()
	default:
		return ""
	}
}

// Value returns the field as a plain Go value for JSON payloads.
func (f Field) Value() interface{} {
	switch f.kind {
	case fieldText:
		return f.text
	case fieldNumber:
		if f.integer {
			return int64(f.num)
		}
		return f.num
	case fieldError:
		return f.err.Error()
	default:
		return nil
	}
}
