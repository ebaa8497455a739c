package log

import (
	"fmt"
	"strconv"
)

type fieldKind uint8

const (
	kindString fieldKind = iota
	kindBool
	kindInt
	kindHex8
	kindHex16
	kindError
	kindStringer
)

// zfield is a typed EntryZ field. Formatting is deferred until the entry is
// emitted, so that fields of disabled entries cost nothing.
type zfield struct {
	kind fieldKind
	key  string

	str string
	num int64
	val any // error or fmt.Stringer
}

func (f *zfield) format() string {
	switch f.kind {
	case kindString:
		return f.str
	case kindBool:
		return strconv.FormatBool(f.num != 0)
	case kindInt:
		return strconv.FormatInt(f.num, 10)
	case kindHex8:
		return fmt.Sprintf("%02x", f.num)
	case kindHex16:
		return fmt.Sprintf("%04x", f.num)
	case kindError:
		if f.val == nil {
			return "<nil>"
		}
		return f.val.(error).Error()
	case kindStringer:
		return f.val.(fmt.Stringer).String()
	}
	return ""
}
