package log

import (
	"fmt"
	"sync"

	"gopkg.in/Sirupsen/logrus.v0"
)

// EntryZ is a log entry built field by field, then emitted with End. All
// methods accept a nil receiver, which is what disabled modules return, so
// that a disabled log line costs a single nil check.
type EntryZ struct {
	lvl    Level
	msg    string
	mod    Module
	fields [16]zfield
	n      int
}

var entryPool = sync.Pool{
	New: func() any { return new(EntryZ) },
}

func newEntryZ(mod Module, lvl Level, msg string) *EntryZ {
	z := entryPool.Get().(*EntryZ)
	z.mod, z.lvl, z.msg, z.n = mod, lvl, msg, 0
	return z
}

// add appends f, fields past the 16th are dropped.
func (z *EntryZ) add(f zfield) *EntryZ {
	if z == nil {
		return nil
	}
	if z.n < len(z.fields) {
		z.fields[z.n] = f
		z.n++
	}
	return z
}

func (z *EntryZ) String(key, val string) *EntryZ {
	return z.add(zfield{kind: kindString, key: key, str: val})
}

func (z *EntryZ) Bool(key string, val bool) *EntryZ {
	f := zfield{kind: kindBool, key: key}
	if val {
		f.num = 1
	}
	return z.add(f)
}

func (z *EntryZ) Hex8(key string, val uint8) *EntryZ {
	return z.add(zfield{kind: kindHex8, key: key, num: int64(val)})
}

func (z *EntryZ) Hex16(key string, val uint16) *EntryZ {
	return z.add(zfield{kind: kindHex16, key: key, num: int64(val)})
}

func (z *EntryZ) Int(key string, val int) *EntryZ {
	return z.add(zfield{kind: kindInt, key: key, num: int64(val)})
}

func (z *EntryZ) Int64(key string, val int64) *EntryZ {
	return z.add(zfield{kind: kindInt, key: key, num: val})
}

func (z *EntryZ) Error(key string, err error) *EntryZ {
	f := zfield{kind: kindError, key: key}
	if err != nil {
		f.val = err
	}
	return z.add(f)
}

func (z *EntryZ) Stringer(key string, val fmt.Stringer) *EntryZ {
	return z.add(zfield{kind: kindStringer, key: key, val: val})
}

// End emits the entry and releases it. The entry must not be used afterwards.
func (z *EntryZ) End() {
	if z == nil {
		return
	}

	addContexts(z)
	fields := make(logrus.Fields, z.n+1)
	fields["_mod"] = z.mod.String()
	for i := range z.fields[:z.n] {
		fields[z.fields[i].key] = z.fields[i].format()
	}

	entry := logrus.StandardLogger().WithFields(fields)
	switch z.lvl {
	case DebugLevel:
		entry.Debug(z.msg)
	case InfoLevel:
		entry.Info(z.msg)
	case WarnLevel:
		entry.Warn(z.msg)
	case ErrorLevel:
		entry.Error(z.msg)
	}

	z.fields = [16]zfield{}
	entryPool.Put(z)
}
