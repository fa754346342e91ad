package log

import "gopkg.in/Sirupsen/logrus.v0"

const maxZFields = 16

// EntryZ is a log entry under construction. A nil *EntryZ is valid: it is
// what disabled levels return, and all methods are no-ops on it, so a
// disabled log line costs a single mask test.
type EntryZ struct {
	mod   Module
	lvl   Level
	msg   string
	zfbuf [maxZFields]ZField
	zfidx int
}

func (z *EntryZ) add(f ZField) *EntryZ {
	if z != nil && z.zfidx < len(z.zfbuf) {
		z.zfbuf[z.zfidx] = f
		z.zfidx++
	}
	return z
}

func (z *EntryZ) String(key, val string) *EntryZ {
	return z.add(ZField{Type: FieldTypeString, Key: key, String: val})
}

func (z *EntryZ) Bool(key string, val bool) *EntryZ {
	return z.add(ZField{Type: FieldTypeBool, Key: key, Boolean: val})
}

func (z *EntryZ) Int(key string, val int) *EntryZ {
	return z.add(ZField{Type: FieldTypeInt, Key: key, Integer: uint64(val)})
}

func (z *EntryZ) Uint(key string, val uint) *EntryZ {
	return z.add(ZField{Type: FieldTypeUint, Key: key, Integer: uint64(val)})
}

func (z *EntryZ) Hex8(key string, val uint8) *EntryZ {
	return z.add(ZField{Type: FieldTypeHex8, Key: key, Integer: uint64(val)})
}

func (z *EntryZ) Hex16(key string, val uint16) *EntryZ {
	return z.add(ZField{Type: FieldTypeHex16, Key: key, Integer: uint64(val)})
}

func (z *EntryZ) Hex64(key string, val uint64) *EntryZ {
	return z.add(ZField{Type: FieldTypeHex64, Key: key, Integer: val})
}

func (z *EntryZ) Error(key string, err error) *EntryZ {
	return z.add(ZField{Type: FieldTypeError, Key: key, Error: err})
}

// End emits the entry. Panic entries panic after logging.
func (z *EntryZ) End() {
	if z == nil {
		return
	}

	fields := make(logrus.Fields, z.zfidx+1)
	for i := range z.zfbuf[:z.zfidx] {
		fields[z.zfbuf[i].Key] = z.zfbuf[i].Value()
	}
	e := z.mod.entry().WithFields(fields)

	switch z.lvl {
	case DebugLevel:
		e.Debug(z.msg)
	case InfoLevel:
		e.Info(z.msg)
	case WarnLevel:
		e.Warn(z.msg)
	case ErrorLevel:
		e.Error(z.msg)
	case PanicLevel:
		e.Panic(z.msg)
	}
}
