package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/jx"

	"bytex"
	"bytex/bit"
)

// printer writes bytes either as human readable lines or as JSON objects,
// one per line.
type printer struct {
	w     io.Writer
	json  bool
	group bool

	enc jx.Encoder
}

// repr returns the representation of v, nibbles optionally separated with an
// underscore (0b1000_0010).
func (p *printer) repr(v uint8) string {
	r := bytex.Repr(v)
	if !p.group {
		return string(r[:])
	}
	return string(r[:6]) + "_" + string(r[6:])
}

func (p *printer) flush() error {
	defer p.enc.Reset()
	if _, err := p.w.Write(p.enc.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(p.w, "\n")
	return err
}

func (p *printer) byteFields(v uint8) {
	r := bytex.Repr(v)
	p.enc.FieldStart("value")
	p.enc.Int(int(v))
	p.enc.FieldStart("hex")
	p.enc.Str(fmt.Sprintf("%#02x", v))
	p.enc.FieldStart("repr")
	p.enc.Str(string(r[:]))
	p.enc.FieldStart("bits")
	p.enc.ArrStart()
	for pos := bit.MaxPosition; pos >= 0; pos-- {
		p.enc.Int(int(bit.Get(v, uint(pos))))
	}
	p.enc.ArrEnd()
}

// value prints a single byte.
func (p *printer) value(v uint8) error {
	if !p.json {
		_, err := fmt.Fprintf(p.w, "%#02x %s\n", v, p.repr(v))
		return err
	}
	p.enc.ObjStart()
	p.byteFields(v)
	p.enc.ObjEnd()
	return p.flush()
}

// bit prints the result of a bit read.
func (p *printer) bit(v uint8, pos uint, b uint8) error {
	if !p.json {
		_, err := fmt.Fprintln(p.w, b)
		return err
	}
	p.enc.ObjStart()
	p.byteFields(v)
	p.enc.FieldStart("pos")
	p.enc.Int(int(pos))
	p.enc.FieldStart("bit")
	p.enc.Int(int(b))
	p.enc.ObjEnd()
	return p.flush()
}

// dumpLine prints a line of a file dump starting at offset off.
func (p *printer) dumpLine(file string, off int, data []byte, offsets bool) error {
	if !p.json {
		parts := make([]string, 0, len(data)+1)
		if offsets {
			parts = append(parts, fmt.Sprintf("%08x", off))
		}
		for _, v := range data {
			parts = append(parts, fmt.Sprintf("%02x %s", v, p.repr(v)))
		}
		_, err := fmt.Fprintln(p.w, strings.Join(parts, "  "))
		return err
	}

	for i, v := range data {
		p.enc.ObjStart()
		p.enc.FieldStart("file")
		p.enc.Str(file)
		p.enc.FieldStart("offset")
		p.enc.Int(off + i)
		p.byteFields(v)
		p.enc.ObjEnd()
		if err := p.flush(); err != nil {
			return err
		}
	}
	return nil
}
