// SPDX-License-Identifier: MIT
package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// writer wraps an io.Writer with the primitive encoders every section
// uses. All multi-byte fields are little-endian.
type writer struct {
	w   io.Writer
	err error
}

func newWriter(w io.Writer) *writer { return &writer{w: w} }

func (wr *writer) fail(op string, err error) {
	if wr.err == nil {
		wr.err = fmt.Errorf("codec: write %s: %w", op, err)
	}
}

func (wr *writer) u8(v uint8) {
	if wr.err != nil {
		return
	}
	if _, err := wr.w.Write([]byte{v}); err != nil {
		wr.fail("u8", err)
	}
}

func (wr *writer) u16(v uint16) {
	if wr.err != nil {
		return
	}
	if err := binary.Write(wr.w, binary.LittleEndian, v); err != nil {
		wr.fail("u16", err)
	}
}

func (wr *writer) u32(v uint32) {
	if wr.err != nil {
		return
	}
	if err := binary.Write(wr.w, binary.LittleEndian, v); err != nil {
		wr.fail("u32", err)
	}
}

func (wr *writer) i32(v int32) {
	wr.u32(uint32(v))
}

func (wr *writer) f64(v float64) {
	if wr.err != nil {
		return
	}
	if err := binary.Write(wr.w, binary.LittleEndian, math.Float64bits(v)); err != nil {
		wr.fail("f64", err)
	}
}

func (wr *writer) str(s string) {
	if wr.err != nil {
		return
	}
	if len(s) > math.MaxUint16 {
		wr.fail("str", ErrStringTooLong)
		return
	}
	wr.u16(uint16(len(s)))
	if wr.err != nil {
		return
	}
	if _, err := io.WriteString(wr.w, s); err != nil {
		wr.fail("str", err)
	}
}

func (wr *writer) raw(b []byte) {
	if wr.err != nil {
		return
	}
	if _, err := wr.w.Write(b); err != nil {
		wr.fail("raw", err)
	}
}

// reader is writer's decode-side counterpart; every method records the
// first error and becomes a no-op afterward, so a long decode sequence
// can check err once at the end instead of after every field.
type reader struct {
	r   io.Reader
	err error
}

func newReader(r io.Reader) *reader { return &reader{r: r} }

func (rd *reader) fail(op string, err error) {
	if rd.err == nil {
		rd.err = fmt.Errorf("codec: read %s: %w", op, err)
	}
}

func (rd *reader) u8() uint8 {
	if rd.err != nil {
		return 0
	}
	var b [1]byte
	if _, err := io.ReadFull(rd.r, b[:]); err != nil {
		rd.fail("u8", err)
		return 0
	}
	return b[0]
}

func (rd *reader) u16() uint16 {
	if rd.err != nil {
		return 0
	}
	var v uint16
	if err := binary.Read(rd.r, binary.LittleEndian, &v); err != nil {
		rd.fail("u16", err)
		return 0
	}
	return v
}

func (rd *reader) u32() uint32 {
	if rd.err != nil {
		return 0
	}
	var v uint32
	if err := binary.Read(rd.r, binary.LittleEndian, &v); err != nil {
		rd.fail("u32", err)
		return 0
	}
	return v
}

func (rd *reader) i32() int32 {
	return int32(rd.u32())
}

func (rd *reader) f64() float64 {
	if rd.err != nil {
		return 0
	}
	var bits uint64
	if err := binary.Read(rd.r, binary.LittleEndian, &bits); err != nil {
		rd.fail("f64", err)
		return 0
	}
	return math.Float64frombits(bits)
}

func (rd *reader) str() string {
	n := rd.u16()
	if rd.err != nil {
		return ""
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(rd.r, buf); err != nil {
		rd.fail("str", err)
		return ""
	}
	return string(buf)
}

func (rd *reader) raw(n int) []byte {
	if rd.err != nil {
		return nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(rd.r, buf); err != nil {
		rd.fail("raw", err)
		return nil
	}
	return buf
}
