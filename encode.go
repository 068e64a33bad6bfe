package bookstore

import (
	"bytes"
	"encoding/binary"
	"time"
)

// Fixed-layout field helpers shared by the record codecs. Strings are
// stored as zero-padded byte runs with an implicit terminating zero
// (the validators cap every field strictly below its slot width), and
// integers are little-endian.

func putFixedString(buf []byte, s string) {
	for i := range buf {
		buf[i] = 0
	}
	copy(buf, s)
}

func fixedString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}

func putInt64(buf []byte, v int64) {
	binary.LittleEndian.PutUint64(buf, uint64(v))
}

func getInt64(buf []byte) int64 {
	return int64(binary.LittleEndian.Uint64(buf))
}

// Dates are stored as year/month/day in four bytes.

func putDate(buf []byte, d Date) {
	binary.LittleEndian.PutUint16(buf, uint16(d.Year()))
	buf[2] = byte(d.Month())
	buf[3] = byte(d.Day())
}

func getDate(buf []byte) Date {
	y := int(binary.LittleEndian.Uint16(buf))
	if y == 0 && buf[2] == 0 && buf[3] == 0 {
		return Date{}
	}
	return NewDate(y, time.Month(buf[2]), int(buf[3]))
}
