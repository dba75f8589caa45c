// Copyright (c) 2024 Neomantra Corp

package itch50_test

import "encoding/binary"

// putHeader writes an ITCH 5.0 header (stock_locate, tracking_number, and
// the 48-bit split timestamp) at the front of body, matching the wire
// layout the messages' FillRaw methods expect.
func putHeader(body []byte, stockLocate, tracking uint16, tsNanos int64) {
	binary.BigEndian.PutUint16(body[0:2], stockLocate)
	binary.BigEndian.PutUint16(body[2:4], tracking)
	binary.BigEndian.PutUint16(body[4:6], uint16(tsNanos>>32))
	binary.BigEndian.PutUint32(body[6:10], uint32(tsNanos))
}

// frame builds a full message payload: opcode byte + header + body.
func frame(opcode byte, stockLocate, tracking uint16, tsNanos int64, body []byte) []byte {
	out := make([]byte, 1+10+len(body))
	out[0] = opcode
	putHeader(out[1:11], stockLocate, tracking, tsNanos)
	copy(out[11:], body)
	return out
}

func putStock(b []byte, symbol string) {
	copy(b, symbol)
	for i := len(symbol); i < len(b); i++ {
		b[i] = ' '
	}
}
