// Copyright (c) 2024 Neomantra Corp

package itch41_test

import "encoding/binary"

// frame builds a full ITCH 4.1 message payload: opcode byte + 4-byte
// within-second nanosecond header + body. ITCH 4.1's header carries no
// stock_locate/tracking_number prefix, unlike itch50's.
func frame(opcode byte, tsNanos int64, body []byte) []byte {
	out := make([]byte, 1+4+len(body))
	out[0] = opcode
	binary.BigEndian.PutUint32(out[1:5], uint32(tsNanos))
	copy(out[5:], body)
	return out
}

func putStock(b []byte, symbol string) {
	copy(b, symbol)
	for i := len(symbol); i < len(b); i++ {
		b[i] = ' '
	}
}
