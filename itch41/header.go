// Copyright (c) 2024 Neomantra Corp

package itch41

import (
	"encoding/binary"

	itchlob "github.com/NimbleMarkets/itch-lob"
)

// Header is the common prefix of every ITCH 4.1 message (§6): a single
// 32-bit timestamp, nanoseconds-within-the-current-second — unlike ITCH
// 5.0 there is no stock_locate/tracking_number prefix, and the seconds
// component arrives out of band via a SecondsMessage rather than being
// folded into the header itself.
type Header struct {
	TimestampNanos int64
}

// HeaderSize is the wire size of Header.
const HeaderSize = 4

func fillHeader(b []byte, h *Header) error {
	if len(b) < HeaderSize {
		return itchlob.ErrShortPayload
	}
	h.TimestampNanos = int64(binary.BigEndian.Uint32(b[0:4]))
	return nil
}

// putHeader writes h back to its wire form, the inverse of fillHeader.
func putHeader(b []byte, h Header) {
	binary.BigEndian.PutUint32(b[0:4], uint32(h.TimestampNanos))
}
