// Copyright (c) 2024 Neomantra Corp

package itch50

import (
	"encoding/binary"

	itchlob "github.com/NimbleMarkets/itch-lob"
)

// Header is the common prefix of every ITCH 5.0 message (§6):
// stock_locate, tracking_number, and a 48-bit intra-day nanosecond
// timestamp split across two wire fields and reassembled here, grounded on
// itch50_market_message.py's set_timestamp (`ts2 | (ts1 << 32)`).
type Header struct {
	StockLocate    uint16
	TrackingNumber uint16
	TimestampNanos int64 // nanoseconds since the trading day's midnight
}

// HeaderSize is the wire size of Header: stock_locate(2) + tracking(2) +
// ts_hi(2) + ts_lo(4).
const HeaderSize = 10

func fillHeader(b []byte, h *Header) error {
	if len(b) < HeaderSize {
		return itchlob.ErrShortPayload
	}
	h.StockLocate = binary.BigEndian.Uint16(b[0:2])
	h.TrackingNumber = binary.BigEndian.Uint16(b[2:4])
	ts1 := uint64(binary.BigEndian.Uint16(b[4:6]))
	ts2 := uint64(binary.BigEndian.Uint32(b[6:10]))
	h.TimestampNanos = int64(ts2 | (ts1 << 32))
	return nil
}

// putHeader writes h back to its wire form, the inverse of fillHeader.
func putHeader(b []byte, h Header) {
	binary.BigEndian.PutUint16(b[0:2], h.StockLocate)
	binary.BigEndian.PutUint16(b[2:4], h.TrackingNumber)
	ts := uint64(h.TimestampNanos)
	binary.BigEndian.PutUint16(b[4:6], uint16(ts>>32))
	binary.BigEndian.PutUint32(b[6:10], uint32(ts))
}
