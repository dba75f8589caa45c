// Copyright (c) 2024 Neomantra Corp

package itch41

import (
	"io"

	itchlob "github.com/NimbleMarkets/itch-lob"
)

// Writer is a stream-filter selecting the subset of a framed ITCH 4.1
// stream relevant to a symbol set, grounded on
// _examples/original_source/src/meatpy/itch41/itch41_writer.py's
// ITCH41Writer. Unlike itch50.Writer, the source here keeps one flat
// buffer rather than a buffer per symbol — it never needs to seed a new
// symbol's backlog with prior system-scope frames, since ITCH 4.1's
// system messages (Seconds, SystemEvent) are unconditionally appended to
// the same buffer every other kept frame lands in. As with itch50.Writer,
// this port keeps the original frame bytes rather than re-serializing.
type Writer struct {
	symbols map[string]bool // nil means "all symbols"
	out     io.Writer

	// MessageBuffer is the buffer's flush threshold, matching the
	// source's message_buffer default of 2000.
	MessageBuffer int

	orderRefs map[uint64]string
	matches   map[uint64]bool

	buffer [][]byte

	MessageCount int
}

// NewWriter constructs a Writer emitting the framed subset for symbols
// (nil or empty means every symbol) to out.
func NewWriter(out io.Writer, symbols []string) *Writer {
	var set map[string]bool
	if len(symbols) > 0 {
		set = make(map[string]bool, len(symbols))
		for _, s := range symbols {
			set[s] = true
		}
	}
	return &Writer{
		symbols:       set,
		out:           out,
		MessageBuffer: 2000,
		orderRefs:     make(map[uint64]string),
		matches:       make(map[uint64]bool),
	}
}

func (w *Writer) wanted(symbol string) bool {
	return w.symbols == nil || w.symbols[symbol]
}

func (w *Writer) append(frame []byte) error {
	w.buffer = append(w.buffer, frame)
	if len(w.buffer) > w.MessageBuffer {
		return w.Flush()
	}
	return nil
}

func writeFrame(out io.Writer, payload []byte) error {
	if len(payload) > itchlob.MaxFrameSize {
		return itchlob.ErrShortPayload
	}
	if _, err := out.Write([]byte{0x00, byte(len(payload))}); err != nil {
		return err
	}
	_, err := out.Write(payload)
	return err
}

// Process decodes payload's opcode, routes it per the source's
// process_message rules, and buffers the original frame bytes verbatim.
func (w *Writer) Process(payload []byte) error {
	w.MessageCount++
	if len(payload) == 0 {
		return itchlob.ErrShortPayload
	}
	switch Opcode(payload[0]) {
	case OpcodeSeconds, OpcodeSystemEvent:
		return w.append(payload)

	case OpcodeStockDirectory:
		var m StockDirectoryMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if w.wanted(m.Stock) {
			return w.append(payload)
		}
	case OpcodeStockTradingAction:
		var m StockTradingActionMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if w.wanted(m.Stock) {
			return w.append(payload)
		}
	case OpcodeRegSHO:
		var m RegSHOMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if w.wanted(m.Stock) {
			return w.append(payload)
		}
	case OpcodeMarketParticipantPosition:
		var m MarketParticipantPositionMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if w.wanted(m.Stock) {
			return w.append(payload)
		}

	case OpcodeAddOrder:
		var m AddOrderMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if w.wanted(m.Stock) {
			w.orderRefs[m.OrderRef] = m.Stock
			return w.append(payload)
		}
	case OpcodeAddOrderMPID:
		var m AddOrderMPIDMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if w.wanted(m.Stock) {
			w.orderRefs[m.OrderRef] = m.Stock
			return w.append(payload)
		}

	case OpcodeOrderExecuted:
		var m OrderExecutedMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if _, ok := w.orderRefs[m.OrderRef]; ok {
			w.matches[m.MatchNum] = true
			return w.append(payload)
		}
	case OpcodeOrderExecutedPrice:
		var m OrderExecutedPriceMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if _, ok := w.orderRefs[m.OrderRef]; ok {
			w.matches[m.MatchNum] = true
			return w.append(payload)
		}
	case OpcodeOrderCancel:
		var m OrderCancelMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if _, ok := w.orderRefs[m.OrderRef]; ok {
			return w.append(payload)
		}
	case OpcodeOrderDelete:
		var m OrderDeleteMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if _, ok := w.orderRefs[m.OrderRef]; ok {
			delete(w.orderRefs, m.OrderRef)
			return w.append(payload)
		}
	case OpcodeOrderReplace:
		var m OrderReplaceMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if symbol, ok := w.orderRefs[m.OriginalRef]; ok {
			delete(w.orderRefs, m.OriginalRef)
			w.orderRefs[m.NewRef] = symbol
			return w.append(payload)
		}

	case OpcodeBrokenTrade:
		var m BrokenTradeMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if w.matches[m.MatchNum] {
			return w.append(payload)
		}
	case OpcodeTrade:
		var m TradeMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if w.wanted(m.Stock) {
			w.matches[m.MatchNum] = true
			return w.append(payload)
		}
	case OpcodeCrossTrade:
		var m CrossTradeMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if w.wanted(m.Stock) {
			w.matches[m.MatchNum] = true
			return w.append(payload)
		}

	default:
		return itchlob.UnknownOpcodeError(payload[0])
	}
	return nil
}

// Flush writes every buffered frame and clears the buffer.
func (w *Writer) Flush() error {
	for _, f := range w.buffer {
		if err := writeFrame(w.out, f); err != nil {
			return err
		}
	}
	w.buffer = w.buffer[:0]
	return nil
}

// Close flushes remaining frames. It does not close the underlying writer.
func (w *Writer) Close() error {
	return w.Flush()
}
