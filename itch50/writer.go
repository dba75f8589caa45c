// Copyright (c) 2024 Neomantra Corp

package itch50

import (
	"io"
	"sort"

	itchlob "github.com/NimbleMarkets/itch-lob"
)

// Writer is a stream-filter (§4.I): given a target symbol set, it selects
// the subset of a framed ITCH 5.0 stream that is self-sufficient for
// reconstructing the book of those symbols, buffering per symbol and
// flushing in batches. Grounded on
// _examples/original_source/src/meatpy/itch50/itch50_writer.py's
// ITCH50Writer. Unlike the source, which re-serializes each message via
// `pack()`, this writer retains the original frame bytes verbatim — the
// decoded struct is used only to route the frame, never to re-encode it,
// so byte-for-byte wire fidelity is automatic rather than dependent on a
// round trip through the messages' Raw encoders.
type Writer struct {
	symbols map[string]bool // nil means "all symbols"
	out     io.Writer

	// MessageBuffer is the per-symbol batch size: a symbol's buffer is
	// flushed once it holds more than this many frames. Defaults to 2000,
	// matching the source's message_buffer default.
	MessageBuffer int

	orderRefs map[uint64]string
	matches   map[uint64]string

	systemFrames [][]byte
	stockFrames  map[string][][]byte

	MessageCount int
}

// NewWriter constructs a Writer emitting the framed subset for symbols
// (nil or empty means every symbol) to out. out is typically wrapped by
// itchlob.MakeCompressedWriter when compressed output is wanted.
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
		matches:       make(map[uint64]string),
		stockFrames:   make(map[string][][]byte),
	}
}

func (w *Writer) wanted(symbol string) bool {
	return w.symbols == nil || w.symbols[symbol]
}

// appendStock buffers frame for symbol, seeding a fresh per-symbol buffer
// with every system-scope frame seen so far, matching
// _append_stock_message's "initialize with system messages".
func (w *Writer) appendStock(symbol string, frame []byte) {
	if !w.wanted(symbol) {
		return
	}
	if _, ok := w.stockFrames[symbol]; !ok {
		buf := make([][]byte, len(w.systemFrames))
		copy(buf, w.systemFrames)
		w.stockFrames[symbol] = buf
	}
	w.stockFrames[symbol] = append(w.stockFrames[symbol], frame)
	w.flushIfFull(symbol)
}

func (w *Writer) appendSystem(frame []byte) {
	for symbol := range w.stockFrames {
		w.appendStock(symbol, frame)
	}
	w.systemFrames = append(w.systemFrames, frame)
}

func (w *Writer) flushIfFull(symbol string) {
	if len(w.stockFrames[symbol]) > w.MessageBuffer {
		w.flushSymbol(symbol)
	}
}

func (w *Writer) flushSymbol(symbol string) error {
	frames := w.stockFrames[symbol]
	for _, f := range frames {
		if err := writeFrame(w.out, f); err != nil {
			return err
		}
	}
	w.stockFrames[symbol] = w.stockFrames[symbol][:0]
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

// Process decodes payload's opcode, routes it per §4.I's rules, and
// buffers the original frame bytes (unmodified) under the resolved
// symbol(s).
func (w *Writer) Process(payload []byte) error {
	w.MessageCount++
	if len(payload) == 0 {
		return itchlob.ErrShortPayload
	}
	switch Opcode(payload[0]) {
	case OpcodeStockDirectory:
		var m StockDirectoryMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		w.appendStock(m.Stock, payload)

	case OpcodeSystemEvent, OpcodeMWCBDeclineLevel, OpcodeMWCBBreach:
		w.appendSystem(payload)

	case OpcodeStockTradingAction:
		var m StockTradingActionMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		w.appendStock(m.Stock, payload)
	case OpcodeRegSHO:
		var m RegSHOMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		w.appendStock(m.Stock, payload)
	case OpcodeNOII:
		var m NoiiMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		w.appendStock(m.Stock, payload)
	case OpcodeIPOQuotingPeriodUpdate:
		var m IPOQuotingPeriodUpdateMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		w.appendStock(m.Stock, payload)
	case OpcodeMarketParticipantPosition:
		var m MarketParticipantPositionMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		w.appendStock(m.Stock, payload)
	case OpcodeLULDAuctionCollar:
		var m LULDAuctionCollarMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		w.appendStock(m.Stock, payload)
	case OpcodeRPII:
		var m RpiiMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		w.appendStock(m.Stock, payload)
	case OpcodeOperationalHalt:
		var m OperationalHaltMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		w.appendStock(m.Stock, payload)

	case OpcodeAddOrder:
		var m AddOrderMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		w.orderRefs[m.OrderRef] = m.Stock
		w.appendStock(m.Stock, payload)
	case OpcodeAddOrderMPID:
		var m AddOrderMPIDMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		w.orderRefs[m.OrderRef] = m.Stock
		w.appendStock(m.Stock, payload)

	case OpcodeOrderExecuted:
		var m OrderExecutedMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if symbol, ok := w.orderRefs[m.OrderRef]; ok {
			w.appendStock(symbol, payload)
			w.matches[m.MatchNum] = symbol
		}
	case OpcodeOrderExecutedPrice:
		var m OrderExecutedPriceMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if symbol, ok := w.orderRefs[m.OrderRef]; ok {
			w.appendStock(symbol, payload)
			w.matches[m.MatchNum] = symbol
		}
	case OpcodeOrderCancel:
		var m OrderCancelMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if symbol, ok := w.orderRefs[m.OrderRef]; ok {
			w.appendStock(symbol, payload)
		}
	case OpcodeOrderDelete:
		var m OrderDeleteMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if symbol, ok := w.orderRefs[m.OrderRef]; ok {
			w.appendStock(symbol, payload)
			delete(w.orderRefs, m.OrderRef)
		}
	case OpcodeOrderReplace:
		var m OrderReplaceMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if symbol, ok := w.orderRefs[m.OriginalRef]; ok {
			w.appendStock(symbol, payload)
			delete(w.orderRefs, m.OriginalRef)
			w.orderRefs[m.NewRef] = symbol
		}

	case OpcodeBrokenTrade:
		var m BrokenTradeMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		if symbol, ok := w.matches[m.MatchNum]; ok {
			w.appendStock(symbol, payload)
		}
	case OpcodeTrade:
		var m TradeMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		w.appendStock(m.Stock, payload)
		w.matches[m.MatchNum] = m.Stock
	case OpcodeCrossTrade:
		var m CrossTradeMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		w.appendStock(m.Stock, payload)
		w.matches[m.MatchNum] = m.Stock

	default:
		return itchlob.UnknownOpcodeError(payload[0])
	}
	return nil
}

// Flush writes every buffered frame for every tracked symbol, in symbol
// order, then clears the buffers.
func (w *Writer) Flush() error {
	symbols := make([]string, 0, len(w.stockFrames))
	for symbol := range w.stockFrames {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	for _, symbol := range symbols {
		if err := w.flushSymbol(symbol); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes remaining frames. It does not close the underlying writer.
func (w *Writer) Close() error {
	return w.Flush()
}
