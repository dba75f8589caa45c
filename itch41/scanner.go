// Copyright (c) 2024 Neomantra Corp

package itch41

import (
	"io"

	itchlob "github.com/NimbleMarkets/itch-lob"
)

// Scanner pulls and dispatches ITCH 4.1 frames off a framed byte stream,
// mirroring itch50.Scanner over itchlob.FramedReader.
type Scanner struct {
	reader *itchlob.FramedReader
}

// NewScanner wraps r with a Scanner.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{reader: itchlob.NewFramedReader(r)}
}

// Next advances to the next frame. False means the stream ended or an
// error occurred; inspect Error().
func (s *Scanner) Next() bool { return s.reader.Next() }

// Error returns the cause of the last failed Next(); may be io.EOF.
func (s *Scanner) Error() error { return s.reader.Error() }

// Opcode returns the current frame's opcode byte.
func (s *Scanner) Opcode() Opcode { return Opcode(s.reader.Opcode()) }

// Visit decodes the current frame per its opcode and dispatches it to the
// matching Visitor method.
func (s *Scanner) Visit(v Visitor) error {
	payload := s.reader.Payload()
	if len(payload) == 0 {
		return itchlob.ErrShortPayload
	}
	switch Opcode(payload[0]) {
	case OpcodeSeconds:
		var m SecondsMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnSeconds(&m)
	case OpcodeSystemEvent:
		var m SystemEventMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnSystemEvent(&m)
	case OpcodeStockDirectory:
		var m StockDirectoryMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnStockDirectory(&m)
	case OpcodeStockTradingAction:
		var m StockTradingActionMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnStockTradingAction(&m)
	case OpcodeRegSHO:
		var m RegSHOMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnRegSHO(&m)
	case OpcodeMarketParticipantPosition:
		var m MarketParticipantPositionMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnMarketParticipantPosition(&m)
	case OpcodeAddOrder:
		var m AddOrderMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnAddOrder(&m)
	case OpcodeAddOrderMPID:
		var m AddOrderMPIDMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnAddOrderMPID(&m)
	case OpcodeOrderExecuted:
		var m OrderExecutedMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnOrderExecuted(&m)
	case OpcodeOrderExecutedPrice:
		var m OrderExecutedPriceMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnOrderExecutedPrice(&m)
	case OpcodeOrderCancel:
		var m OrderCancelMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnOrderCancel(&m)
	case OpcodeOrderDelete:
		var m OrderDeleteMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnOrderDelete(&m)
	case OpcodeOrderReplace:
		var m OrderReplaceMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnOrderReplace(&m)
	case OpcodeTrade:
		var m TradeMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnTrade(&m)
	case OpcodeCrossTrade:
		var m CrossTradeMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnCrossTrade(&m)
	case OpcodeBrokenTrade:
		var m BrokenTradeMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnBrokenTrade(&m)
	default:
		return itchlob.UnknownOpcodeError(payload[0])
	}
}
