// Copyright (c) 2024 Neomantra Corp

package itch50

import (
	"io"

	itchlob "github.com/NimbleMarkets/itch-lob"
)

// Scanner pulls and dispatches ITCH 5.0 frames off a framed byte stream,
// adapted from _examples/NimbleMarkets-dbn-go/dbn_scanner.go's DbnScanner,
// generalized from DBN's word-counted header to itchlob.FramedReader's
// `\0 LEN PAYLOAD` framing.
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
	case OpcodeMWCBDeclineLevel:
		var m MWCBDeclineLevelMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnMWCBDeclineLevel(&m)
	case OpcodeMWCBBreach:
		var m MWCBBreachMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnMWCBBreach(&m)
	case OpcodeIPOQuotingPeriodUpdate:
		var m IPOQuotingPeriodUpdateMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnIPOQuotingPeriodUpdate(&m)
	case OpcodeLULDAuctionCollar:
		var m LULDAuctionCollarMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnLULDAuctionCollar(&m)
	case OpcodeOperationalHalt:
		var m OperationalHaltMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnOperationalHalt(&m)
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
	case OpcodeNOII:
		var m NoiiMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnNoii(&m)
	case OpcodeRPII:
		var m RpiiMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnRpii(&m)
	case OpcodeDirectListingCapitalRaise:
		var m DirectListingCapitalRaiseMessage
		if err := m.FillRaw(payload); err != nil {
			return err
		}
		return v.OnDirectListingCapitalRaise(&m)
	default:
		return itchlob.UnknownOpcodeError(payload[0])
	}
}
