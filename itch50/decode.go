// Copyright (c) 2024 Neomantra Corp

package itch50

import itchlob "github.com/NimbleMarkets/itch-lob"

// Decode parses payload per its leading opcode byte and returns the
// concrete message as a Record, for callers (e.g. JSON export) that want
// the decoded value itself rather than a Visitor dispatch.
func Decode(payload []byte) (Record, error) {
	if len(payload) == 0 {
		return nil, itchlob.ErrShortPayload
	}
	switch Opcode(payload[0]) {
	case OpcodeSystemEvent:
		return decodeInto(payload, &SystemEventMessage{})
	case OpcodeStockDirectory:
		return decodeInto(payload, &StockDirectoryMessage{})
	case OpcodeStockTradingAction:
		return decodeInto(payload, &StockTradingActionMessage{})
	case OpcodeRegSHO:
		return decodeInto(payload, &RegSHOMessage{})
	case OpcodeMarketParticipantPosition:
		return decodeInto(payload, &MarketParticipantPositionMessage{})
	case OpcodeMWCBDeclineLevel:
		return decodeInto(payload, &MWCBDeclineLevelMessage{})
	case OpcodeMWCBBreach:
		return decodeInto(payload, &MWCBBreachMessage{})
	case OpcodeIPOQuotingPeriodUpdate:
		return decodeInto(payload, &IPOQuotingPeriodUpdateMessage{})
	case OpcodeLULDAuctionCollar:
		return decodeInto(payload, &LULDAuctionCollarMessage{})
	case OpcodeOperationalHalt:
		return decodeInto(payload, &OperationalHaltMessage{})
	case OpcodeAddOrder:
		return decodeInto(payload, &AddOrderMessage{})
	case OpcodeAddOrderMPID:
		return decodeInto(payload, &AddOrderMPIDMessage{})
	case OpcodeOrderExecuted:
		return decodeInto(payload, &OrderExecutedMessage{})
	case OpcodeOrderExecutedPrice:
		return decodeInto(payload, &OrderExecutedPriceMessage{})
	case OpcodeOrderCancel:
		return decodeInto(payload, &OrderCancelMessage{})
	case OpcodeOrderDelete:
		return decodeInto(payload, &OrderDeleteMessage{})
	case OpcodeOrderReplace:
		return decodeInto(payload, &OrderReplaceMessage{})
	case OpcodeTrade:
		return decodeInto(payload, &TradeMessage{})
	case OpcodeCrossTrade:
		return decodeInto(payload, &CrossTradeMessage{})
	case OpcodeBrokenTrade:
		return decodeInto(payload, &BrokenTradeMessage{})
	case OpcodeNOII:
		return decodeInto(payload, &NoiiMessage{})
	case OpcodeRPII:
		return decodeInto(payload, &RpiiMessage{})
	case OpcodeDirectListingCapitalRaise:
		return decodeInto(payload, &DirectListingCapitalRaiseMessage{})
	default:
		return nil, itchlob.UnknownOpcodeError(payload[0])
	}
}

func decodeInto[T any, PT RecordPtr[T]](payload []byte, m PT) (Record, error) {
	if err := m.FillRaw(payload); err != nil {
		return nil, err
	}
	return m, nil
}
