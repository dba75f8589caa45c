// Copyright (c) 2024 Neomantra Corp

package itch41

// Visitor dispatches a decoded ITCH 4.1 record to one method per opcode,
// mirroring itch50.Visitor over ITCH 4.1's narrower 16-opcode set.
type Visitor interface {
	OnSeconds(*SecondsMessage) error
	OnSystemEvent(*SystemEventMessage) error
	OnStockDirectory(*StockDirectoryMessage) error
	OnStockTradingAction(*StockTradingActionMessage) error
	OnRegSHO(*RegSHOMessage) error
	OnMarketParticipantPosition(*MarketParticipantPositionMessage) error
	OnAddOrder(*AddOrderMessage) error
	OnAddOrderMPID(*AddOrderMPIDMessage) error
	OnOrderExecuted(*OrderExecutedMessage) error
	OnOrderExecutedPrice(*OrderExecutedPriceMessage) error
	OnOrderCancel(*OrderCancelMessage) error
	OnOrderDelete(*OrderDeleteMessage) error
	OnOrderReplace(*OrderReplaceMessage) error
	OnTrade(*TradeMessage) error
	OnCrossTrade(*CrossTradeMessage) error
	OnBrokenTrade(*BrokenTradeMessage) error
}
