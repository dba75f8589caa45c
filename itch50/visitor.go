// Copyright (c) 2024 Neomantra Corp

package itch50

// Visitor dispatches a decoded ITCH 5.0 record to one method per opcode,
// adapted from _examples/NimbleMarkets-dbn-go/visitor.go's Visitor
// interface, generalized from DBN's 10 record types to ITCH 5.0's 23.
type Visitor interface {
	OnSystemEvent(*SystemEventMessage) error
	OnStockDirectory(*StockDirectoryMessage) error
	OnStockTradingAction(*StockTradingActionMessage) error
	OnRegSHO(*RegSHOMessage) error
	OnMarketParticipantPosition(*MarketParticipantPositionMessage) error
	OnMWCBDeclineLevel(*MWCBDeclineLevelMessage) error
	OnMWCBBreach(*MWCBBreachMessage) error
	OnIPOQuotingPeriodUpdate(*IPOQuotingPeriodUpdateMessage) error
	OnLULDAuctionCollar(*LULDAuctionCollarMessage) error
	OnOperationalHalt(*OperationalHaltMessage) error
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
	OnNoii(*NoiiMessage) error
	OnRpii(*RpiiMessage) error
	OnDirectListingCapitalRaise(*DirectListingCapitalRaiseMessage) error
}
