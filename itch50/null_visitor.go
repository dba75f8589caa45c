// Copyright (c) 2024 Neomantra Corp

package itch50

// NullVisitor implements Visitor with every method a no-op; embed it and
// override only what's needed, mirroring
// _examples/NimbleMarkets-dbn-go/null_visitor.go's NullVisitor.
type NullVisitor struct{}

func (NullVisitor) OnSystemEvent(*SystemEventMessage) error                           { return nil }
func (NullVisitor) OnStockDirectory(*StockDirectoryMessage) error                     { return nil }
func (NullVisitor) OnStockTradingAction(*StockTradingActionMessage) error             { return nil }
func (NullVisitor) OnRegSHO(*RegSHOMessage) error                                     { return nil }
func (NullVisitor) OnMarketParticipantPosition(*MarketParticipantPositionMessage) error { return nil }
func (NullVisitor) OnMWCBDeclineLevel(*MWCBDeclineLevelMessage) error                  { return nil }
func (NullVisitor) OnMWCBBreach(*MWCBBreachMessage) error                             { return nil }
func (NullVisitor) OnIPOQuotingPeriodUpdate(*IPOQuotingPeriodUpdateMessage) error      { return nil }
func (NullVisitor) OnLULDAuctionCollar(*LULDAuctionCollarMessage) error                { return nil }
func (NullVisitor) OnOperationalHalt(*OperationalHaltMessage) error                    { return nil }
func (NullVisitor) OnAddOrder(*AddOrderMessage) error                                 { return nil }
func (NullVisitor) OnAddOrderMPID(*AddOrderMPIDMessage) error                          { return nil }
func (NullVisitor) OnOrderExecuted(*OrderExecutedMessage) error                        { return nil }
func (NullVisitor) OnOrderExecutedPrice(*OrderExecutedPriceMessage) error              { return nil }
func (NullVisitor) OnOrderCancel(*OrderCancelMessage) error                            { return nil }
func (NullVisitor) OnOrderDelete(*OrderDeleteMessage) error                            { return nil }
func (NullVisitor) OnOrderReplace(*OrderReplaceMessage) error                          { return nil }
func (NullVisitor) OnTrade(*TradeMessage) error                                        { return nil }
func (NullVisitor) OnCrossTrade(*CrossTradeMessage) error                              { return nil }
func (NullVisitor) OnBrokenTrade(*BrokenTradeMessage) error                            { return nil }
func (NullVisitor) OnNoii(*NoiiMessage) error                                          { return nil }
func (NullVisitor) OnRpii(*RpiiMessage) error                                          { return nil }
func (NullVisitor) OnDirectListingCapitalRaise(*DirectListingCapitalRaiseMessage) error { return nil }
