// Copyright (c) 2024 Neomantra Corp

package itch41

// NullVisitor implements Visitor with every method a no-op; embed it and
// override only what's needed, mirroring itch50.NullVisitor.
type NullVisitor struct{}

func (NullVisitor) OnSeconds(*SecondsMessage) error                                    { return nil }
func (NullVisitor) OnSystemEvent(*SystemEventMessage) error                            { return nil }
func (NullVisitor) OnStockDirectory(*StockDirectoryMessage) error                      { return nil }
func (NullVisitor) OnStockTradingAction(*StockTradingActionMessage) error              { return nil }
func (NullVisitor) OnRegSHO(*RegSHOMessage) error                                      { return nil }
func (NullVisitor) OnMarketParticipantPosition(*MarketParticipantPositionMessage) error { return nil }
func (NullVisitor) OnAddOrder(*AddOrderMessage) error                                  { return nil }
func (NullVisitor) OnAddOrderMPID(*AddOrderMPIDMessage) error                          { return nil }
func (NullVisitor) OnOrderExecuted(*OrderExecutedMessage) error                        { return nil }
func (NullVisitor) OnOrderExecutedPrice(*OrderExecutedPriceMessage) error              { return nil }
func (NullVisitor) OnOrderCancel(*OrderCancelMessage) error                            { return nil }
func (NullVisitor) OnOrderDelete(*OrderDeleteMessage) error                            { return nil }
func (NullVisitor) OnOrderReplace(*OrderReplaceMessage) error                          { return nil }
func (NullVisitor) OnTrade(*TradeMessage) error                                        { return nil }
func (NullVisitor) OnCrossTrade(*CrossTradeMessage) error                              { return nil }
func (NullVisitor) OnBrokenTrade(*BrokenTradeMessage) error                            { return nil }
