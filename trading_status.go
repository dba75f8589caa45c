// Copyright (c) 2024 Neomantra Corp

package itchlob

// TradingStatus is the tagged variant described in §3.B. The source
// expresses each tag as its own subclass of a common base
// (meatpy/trading_status.py); here it collapses to a small enum plus an
// optional free-text Detail, which is the idiomatic Go rendering of a
// closed, unordered tag set.
type TradingStatus int

const (
	TradingStatusUnknown TradingStatus = iota
	TradingStatusPreTrade
	TradingStatusTrade
	TradingStatusPostTrade
	TradingStatusHalted
	TradingStatusQuoteOnly
	TradingStatusClosingAuction
	TradingStatusClosed
)

func (s TradingStatus) String() string {
	switch s {
	case TradingStatusPreTrade:
		return "PreTrade"
	case TradingStatusTrade:
		return "Trade"
	case TradingStatusPostTrade:
		return "PostTrade"
	case TradingStatusHalted:
		return "Halted"
	case TradingStatusQuoteOnly:
		return "QuoteOnly"
	case TradingStatusClosingAuction:
		return "ClosingAuction"
	case TradingStatusClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// TradingStatusDetail pairs a tag with the optional free-text detail the
// source attaches to some subclasses (e.g. a halt reason code).
type TradingStatusDetail struct {
	Status TradingStatus
	Detail string
}
