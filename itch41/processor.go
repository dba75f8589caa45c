// Copyright (c) 2024 Neomantra Corp

package itch41

import (
	"fmt"
	"time"

	itchlob "github.com/NimbleMarkets/itch-lob"
)

// MarketProcessor is a sequential state machine that replays a decoded
// ITCH 4.1 message stream for one instrument on one trading day into a
// itchlob.LimitOrderBook, firing itchlob.Subscriber callbacks along the
// way. Grounded on
// _examples/original_source/src/meatpy/itch41/itch41_market_processor.py's
// ITCH41MarketProcessor. Its MessageEvent ordering differs deliberately
// from itch50.MarketProcessor: the source notifies handlers only after a
// message is fully processed, so every On<Type> method here mutates state
// first and fires MessageEvent last, rather than first as itch50 does.
type MarketProcessor struct {
	instrument string
	bookDate   time.Time

	// TrackLOB mirrors itch50.MarketProcessor's flag: when false, LOB
	// mutations are skipped but MessageEvent still fires for every
	// message. Defaults to true.
	TrackLOB bool

	currentLOB  *itchlob.LimitOrderBook
	subscribers []itchlob.Subscriber

	currentSecond int64
	systemStatus  byte
	stockStatus   byte

	tradingStatus itchlob.TradingStatus
}

// NewMarketProcessor constructs a processor for instrument on bookDate with
// an empty trading-status and no current book.
func NewMarketProcessor(instrument string, bookDate time.Time) *MarketProcessor {
	return &MarketProcessor{
		instrument: instrument,
		bookDate:   bookDate,
		TrackLOB:   true,
	}
}

// Timestamp satisfies itchlob.Processor.
func (p *MarketProcessor) Timestamp() itchlob.Timestamp {
	if p.currentLOB == nil {
		return 0
	}
	return p.currentLOB.Timestamp
}

// Instrument satisfies itchlob.Processor.
func (p *MarketProcessor) Instrument() string { return p.instrument }

// CurrentLOB returns the processor's live book, or nil if no message has
// established one yet. Callers must not retain it past the current
// callback — take lob.Copy() for a durable snapshot.
func (p *MarketProcessor) CurrentLOB() *itchlob.LimitOrderBook { return p.currentLOB }

// TradingStatus returns the most recently derived trading status.
func (p *MarketProcessor) TradingStatus() itchlob.TradingStatus { return p.tradingStatus }

// RegisterSubscriber appends s to the fan-out list; subscribers are
// invoked synchronously in registration order.
func (p *MarketProcessor) RegisterSubscriber(s itchlob.Subscriber) {
	p.subscribers = append(p.subscribers, s)
}

// timestampOf combines the most recent SecondsMessage with h's
// within-second nanosecond offset, per adjust_timestamp.
func (p *MarketProcessor) timestampOf(h Header) itchlob.Timestamp {
	return itchlob.FromCalendarDate(p.bookDate, p.currentSecond*1_000_000_000+h.TimestampNanos)
}

func (p *MarketProcessor) fireBeforeLOBUpdate(ts itchlob.Timestamp) error {
	for _, s := range p.subscribers {
		if err := s.BeforeLOBUpdate(p.currentLOB, ts); err != nil {
			return err
		}
	}
	return nil
}

func (p *MarketProcessor) fireMessageEvent(ts itchlob.Timestamp, msg itchlob.Message) error {
	for _, s := range p.subscribers {
		if err := s.MessageEvent(p, ts, msg); err != nil {
			return err
		}
	}
	return nil
}

func (p *MarketProcessor) preLOBEvent(ts itchlob.Timestamp) error {
	if p.currentLOB == nil {
		p.currentLOB = itchlob.NewLimitOrderBook(ts)
		return nil
	}
	if err := p.fireBeforeLOBUpdate(ts); err != nil {
		return err
	}
	if p.currentLOB.Timestamp == ts {
		p.currentLOB.TimestampInc++
	} else {
		p.currentLOB.TimestampInc = 0
	}
	p.currentLOB.Timestamp = ts
	return nil
}

// OnSeconds updates the current-second clock that every other message's
// timestamp is relative to; its own timestamp is that second with a zero
// within-second offset.
func (p *MarketProcessor) OnSeconds(m *SecondsMessage) error {
	p.currentSecond = int64(m.Seconds)
	ts := itchlob.FromCalendarDate(p.bookDate, p.currentSecond*1_000_000_000)
	return p.fireMessageEvent(ts, m)
}

func (p *MarketProcessor) OnSystemEvent(m *SystemEventMessage) error {
	ts := p.timestampOf(m.Header)
	if err := p.processSystemEvent(m.Code); err != nil {
		return err
	}
	return p.fireMessageEvent(ts, m)
}

// OnStockTradingAction applies the state change only when the message's
// symbol matches the processor's own instrument, as
// itch50.MarketProcessor.OnStockTradingAction also does.
func (p *MarketProcessor) OnStockTradingAction(m *StockTradingActionMessage) error {
	ts := p.timestampOf(m.Header)
	if m.Stock == p.instrument {
		if err := p.processTradingAction(m.State); err != nil {
			return err
		}
	}
	return p.fireMessageEvent(ts, m)
}

func (p *MarketProcessor) OnStockDirectory(m *StockDirectoryMessage) error {
	return p.fireMessageEvent(p.timestampOf(m.Header), m)
}

func (p *MarketProcessor) OnRegSHO(m *RegSHOMessage) error {
	return p.fireMessageEvent(p.timestampOf(m.Header), m)
}

func (p *MarketProcessor) OnMarketParticipantPosition(m *MarketParticipantPositionMessage) error {
	return p.fireMessageEvent(p.timestampOf(m.Header), m)
}

func sideFromIndicator(b byte) (itchlob.Side, error) {
	switch b {
	case 'B':
		return itchlob.Bid, nil
	case 'S':
		return itchlob.Ask, nil
	default:
		return 0, itchlob.ErrInvalidSide
	}
}

func (p *MarketProcessor) OnAddOrder(m *AddOrderMessage) error {
	return p.processAddOrder(p.timestampOf(m.Header), m, m.Price, m.Shares, m.OrderRef, m.BSIndicator)
}

func (p *MarketProcessor) OnAddOrderMPID(m *AddOrderMPIDMessage) error {
	return p.processAddOrder(p.timestampOf(m.Header), m, m.Price, m.Shares, m.OrderRef, m.BSIndicator)
}

func (p *MarketProcessor) OnOrderExecuted(m *OrderExecutedMessage) error {
	return p.processExecute(p.timestampOf(m.Header), m, m.OrderRef, int64(m.Shares), m.MatchNum, nil)
}

// OnOrderExecutedPrice routes through the same processExecute as
// OnOrderExecuted: both formats' "executed at a different price" variant
// still settles against the book's resting price, per
// _process_order_executed_price's identical call to execute_trade.
func (p *MarketProcessor) OnOrderExecutedPrice(m *OrderExecutedPriceMessage) error {
	price := int64(m.ExecutionPrice)
	return p.processExecute(p.timestampOf(m.Header), m, m.OrderRef, int64(m.Shares), m.MatchNum, &price)
}

func (p *MarketProcessor) OnOrderCancel(m *OrderCancelMessage) error {
	return p.processCancel(p.timestampOf(m.Header), m, m.OrderRef, int64(m.CanceledShares))
}

func (p *MarketProcessor) OnOrderDelete(m *OrderDeleteMessage) error {
	return p.processDelete(p.timestampOf(m.Header), m, m.OrderRef)
}

func (p *MarketProcessor) OnOrderReplace(m *OrderReplaceMessage) error {
	return p.processReplace(p.timestampOf(m.Header), m)
}

// OnTrade, OnCrossTrade and OnBrokenTrade are observed only through
// MessageEvent: the source's process_message dispatch has no branch for
// any of them, unlike itch50's cross-trade handling which distinguishes
// auction from crossing prints.
func (p *MarketProcessor) OnTrade(m *TradeMessage) error {
	return p.fireMessageEvent(p.timestampOf(m.Header), m)
}

func (p *MarketProcessor) OnCrossTrade(m *CrossTradeMessage) error {
	return p.fireMessageEvent(p.timestampOf(m.Header), m)
}

func (p *MarketProcessor) OnBrokenTrade(m *BrokenTradeMessage) error {
	return p.fireMessageEvent(p.timestampOf(m.Header), m)
}

var _ Visitor = (*MarketProcessor)(nil)

func (p *MarketProcessor) processAddOrder(ts itchlob.Timestamp, msg itchlob.Message, price uint32, shares uint32, orderRef uint64, bsIndicator byte) error {
	if !p.TrackLOB {
		return p.fireMessageEvent(ts, msg)
	}
	side, err := sideFromIndicator(bsIndicator)
	if err != nil {
		return err
	}
	if err := p.preLOBEvent(ts); err != nil {
		return err
	}
	for _, s := range p.subscribers {
		if err := s.EnterQuoteEvent(p, ts, int64(price), int64(shares), orderRef, &side); err != nil {
			return err
		}
	}
	if err := p.currentLOB.EnterQuote(ts, int64(price), int64(shares), orderRef, side, nil); err != nil {
		return err
	}
	return p.fireMessageEvent(ts, msg)
}

// processExecute handles both order-executed and order-executed-at-price:
// both route through the book's strict ExecuteTrade.
func (p *MarketProcessor) processExecute(ts itchlob.Timestamp, msg itchlob.Message, orderRef uint64, volume int64, tradeRef uint64, price *int64) error {
	if !p.TrackLOB {
		return p.fireMessageEvent(ts, msg)
	}
	if p.currentLOB == nil {
		return itchlob.ErrNoBook
	}
	if err := p.preLOBEvent(ts); err != nil {
		return err
	}
	side, err := p.currentLOB.FindSide(orderRef)
	if err != nil {
		return err
	}
	if price != nil {
		for _, s := range p.subscribers {
			if err := s.ExecuteTradePriceEvent(p, ts, volume, orderRef, tradeRef, *price, &side); err != nil {
				return err
			}
		}
	} else {
		for _, s := range p.subscribers {
			if err := s.ExecuteTradeEvent(p, ts, volume, orderRef, tradeRef, &side); err != nil {
				return err
			}
		}
	}
	if err := p.currentLOB.ExecuteTrade(ts, volume, orderRef, &side); err != nil {
		return err
	}
	return p.fireMessageEvent(ts, msg)
}

func (p *MarketProcessor) processCancel(ts itchlob.Timestamp, msg itchlob.Message, orderRef uint64, volume int64) error {
	if !p.TrackLOB {
		return p.fireMessageEvent(ts, msg)
	}
	if p.currentLOB == nil {
		return itchlob.ErrNoBook
	}
	if err := p.preLOBEvent(ts); err != nil {
		return err
	}
	side, err := p.currentLOB.FindSide(orderRef)
	if err != nil {
		return err
	}
	for _, s := range p.subscribers {
		if err := s.CancelQuoteEvent(p, ts, volume, orderRef, &side); err != nil {
			return err
		}
	}
	if err := p.currentLOB.CancelQuote(volume, orderRef, &side); err != nil {
		return err
	}
	return p.fireMessageEvent(ts, msg)
}

func (p *MarketProcessor) processDelete(ts itchlob.Timestamp, msg itchlob.Message, orderRef uint64) error {
	if !p.TrackLOB {
		return p.fireMessageEvent(ts, msg)
	}
	if p.currentLOB == nil {
		return itchlob.ErrNoBook
	}
	if err := p.preLOBEvent(ts); err != nil {
		return err
	}
	side, err := p.currentLOB.FindSide(orderRef)
	if err != nil {
		return err
	}
	for _, s := range p.subscribers {
		if err := s.DeleteQuoteEvent(p, ts, orderRef, &side); err != nil {
			return err
		}
	}
	if err := p.currentLOB.DeleteQuote(orderRef, &side); err != nil {
		return err
	}
	return p.fireMessageEvent(ts, msg)
}

func (p *MarketProcessor) processReplace(ts itchlob.Timestamp, m *OrderReplaceMessage) error {
	if !p.TrackLOB {
		return p.fireMessageEvent(ts, m)
	}
	if p.currentLOB == nil {
		return itchlob.ErrNoBook
	}
	if err := p.preLOBEvent(ts); err != nil {
		return err
	}
	side, err := p.currentLOB.FindSide(m.OriginalRef)
	if err != nil {
		return err
	}
	for _, s := range p.subscribers {
		if err := s.ReplaceQuoteEvent(p, ts, m.OriginalRef, m.NewRef, int64(m.Price), int64(m.Shares), &side); err != nil {
			return err
		}
	}
	if err := p.currentLOB.DeleteQuote(m.OriginalRef, &side); err != nil {
		return err
	}
	if err := p.currentLOB.EnterQuote(ts, int64(m.Price), int64(m.Shares), m.NewRef, side, nil); err != nil {
		return err
	}
	return p.fireMessageEvent(ts, m)
}

func (p *MarketProcessor) processSystemEvent(code byte) error {
	switch code {
	case 'O', 'S', 'Q', 'M', 'E', 'C':
		p.systemStatus = code
	default:
		return fmt.Errorf("%w: system event code %q", itchlob.ErrInvalidTradingStatus, code)
	}
	return p.updateTradingStatus()
}

func (p *MarketProcessor) processTradingAction(state byte) error {
	switch state {
	case 'H', 'P', 'Q', 'T':
		p.stockStatus = state
	default:
		return fmt.Errorf("%w: trading state %q", itchlob.ErrInvalidTradingStatus, state)
	}
	return p.updateTradingStatus()
}

// updateTradingStatus applies _determine_trading_status's decision table,
// with no EMC-status override channel since ITCH 4.1 carries none. Its
// system-phase rows differ from itch50's: here 'O' maps to PostTrade and
// 'M' follows the stock state like 'Q'.
func (p *MarketProcessor) updateTradingStatus() error {
	switch {
	case p.systemStatus == 'O' || p.systemStatus == 'E' || p.systemStatus == 'C':
		p.tradingStatus = itchlob.TradingStatusPostTrade
	case p.systemStatus == 'S':
		p.tradingStatus = itchlob.TradingStatusPreTrade
	case p.systemStatus == 'Q' || p.systemStatus == 'M':
		switch {
		case p.stockStatus == 'T':
			p.tradingStatus = itchlob.TradingStatusTrade
		case p.stockStatus == 'H' || p.stockStatus == 'P':
			p.tradingStatus = itchlob.TradingStatusHalted
		case p.stockStatus == 'Q':
			p.tradingStatus = itchlob.TradingStatusQuoteOnly
		default:
			p.tradingStatus = itchlob.TradingStatusPreTrade
		}
	default:
		return fmt.Errorf("%w: system=%q stock=%q", itchlob.ErrInvalidTradingStatus, p.systemStatus, p.stockStatus)
	}
	return nil
}

// ProcessingDone drains any residual execution-priority buffer at the
// book, surfacing it as a non-fatal diagnostic. Call once at end of day.
func (p *MarketProcessor) ProcessingDone() error {
	if p.currentLOB == nil {
		return nil
	}
	return p.currentLOB.EndOfDay()
}
