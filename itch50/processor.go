// Copyright (c) 2024 Neomantra Corp

package itch50

import (
	"fmt"
	"time"

	itchlob "github.com/NimbleMarkets/itch-lob"
)

// MarketProcessor is a sequential state machine that replays a decoded
// ITCH 5.0 message stream for one instrument on one trading day into a
// itchlob.LimitOrderBook, firing itchlob.Subscriber callbacks along the
// way. Grounded on
// _examples/original_source/src/meatpy/market_processor.py's
// MarketProcessor base (event fan-out, pre_lob_event snapshot bookkeeping)
// and _examples/original_source/src/meatpy/itch50/itch50_market_processor.py's
// ITCH50MarketProcessor (dispatch and trading-status decision table).
type MarketProcessor struct {
	instrument string
	bookDate   time.Time

	// TrackLOB mirrors the source's track_lob flag: when false, LOB
	// mutations are skipped but message_event still fires for every
	// message. Defaults to true.
	TrackLOB bool

	currentLOB *itchlob.LimitOrderBook
	subscribers []itchlob.Subscriber

	systemStatus byte
	stockStatus  byte
	emcStatus    byte

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

func (p *MarketProcessor) timestampOf(h Header) itchlob.Timestamp {
	return itchlob.FromCalendarDate(p.bookDate, h.TimestampNanos)
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

// preLOBEvent lazily creates the book on its first message, or — on every
// subsequent message at a new or repeated timestamp — fires
// BeforeLOBUpdate and advances the book's Timestamp/TimestampInc, per
// market_processor.py's pre_lob_event.
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

// MarketProcessor implements Visitor so a Scanner can drive it directly via
// scanner.Visit(processor); every opcode with no book mutation (directory,
// status, RegSHO, participant-position, MWCB, LULD, IPO, operational halt,
// NOII, RPI, broken trade, direct-listing capital raise) is observed only
// through MessageEvent.

func (p *MarketProcessor) OnSystemEvent(m *SystemEventMessage) error {
	ts := p.timestampOf(m.Header)
	if err := p.fireMessageEvent(ts, m); err != nil {
		return err
	}
	return p.processSystemEvent(m.Code)
}

func (p *MarketProcessor) OnStockTradingAction(m *StockTradingActionMessage) error {
	ts := p.timestampOf(m.Header)
	if err := p.fireMessageEvent(ts, m); err != nil {
		return err
	}
	if m.Stock != p.instrument {
		return nil
	}
	return p.processTradingAction(m.State)
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

func (p *MarketProcessor) OnMWCBDeclineLevel(m *MWCBDeclineLevelMessage) error {
	return p.fireMessageEvent(p.timestampOf(m.Header), m)
}

func (p *MarketProcessor) OnMWCBBreach(m *MWCBBreachMessage) error {
	return p.fireMessageEvent(p.timestampOf(m.Header), m)
}

func (p *MarketProcessor) OnIPOQuotingPeriodUpdate(m *IPOQuotingPeriodUpdateMessage) error {
	return p.fireMessageEvent(p.timestampOf(m.Header), m)
}

func (p *MarketProcessor) OnLULDAuctionCollar(m *LULDAuctionCollarMessage) error {
	return p.fireMessageEvent(p.timestampOf(m.Header), m)
}

func (p *MarketProcessor) OnOperationalHalt(m *OperationalHaltMessage) error {
	return p.fireMessageEvent(p.timestampOf(m.Header), m)
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

func (p *MarketProcessor) OnTrade(m *TradeMessage) error {
	return p.fireMessageEvent(p.timestampOf(m.Header), m)
}

func (p *MarketProcessor) OnCrossTrade(m *CrossTradeMessage) error {
	ts := p.timestampOf(m.Header)
	if err := p.fireMessageEvent(ts, m); err != nil {
		return err
	}
	return p.processCrossTrade(ts, m)
}

func (p *MarketProcessor) OnBrokenTrade(m *BrokenTradeMessage) error {
	return p.fireMessageEvent(p.timestampOf(m.Header), m)
}

func (p *MarketProcessor) OnNoii(m *NoiiMessage) error {
	return p.fireMessageEvent(p.timestampOf(m.Header), m)
}

func (p *MarketProcessor) OnRpii(m *RpiiMessage) error {
	return p.fireMessageEvent(p.timestampOf(m.Header), m)
}

func (p *MarketProcessor) OnDirectListingCapitalRaise(m *DirectListingCapitalRaiseMessage) error {
	return p.fireMessageEvent(p.timestampOf(m.Header), m)
}

var _ Visitor = (*MarketProcessor)(nil)

func (p *MarketProcessor) processAddOrder(ts itchlob.Timestamp, msg itchlob.Message, price uint32, shares uint32, orderRef uint64, bsIndicator byte) error {
	if err := p.fireMessageEvent(ts, msg); err != nil {
		return err
	}
	if !p.TrackLOB {
		return nil
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
	return p.currentLOB.EnterQuote(ts, int64(price), int64(shares), orderRef, side, nil)
}

// processExecute handles both order-executed and order-executed-at-price:
// both route through the book's strict ExecuteTrade so the priority-buffer
// reconciliation mechanism applies uniformly to either message type.
func (p *MarketProcessor) processExecute(ts itchlob.Timestamp, msg itchlob.Message, orderRef uint64, volume int64, tradeRef uint64, price *int64) error {
	if err := p.fireMessageEvent(ts, msg); err != nil {
		return err
	}
	if !p.TrackLOB {
		return nil
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
	return p.currentLOB.ExecuteTrade(ts, volume, orderRef, &side)
}

func (p *MarketProcessor) processCancel(ts itchlob.Timestamp, msg itchlob.Message, orderRef uint64, volume int64) error {
	if err := p.fireMessageEvent(ts, msg); err != nil {
		return err
	}
	if !p.TrackLOB {
		return nil
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
	return p.currentLOB.CancelQuote(volume, orderRef, &side)
}

func (p *MarketProcessor) processDelete(ts itchlob.Timestamp, msg itchlob.Message, orderRef uint64) error {
	if err := p.fireMessageEvent(ts, msg); err != nil {
		return err
	}
	if !p.TrackLOB {
		return nil
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
	return p.currentLOB.DeleteQuote(orderRef, &side)
}

func (p *MarketProcessor) processReplace(ts itchlob.Timestamp, m *OrderReplaceMessage) error {
	if err := p.fireMessageEvent(ts, m); err != nil {
		return err
	}
	if !p.TrackLOB {
		return nil
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
	return p.currentLOB.EnterQuote(ts, int64(m.Price), int64(m.Shares), m.NewRef, side, nil)
}

// processCrossTrade fires AuctionTradeEvent/CrossingTradeEvent per the
// cross type, mirroring the source's treatment of cross prints as
// hidden-liquidity/auction events with no book mutation. Cross messages
// carry no buy/sell order refs in ITCH 5.0, so every cross fires one of
// the two events with bidID and askID both passed as 0.
func (p *MarketProcessor) processCrossTrade(ts itchlob.Timestamp, m *CrossTradeMessage) error {
	if m.CrossType == 'O' || m.CrossType == 'H' {
		for _, s := range p.subscribers {
			if err := s.AuctionTradeEvent(p, ts, int64(m.Shares), int64(m.CrossPrice), 0, 0); err != nil {
				return err
			}
		}
		return nil
	}
	for _, s := range p.subscribers {
		if err := s.CrossingTradeEvent(p, ts, int64(m.Shares), int64(m.CrossPrice), 0, 0); err != nil {
			return err
		}
	}
	return nil
}

func (p *MarketProcessor) processSystemEvent(code byte) error {
	switch code {
	case 'O', 'S', 'Q', 'M', 'E', 'C':
		p.systemStatus = code
	case 'A', 'R', 'B':
		p.emcStatus = code
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

// updateTradingStatus applies the fixed decision table from
// itch50_market_processor.py's update_trading_status: EMC halt/resume
// override everything, then halted/quote-only stock states, then the
// system-wide phase, then the one explicit Q/T combination that means
// live trading; market hours with any other stock state is PreTrade.
func (p *MarketProcessor) updateTradingStatus() error {
	switch {
	case p.emcStatus == 'A' || p.stockStatus == 'H' || p.stockStatus == 'P':
		p.tradingStatus = itchlob.TradingStatusHalted
	case p.emcStatus == 'R' || p.stockStatus == 'Q':
		p.tradingStatus = itchlob.TradingStatusQuoteOnly
	case p.systemStatus == 'O' || p.systemStatus == 'S':
		p.tradingStatus = itchlob.TradingStatusPreTrade
	case p.systemStatus == 'M' || p.systemStatus == 'E' || p.systemStatus == 'C':
		p.tradingStatus = itchlob.TradingStatusPostTrade
	case p.systemStatus == 'Q' && p.stockStatus == 'T':
		p.tradingStatus = itchlob.TradingStatusTrade
	case p.systemStatus == 'Q':
		p.tradingStatus = itchlob.TradingStatusPreTrade
	default:
		return fmt.Errorf("%w: system=%q emc=%q stock=%q",
			itchlob.ErrInvalidTradingStatus, p.systemStatus, p.emcStatus, p.stockStatus)
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
