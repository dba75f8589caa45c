// Copyright (c) 2024 Neomantra Corp

package itchlob

// Processor is the minimal surface a Subscriber callback receives to
// identify which processor raised the event, without importing the
// opcode-specific itch41/itch50 processor packages from here.
type Processor interface {
	Timestamp() Timestamp
	Instrument() string
}

// Message is any decoded wire message handed to Subscriber.MessageEvent;
// the concrete type is one of the itch41/itch50 message structs.
type Message any

// Subscriber is implemented by anything that wants to observe a processor's
// events (§4.H). All methods default to a no-op via NullSubscriber —
// implementors embed it and override only what they need. Grounded
// structurally on the teacher's Visitor/NullVisitor pattern and
// semantically on meatpy/market_event_handler.py's MarketEventHandler.
//
// Subscribers are invoked synchronously in registration order; a
// subscriber must not mutate the LOB it is handed, nor retain it past the
// callback (take Copy of it instead). An error returned from any callback
// is fatal to the run.
type Subscriber interface {
	// BeforeLOBUpdate fires before the LOB is updated to newTS. lob is nil
	// if no book has been established yet.
	BeforeLOBUpdate(lob *LimitOrderBook, newTS Timestamp) error

	// MessageEvent fires for every decoded message, regardless of whether
	// it mutates the book.
	MessageEvent(p Processor, ts Timestamp, msg Message) error

	EnterQuoteEvent(p Processor, ts Timestamp, price, volume int64, orderID uint64, side *Side) error
	CancelQuoteEvent(p Processor, ts Timestamp, volume int64, orderID uint64, side *Side) error
	DeleteQuoteEvent(p Processor, ts Timestamp, orderID uint64, side *Side) error
	ReplaceQuoteEvent(p Processor, ts Timestamp, origOrderID, newOrderID uint64, price, volume int64, side *Side) error
	ExecuteTradeEvent(p Processor, ts Timestamp, volume int64, orderID uint64, tradeRef uint64, side *Side) error
	ExecuteTradePriceEvent(p Processor, ts Timestamp, volume int64, orderID uint64, tradeRef uint64, price int64, side *Side) error
	AuctionTradeEvent(p Processor, ts Timestamp, volume, price int64, bidID, askID uint64) error
	CrossingTradeEvent(p Processor, ts Timestamp, volume, price int64, bidID, askID uint64) error
}

// NullSubscriber is a Subscriber whose every method is a no-op; embed it
// and override only the callbacks of interest.
type NullSubscriber struct{}

func (NullSubscriber) BeforeLOBUpdate(*LimitOrderBook, Timestamp) error { return nil }
func (NullSubscriber) MessageEvent(Processor, Timestamp, Message) error { return nil }

func (NullSubscriber) EnterQuoteEvent(Processor, Timestamp, int64, int64, uint64, *Side) error {
	return nil
}
func (NullSubscriber) CancelQuoteEvent(Processor, Timestamp, int64, uint64, *Side) error {
	return nil
}
func (NullSubscriber) DeleteQuoteEvent(Processor, Timestamp, uint64, *Side) error {
	return nil
}
func (NullSubscriber) ReplaceQuoteEvent(Processor, Timestamp, uint64, uint64, int64, int64, *Side) error {
	return nil
}
func (NullSubscriber) ExecuteTradeEvent(Processor, Timestamp, int64, uint64, uint64, *Side) error {
	return nil
}
func (NullSubscriber) ExecuteTradePriceEvent(Processor, Timestamp, int64, uint64, uint64, int64, *Side) error {
	return nil
}
func (NullSubscriber) AuctionTradeEvent(Processor, Timestamp, int64, int64, uint64, uint64) error {
	return nil
}
func (NullSubscriber) CrossingTradeEvent(Processor, Timestamp, int64, int64, uint64, uint64) error {
	return nil
}
