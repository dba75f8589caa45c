// Copyright (c) 2024 Neomantra Corp

package itchlob

import "math"

// Side identifies which of the book's two sequences a PriceLevel belongs to,
// mirroring meatpy/lob.py's OrderType enum.
type Side int

const (
	Ask Side = iota
	Bid
)

func (s Side) String() string {
	if s == Bid {
		return "Bid"
	}
	return "Ask"
}

// LimitOrderBook is an ordered pair of price-level sequences — asks rising
// from best price, bids falling from best price — plus the bookkeeping
// needed to reconcile out-of-order strict executions (§4.D), grounded on
// meatpy/lob.py's LimitOrderBook class.
type LimitOrderBook struct {
	Timestamp    Timestamp
	TimestampInc int

	askLevels []*PriceLevel
	bidLevels []*PriceLevel

	// DecimalsAdj is an optional presentation-only price divisor (e.g. 10000
	// for four-decimal-implied prices); nil means prices are reported as-is.
	DecimalsAdj *float64

	errorBuffer []*ExecutionPriorityError

	// SkipException lets a caller veto buffering of a given priority
	// violation (e.g. a known benign race); the base behavior never skips.
	// Grounded on lob.py's skip_exception hook, promoted here to a field
	// since Go has no subclassing to override it.
	SkipException func(*ExecutionPriorityError) bool
}

// NewLimitOrderBook constructs an empty book as of the given timestamp.
func NewLimitOrderBook(ts Timestamp) *LimitOrderBook {
	return &LimitOrderBook{Timestamp: ts}
}

func (b *LimitOrderBook) levels(side Side) *[]*PriceLevel {
	if side == Bid {
		return &b.bidLevels
	}
	return &b.askLevels
}

// AskLevels returns up to maxDepth ask levels, best price first. maxDepth<0
// means unbounded.
func (b *LimitOrderBook) AskLevels(maxDepth int) []*PriceLevel {
	return truncate(b.askLevels, maxDepth)
}

// BidLevels returns up to maxDepth bid levels, best price first. maxDepth<0
// means unbounded.
func (b *LimitOrderBook) BidLevels(maxDepth int) []*PriceLevel {
	return truncate(b.bidLevels, maxDepth)
}

func truncate(levels []*PriceLevel, maxDepth int) []*PriceLevel {
	if maxDepth < 0 || maxDepth > len(levels) {
		maxDepth = len(levels)
	}
	out := make([]*PriceLevel, maxDepth)
	copy(out, levels[:maxDepth])
	return out
}

// Copy returns a deep copy of the book, independently truncated on each
// side to bidDepth/askDepth levels. A negative depth means unbounded — this
// is a SPEC_FULL.md supplement over the source, which applies one max_level
// to both sides.
func (b *LimitOrderBook) Copy(bidDepth, askDepth int) *LimitOrderBook {
	cp := &LimitOrderBook{
		Timestamp:    b.Timestamp,
		TimestampInc: b.TimestampInc,
		DecimalsAdj:  b.DecimalsAdj,
	}
	cp.bidLevels = deepCopyLevels(b.bidLevels, bidDepth)
	cp.askLevels = deepCopyLevels(b.askLevels, askDepth)
	return cp
}

func deepCopyLevels(levels []*PriceLevel, maxDepth int) []*PriceLevel {
	src := truncate(levels, maxDepth)
	out := make([]*PriceLevel, len(src))
	for i, l := range src {
		nl := &PriceLevel{Price: l.Price, queue: make([]RestingOrder, len(l.queue))}
		copy(nl.queue, l.queue)
		out[i] = nl
	}
	return out
}

// AdjustPrice applies DecimalsAdj for display purposes only; internal
// comparisons and arithmetic always use the raw integer price.
func (b *LimitOrderBook) AdjustPrice(price int64) float64 {
	if b.DecimalsAdj == nil {
		return float64(price)
	}
	return float64(price) / *b.DecimalsAdj
}

// BestAsk returns the lowest resting ask price, or ErrValueMissing if the
// ask side is empty.
func (b *LimitOrderBook) BestAsk() (float64, error) {
	if len(b.askLevels) == 0 {
		return 0, ErrValueMissing
	}
	return b.AdjustPrice(b.askLevels[0].Price), nil
}

// BestBid returns the highest resting bid price, or ErrValueMissing if the
// bid side is empty.
func (b *LimitOrderBook) BestBid() (float64, error) {
	if len(b.bidLevels) == 0 {
		return 0, ErrValueMissing
	}
	return b.AdjustPrice(b.bidLevels[0].Price), nil
}

// BidAskSpread returns best_ask - best_bid.
func (b *LimitOrderBook) BidAskSpread() (float64, error) {
	ask, err := b.BestAsk()
	if err != nil {
		return 0, err
	}
	bid, err := b.BestBid()
	if err != nil {
		return 0, err
	}
	return ask - bid, nil
}

// MidQuote returns (best_ask + best_bid) / 2.
func (b *LimitOrderBook) MidQuote() (float64, error) {
	ask, err := b.BestAsk()
	if err != nil {
		return 0, err
	}
	bid, err := b.BestBid()
	if err != nil {
		return 0, err
	}
	return (ask + bid) / 2, nil
}

// QuoteSlope returns bid_ask_spread / (log(askVolume) + log(bidVolume)) at
// the best level on each side.
func (b *LimitOrderBook) QuoteSlope() (float64, error) {
	if len(b.askLevels) == 0 || len(b.bidLevels) == 0 {
		return 0, ErrValueMissing
	}
	spread, err := b.BidAskSpread()
	if err != nil {
		return 0, err
	}
	askVol := float64(b.askLevels[0].Volume())
	bidVol := float64(b.bidLevels[0].Volume())
	return spread / (math.Log(askVol) + math.Log(bidVol)), nil
}

// LogQuoteSlope returns log(best_ask/best_bid) / (log(askVolume) +
// log(bidVolume)) at the best level on each side.
func (b *LimitOrderBook) LogQuoteSlope() (float64, error) {
	if len(b.askLevels) == 0 || len(b.bidLevels) == 0 {
		return 0, ErrValueMissing
	}
	ask, _ := b.BestAsk()
	bid, _ := b.BestBid()
	askVol := float64(b.askLevels[0].Volume())
	bidVol := float64(b.bidLevels[0].Volume())
	return math.Log(ask/bid) / (math.Log(askVol) + math.Log(bidVol)), nil
}

// BuyExecutionPrice walks the ask side accumulating fills for a marketable
// buy of the given volume, returning the adjusted total price paid and the
// volume actually filled (which may be less than requested if the book is
// too thin).
func (b *LimitOrderBook) BuyExecutionPrice(volume int64) (float64, int64) {
	return walkExecutionPrice(b.askLevels, volume, b.AdjustPrice)
}

// SellExecutionPrice is BuyExecutionPrice's mirror over the bid side.
func (b *LimitOrderBook) SellExecutionPrice(volume int64) (float64, int64) {
	return walkExecutionPrice(b.bidLevels, volume, b.AdjustPrice)
}

func walkExecutionPrice(levels []*PriceLevel, volume int64, adjust func(int64) float64) (float64, int64) {
	var priceAcc, volAcc int64
	for _, lvl := range levels {
		if volAcc >= volume {
			break
		}
		p, v := lvl.ExecutionPrice(volume - volAcc)
		priceAcc += p
		volAcc += v
	}
	return adjust(priceAcc), volAcc
}

// OrderOnBook reports whether order_id rests on the given side.
func (b *LimitOrderBook) OrderOnBook(orderID uint64, side Side) bool {
	for _, lvl := range *b.levels(side) {
		if lvl.OrderOnBook(orderID) {
			return true
		}
	}
	return false
}

// FindSide reports which side order_id rests on, checking bids before asks
// (matching lob.py's find_order_type).
func (b *LimitOrderBook) FindSide(orderID uint64) (Side, error) {
	if b.OrderOnBook(orderID, Bid) {
		return Bid, nil
	}
	if b.OrderOnBook(orderID, Ask) {
		return Ask, nil
	}
	return 0, ErrOrderNotFound
}

// FindOrder locates order_id. When side is nil it performs the book's
// tier-interleaved scan — ask[0], bid[0], ask[1], bid[1], … — matching
// lob.py's find_order default behavior; otherwise it scans only the given
// side. It returns the resolved side, the index of the level the order
// rests at, and the order's position within that level's queue.
func (b *LimitOrderBook) FindOrder(orderID uint64, side *Side) (Side, int, int, error) {
	if side != nil {
		levels := *b.levels(*side)
		for i, lvl := range levels {
			if j := lvl.FindOrderOnBook(orderID); j != -1 {
				return *side, i, j, nil
			}
		}
		return 0, 0, 0, ErrOrderNotFound
	}
	maxLen := len(b.askLevels)
	if len(b.bidLevels) > maxLen {
		maxLen = len(b.bidLevels)
	}
	for i := 0; i < maxLen; i++ {
		if i < len(b.askLevels) {
			if j := b.askLevels[i].FindOrderOnBook(orderID); j != -1 {
				return Ask, i, j, nil
			}
		}
		if i < len(b.bidLevels) {
			if j := b.bidLevels[i].FindOrderOnBook(orderID); j != -1 {
				return Bid, i, j, nil
			}
		}
	}
	return 0, 0, 0, ErrOrderNotFound
}

// locateLevelIndex returns the index of the level at price on the given side,
// walking from the best price outward, and whether that level already
// exists. asks are kept ascending, bids descending, per §4.D.
func locateLevelIndex(levels []*PriceLevel, side Side, price int64) (int, bool) {
	i := 0
	for i < len(levels) {
		if side == Ask && price > levels[i].Price {
			i++
			continue
		}
		if side == Bid && price < levels[i].Price {
			i++
			continue
		}
		break
	}
	return i, i < len(levels) && levels[i].Price == price
}

func insertLevelAt(levels *[]*PriceLevel, i int, lvl *PriceLevel) {
	*levels = append(*levels, nil)
	copy((*levels)[i+1:], (*levels)[i:])
	(*levels)[i] = lvl
}

func removeLevelAt(levels *[]*PriceLevel, i int) {
	*levels = append((*levels)[:i], (*levels)[i+1:]...)
}

// EnterQuote adds a new resting order at price on the given side, creating
// the level if none exists there yet.
func (b *LimitOrderBook) EnterQuote(ts Timestamp, price, volume int64, orderID uint64, side Side, qualifiers map[string]any) error {
	levels := b.levels(side)
	i, exists := locateLevelIndex(*levels, side, price)
	if !exists {
		insertLevelAt(levels, i, NewPriceLevel(price))
	}
	return (*levels)[i].EnterQuote(ts, volume, orderID, qualifiers)
}

// EnterQuoteOutOfOrder is EnterQuote's time-priority-preserving variant for
// input that is not guaranteed strictly monotone in timestamp.
func (b *LimitOrderBook) EnterQuoteOutOfOrder(ts Timestamp, price, volume int64, orderID uint64, side Side, qualifiers map[string]any) error {
	levels := b.levels(side)
	i, exists := locateLevelIndex(*levels, side, price)
	if !exists {
		insertLevelAt(levels, i, NewPriceLevel(price))
	}
	return (*levels)[i].EnterQuoteOutOfOrder(ts, volume, orderID, qualifiers)
}

// EnterQuoteAtPosition inserts at a caller-chosen zero-based position
// counted across the WHOLE side (not just within one level). It converts
// that global position to a level-local one by subtracting the combined
// queue length of every better-priced level, matching lob.py's
// pre_positions/level_position arithmetic.
func (b *LimitOrderBook) EnterQuoteAtPosition(ts Timestamp, price, volume int64, orderID uint64, side Side, position int, checkPriority bool, qualifiers map[string]any) error {
	levels := b.levels(side)
	i, exists := locateLevelIndex(*levels, side, price)
	if !exists {
		insertLevelAt(levels, i, NewPriceLevel(price))
	}
	var prePositions int
	for _, lvl := range (*levels)[:i] {
		prePositions += len(lvl.Queue())
	}
	levelPosition := position - prePositions
	if levelPosition < 0 {
		return ErrInvalidPosition
	}
	return (*levels)[i].EnterQuoteAtPosition(ts, volume, orderID, levelPosition, checkPriority, qualifiers)
}

// CancelQuote reduces order_id's remaining volume, locating it via
// FindOrder. The level is removed if it empties, even when the level
// itself reports a VolumeInconsistencyError — mirroring lob.py's
// try/finally around Level.cancel_quote.
func (b *LimitOrderBook) CancelQuote(volume int64, orderID uint64, side *Side) error {
	resolvedSide, i, _, err := b.FindOrder(orderID, side)
	if err != nil {
		return err
	}
	levels := b.levels(resolvedSide)
	lvl := (*levels)[i]
	cancelErr := lvl.CancelQuote(orderID, volume)
	if lvl.Empty() {
		removeLevelAt(levels, i)
	}
	return cancelErr
}

// DeleteQuote removes order_id unconditionally, locating it via FindOrder.
func (b *LimitOrderBook) DeleteQuote(orderID uint64, side *Side) error {
	resolvedSide, i, _, err := b.FindOrder(orderID, side)
	if err != nil {
		return err
	}
	levels := b.levels(resolvedSide)
	lvl := (*levels)[i]
	delErr := lvl.DeleteQuote(orderID)
	if lvl.Empty() {
		removeLevelAt(levels, i)
	}
	return delErr
}

// ExecuteTrade is the book's central, order-of-arrival-sensitive execution
// path (§4.D). It always attempts a STRICT execution against the best
// level on the resolved side — side[0], not the level order_id actually
// rests at — exactly as lob.py's execute_trade does: a legitimate
// top-of-book execution should always name the order resting at side[0],
// so a mismatch there is the priority violation this mechanism exists to
// catch and reconcile.
//
// On success, a buffered violation sharing this timestamp is resolved
// (dropped from the buffer) when it names order_id or when order_id was
// the head it was measured against; one at this timestamp involving other
// orders stays buffered. Violations at any other timestamp are flushed
// together as an ExecutionPriorityListError, which also empties the
// buffer. On a priority
// mismatch, the violation is appended to the buffer (unless SkipException
// vetoes it) and execution falls back to ExecuteTradeByID against
// order_id's own level.
func (b *LimitOrderBook) ExecuteTrade(ts Timestamp, volume int64, orderID uint64, side *Side) error {
	resolvedSide, _, _, err := b.FindOrder(orderID, side)
	if err != nil {
		return err
	}
	levels := b.levels(resolvedSide)
	if len(*levels) == 0 {
		return ErrOrderNotFound
	}
	best := (*levels)[0]

	emptyBest := func() {
		if len((*levels)[0].Queue()) == 0 {
			removeLevelAt(levels, 0)
		}
	}

	execErr := best.ExecuteTrade(orderID, volume, ts)

	// A priority mismatch is the only exception the source recovers from:
	// buffer it (unless vetoed) and retry against order_id's own level.
	if priorityErr, ok := execErr.(*ExecutionPriorityError); ok {
		if b.SkipException == nil || !b.SkipException(priorityErr) {
			b.errorBuffer = append(b.errorBuffer, priorityErr)
		}
		fallbackErr := b.ExecuteTradeByID(ts, volume, orderID, side)
		emptyBest()
		return fallbackErr
	}

	// Any other error (e.g. a volume inconsistency) propagates untouched —
	// the buffer reconciliation below only runs on a clean strict execution.
	if execErr != nil {
		emptyBest()
		return execErr
	}

	if len(b.errorBuffer) > 0 {
		var toRaise, kept []*ExecutionPriorityError
		for _, e := range b.errorBuffer {
			if e.Timestamp == ts {
				if e.OrderID != orderID && e.ActualHeadID != orderID {
					kept = append(kept, e)
				}
			} else {
				toRaise = append(toRaise, e)
			}
		}
		b.errorBuffer = kept
		if len(toRaise) > 0 {
			b.errorBuffer = nil
			emptyBest() // matches the source's explicit delete before raising
			emptyBest() // ...followed by its unconditional cleanup afterward
			return &ExecutionPriorityListError{Violations: toRaise}
		}
	}
	emptyBest()
	return nil
}

// ExecuteTradeByID executes against order_id wherever it actually rests,
// bypassing priority — the relaxed path, equivalent to lob.py's
// execute_trade_price. Unlike ExecuteTrade, this operates on (and removes,
// if emptied) the order's own level.
func (b *LimitOrderBook) ExecuteTradeByID(ts Timestamp, volume int64, orderID uint64, side *Side) error {
	resolvedSide, i, _, err := b.FindOrder(orderID, side)
	if err != nil {
		return err
	}
	levels := b.levels(resolvedSide)
	lvl := (*levels)[i]
	tradeErr := lvl.ExecuteTradeByID(orderID, volume, ts)
	if lvl.Empty() {
		removeLevelAt(levels, i)
	}
	return tradeErr
}

// FindLiquidityMaker identifies which side of a cross trade was resting
// (the maker): if the ask leg isn't on the book, the bid was the maker, and
// vice versa. Returns ErrNoLiquidityMaker if neither or both are resting —
// a cross trade should always have exactly one side already on the book.
func (b *LimitOrderBook) FindLiquidityMaker(askID, bidID uint64) (uint64, error) {
	askResting := b.OrderOnBook(askID, Ask)
	bidResting := b.OrderOnBook(bidID, Bid)
	switch {
	case !askResting && bidResting:
		return bidID, nil
	case askResting && !bidResting:
		return askID, nil
	default:
		return 0, ErrNoLiquidityMaker
	}
}

// EndOfDay flushes any unresolved buffered priority violations. Call once
// at the close of a trading session; a non-nil return means violations
// were pending and are now discarded from the buffer.
func (b *LimitOrderBook) EndOfDay() error {
	if len(b.errorBuffer) == 0 {
		return nil
	}
	violations := b.errorBuffer
	b.errorBuffer = nil
	return &ExecutionPriorityListError{Violations: violations}
}
