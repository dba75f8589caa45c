// Copyright (c) 2024 Neomantra Corp

package itchlob

// RestingOrder is a single order resting on the book at some Level (§3).
// Price and side are not stored here — price lives on the owning
// Level, side is implied by which of the LimitOrderBook's two sequences
// holds that Level.
type RestingOrder struct {
	OrderID         uint64
	EntryTimestamp  Timestamp
	RemainingVolume int64
	Qualifiers      map[string]any
}

// PriceLevel is a single-price FIFO queue of RestingOrders (§4.C),
// grounded on meatpy/level.py's Level class.
type PriceLevel struct {
	Price int64
	queue []RestingOrder
}

// NewPriceLevel constructs an empty level at the given price.
func NewPriceLevel(price int64) *PriceLevel {
	return &PriceLevel{Price: price}
}

// Queue returns the level's resting orders in time-priority order. Callers
// must treat it as read-only; mutate through the Level's own methods.
func (l *PriceLevel) Queue() []RestingOrder { return l.queue }

// Empty reports whether the level has no resting orders; the LOB destroys
// a level the instant this becomes true.
func (l *PriceLevel) Empty() bool { return len(l.queue) == 0 }

// Volume is the sum of all orders' remaining volume at this level.
func (l *PriceLevel) Volume() int64 {
	var total int64
	for _, o := range l.queue {
		total += o.RemainingVolume
	}
	return total
}

// ExecutionPrice returns (price*executed, executed) for a marketable order
// of the given volume resting against this level alone, where executed is
// min(volume, level volume).
func (l *PriceLevel) ExecutionPrice(volume int64) (totalPrice int64, executed int64) {
	var acc int64
	for _, o := range l.queue {
		acc += o.RemainingVolume
		if acc >= volume {
			acc = volume
			break
		}
	}
	return l.Price * acc, acc
}

// FindOrderOnBook returns the queue index of order_id, or -1 if absent.
func (l *PriceLevel) FindOrderOnBook(orderID uint64) int {
	for i := range l.queue {
		if l.queue[i].OrderID == orderID {
			return i
		}
	}
	return -1
}

// OrderOnBook reports whether order_id rests at this level.
func (l *PriceLevel) OrderOnBook(orderID uint64) bool {
	return l.FindOrderOnBook(orderID) != -1
}

// EnterQuote appends a new resting order at the queue tail — the normal
// case, valid when the caller guarantees ts is non-decreasing.
func (l *PriceLevel) EnterQuote(ts Timestamp, volume int64, orderID uint64, qualifiers map[string]any) error {
	if volume <= 0 {
		return ErrInvalidVolume
	}
	l.queue = append(l.queue, RestingOrder{OrderID: orderID, EntryTimestamp: ts, RemainingVolume: volume, Qualifiers: qualifiers})
	return nil
}

// EnterQuoteOutOfOrder inserts at the first position where the existing
// entry timestamp is not less than ts, preserving time priority even when
// the input stream isn't strictly monotone.
func (l *PriceLevel) EnterQuoteOutOfOrder(ts Timestamp, volume int64, orderID uint64, qualifiers map[string]any) error {
	if volume <= 0 {
		return ErrInvalidVolume
	}
	i := 0
	for _, o := range l.queue {
		if o.EntryTimestamp < ts {
			i++
		}
	}
	l.insertAt(i, RestingOrder{OrderID: orderID, EntryTimestamp: ts, RemainingVolume: volume, Qualifiers: qualifiers})
	return nil
}

// EnterQuoteAtPosition inserts at a caller-chosen zero-based position. When
// checkPriority is set and the position disagrees with the index implied
// by timestamp ordering, the insertion still happens but an
// *PositionPriorityError is returned alongside it (non-nil error does NOT
// mean the mutation was skipped — see §4.C).
func (l *PriceLevel) EnterQuoteAtPosition(ts Timestamp, volume int64, orderID uint64, position int, checkPriority bool, qualifiers map[string]any) error {
	if volume <= 0 {
		return ErrInvalidVolume
	}
	var violated bool
	var implied int
	if checkPriority {
		for _, o := range l.queue {
			if o.EntryTimestamp <= ts {
				implied++
			}
		}
		violated = implied != position
	}

	l.insertAt(position, RestingOrder{OrderID: orderID, EntryTimestamp: ts, RemainingVolume: volume, Qualifiers: qualifiers})

	if violated {
		return &PositionPriorityError{Timestamp: ts, OrderID: orderID, ExpectedPosition: position, ComputedPosition: implied}
	}
	return nil
}

func (l *PriceLevel) insertAt(i int, o RestingOrder) {
	l.queue = append(l.queue, RestingOrder{})
	copy(l.queue[i+1:], l.queue[i:])
	l.queue[i] = o
}

// CancelQuote reduces order_id's remaining volume by volume; removes the
// order if volume == remaining; fails with VolumeInconsistencyError (after
// removing the order) if volume exceeds remaining.
func (l *PriceLevel) CancelQuote(orderID uint64, volume int64) error {
	i := l.FindOrderOnBook(orderID)
	if i == -1 {
		return ErrOrderNotFound
	}
	return l.cancelAt(i, orderID, volume)
}

func (l *PriceLevel) cancelAt(i int, orderID uint64, volume int64) error {
	remaining := l.queue[i].RemainingVolume
	switch {
	case remaining < volume:
		l.removeAt(i)
		return &VolumeInconsistencyError{OrderID: orderID, RemainingVolume: remaining, RequestedVolume: volume}
	case remaining == volume:
		l.removeAt(i)
		return nil
	default:
		l.queue[i].RemainingVolume -= volume
		return nil
	}
}

// DeleteQuote removes order_id unconditionally.
func (l *PriceLevel) DeleteQuote(orderID uint64) error {
	i := l.FindOrderOnBook(orderID)
	if i == -1 {
		return ErrOrderNotFound
	}
	l.removeAt(i)
	return nil
}

func (l *PriceLevel) removeAt(i int) {
	l.queue = append(l.queue[:i], l.queue[i+1:]...)
}

// ExecuteTrade strictly requires order_id == queue[0].OrderID; on mismatch
// it fails with *ExecutionPriorityError and mutates nothing.
func (l *PriceLevel) ExecuteTrade(orderID uint64, volume int64, ts Timestamp) error {
	if len(l.queue) == 0 {
		return ErrOrderNotFound
	}
	if l.queue[0].OrderID != orderID {
		return &ExecutionPriorityError{Timestamp: ts, OrderID: orderID, ActualHeadID: l.queue[0].OrderID}
	}
	return l.cancelAt(0, orderID, volume)
}

// ExecuteTradeByID executes against order_id wherever it sits in the
// queue, bypassing priority. Same volume-consistency rules as ExecuteTrade.
func (l *PriceLevel) ExecuteTradeByID(orderID uint64, volume int64, ts Timestamp) error {
	i := l.FindOrderOnBook(orderID)
	if i == -1 {
		return ErrOrderNotFound
	}
	return l.cancelAt(i, orderID, volume)
}
