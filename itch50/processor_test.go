// Copyright (c) 2024 Neomantra Corp

package itch50_test

import (
	"time"

	itchlob "github.com/NimbleMarkets/itch-lob"
	"github.com/NimbleMarkets/itch-lob/itch50"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// recordingSubscriber counts callback invocations for assertions, embedding
// itchlob.NullSubscriber so it only overrides what each test cares about.
type recordingSubscriber struct {
	itchlob.NullSubscriber
	enterQuotes   int
	executeTrades int
	messages      int
}

func (r *recordingSubscriber) EnterQuoteEvent(itchlob.Processor, itchlob.Timestamp, int64, int64, uint64, *itchlob.Side) error {
	r.enterQuotes++
	return nil
}

func (r *recordingSubscriber) ExecuteTradeEvent(itchlob.Processor, itchlob.Timestamp, int64, uint64, uint64, *itchlob.Side) error {
	r.executeTrades++
	return nil
}

func (r *recordingSubscriber) MessageEvent(itchlob.Processor, itchlob.Timestamp, itchlob.Message) error {
	r.messages++
	return nil
}

var bookDate = time.Date(2026, time.July, 30, 0, 0, 0, 0, time.UTC)

var _ = Describe("MarketProcessor", func() {
	Context("AddOrder / OrderExecuted dispatch", func() {
		It("enters a resting order and later executes it, updating the book", func() {
			proc := itch50.NewMarketProcessor("AAPL", bookDate)
			rec := &recordingSubscriber{}
			proc.RegisterSubscriber(rec)

			var add itch50.AddOrderMessage
			body := make([]byte, 25)
			body[8] = 'B'
			putStock(body[13:21], "AAPL")
			Expect(add.FillRaw(frame('A', 1, 1, 1_000_000, body))).To(Succeed())
			add.OrderRef = 42
			add.Shares = 100
			add.Price = 1500000

			Expect(proc.OnAddOrder(&add)).To(Succeed())
			Expect(rec.enterQuotes).To(Equal(1))
			Expect(rec.messages).To(Equal(1))

			bid, err := proc.CurrentLOB().BestBid()
			Expect(err).To(BeNil())
			Expect(bid).To(Equal(1500000.0))

			var exec itch50.OrderExecutedMessage
			Expect(exec.FillRaw(frame('E', 1, 1, 2_000_000, make([]byte, 20)))).To(Succeed())
			exec.OrderRef = 42
			exec.Shares = 40
			exec.MatchNum = 7

			Expect(proc.OnOrderExecuted(&exec)).To(Succeed())
			Expect(rec.executeTrades).To(Equal(1))
			Expect(proc.CurrentLOB().BidLevels(-1)[0].Volume()).To(Equal(int64(60)))
		})

		It("reports ErrNoBook when executing before any order has been entered", func() {
			proc := itch50.NewMarketProcessor("AAPL", bookDate)
			var exec itch50.OrderExecutedMessage
			Expect(exec.FillRaw(frame('E', 1, 1, 1_000_000, make([]byte, 20)))).To(Succeed())
			exec.OrderRef = 1
			Expect(proc.OnOrderExecuted(&exec)).To(Equal(itchlob.ErrNoBook))
		})

		It("skips LOB mutation but still fires MessageEvent when TrackLOB is false", func() {
			proc := itch50.NewMarketProcessor("AAPL", bookDate)
			proc.TrackLOB = false
			rec := &recordingSubscriber{}
			proc.RegisterSubscriber(rec)

			var add itch50.AddOrderMessage
			body := make([]byte, 25)
			body[8] = 'B'
			putStock(body[13:21], "AAPL")
			Expect(add.FillRaw(frame('A', 1, 1, 1_000_000, body))).To(Succeed())
			add.OrderRef = 1
			add.Shares = 10
			add.Price = 100

			Expect(proc.OnAddOrder(&add)).To(Succeed())
			Expect(rec.messages).To(Equal(1))
			Expect(rec.enterQuotes).To(Equal(0))
			Expect(proc.CurrentLOB()).To(BeNil())
		})
	})

	Context("trading status decision table", func() {
		It("derives PreTrade from a start-of-system-hours system event", func() {
			proc := itch50.NewMarketProcessor("AAPL", bookDate)
			var sys itch50.SystemEventMessage
			Expect(sys.FillRaw(frame('S', 1, 1, 0, []byte{'S'}))).To(Succeed())
			Expect(proc.OnSystemEvent(&sys)).To(Succeed())
			Expect(proc.TradingStatus()).To(Equal(itchlob.TradingStatusPreTrade))
		})

		It("derives Trade once the system is in market hours and the stock state is Trading", func() {
			proc := itch50.NewMarketProcessor("AAPL", bookDate)
			var sys itch50.SystemEventMessage
			Expect(sys.FillRaw(frame('S', 1, 1, 0, []byte{'Q'}))).To(Succeed())
			Expect(proc.OnSystemEvent(&sys)).To(Succeed())

			var action itch50.StockTradingActionMessage
			body := make([]byte, 14)
			putStock(body[0:8], "AAPL")
			body[8] = 'T'
			Expect(action.FillRaw(frame('H', 1, 1, 0, body))).To(Succeed())
			Expect(proc.OnStockTradingAction(&action)).To(Succeed())

			Expect(proc.TradingStatus()).To(Equal(itchlob.TradingStatusTrade))
		})

		It("lets a stock-level halt override the system phase", func() {
			proc := itch50.NewMarketProcessor("AAPL", bookDate)
			var sys itch50.SystemEventMessage
			Expect(sys.FillRaw(frame('S', 1, 1, 0, []byte{'Q'}))).To(Succeed())
			Expect(proc.OnSystemEvent(&sys)).To(Succeed())

			var action itch50.StockTradingActionMessage
			body := make([]byte, 14)
			putStock(body[0:8], "AAPL")
			body[8] = 'H'
			Expect(action.FillRaw(frame('H', 1, 1, 0, body))).To(Succeed())
			Expect(proc.OnStockTradingAction(&action)).To(Succeed())

			Expect(proc.TradingStatus()).To(Equal(itchlob.TradingStatusHalted))
		})
	})
})
