// Copyright (c) 2024 Neomantra Corp

package itchlob_test

import (
	itchlob "github.com/NimbleMarkets/itch-lob"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LimitOrderBook", func() {
	var lob *itchlob.LimitOrderBook

	BeforeEach(func() {
		lob = itchlob.NewLimitOrderBook(0)
	})

	Context("level ordering", func() {
		It("keeps asks ascending and bids descending from best price", func() {
			Expect(lob.EnterQuote(1, 105, 10, 1, itchlob.Ask, nil)).To(Succeed())
			Expect(lob.EnterQuote(2, 100, 10, 2, itchlob.Ask, nil)).To(Succeed())
			Expect(lob.EnterQuote(3, 110, 10, 3, itchlob.Ask, nil)).To(Succeed())

			asks := lob.AskLevels(-1)
			Expect(asks[0].Price).To(Equal(int64(100)))
			Expect(asks[1].Price).To(Equal(int64(105)))
			Expect(asks[2].Price).To(Equal(int64(110)))

			Expect(lob.EnterQuote(4, 95, 10, 4, itchlob.Bid, nil)).To(Succeed())
			Expect(lob.EnterQuote(5, 99, 10, 5, itchlob.Bid, nil)).To(Succeed())

			bids := lob.BidLevels(-1)
			Expect(bids[0].Price).To(Equal(int64(99)))
			Expect(bids[1].Price).To(Equal(int64(95)))
		})

		It("BestBid/BestAsk report ErrValueMissing when their side is empty", func() {
			_, err := lob.BestBid()
			Expect(err).To(Equal(itchlob.ErrValueMissing))
			_, err = lob.BestAsk()
			Expect(err).To(Equal(itchlob.ErrValueMissing))
		})

		It("BidAskSpread and MidQuote reflect the best levels", func() {
			Expect(lob.EnterQuote(1, 101, 10, 1, itchlob.Ask, nil)).To(Succeed())
			Expect(lob.EnterQuote(2, 99, 10, 2, itchlob.Bid, nil)).To(Succeed())

			spread, err := lob.BidAskSpread()
			Expect(err).To(BeNil())
			Expect(spread).To(Equal(2.0))

			mid, err := lob.MidQuote()
			Expect(err).To(BeNil())
			Expect(mid).To(Equal(100.0))
		})
	})

	Context("DecimalsAdj presentation", func() {
		It("divides raw prices only when DecimalsAdj is set", func() {
			Expect(lob.AdjustPrice(3720250000000)).To(Equal(3720250000000.0))
			adj := 10000.0
			lob.DecimalsAdj = &adj
			Expect(lob.AdjustPrice(3720250000000)).To(Equal(372025000.0))
		})
	})

	Context("FindOrder and FindSide", func() {
		It("locates an order on whichever side it rests, bids checked first", func() {
			Expect(lob.EnterQuote(1, 100, 10, 1, itchlob.Bid, nil)).To(Succeed())
			Expect(lob.EnterQuote(2, 105, 10, 2, itchlob.Ask, nil)).To(Succeed())

			side, err := lob.FindSide(1)
			Expect(err).To(BeNil())
			Expect(side).To(Equal(itchlob.Bid))

			side, err = lob.FindSide(2)
			Expect(err).To(BeNil())
			Expect(side).To(Equal(itchlob.Ask))

			_, err = lob.FindSide(99)
			Expect(err).To(Equal(itchlob.ErrOrderNotFound))
		})
	})

	Context("CancelQuote and DeleteQuote", func() {
		It("removes the level once it empties", func() {
			Expect(lob.EnterQuote(1, 100, 10, 1, itchlob.Bid, nil)).To(Succeed())
			Expect(lob.DeleteQuote(1, nil)).To(Succeed())
			Expect(lob.BidLevels(-1)).To(BeEmpty())
		})

		It("keeps the level when other orders remain after a cancel", func() {
			Expect(lob.EnterQuote(1, 100, 10, 1, itchlob.Bid, nil)).To(Succeed())
			Expect(lob.EnterQuote(2, 100, 5, 2, itchlob.Bid, nil)).To(Succeed())
			Expect(lob.CancelQuote(10, 1, nil)).To(Succeed())
			Expect(lob.BidLevels(-1)).To(HaveLen(1))
			Expect(lob.BidLevels(-1)[0].Volume()).To(Equal(int64(5)))
		})
	})

	Context("ExecuteTrade priority reconciliation (§4.D)", func() {
		It("executes cleanly when the named order is resting at side[0]", func() {
			Expect(lob.EnterQuote(1, 100, 10, 1, itchlob.Bid, nil)).To(Succeed())
			side := itchlob.Bid
			Expect(lob.ExecuteTrade(2, 4, 1, &side)).To(Succeed())
			Expect(lob.BidLevels(-1)[0].Volume()).To(Equal(int64(6)))
		})

		It("buffers a priority violation and falls back to ExecuteTradeByID on mismatch", func() {
			Expect(lob.EnterQuote(1, 101, 10, 1, itchlob.Bid, nil)).To(Succeed()) // best, time 1
			Expect(lob.EnterQuote(2, 100, 10, 2, itchlob.Bid, nil)).To(Succeed()) // worse price

			side := itchlob.Bid
			// order 2 isn't resting at side[0] (order 1 is the best bid) — priority mismatch
			err := lob.ExecuteTrade(3, 5, 2, &side)
			Expect(err).To(BeNil()) // the fallback executes cleanly
			Expect(lob.OrderOnBook(2, itchlob.Bid)).To(BeTrue())

			// the violation is buffered, and surfaces at end of day if never reconciled
			Expect(lob.EndOfDay()).ToNot(BeNil())
		})

		It("resolves a buffered violation in the same order's favor once it later executes cleanly at the same timestamp", func() {
			Expect(lob.EnterQuote(1, 101, 5, 1, itchlob.Bid, nil)).To(Succeed())
			Expect(lob.EnterQuote(1, 100, 10, 2, itchlob.Bid, nil)).To(Succeed())

			side := itchlob.Bid
			// order 2 isn't resting at side[0] (order 1's level is) — buffers a violation at ts=9
			Expect(lob.ExecuteTrade(9, 5, 2, &side)).To(Succeed())

			// remove order 1's level so order 2's level becomes side[0]
			Expect(lob.CancelQuote(5, 1, &side)).To(Succeed())

			// order 2 now executes cleanly at the head, at the SAME timestamp as its own buffered violation
			Expect(lob.ExecuteTrade(9, 5, 2, &side)).To(Succeed())

			// resolved: the matching-order, same-timestamp violation is forgiven
			Expect(lob.EndOfDay()).To(BeNil())
		})
	})

	Context("FindLiquidityMaker", func() {
		It("identifies the resting leg of a cross as the maker", func() {
			Expect(lob.EnterQuote(1, 100, 10, 1, itchlob.Bid, nil)).To(Succeed())
			maker, err := lob.FindLiquidityMaker(2, 1)
			Expect(err).To(BeNil())
			Expect(maker).To(Equal(uint64(1)))
		})

		It("reports ErrNoLiquidityMaker when neither or both legs are resting", func() {
			_, err := lob.FindLiquidityMaker(1, 2)
			Expect(err).To(Equal(itchlob.ErrNoLiquidityMaker))
		})
	})

	Context("Copy", func() {
		It("produces an independent deep copy truncated per side", func() {
			Expect(lob.EnterQuote(1, 101, 10, 1, itchlob.Ask, nil)).To(Succeed())
			Expect(lob.EnterQuote(2, 102, 10, 2, itchlob.Ask, nil)).To(Succeed())
			Expect(lob.EnterQuote(3, 99, 10, 3, itchlob.Bid, nil)).To(Succeed())

			cp := lob.Copy(-1, 1)
			Expect(cp.AskLevels(-1)).To(HaveLen(1))
			Expect(cp.BidLevels(-1)).To(HaveLen(1))

			// mutating the original doesn't affect the copy
			Expect(lob.DeleteQuote(3, nil)).To(Succeed())
			Expect(cp.BidLevels(-1)).To(HaveLen(1))
		})
	})
})
