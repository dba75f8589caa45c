// Copyright (c) 2024 Neomantra Corp

package itchlob_test

import (
	itchlob "github.com/NimbleMarkets/itch-lob"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PriceLevel", func() {
	Context("FIFO queue mechanics", func() {
		It("appends in entry order via EnterQuote", func() {
			lvl := itchlob.NewPriceLevel(100)
			Expect(lvl.EnterQuote(1, 10, 1, nil)).To(Succeed())
			Expect(lvl.EnterQuote(2, 20, 2, nil)).To(Succeed())
			Expect(lvl.Queue()[0].OrderID).To(Equal(uint64(1)))
			Expect(lvl.Queue()[1].OrderID).To(Equal(uint64(2)))
			Expect(lvl.Volume()).To(Equal(int64(30)))
		})

		It("rejects a non-positive volume", func() {
			lvl := itchlob.NewPriceLevel(100)
			Expect(lvl.EnterQuote(1, 0, 1, nil)).To(Equal(itchlob.ErrInvalidVolume))
			Expect(lvl.EnterQuote(1, -5, 1, nil)).To(Equal(itchlob.ErrInvalidVolume))
		})

		It("inserts out-of-order entries by timestamp, preserving time priority", func() {
			lvl := itchlob.NewPriceLevel(100)
			Expect(lvl.EnterQuote(10, 10, 1, nil)).To(Succeed())
			Expect(lvl.EnterQuoteOutOfOrder(5, 20, 2, nil)).To(Succeed())
			Expect(lvl.Queue()[0].OrderID).To(Equal(uint64(2)))
			Expect(lvl.Queue()[1].OrderID).To(Equal(uint64(1)))
		})

		It("empties once its last order is removed", func() {
			lvl := itchlob.NewPriceLevel(100)
			Expect(lvl.EnterQuote(1, 10, 1, nil)).To(Succeed())
			Expect(lvl.Empty()).To(BeFalse())
			Expect(lvl.DeleteQuote(1)).To(Succeed())
			Expect(lvl.Empty()).To(BeTrue())
		})
	})

	Context("EnterQuoteAtPosition priority check", func() {
		It("inserts at the requested position without error when it matches timestamp order", func() {
			lvl := itchlob.NewPriceLevel(100)
			Expect(lvl.EnterQuote(1, 10, 1, nil)).To(Succeed())
			err := lvl.EnterQuoteAtPosition(2, 10, 2, 1, true, nil)
			Expect(err).To(BeNil())
			Expect(lvl.Queue()[1].OrderID).To(Equal(uint64(2)))
		})

		It("still inserts, but reports a PositionPriorityError, when position disagrees with timestamp order", func() {
			lvl := itchlob.NewPriceLevel(100)
			Expect(lvl.EnterQuote(5, 10, 1, nil)).To(Succeed())
			err := lvl.EnterQuoteAtPosition(1, 10, 2, 1, true, nil)
			Expect(err).To(HaveOccurred())
			var priErr *itchlob.PositionPriorityError
			Expect(err).To(BeAssignableToTypeOf(priErr))
			// the mutation happened regardless of the error
			Expect(len(lvl.Queue())).To(Equal(2))
			Expect(lvl.Queue()[1].OrderID).To(Equal(uint64(2)))
		})
	})

	Context("CancelQuote", func() {
		It("reduces remaining volume without removing the order", func() {
			lvl := itchlob.NewPriceLevel(100)
			Expect(lvl.EnterQuote(1, 10, 1, nil)).To(Succeed())
			Expect(lvl.CancelQuote(1, 4)).To(Succeed())
			Expect(lvl.Queue()[0].RemainingVolume).To(Equal(int64(6)))
		})

		It("removes the order when the cancel exhausts its remaining volume", func() {
			lvl := itchlob.NewPriceLevel(100)
			Expect(lvl.EnterQuote(1, 10, 1, nil)).To(Succeed())
			Expect(lvl.CancelQuote(1, 10)).To(Succeed())
			Expect(lvl.Empty()).To(BeTrue())
		})

		It("removes the order and reports VolumeInconsistencyError when the cancel exceeds remaining volume", func() {
			lvl := itchlob.NewPriceLevel(100)
			Expect(lvl.EnterQuote(1, 10, 1, nil)).To(Succeed())
			err := lvl.CancelQuote(1, 20)
			var volErr *itchlob.VolumeInconsistencyError
			Expect(err).To(BeAssignableToTypeOf(volErr))
			Expect(lvl.Empty()).To(BeTrue())
		})

		It("reports ErrOrderNotFound for an absent order", func() {
			lvl := itchlob.NewPriceLevel(100)
			Expect(lvl.CancelQuote(99, 1)).To(Equal(itchlob.ErrOrderNotFound))
		})
	})

	Context("ExecuteTrade priority", func() {
		It("executes cleanly against the queue head", func() {
			lvl := itchlob.NewPriceLevel(100)
			Expect(lvl.EnterQuote(1, 10, 1, nil)).To(Succeed())
			Expect(lvl.ExecuteTrade(1, 4, 2)).To(Succeed())
			Expect(lvl.Queue()[0].RemainingVolume).To(Equal(int64(6)))
		})

		It("fails with ExecutionPriorityError, mutating nothing, when the order isn't at the head", func() {
			lvl := itchlob.NewPriceLevel(100)
			Expect(lvl.EnterQuote(1, 10, 1, nil)).To(Succeed())
			Expect(lvl.EnterQuote(2, 10, 2, nil)).To(Succeed())

			err := lvl.ExecuteTrade(2, 5, 3)
			var priErr *itchlob.ExecutionPriorityError
			Expect(err).To(BeAssignableToTypeOf(priErr))
			Expect(lvl.Queue()[0].RemainingVolume).To(Equal(int64(10)))
			Expect(lvl.Queue()[1].RemainingVolume).To(Equal(int64(10)))
		})

		It("executes against any order via ExecuteTradeByID, bypassing priority", func() {
			lvl := itchlob.NewPriceLevel(100)
			Expect(lvl.EnterQuote(1, 10, 1, nil)).To(Succeed())
			Expect(lvl.EnterQuote(2, 10, 2, nil)).To(Succeed())
			Expect(lvl.ExecuteTradeByID(2, 5, 3)).To(Succeed())
			Expect(lvl.Queue()[1].RemainingVolume).To(Equal(int64(5)))
		})
	})

	Context("ExecutionPrice", func() {
		It("fills across multiple orders, capping at the requested volume", func() {
			lvl := itchlob.NewPriceLevel(100)
			Expect(lvl.EnterQuote(1, 10, 1, nil)).To(Succeed())
			Expect(lvl.EnterQuote(2, 10, 2, nil)).To(Succeed())

			totalPrice, executed := lvl.ExecutionPrice(15)
			Expect(executed).To(Equal(int64(15)))
			Expect(totalPrice).To(Equal(int64(1500)))
		})

		It("fills only what's resting when the level is thinner than requested", func() {
			lvl := itchlob.NewPriceLevel(100)
			Expect(lvl.EnterQuote(1, 10, 1, nil)).To(Succeed())

			totalPrice, executed := lvl.ExecutionPrice(50)
			Expect(executed).To(Equal(int64(10)))
			Expect(totalPrice).To(Equal(int64(1000)))
		})
	})
})
