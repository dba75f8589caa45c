// Copyright (c) 2024 Neomantra Corp

package itch41_test

import (
	"encoding/binary"

	itchlob "github.com/NimbleMarkets/itch-lob"
	"github.com/NimbleMarkets/itch-lob/itch41"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Messages", func() {
	Context("SecondsMessage", func() {
		It("decodes seconds-since-midnight with no header prefix", func() {
			body := make([]byte, 5)
			body[0] = 'T'
			binary.BigEndian.PutUint32(body[1:5], 34_200)
			var m itch41.SecondsMessage
			Expect(m.FillRaw(body)).To(Succeed())
			Expect(m.Seconds).To(Equal(uint32(34_200)))
		})

		It("round-trips through Raw back into an identical decode", func() {
			body := make([]byte, 5)
			body[0] = 'T'
			binary.BigEndian.PutUint32(body[1:5], 34_200)
			var m itch41.SecondsMessage
			Expect(m.FillRaw(body)).To(Succeed())

			raw, err := m.Raw()
			Expect(err).To(BeNil())
			Expect(raw).To(Equal(body))
		})
	})

	Context("SystemEventMessage", func() {
		It("decodes the within-second timestamp and code", func() {
			payload := frame('S', 500_000, []byte{'O'})
			var m itch41.SystemEventMessage
			Expect(m.FillRaw(payload)).To(Succeed())
			Expect(m.TimestampNanos).To(Equal(int64(500_000)))
			Expect(m.Code).To(Equal(byte('O')))
		})

		It("rejects a payload shorter than its fixed size", func() {
			var m itch41.SystemEventMessage
			err := m.FillRaw([]byte{'S', 0, 0})
			Expect(err).To(HaveOccurred())
		})

		It("round-trips through Raw back into an identical decode", func() {
			payload := frame('S', 500_000, []byte{'O'})
			var m itch41.SystemEventMessage
			Expect(m.FillRaw(payload)).To(Succeed())

			raw, err := m.Raw()
			Expect(err).To(BeNil())
			Expect(raw).To(Equal(payload))
		})

		It("validates a known system event code", func() {
			m := itch41.SystemEventMessage{Code: 'O'}
			Expect(m.Validate()).To(Succeed())
		})

		It("rejects an unrecognized system event code", func() {
			m := itch41.SystemEventMessage{Code: '?'}
			err := m.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err).To(MatchError(itchlob.ErrInvalidCode))
		})
	})

	Context("AddOrderMessage", func() {
		It("decodes order reference, side, shares, symbol and price", func() {
			body := make([]byte, 25)
			binary.BigEndian.PutUint64(body[0:8], 555)
			body[8] = 'S'
			binary.BigEndian.PutUint32(body[9:13], 200)
			putStock(body[13:21], "MSFT")
			binary.BigEndian.PutUint32(body[21:25], 3000000)

			var m itch41.AddOrderMessage
			Expect(m.FillRaw(frame('A', 0, body))).To(Succeed())
			Expect(m.OrderRef).To(Equal(uint64(555)))
			Expect(m.BSIndicator).To(Equal(byte('S')))
			Expect(m.Shares).To(Equal(uint32(200)))
			Expect(m.Stock).To(Equal("MSFT"))
			Expect(m.Price).To(Equal(uint32(3000000)))
		})

		It("round-trips through Raw back into an identical decode", func() {
			body := make([]byte, 25)
			binary.BigEndian.PutUint64(body[0:8], 555)
			body[8] = 'S'
			binary.BigEndian.PutUint32(body[9:13], 200)
			putStock(body[13:21], "MSFT")
			binary.BigEndian.PutUint32(body[21:25], 3000000)
			payload := frame('A', 0, body)

			var m itch41.AddOrderMessage
			Expect(m.FillRaw(payload)).To(Succeed())

			raw, err := m.Raw()
			Expect(err).To(BeNil())
			Expect(raw).To(Equal(payload))
		})
	})

	Context("StockTradingActionMessage", func() {
		It("decodes symbol and state", func() {
			body := make([]byte, 14)
			putStock(body[0:8], "MSFT")
			body[8] = 'T'
			var m itch41.StockTradingActionMessage
			Expect(m.FillRaw(frame('H', 0, body))).To(Succeed())
			Expect(m.Stock).To(Equal("MSFT"))
			Expect(m.State).To(Equal(byte('T')))
		})

		It("validates a known trading state", func() {
			body := make([]byte, 14)
			putStock(body[0:8], "MSFT")
			body[8] = 'H'
			var m itch41.StockTradingActionMessage
			Expect(m.FillRaw(frame('H', 0, body))).To(Succeed())
			Expect(m.Validate()).To(Succeed())
		})

		It("rejects an unrecognized trading state", func() {
			body := make([]byte, 14)
			putStock(body[0:8], "MSFT")
			body[8] = '?'
			var m itch41.StockTradingActionMessage
			Expect(m.FillRaw(frame('H', 0, body))).To(Succeed())
			err := m.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err).To(MatchError(itchlob.ErrInvalidCode))
		})
	})

	Context("OrderExecutedMessage", func() {
		It("decodes order reference, shares and match number", func() {
			body := make([]byte, 20)
			binary.BigEndian.PutUint64(body[0:8], 555)
			binary.BigEndian.PutUint32(body[8:12], 40)
			binary.BigEndian.PutUint64(body[12:20], 88)
			var m itch41.OrderExecutedMessage
			Expect(m.FillRaw(frame('E', 0, body))).To(Succeed())
			Expect(m.OrderRef).To(Equal(uint64(555)))
			Expect(m.Shares).To(Equal(uint32(40)))
			Expect(m.MatchNum).To(Equal(uint64(88)))
		})

		It("round-trips through Raw back into an identical decode", func() {
			body := make([]byte, 20)
			binary.BigEndian.PutUint64(body[0:8], 555)
			binary.BigEndian.PutUint32(body[8:12], 40)
			binary.BigEndian.PutUint64(body[12:20], 88)
			payload := frame('E', 0, body)

			var m itch41.OrderExecutedMessage
			Expect(m.FillRaw(payload)).To(Succeed())

			raw, err := m.Raw()
			Expect(err).To(BeNil())
			Expect(raw).To(Equal(payload))
		})
	})

	Context("unknown opcode via Decode", func() {
		It("reports UnknownOpcodeError", func() {
			_, err := itch41.Decode([]byte{'!'})
			Expect(err).To(HaveOccurred())
		})

		It("reports ErrShortPayload for an empty payload", func() {
			_, err := itch41.Decode(nil)
			Expect(err).To(Equal(itchlob.ErrShortPayload))
		})
	})
})
