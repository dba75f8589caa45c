// Copyright (c) 2024 Neomantra Corp

package itch50_test

import (
	"encoding/binary"

	itchlob "github.com/NimbleMarkets/itch-lob"
	"github.com/NimbleMarkets/itch-lob/itch50"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Messages", func() {
	Context("SystemEventMessage", func() {
		It("decodes the header and code", func() {
			payload := frame('S', 7, 1, 34_200_000_000_000, []byte{'O'})
			var m itch50.SystemEventMessage
			Expect(m.FillRaw(payload)).To(Succeed())
			Expect(m.Opcode()).To(Equal(itch50.OpcodeSystemEvent))
			Expect(m.StockLocate).To(Equal(uint16(7)))
			Expect(m.TrackingNumber).To(Equal(uint16(1)))
			Expect(m.TimestampNanos).To(Equal(int64(34_200_000_000_000)))
			Expect(m.Code).To(Equal(byte('O')))
		})

		It("rejects a payload shorter than its fixed size", func() {
			var m itch50.SystemEventMessage
			err := m.FillRaw([]byte{'S', 0, 0})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("payload shorter than expected"))
		})

		It("round-trips through Raw back into an identical decode", func() {
			payload := frame('S', 7, 1, 34_200_000_000_000, []byte{'O'})
			var m itch50.SystemEventMessage
			Expect(m.FillRaw(payload)).To(Succeed())

			raw, err := m.Raw()
			Expect(err).To(BeNil())
			Expect(raw).To(Equal(payload))

			var roundTripped itch50.SystemEventMessage
			Expect(roundTripped.FillRaw(raw)).To(Succeed())
			Expect(roundTripped).To(Equal(m))
		})

		It("validates a known system event code", func() {
			m := itch50.SystemEventMessage{Code: 'O'}
			Expect(m.Validate()).To(Succeed())
		})

		It("rejects an unrecognized system event code", func() {
			m := itch50.SystemEventMessage{Code: '?'}
			err := m.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err).To(MatchError(itchlob.ErrInvalidCode))
		})
	})

	Context("AddOrderMessage", func() {
		It("decodes order reference, side, shares, symbol and price", func() {
			body := make([]byte, 25)
			binary.BigEndian.PutUint64(body[0:8], 123456)
			body[8] = 'B'
			binary.BigEndian.PutUint32(body[9:13], 100)
			putStock(body[13:21], "AAPL")
			binary.BigEndian.PutUint32(body[21:25], 1505000)

			payload := frame('A', 7, 1, 1_000_000, body)
			var m itch50.AddOrderMessage
			Expect(m.FillRaw(payload)).To(Succeed())
			Expect(m.OrderRef).To(Equal(uint64(123456)))
			Expect(m.BSIndicator).To(Equal(byte('B')))
			Expect(m.Shares).To(Equal(uint32(100)))
			Expect(m.Stock).To(Equal("AAPL"))
			Expect(m.Price).To(Equal(uint32(1505000)))
		})

		It("round-trips through Raw back into an identical decode", func() {
			body := make([]byte, 25)
			binary.BigEndian.PutUint64(body[0:8], 123456)
			body[8] = 'B'
			binary.BigEndian.PutUint32(body[9:13], 100)
			putStock(body[13:21], "AAPL")
			binary.BigEndian.PutUint32(body[21:25], 1505000)
			payload := frame('A', 7, 1, 1_000_000, body)

			var m itch50.AddOrderMessage
			Expect(m.FillRaw(payload)).To(Succeed())

			raw, err := m.Raw()
			Expect(err).To(BeNil())
			Expect(raw).To(Equal(payload))
		})
	})

	Context("OrderExecutedMessage", func() {
		It("decodes order reference, shares and match number", func() {
			body := make([]byte, 20)
			binary.BigEndian.PutUint64(body[0:8], 123456)
			binary.BigEndian.PutUint32(body[8:12], 50)
			binary.BigEndian.PutUint64(body[12:20], 999)

			payload := frame('E', 7, 1, 1_000_000, body)
			var m itch50.OrderExecutedMessage
			Expect(m.FillRaw(payload)).To(Succeed())
			Expect(m.OrderRef).To(Equal(uint64(123456)))
			Expect(m.Shares).To(Equal(uint32(50)))
			Expect(m.MatchNum).To(Equal(uint64(999)))
		})

		It("round-trips through Raw back into an identical decode", func() {
			body := make([]byte, 20)
			binary.BigEndian.PutUint64(body[0:8], 123456)
			binary.BigEndian.PutUint32(body[8:12], 50)
			binary.BigEndian.PutUint64(body[12:20], 999)
			payload := frame('E', 7, 1, 1_000_000, body)

			var m itch50.OrderExecutedMessage
			Expect(m.FillRaw(payload)).To(Succeed())

			raw, err := m.Raw()
			Expect(err).To(BeNil())
			Expect(raw).To(Equal(payload))
		})
	})

	Context("StockDirectoryMessage", func() {
		It("validates Category, Status and RoundLotsOnly", func() {
			valid := itch50.StockDirectoryMessage{
				Category: 'Q', Status: 'N', RoundLotsOnly: 'Y',
			}
			Expect(valid.Validate()).To(Succeed())

			invalid := itch50.StockDirectoryMessage{
				Category: '!', Status: 'N', RoundLotsOnly: 'Y',
			}
			err := invalid.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err).To(MatchError(itchlob.ErrInvalidCode))
		})
	})

	Context("unknown opcode via Decode", func() {
		It("reports UnknownOpcodeError", func() {
			_, err := itch50.Decode([]byte{'!'})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown opcode"))
		})

		It("reports ErrShortPayload for an empty payload", func() {
			_, err := itch50.Decode(nil)
			Expect(err).To(Equal(itchlob.ErrShortPayload))
		})
	})
})
