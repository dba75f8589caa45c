// Copyright (c) 2024 Neomantra Corp

package itchlob_test

import (
	"bytes"
	"io"

	itchlob "github.com/NimbleMarkets/itch-lob"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func frameBytes(payload []byte) []byte {
	return append([]byte{0x00, byte(len(payload))}, payload...)
}

var _ = Describe("FramedReader", func() {
	Context("well-formed stream", func() {
		It("reads consecutive frames in order", func() {
			var buf bytes.Buffer
			buf.Write(frameBytes([]byte{'A', 1, 2, 3}))
			buf.Write(frameBytes([]byte{'B', 9}))

			r := itchlob.NewFramedReader(&buf)

			Expect(r.Next()).To(BeTrue())
			Expect(r.Opcode()).To(Equal(byte('A')))
			Expect(r.Payload()).To(Equal([]byte{'A', 1, 2, 3}))

			Expect(r.Next()).To(BeTrue())
			Expect(r.Opcode()).To(Equal(byte('B')))
			Expect(r.Payload()).To(Equal([]byte{'B', 9}))

			Expect(r.Next()).To(BeFalse())
			Expect(r.Error()).To(Equal(io.EOF))
		})

		It("handles a zero-length payload frame", func() {
			var buf bytes.Buffer
			buf.Write([]byte{0x00, 0x00})
			r := itchlob.NewFramedReader(&buf)

			Expect(r.Next()).To(BeTrue())
			Expect(r.Payload()).To(BeEmpty())
			Expect(r.Opcode()).To(Equal(byte(0)))
		})
	})

	Context("malformed stream", func() {
		It("fails on a non-zero framing byte", func() {
			var buf bytes.Buffer
			buf.Write([]byte{0x01, 0x01, 'A'})
			r := itchlob.NewFramedReader(&buf)

			Expect(r.Next()).To(BeFalse())
			Expect(r.Error()).To(Equal(itchlob.ErrInvalidFrame))
		})
	})

	Context("trailing partial frame", func() {
		It("stops cleanly at EOF instead of surfacing the truncated payload", func() {
			var buf bytes.Buffer
			buf.Write([]byte{0x00, 0x05, 'A', 'B'})
			r := itchlob.NewFramedReader(&buf)

			Expect(r.Next()).To(BeFalse())
			Expect(r.Error()).To(Equal(io.EOF))
		})
	})

	Context("empty stream", func() {
		It("reports io.EOF on the first Next", func() {
			r := itchlob.NewFramedReader(&bytes.Buffer{})
			Expect(r.Next()).To(BeFalse())
			Expect(r.Error()).To(Equal(io.EOF))
		})
	})
})
