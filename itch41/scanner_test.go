// Copyright (c) 2024 Neomantra Corp

package itch41_test

import (
	"bytes"
	"io"

	"github.com/NimbleMarkets/itch-lob/itch41"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func frameBytes(payload []byte) []byte {
	return append([]byte{0x00, byte(len(payload))}, payload...)
}

type spyVisitor struct {
	itch41.NullVisitor
	lastCalled string
}

func (v *spyVisitor) OnSeconds(m *itch41.SecondsMessage) error {
	v.lastCalled = "OnSeconds"
	return nil
}

func (v *spyVisitor) OnAddOrder(m *itch41.AddOrderMessage) error {
	v.lastCalled = "OnAddOrder"
	return nil
}

var _ = Describe("Scanner", func() {
	It("dispatches a SecondsMessage frame to OnSeconds", func() {
		var buf bytes.Buffer
		body := make([]byte, 5)
		body[0] = 'T'
		buf.Write(frameBytes(body))

		s := itch41.NewScanner(&buf)
		v := &spyVisitor{}

		Expect(s.Next()).To(BeTrue())
		Expect(s.Opcode()).To(Equal(itch41.OpcodeSeconds))
		Expect(s.Visit(v)).To(Succeed())
		Expect(v.lastCalled).To(Equal("OnSeconds"))
	})

	It("dispatches AddOrder frames to OnAddOrder", func() {
		var buf bytes.Buffer
		body := make([]byte, 25)
		body[8] = 'B'
		putStock(body[13:21], "MSFT")
		buf.Write(frameBytes(frame('A', 0, body)))

		s := itch41.NewScanner(&buf)
		v := &spyVisitor{}

		Expect(s.Next()).To(BeTrue())
		Expect(s.Visit(v)).To(Succeed())
		Expect(v.lastCalled).To(Equal("OnAddOrder"))
	})

	It("reports an UnknownOpcodeError for an unrecognized opcode", func() {
		var buf bytes.Buffer
		buf.Write(frameBytes([]byte{'!'}))

		s := itch41.NewScanner(&buf)
		Expect(s.Next()).To(BeTrue())
		err := s.Visit(itch41.NullVisitor{})
		Expect(err).To(HaveOccurred())
	})

	It("ends the stream with io.EOF", func() {
		s := itch41.NewScanner(&bytes.Buffer{})
		Expect(s.Next()).To(BeFalse())
		Expect(s.Error()).To(Equal(io.EOF))
	})
})
