// Copyright (c) 2024 Neomantra Corp

package itch50_test

import (
	"bytes"
	"io"

	"github.com/NimbleMarkets/itch-lob/itch50"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func frameBytes(payload []byte) []byte {
	return append([]byte{0x00, byte(len(payload))}, payload...)
}

// spyVisitor embeds itch50.NullVisitor and records which method last fired.
type spyVisitor struct {
	itch50.NullVisitor
	lastCalled string
}

func (v *spyVisitor) OnSystemEvent(m *itch50.SystemEventMessage) error {
	v.lastCalled = "OnSystemEvent"
	return nil
}

func (v *spyVisitor) OnAddOrder(m *itch50.AddOrderMessage) error {
	v.lastCalled = "OnAddOrder"
	return nil
}

var _ = Describe("Scanner", func() {
	It("dispatches a decoded frame to the matching Visitor method", func() {
		var buf bytes.Buffer
		buf.Write(frameBytes(frame('S', 1, 1, 0, []byte{'O'})))

		s := itch50.NewScanner(&buf)
		v := &spyVisitor{}

		Expect(s.Next()).To(BeTrue())
		Expect(s.Opcode()).To(Equal(itch50.OpcodeSystemEvent))
		Expect(s.Visit(v)).To(Succeed())
		Expect(v.lastCalled).To(Equal("OnSystemEvent"))
	})

	It("dispatches AddOrder frames distinctly from SystemEvent frames", func() {
		var buf bytes.Buffer
		body := make([]byte, 25)
		body[8] = 'B'
		putStock(body[13:21], "AAPL")
		buf.Write(frameBytes(frame('A', 1, 1, 0, body)))

		s := itch50.NewScanner(&buf)
		v := &spyVisitor{}

		Expect(s.Next()).To(BeTrue())
		Expect(s.Visit(v)).To(Succeed())
		Expect(v.lastCalled).To(Equal("OnAddOrder"))
	})

	It("reports an UnknownOpcodeError for an unrecognized opcode", func() {
		var buf bytes.Buffer
		buf.Write(frameBytes([]byte{'!'}))

		s := itch50.NewScanner(&buf)
		Expect(s.Next()).To(BeTrue())
		err := s.Visit(itch50.NullVisitor{})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unknown opcode"))
	})

	It("ends the stream with io.EOF", func() {
		s := itch50.NewScanner(&bytes.Buffer{})
		Expect(s.Next()).To(BeFalse())
		Expect(s.Error()).To(Equal(io.EOF))
	})
})
