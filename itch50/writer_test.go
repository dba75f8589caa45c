// Copyright (c) 2024 Neomantra Corp

package itch50_test

import (
	"bytes"

	itchlob "github.com/NimbleMarkets/itch-lob"
	"github.com/NimbleMarkets/itch-lob/itch50"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// readFrames drains every framed payload out of buf for assertions.
func readFrames(buf *bytes.Buffer) [][]byte {
	r := itchlob.NewFramedReader(buf)
	var out [][]byte
	for r.Next() {
		cp := make([]byte, len(r.Payload()))
		copy(cp, r.Payload())
		out = append(out, cp)
	}
	return out
}

func directoryBody(symbol string) []byte {
	body := make([]byte, 28)
	putStock(body[0:8], symbol)
	return body
}

var _ = Describe("Writer", func() {
	It("only buffers frames for the symbols it was constructed with", func() {
		var out bytes.Buffer
		w := itch50.NewWriter(&out, []string{"AAPL"})

		aapl := frame('R', 1, 1, 0, directoryBody("AAPL"))
		msft := frame('R', 2, 1, 0, directoryBody("MSFT"))
		Expect(w.Process(aapl)).To(Succeed())
		Expect(w.Process(msft)).To(Succeed())
		Expect(w.Flush()).To(Succeed())

		frames := readFrames(&out)
		Expect(frames).To(HaveLen(1))
		Expect(frames[0]).To(Equal(aapl))
	})

	It("seeds a newly-opened symbol buffer with system-scope frames seen so far", func() {
		var out bytes.Buffer
		w := itch50.NewWriter(&out, nil)

		sysFrame := frame('S', 1, 1, 0, []byte{'O'})
		Expect(w.Process(sysFrame)).To(Succeed())

		dirFrame := frame('R', 1, 1, 0, directoryBody("AAPL"))
		Expect(w.Process(dirFrame)).To(Succeed())
		Expect(w.Flush()).To(Succeed())

		frames := readFrames(&out)
		Expect(frames).To(HaveLen(2))
		Expect(frames[0]).To(Equal(sysFrame))
		Expect(frames[1]).To(Equal(dirFrame))
	})

	It("only emits an execution once its order ref has been seen on a tracked symbol", func() {
		var out bytes.Buffer
		w := itch50.NewWriter(&out, []string{"AAPL"})

		addBody := make([]byte, 25)
		addBody[8] = 'B'
		putStock(addBody[13:21], "AAPL")
		addFrame := frame('A', 1, 1, 0, addBody)
		Expect(w.Process(addFrame)).To(Succeed())

		execBody := make([]byte, 20)
		execFrame := frame('E', 1, 1, 0, execBody)
		Expect(w.Process(execFrame)).To(Succeed())

		// an execution against an order ref never seen is silently dropped
		unknownExecBody := make([]byte, 20)
		unknownExecBody[7] = 99 // order ref 99, never added
		unknownExecFrame := frame('E', 1, 1, 0, unknownExecBody)
		Expect(w.Process(unknownExecFrame)).To(Succeed())

		Expect(w.Flush()).To(Succeed())
		frames := readFrames(&out)
		Expect(frames).To(HaveLen(2))
	})

	It("auto-flushes a symbol once its buffer exceeds MessageBuffer", func() {
		var out bytes.Buffer
		w := itch50.NewWriter(&out, []string{"AAPL"})
		w.MessageBuffer = 1

		dirFrame := frame('R', 1, 1, 0, directoryBody("AAPL"))
		Expect(w.Process(dirFrame)).To(Succeed())
		Expect(w.Process(dirFrame)).To(Succeed())
		Expect(w.Process(dirFrame)).To(Succeed())

		// the buffer should already have flushed once without an explicit Flush
		frames := readFrames(&out)
		Expect(len(frames)).To(BeNumerically(">", 0))
	})

	It("reports UnknownOpcodeError for an unrecognized opcode", func() {
		var out bytes.Buffer
		w := itch50.NewWriter(&out, nil)
		err := w.Process([]byte{'!'})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unknown opcode"))
	})
})
