// Copyright (c) 2024 Neomantra Corp

package itch41_test

import (
	"bytes"
	"encoding/binary"

	itchlob "github.com/NimbleMarkets/itch-lob"
	"github.com/NimbleMarkets/itch-lob/itch41"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

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
	body := make([]byte, 15)
	putStock(body[0:8], symbol)
	return body
}

var _ = Describe("Writer", func() {
	It("only buffers frames for the symbols it was constructed with", func() {
		var out bytes.Buffer
		w := itch41.NewWriter(&out, []string{"MSFT"})

		msft := frame('R', 0, directoryBody("MSFT"))
		aapl := frame('R', 0, directoryBody("AAPL"))
		Expect(w.Process(msft)).To(Succeed())
		Expect(w.Process(aapl)).To(Succeed())
		Expect(w.Flush()).To(Succeed())

		frames := readFrames(&out)
		Expect(frames).To(HaveLen(1))
		Expect(frames[0]).To(Equal(msft))
	})

	It("keeps system-scope frames in the same flat buffer as every other kept frame", func() {
		var out bytes.Buffer
		w := itch41.NewWriter(&out, []string{"MSFT"})

		secBody := make([]byte, 5)
		secBody[0] = 'T'
		Expect(w.Process(secBody)).To(Succeed())

		dirFrame := frame('R', 0, directoryBody("MSFT"))
		Expect(w.Process(dirFrame)).To(Succeed())
		Expect(w.Flush()).To(Succeed())

		frames := readFrames(&out)
		Expect(frames).To(HaveLen(2))
		Expect(frames[0]).To(Equal(secBody))
		Expect(frames[1]).To(Equal(dirFrame))
	})

	It("only emits an execution once its order ref has been seen on a tracked symbol", func() {
		var out bytes.Buffer
		w := itch41.NewWriter(&out, []string{"MSFT"})

		addBody := make([]byte, 25)
		addBody[8] = 'B'
		putStock(addBody[13:21], "MSFT")
		addFrame := frame('A', 0, addBody)
		Expect(w.Process(addFrame)).To(Succeed())

		execBody := make([]byte, 20)
		execFrame := frame('E', 0, execBody)
		Expect(w.Process(execFrame)).To(Succeed())

		// a second execution against a ref never added is silently dropped
		unknownExecBody := make([]byte, 20)
		binary.BigEndian.PutUint64(unknownExecBody[0:8], 99)
		Expect(w.Process(frame('E', 0, unknownExecBody))).To(Succeed())

		Expect(w.Flush()).To(Succeed())
		frames := readFrames(&out)
		Expect(frames).To(HaveLen(2))
	})

	It("auto-flushes once the buffer exceeds MessageBuffer", func() {
		var out bytes.Buffer
		w := itch41.NewWriter(&out, []string{"MSFT"})
		w.MessageBuffer = 1

		dirFrame := frame('R', 0, directoryBody("MSFT"))
		Expect(w.Process(dirFrame)).To(Succeed())
		Expect(w.Process(dirFrame)).To(Succeed())
		Expect(w.Process(dirFrame)).To(Succeed())

		frames := readFrames(&out)
		Expect(len(frames)).To(BeNumerically(">", 0))
	})

	It("reports UnknownOpcodeError for an unrecognized opcode", func() {
		var out bytes.Buffer
		w := itch41.NewWriter(&out, nil)
		err := w.Process([]byte{'!'})
		Expect(err).To(HaveOccurred())
	})
})
