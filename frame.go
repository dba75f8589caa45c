// Copyright (c) 2024 Neomantra Corp

package itchlob

import (
	"bufio"
	"io"
)

// DefaultDecodeBufferSize sizes the bufio.Reader wrapping the source
// stream; matches the teacher's DbnScanner default.
const DefaultDecodeBufferSize = 16 * 1024

// MaxFrameSize is the largest payload a single frame can carry — LEN is a
// single byte, so 255 is the wire-format ceiling (§6).
const MaxFrameSize = 255

// FramedReader pulls `{0x00, LEN:u8, PAYLOAD:LEN bytes}` records off a byte
// stream (§4.F, §6). It is pull-based like the teacher's DbnScanner: call
// Next() to advance, then Payload()/Opcode() to inspect the current frame.
// Grounded structurally on
// _examples/NimbleMarkets-dbn-go/dbn_scanner.go's DbnScanner, generalized
// from DBN's word-counted header framing to ITCH's explicit marker byte,
// and on
// _examples/original_source/src/meatpy/itch50/itch50_message_reader.py's
// _read_messages for the partial-frame-at-EOF behavior.
type FramedReader struct {
	buffReader *bufio.Reader
	lastError  error
	lastFrame  []byte
	lastSize   int
}

// NewFramedReader wraps r with a buffered framing reader.
func NewFramedReader(r io.Reader) *FramedReader {
	return &FramedReader{
		buffReader: bufio.NewReaderSize(r, DefaultDecodeBufferSize),
		lastFrame:  make([]byte, MaxFrameSize),
	}
}

// Next advances to the next frame. It returns false at end of stream or on
// any error — including a non-zero framing byte or a payload truncated by
// EOF — with the cause available from Error().
func (s *FramedReader) Next() bool {
	marker, err := s.buffReader.ReadByte()
	if err != nil {
		s.lastError = err
		s.lastSize = 0
		return false
	}
	if marker != 0 {
		s.lastError = ErrInvalidFrame
		s.lastSize = 0
		return false
	}

	lenByte, err := s.buffReader.ReadByte()
	if err != nil {
		s.lastError = err
		s.lastSize = 0
		return false
	}
	mustRead := int(lenByte)

	_, err = io.ReadFull(s.buffReader, s.lastFrame[:mustRead])
	if err != nil {
		// A partial trailing frame at EOF is not a decode failure — discard
		// the bytes read so far and report a clean end of stream.
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			s.lastError = io.EOF
		} else {
			s.lastError = err
		}
		s.lastSize = 0
		return false
	}
	s.lastError = nil
	s.lastSize = mustRead
	return true
}

// Error returns the cause of the last failed Next(); may be io.EOF for a
// clean end of stream.
func (s *FramedReader) Error() error {
	return s.lastError
}

// Payload returns the current frame's payload bytes. The slice is reused
// by the next call to Next() — copy it if it must outlive that call.
func (s *FramedReader) Payload() []byte {
	return s.lastFrame[:s.lastSize]
}

// Opcode returns the current frame's leading opcode byte.
func (s *FramedReader) Opcode() byte {
	if s.lastSize == 0 {
		return 0
	}
	return s.lastFrame[0]
}
