// Copyright (c) 2024 Neomantra Corp

package itch41

// Record is implemented by every decoded ITCH 4.1 message.
type Record interface {
	Opcode() Opcode
}

// RecordPtr constrains a pointer-to-T decoder the way
// _examples/NimbleMarkets-dbn-go/structs.go's generic record pattern does:
// T supplies storage, *T supplies the Record and FillRaw methods.
type RecordPtr[T any] interface {
	*T
	Record
	FillRaw([]byte) error
}

// RecordEncoder is RecordPtr's mirror image: *T supplies Record and Raw,
// the encode side of the decode/encode pair every variant exposes (§4.E).
type RecordEncoder[T any] interface {
	*T
	Record
	Raw() ([]byte, error)
}
