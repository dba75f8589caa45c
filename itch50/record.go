// Copyright (c) 2024 Neomantra Corp

package itch50

// Record and RecordPtr[T] let the scanner decode into a caller-chosen
// concrete type without a vtable, adapted directly from
// _examples/NimbleMarkets-dbn-go/structs.go's identical generic pair.
type Record interface {
	Opcode() Opcode
}

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
