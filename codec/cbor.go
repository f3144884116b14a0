// Package codec encodes values stored in the registry namespaces.
// Encoding is CBOR Core Deterministic (RFC 8949 §4.2): the same record
// always produces the same bytes, so dumps of a namespace are comparable.
package codec

import (
	"github.com/fxamacker/cbor/v2"
)

var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Stored records are written by this module only; anything else is corruption.
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Diagnose renders data in CBOR extended diagnostic notation, for dumps.
func Diagnose(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	return cbor.Diagnose(data)
}
