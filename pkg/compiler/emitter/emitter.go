// Package emitter implements the low level conventions of the
// WebAssembly binary format: variable length integer encoding, length
// prefixed vectors, and the constant tables a code generator consumes
// when lowering a program into a module.
package emitter

import (
	"encoding/binary"
	"math"
)

// EncodeULEB128 encodes v with the canonical unsigned LEB128 scheme: 7
// payload bits per byte, continuation bit set on every byte except the
// last.
func EncodeULEB128(v uint64) []byte {
	var out []byte
	for v >= 0x80 {
		out = append(out, byte(v&0x7f)|0x80)
		v >>= 7
	}
	return append(out, byte(v&0x7f))
}

// EncodeSLEB128 encodes v with the signed LEB128 scheme, the immediate
// layout of OpI32Const.
func EncodeSLEB128(v int64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			return append(out, b)
		}
		out = append(out, b|0x80)
	}
}

// EncodeVector prefixes data with its LEB128 encoded length, the binary
// format convention for every vector.
// https://webassembly.github.io/spec/core/binary/conventions.html#binary-vec
func EncodeVector(data []byte) []byte {
	return append(EncodeULEB128(uint64(len(data))), data...)
}

// EncodeName encodes a name as a vector of its UTF-8 bytes.
func EncodeName(name string) []byte {
	return EncodeVector([]byte(name))
}

// EncodeF32 returns the IEEE 754 little-endian bytes of f, the immediate
// layout of OpF32Const.
func EncodeF32(f float32) []byte {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, math.Float32bits(f))
	return out
}
