// Package simfhe is a reference implementation of the fhe.Encryptor
// and fhe.EvalKey capabilities used by this repository's tests and by
// the fhegrep CLI's default mode.
//
// It is NOT a cryptographic implementation. Values are plain uint8s
// wrapped in Value; every "encrypted" operation is performed in the
// clear. It exists only because spec.md §1 places the real FHE
// primitive library out of scope, and the engine needs something
// concrete to drive through the fhe.EvalKey interface in tests and
// demos. Never use this package where confidentiality matters.
package simfhe

import "github.com/pkg/errors"

// Value is simfhe's Ciphertext: a plain byte, not encrypted at all.
type Value struct {
	b byte
}

// Byte returns the underlying plaintext byte. Standing in for
// decryption, since simfhe never encrypted anything to begin with.
func (v Value) Byte() byte { return v.b }

// Key is a no-op stand-in for a client/server key pair: both the
// Encryptor and the EvalKey capabilities are implemented by the same
// value, since there is no real key material to separate.
type Key struct{}

// NewKey returns a fresh simfhe Key. There is no randomness and
// nothing to generate; the constructor exists to mirror the
// gen_keys-style call sites a real FHE backend would need.
func NewKey() Key { return Key{} }

// EncryptByte "encrypts" a plaintext byte: it must be ASCII, matching
// the content precondition from spec.md §7 and
// original_source/src/regex/ciphertext.rs::encrypt_str's is_ascii
// check.
func (Key) EncryptByte(plain byte) (any, error) {
	if plain > 0x7f {
		return nil, errors.Errorf("simfhe: content byte 0x%02x is not ASCII", plain)
	}
	return Value{b: plain}, nil
}

// TrivialEncode wraps a constant byte with no encryption step.
func (Key) TrivialEncode(plain byte) any {
	return Value{b: plain}
}

func asValue(c any) Value {
	v, ok := c.(Value)
	if !ok {
		panic("simfhe: ciphertext did not originate from this package")
	}
	return v
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// UncheckedEq implements fhe.EvalKey.
func (Key) UncheckedEq(a, b any) any {
	return Value{b: boolByte(asValue(a).b == asValue(b).b)}
}

// UncheckedGe implements fhe.EvalKey.
func (Key) UncheckedGe(a, b any) any {
	return Value{b: boolByte(asValue(a).b >= asValue(b).b)}
}

// UncheckedLe implements fhe.EvalKey.
func (Key) UncheckedLe(a, b any) any {
	return Value{b: boolByte(asValue(a).b <= asValue(b).b)}
}

// UncheckedBitAnd implements fhe.EvalKey.
func (Key) UncheckedBitAnd(a, b any) any {
	return Value{b: asValue(a).b & asValue(b).b}
}

// UncheckedBitOr implements fhe.EvalKey.
func (Key) UncheckedBitOr(a, b any) any {
	return Value{b: asValue(a).b | asValue(b).b}
}

// UncheckedBitXor implements fhe.EvalKey.
func (Key) UncheckedBitXor(a, b any) any {
	return Value{b: asValue(a).b ^ asValue(b).b}
}

// EncryptString encrypts each byte of s independently, enforcing the
// ASCII content precondition per byte (spec.md §7). Mirrors
// original_source/src/regex/ciphertext.rs::encrypt_str.
func EncryptString(key Key, s string) ([]any, error) {
	out := make([]any, len(s))
	for i := 0; i < len(s); i++ {
		ct, err := key.EncryptByte(s[i])
		if err != nil {
			return nil, errors.Wrapf(err, "encrypting byte %d", i)
		}
		out[i] = ct
	}
	return out, nil
}

// Decrypt returns the plaintext byte behind a simfhe ciphertext.
func Decrypt(c any) byte {
	return asValue(c).b
}
