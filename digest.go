package colorhash

import (
	"crypto/sha256"
	"encoding/binary"
)

// digest reduces an input string to a single unsigned 32-bit integer: the
// first four bytes of its SHA-256 sum, read big-endian. A SHA-256 sum is
// always 32 bytes, so the read can never come up short; every derivation
// step downstream draws its entropy from the returned value.
func digest(input string) uint32 {
	sum := sha256.Sum256([]byte(input))
	return binary.BigEndian.Uint32(sum[:4])
}
