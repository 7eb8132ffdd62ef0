// Package mathutil holds small numeric helpers of the wire codecs.
package mathutil

import (
	"cmp"
	"io"
	"math"
	"math/bits"
	"strings"
)

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// ClampInt32 saturates v at the int32 bounds.
func ClampInt32(v int64) int32 {
	return int32(Clamp(v, math.MinInt32, math.MaxInt32))
}

// BitSet is a fixed length bit set as sent on the wire:
// bit i is bit i%8 of byte i/8.
type BitSet struct {
	Bytes []byte
}

func NewBitSet(length int) *BitSet {
	return &BitSet{Bytes: make([]byte, (length+7)/8)}
}

// ReadBitSet reads a bit set of length bits.
func ReadBitSet(rd io.Reader, length int) (*BitSet, error) {
	b := NewBitSet(length)
	if _, err := io.ReadFull(rd, b.Bytes); err != nil {
		return nil, err
	}
	return b, nil
}

// Set sets bit i, growing the set when i is out of range.
func (b *BitSet) Set(i int, value bool) {
	if n := i/8 + 1; n > len(b.Bytes) {
		b.Bytes = append(b.Bytes, make([]byte, n-len(b.Bytes))...)
	}
	if value {
		b.Bytes[i/8] |= 1 << (i % 8)
	} else {
		b.Bytes[i/8] &^= 1 << (i % 8)
	}
}

// Get reports bit i. Bits out of range are unset.
func (b *BitSet) Get(i int) bool {
	if i < 0 || i/8 >= len(b.Bytes) {
		return false
	}
	return b.Bytes[i/8]&(1<<(i%8)) != 0
}

// Count returns the number of set bits.
func (b *BitSet) Count() (n int) {
	for _, v := range b.Bytes {
		n += bits.OnesCount8(v)
	}
	return n
}

func (b *BitSet) String() string {
	var sb strings.Builder
	for i := range len(b.Bytes) * 8 {
		if b.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
