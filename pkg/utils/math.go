package utils

import "math/bits"

const maxIntHeadBit = 1 << (bits.UintSize - 2)

// IsPowerOfTwo reports whether the given n is a power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// CeilToPowerOfTwo returns n if it is a power-of-two, otherwise the
// next-highest power-of-two.
func CeilToPowerOfTwo(n int) int {
	if n > maxIntHeadBit {
		panic("argument is too large")
	}
	if n <= 2 {
		return 2
	}
	return 1 << bits.Len(uint(n-1))
}
