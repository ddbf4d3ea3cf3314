package params

import "fmt"

// Hash returns the receiver hash the Heavy runtime derives from a name,
// formatted the way the compiler writes it ("0x1A2B3C4D").
func Hash(name string) string {
	return fmt.Sprintf("0x%08X", hashString(name))
}

// hashString is MurmurHash2 seeded with the input length.
func hashString(s string) uint32 {
	const (
		m = 0x5bd1e995
		r = 24
	)

	b := []byte(s)
	h := uint32(len(b))

	for len(b) >= 4 {
		k := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
		k *= m
		k ^= k >> r
		k *= m
		h *= m
		h ^= k
		b = b[4:]
	}

	switch len(b) {
	case 3:
		h ^= uint32(b[2]) << 16
		fallthrough
	case 2:
		h ^= uint32(b[1]) << 8
		fallthrough
	case 1:
		h ^= uint32(b[0])
		h *= m
	}

	h ^= h >> 13
	h *= m
	h ^= h >> 15

	return h
}
