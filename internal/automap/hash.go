package automap

// HashMax is the exclusive upper bound of HashLocation.
const HashMax = 65536

// hashUint is a 32-bit integer finalizer. Every operation wraps modulo
// 2^32; changing any constant or shift changes every generated map.
func hashUint(n uint32) uint32 {
	v := n + 1
	v ^= v >> 17
	v *= 0xED5AD4BB
	v ^= v >> 11
	v *= 0xAC4C1B51
	v ^= v >> 15
	v *= 0x31848BAB
	v ^= v >> 14

	return v
}

// HashLocation returns a value in [0, HashMax) determined only by its
// arguments. It is the sole source of randomness of the automapper, so
// peers running the same rules with the same seed agree on every cell.
func HashLocation(seed, run, rule, x, y uint32) uint32 {
	const prime = 31

	h := uint32(1)
	h = h*prime + hashUint(seed)
	h = h*prime + hashUint(run)
	h = h*prime + hashUint(rule)
	h = h*prime + hashUint(x)
	h = h*prime + hashUint(y)
	h = hashUint(h * prime)

	return h % HashMax
}
