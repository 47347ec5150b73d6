package codec

// packCodes writes each code as a bits-wide big-endian bit field into dst.
// dst must hold at least ceil(len(codes)*bits/8) bytes; the trailing bits are zero.
func packCodes(dst []byte, codes []uint32, bits int) {
	var acc uint64
	var nacc int
	pos := 0

	for _, c := range codes {
		acc = acc<<bits | uint64(c)
		nacc += bits
		for nacc >= 8 {
			nacc -= 8
			dst[pos] = byte(acc >> nacc)
			pos++
		}
	}

	if nacc > 0 {
		dst[pos] = byte(acc << (8 - nacc))
	}
}

// unpackCodes is the inverse of packCodes, calling emit for each of the n codes in order.
func unpackCodes(src []byte, n, bits int, emit func(i int, code uint32)) {
	var acc uint64
	var nacc int
	mask := uint64(1)<<bits - 1
	pos := 0

	for i := range n {
		for nacc < bits {
			acc = acc<<8 | uint64(src[pos])
			pos++
			nacc += 8
		}
		nacc -= bits
		emit(i, uint32((acc>>nacc)&mask))
	}
}
