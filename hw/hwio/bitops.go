package hwio

func GetBit8(v uint8, n uint) bool {
	return GetBiti8(v, n) != 0
}

func GetBiti8(v uint8, n uint) uint8 {
	return v >> (n) & 0x01
}

func SetBit8(v *uint8, n uint) {
	*v |= (1 << n)
}

func ClearBit8(v *uint8, n uint) {
	*v &= ^(1 << n)
}

// WriteBit8 sets bit n of v if set is true, clears it otherwise.
func WriteBit8(v *uint8, n uint, set bool) {
	if set {
		SetBit8(v, n)
	} else {
		ClearBit8(v, n)
	}
}

// CopyBits8 returns dst with the bits selected by mask replaced by those of src.
func CopyBits8(dst, src, mask uint8) uint8 {
	return dst&^mask | src&mask
}
