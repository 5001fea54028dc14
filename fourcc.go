package dxbc

// FourCC is a four-character chunk tag stored little-endian, so the
// first character occupies the low byte.
type FourCC uint32

// MakeFourCC builds a tag from its four characters in reading order.
func MakeFourCC(a, b, c, d byte) FourCC {
	return FourCC(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

// String returns the tag's four characters, replacing non-printable
// bytes with '.'.
func (f FourCC) String() string {
	buf := [4]byte{byte(f), byte(f >> 8), byte(f >> 16), byte(f >> 24)}
	for i, c := range buf {
		if c < 0x20 || c > 0x7E {
			buf[i] = '.'
		}
	}
	return string(buf[:])
}

// Magic is the tag every DXBC container starts with.
var Magic = MakeFourCC('D', 'X', 'B', 'C')

// Well-known chunk tags. Signature tags come in families that newer
// compilers emit in place of the classic ones; lookups fall back in
// the order listed.
var (
	TagISGN = MakeFourCC('I', 'S', 'G', 'N') // input signature
	TagISG1 = MakeFourCC('I', 'S', 'G', '1') // input signature (newer)
	TagOSGN = MakeFourCC('O', 'S', 'G', 'N') // output signature
	TagOSG1 = MakeFourCC('O', 'S', 'G', '1') // output signature (newer)
	TagOSG5 = MakeFourCC('O', 'S', 'G', '5') // output signature (SM5 streams)
	TagPCSG = MakeFourCC('P', 'C', 'S', 'G') // patch-constant signature
	TagRDEF = MakeFourCC('R', 'D', 'E', 'F') // resource definitions
	TagSHDR = MakeFourCC('S', 'H', 'D', 'R') // shader body (SM4)
	TagSHEX = MakeFourCC('S', 'H', 'E', 'X') // shader body (SM5)
	TagSTAT = MakeFourCC('S', 'T', 'A', 'T') // instruction statistics
)
