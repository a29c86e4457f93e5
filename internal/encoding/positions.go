package encoding

// Bit layout of a Hamming(7,4) codeword, 0-based. Parity bits sit at the
// power-of-two positions (1, 2, 4 when counted from one).
const (
	PayloadLen  = 4
	CodewordLen = 7
)

var (
	ParityPositions = []int{0, 1, 3}
	DataPositions   = []int{2, 4, 5, 6}
)

// places maps a parity position to every position it covers, itself included.
var places map[int][]int

func init() {
	places = make(map[int][]int, len(ParityPositions))
	for _, p := range ParityPositions {
		for i := 0; i < CodewordLen; i++ {
			if (i+1)&(p+1) != 0 {
				places[p] = append(places[p], i)
			}
		}
	}
}

// Covers returns the positions checked by the parity bit at p.
func Covers(p int) []int {
	return places[p]
}

// Parity is the XOR of the bits covered by p, leaving p itself out.
func Parity(bits []byte, p int) byte {
	var par byte
	for _, i := range places[p] {
		if i == p {
			continue
		}
		par ^= bits[i]
	}
	return par
}
