package naga

// Checksum computes the XOR reduction checksum used by the Naga command
// frame. The device applies it over frame bytes 2..87.
func Checksum(data []byte) uint8 {
	var sum uint8
	for _, b := range data {
		sum ^= b
	}
	return sum
}
