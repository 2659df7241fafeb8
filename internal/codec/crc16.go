package codec

const crc16Poly = 0x1021

// CRC16CCITT computes CRC-16/CCITT with polynomial 0x1021, initial value
// 0x0000, MSB first and no final XOR (the XMODEM parameterisation).
func CRC16CCITT(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ crc16Poly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
