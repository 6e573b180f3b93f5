package render

// Digits is the decimal form of an unsigned integer, stored inline so that
// formatting never touches the heap.
type Digits struct {
	buf   [10]byte
	start int
}

// FormatUint returns the shortest decimal form of n; 0 formats as "0".
func FormatUint(n uint32) Digits {
	var d Digits
	i := len(d.buf)
	for {
		i--
		d.buf[i] = byte(n%10) + '0'
		n /= 10
		if n == 0 {
			break
		}
	}
	d.start = i
	return d
}

// Bytes returns the digits. The slice aliases d.
func (d *Digits) Bytes() []byte {
	return d.buf[d.start:]
}

func (d Digits) String() string {
	return string(d.buf[d.start:])
}

// appendUint appends the decimal form of n to b.
func appendUint(b []byte, n uint32) []byte {
	d := FormatUint(n)
	return append(b, d.Bytes()...)
}
