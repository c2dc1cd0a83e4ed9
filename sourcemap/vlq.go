package sourcemap

import "errors"

const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var base64Values = func() [256]int8 {
	var values [256]int8
	for i := range values {
		values[i] = -1
	}
	for i := 0; i < len(base64Chars); i++ {
		values[base64Chars[i]] = int8(i)
	}
	return values
}()

// ErrBadMappings is returned when decoding malformed mappings.
var ErrBadMappings = errors.New("bad source map mappings")

// appendVLQ appends v as a Base64 VLQ, with the sign in the least significant bit.
func appendVLQ(b []byte, v int) []byte {
	u := v << 1
	if v < 0 {
		u = -v<<1 | 1
	}
	for {
		digit := u & 31
		u >>= 5
		if 0 < u {
			digit |= 32
		}
		b = append(b, base64Chars[digit])
		if u == 0 {
			return b
		}
	}
}

// readVLQ decodes a Base64 VLQ from the start of s and returns it with the number of bytes read.
func readVLQ(s string) (int, int, error) {
	u, shift := 0, 0
	for i := 0; i < len(s); i++ {
		digit := base64Values[s[i]]
		if digit < 0 {
			return 0, 0, ErrBadMappings
		}
		u |= int(digit&31) << shift
		shift += 5
		if digit&32 == 0 {
			if u&1 == 1 {
				return -(u >> 1), i + 1, nil
			}
			return u >> 1, i + 1, nil
		}
	}
	return 0, 0, ErrBadMappings
}
