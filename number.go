package csstree

// Number returns the number of bytes that parse as a number of the regex format (+|-)?([0-9]+(\.[0-9]+)?|\.[0-9]+)((e|E)(+|-)?[0-9]+)?.
func Number(b string) int {
	if len(b) == 0 {
		return 0
	}
	i := 0
	if b[i] == '+' || b[i] == '-' {
		i++
		if i >= len(b) {
			return 0
		}
	}
	firstDigit := isDigit(b[i])
	if firstDigit {
		i++
		for i < len(b) && isDigit(b[i]) {
			i++
		}
	}
	if i < len(b) && b[i] == '.' {
		i++
		if i < len(b) && isDigit(b[i]) {
			i++
			for i < len(b) && isDigit(b[i]) {
				i++
			}
		} else if firstDigit {
			// . could belong to the next token
			return i - 1
		} else {
			return 0
		}
	} else if !firstDigit {
		return 0
	}
	iOld := i
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		i++
		if i < len(b) && (b[i] == '+' || b[i] == '-') {
			i++
		}
		if i >= len(b) || !isDigit(b[i]) {
			// e could belong to the unit
			return iOld
		}
		for i < len(b) && isDigit(b[i]) {
			i++
		}
	}
	return i
}

// Dimension parses a number followed by an optional unit of ASCII letters or a percent sign. It returns the lengths of the number and of the unit.
func Dimension(b string) (int, int) {
	num := Number(b)
	if num == 0 || num == len(b) {
		return num, 0
	} else if b[num] == '%' {
		return num, 1
	} else if isLetter(b[num]) {
		i := num + 1
		for i < len(b) && isLetter(b[i]) {
			i++
		}
		return num, i - num
	}
	return num, 0
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
