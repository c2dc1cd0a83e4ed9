package css

const ringSize = 20

// ring holds the most recently lexed words, which is used to recognize url( without rescanning.
type ring struct {
	words [ringSize][]byte
	head  int
	n     int
}

func (r *ring) push(word []byte) {
	r.words[r.head] = word
	r.head = (r.head + 1) % ringSize
	if r.n < ringSize {
		r.n++
	}
}

// pop removes and returns the most recent word, or nil if the ring is empty.
func (r *ring) pop() []byte {
	if r.n == 0 {
		return nil
	}
	r.head = (r.head + ringSize - 1) % ringSize
	r.n--
	word := r.words[r.head]
	r.words[r.head] = nil
	return word
}
