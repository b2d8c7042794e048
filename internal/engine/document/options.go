package document

// Option is a functional option for configuring a Document.
type Option func(*Document)

// WithLineEnding sets the delimiter used for inserted line breaks.
func WithLineEnding(le LineEnding) Option {
	return func(d *Document) {
		d.lineEnding = le
	}
}

// WithCapacity preallocates room for n characters.
func WithCapacity(n int) Option {
	return func(d *Document) {
		if n > len(d.buf) {
			d.buf = make([]rune, n)
			d.gapEnd = n
		}
	}
}
