package screen

// Pager holds a zero-based position into a sequence of fixed length.
// The index never leaves [0, length-1] while length > 0.
type Pager struct {
	index  int
	length int
}

// NewPager returns a Pager positioned at the first element.
func NewPager(length int) Pager {
	if length < 0 {
		length = 0
	}
	return Pager{length: length}
}

func (p *Pager) Index() int { return p.index }

func (p *Pager) Len() int { return p.length }

// Prev moves one step back. It is a no-op at the first element.
func (p *Pager) Prev() {
	if p.index > 0 {
		p.index--
	}
}

// Next moves one step forward. It is a no-op at the last element.
func (p *Pager) Next() {
	if p.index < p.length-1 {
		p.index++
	}
}

func (p *Pager) CanPrev() bool {
	return p.index > 0
}

func (p *Pager) CanNext() bool {
	return p.length > 1 && p.index < p.length-1
}
