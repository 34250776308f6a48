package srcstream

// PeekStream is a restartable read-ahead over a SourceIterator (§4.3).
// The Formatter uses it for closing header look-ahead — joining a lone
// opening brace or a cuddled else/catch/finally/while onto the previous
// physical line (see Formatter.tryMergeForward). The return-type split
// scan (§4.1.5) and the indentable-preprocessor-block scan (§4.1 step 6)
// are named consumers in the wider design but have no implementation yet
// (see DESIGN.md's simplifications list). Every consumer acquires a
// Checkpoint, reads ahead with Next, and either commits or Restore()s the
// iterator to where it started.
type PeekStream struct {
	src SourceIterator
}

// New wraps src for checkpointed read-ahead.
func New(src SourceIterator) *PeekStream {
	return &PeekStream{src: src}
}

// Checkpoint is a saved read position. Restore rewinds the underlying
// iterator to it; the same checkpoint can be restored more than once.
type Checkpoint struct {
	pos int
}

// Mark records the current position for later Restore.
func (p *PeekStream) Mark() Checkpoint {
	return Checkpoint{pos: p.src.Tell()}
}

// Restore rewinds the iterator to cp. Safe to call multiple times.
func (p *PeekStream) Restore(cp Checkpoint) {
	p.src.SeekTo(cp.pos)
}

// Next reads and consumes the next line, or returns ok=false at EOF.
// Unlike the SourceIterator's own NextLine this is only ever used inside
// a Mark/Restore bracket, so the emptyLineWasDeleted bookkeeping the
// underlying iterator wants doesn't apply — Next always passes false.
func (p *PeekStream) Next() (string, bool) {
	return p.src.NextLine(false)
}

// PeekText scans ahead up to maxLines (0 = unbounded) without permanently
// consuming them, calling fn on each candidate line. fn returns
// stop=true to end the scan early (e.g. once a `;` or matching brace is
// found). The iterator is always restored to its entry position before
// PeekText returns — the scan is side-effect free from the caller's
// point of view.
func (p *PeekStream) PeekText(maxLines int, fn func(line string, lineIdx int) (stop bool)) {
	cp := p.Mark()
	defer p.Restore(cp)

	i := 0
	for p.src.HasMoreLines() {
		if maxLines > 0 && i >= maxLines {
			return
		}
		line, ok := p.src.NextLine(false)
		if !ok {
			return
		}
		if fn(line, i) {
			return
		}
		i++
	}
}
