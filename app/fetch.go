package main

// fetchSeq numbers a view's loads so that a response arriving for a
// superseded load is discarded instead of applied. This is the only
// concurrency control in the client: no cancellation reaches the
// transport, late responses are simply dropped on the UI goroutine.
type fetchSeq int

func (s *fetchSeq) next() fetchSeq {
	*s++
	return *s
}

func (s *fetchSeq) current(v fetchSeq) bool {
	return v == *s
}
