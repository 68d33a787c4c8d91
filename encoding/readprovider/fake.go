package readprovider

// FakeRecord is an in-memory Record.
type FakeRecord struct {
	S, Q []byte
}

// Seq implements Record.
func (r *FakeRecord) Seq() []byte { return r.S }

// Qual implements Record.
func (r *FakeRecord) Qual() []byte { return r.Q }

// NewRecord creates a FakeRecord from a base string and a Phred+33 quality
// string.  It panics if their lengths differ.
func NewRecord(seq, qual string) *FakeRecord {
	if len(seq) != len(qual) {
		panic("seq and qual must be equal length")
	}
	return &FakeRecord{S: []byte(seq), Q: []byte(qual)}
}

// fakeSource is only for unittests. It yields the given records.
type fakeSource struct {
	recs   []*FakeRecord
	cur    *FakeRecord
	closed bool
}

// NewFakeSource creates a Source that yields recs, in order.
func NewFakeSource(recs []*FakeRecord) Source {
	return &fakeSource{recs: recs}
}

func (s *fakeSource) Scan() bool {
	if len(s.recs) == 0 {
		return false
	}
	s.cur, s.recs = s.recs[0], s.recs[1:]
	return true
}

func (s *fakeSource) Record() Record { return s.cur }

func (s *fakeSource) Err() error { return nil }

func (s *fakeSource) Close() error {
	if s.closed {
		panic("fakeSource closed twice")
	}
	s.closed = true
	return nil
}
