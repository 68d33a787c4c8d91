package readprovider

import "github.com/grailbio/base/log"

// DefaultProgressInterval is the default number of records between progress
// messages.
const DefaultProgressInterval = 1 << 20

// WithProgress wraps src so that a progress message naming name is logged
// every "every" records. If every <= 0, src is returned unchanged.
func WithProgress(src Source, name string, every int) Source {
	if every <= 0 {
		return src
	}
	return &progressSource{Source: src, name: name, every: int64(every)}
}

type progressSource struct {
	Source
	name  string
	every int64
	n     int64
}

func (s *progressSource) Scan() bool {
	if !s.Source.Scan() {
		return false
	}
	s.n++
	if s.n%s.every == 0 {
		if s.every%(1<<20) == 0 {
			log.Printf("%s: %dMi reads", s.name, s.n>>20)
		} else {
			log.Printf("%s: %d reads", s.name, s.n)
		}
	}
	return true
}

func (s *progressSource) Close() error {
	err := s.Source.Close()
	log.Debug.Printf("%s: done, %d reads", s.name, s.n)
	return err
}
