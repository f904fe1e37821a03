package reader

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/russross/cleanhtml/doctree"
	"github.com/russross/cleanhtml/settings"
)

// ErrUnknownDialect is returned by Lookup for names nobody registered.
var ErrUnknownDialect = errors.New("unknown markup dialect")

// A Reader parses source text into a document tree.
type Reader interface {
	Read(src string, s settings.Settings) (*doctree.Node, error)
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(src string, s settings.Settings) (*doctree.Node, error)

func (f ReaderFunc) Read(src string, s settings.Settings) (*doctree.Node, error) {
	return f(src, s)
}

var (
	readersMu sync.RWMutex
	readers   = make(map[string]Reader)
)

// Register makes a reader available under name. It panics if name is
// registered twice or r is nil.
func Register(name string, r Reader) {
	readersMu.Lock()
	defer readersMu.Unlock()
	if r == nil {
		panic("reader: Register reader is nil")
	}
	if _, dup := readers[name]; dup {
		panic("reader: Register called twice for reader " + name)
	}
	readers[name] = r
}

// Lookup returns the reader registered as name.
func Lookup(name string) (Reader, error) {
	readersMu.RLock()
	r, ok := readers[name]
	readersMu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDialect, "%q", name)
	}
	return r, nil
}

// Dialects returns the sorted names of the registered readers.
func Dialects() []string {
	readersMu.RLock()
	defer readersMu.RUnlock()
	names := make([]string, 0, len(readers))
	for name := range readers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
