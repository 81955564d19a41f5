package source

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// readChunkSize bounds a single read from a file or pipe.
const readChunkSize = 1024

// streamReader reads raw bytes in bounded chunks and converts them to
// text, holding back a trailing partial UTF-8 sequence until the next
// read completes it.
type streamReader struct {
	r       io.Reader
	pending []byte
	eof     bool
}

func (s *streamReader) readChunk() ([]Fragment, error) {
	if s.eof {
		return nil, nil
	}
	buf := make([]byte, readChunkSize)
	n, err := s.r.Read(buf)
	if n > 0 {
		s.pending = append(s.pending, buf[:n]...)
	}
	if err == io.EOF || (n == 0 && err == nil) {
		s.eof = true
		if len(s.pending) == 0 {
			return nil, nil
		}
		// Flush whatever is left, complete or not.
		text := string(s.pending)
		s.pending = nil
		return []Fragment{{Text: text}}, nil
	}
	if err != nil {
		s.eof = true
		return nil, err
	}

	cut := completeBoundary(s.pending)
	if cut == 0 {
		return nil, nil
	}
	text := string(s.pending[:cut])
	s.pending = s.pending[cut:]
	return []Fragment{{Text: text}}, nil
}

// completeBoundary returns the length of the longest prefix of b that
// ends on a complete UTF-8 sequence.
func completeBoundary(b []byte) int {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if utf8.FullRune(b[i:]) {
				return len(b)
			}
			return i
		}
	}
	return len(b)
}

// File streams the contents of a file on disk.
type File struct {
	name   string
	f      *os.File
	stream streamReader
}

// NewFile opens path for paging. Open failures (missing file,
// permission denied) surface here, before any streaming starts.
func NewFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err == nil && info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return &File{name: path, f: f, stream: streamReader{r: f}}, nil
}

func (s *File) Name() string { return s.name }
func (s *File) AtEnd() bool  { return s.stream.eof }
func (s *File) Close() error { return s.f.Close() }

func (s *File) ReadChunk() ([]Fragment, error) {
	return s.stream.readChunk()
}

// Pipe streams from an already-open, non-seekable file descriptor,
// typically standard input of the pager process.
type Pipe struct {
	name   string
	f      *os.File
	stream streamReader
}

// NewPipe wraps an open descriptor such as os.Stdin.
func NewPipe(name string, f *os.File) *Pipe {
	return &Pipe{name: name, f: f, stream: streamReader{r: f}}
}

func (s *Pipe) Name() string { return s.name }
func (s *Pipe) AtEnd() bool  { return s.stream.eof }
func (s *Pipe) Close() error { return s.f.Close() }

func (s *Pipe) ReadChunk() ([]Fragment, error) {
	return s.stream.readChunk()
}
