package textfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/digitring"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// prefetch is the number of fragments a subscriber may lag behind the loader.
const prefetch = 4

// trailingSpace is the set of bytes stripped from the end of a digit file.
const trailingSpace = " \t\r\n\v\f"

// ErrNotRegular is flagged for paths which do not denote a regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// ErrShortRead is flagged if a file shrinks while it is being read.
var ErrShortRead = errors.New("textfile: not all bytes loaded for fragment")

// ErrLoaderClosed is flagged if the fragment loader of a file has already
// been shut down when a consumer subscribes.
var ErrLoaderClosed = errors.New("textfile: fragment loader closed")

// Observer is called for every fragment read from a digit file, in file order,
// with the fragment's start position within the file. Observers run on their
// own goroutine and must not modify frag.
type Observer func(pos int64, frag []byte)

// fragment is a piece of a digit file, as broadcast by the loader.
type fragment struct {
	pos  int64
	data []byte
	err  error
}

// digitFile represents an OS file which will be read as a digit sequence.
type digitFile struct {
	path     string         // file name
	info     os.FileInfo    // result from Stat(path)
	file     *os.File       // file handle
	cast     *caster.Caster // broadcaster for async fragment loading
	fragSize int64          // length of fragments to read
	stop     chan struct{}  // closed by the consumer to stop the loader early
}

// Load reads a file of decimal digits completely, excluding trailing
// whitespace. Clients may indicate a recommended fragment length, which may
// be 0, letting Load use sensible defaults.
//
// Load does not check the digits; this is left to the digitring functions
// the result is passed to.
func Load(name string, fragSize int64) ([]byte, error) {
	df, err := openFile(name, fragSize)
	if err != nil {
		return nil, err
	}
	defer df.file.Close()
	buf := make([]byte, 0, df.info.Size())
	err = df.stream(func(f fragment) error {
		buf = append(buf, f.data...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf, trailingSpace), nil
}

// Sum reads a file of decimal digits and returns the sum of all digits
// matching their circular successor, see digitring.SumMatching. The file is
// streamed fragment by fragment and never held in memory as a whole.
//
// Trailing whitespace is excluded. Any other non-digit is reported as a
// *digitring.InvalidDigitError, with Pos set to the byte position within
// the file.
func Sum(name string, fragSize int64, observers ...Observer) (uint64, error) {
	df, err := openFile(name, fragSize)
	if err != nil {
		return 0, err
	}
	defer df.file.Close()
	acc := digitring.NewAccumulator()
	st := &spaceTrimmer{w: acc}
	if err = df.stream(st.write, observers...); err != nil {
		return 0, err
	}
	tracer().Debugf("file %q: %d digits, %d trailing whitespace bytes", name, acc.Len(), st.held)
	return acc.Sum()
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string, fragSize int64) (*digitFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%q: %w", name, ErrNotRegular)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &digitFile{
		path:     name,
		info:     fi,
		file:     file,
		cast:     caster.New(context.Background()), // we will broadcast messages when fragments are loaded
		fragSize: defaultFragSize(fi.Size(), fragSize),
		stop:     make(chan struct{}),
	}, nil
}

func defaultFragSize(size int64, fragSize int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return fragSize
	}
	switch {
	case size < 64:
		fragSize = size
	case size < 1024:
		fragSize = 64
	case size < tenKb:
		fragSize = 256
	case size < hundredKb:
		fragSize = 512
	case size < oneMb:
		fragSize = twoKb
	default:
		fragSize = sixKb
	}
	return max(fragSize, 1)
}

// stream starts the loader goroutine and hands every fragment to consume, in
// file order. After consume fails, the loader is stopped and remaining
// fragments are drained. stream returns when the loader and all observers
// have terminated.
func (df *digitFile) stream(consume func(fragment) error, observers ...Observer) error {
	select {
	case <-df.cast.Done(): // Sub would hand out a closed channel
		return fmt.Errorf("%q: %w", df.path, ErrLoaderClosed)
	default:
	}
	ctx := context.Background()
	frags, ok := df.cast.Sub(ctx, prefetch)
	if !ok {
		return fmt.Errorf("%q: %w", df.path, ErrLoaderClosed)
	}
	done := make(chan struct{}, len(observers))
	for _, obs := range observers {
		ch, ok := df.cast.Sub(ctx, prefetch)
		if !ok {
			done <- struct{}{}
			continue
		}
		go func(obs Observer, ch <-chan interface{}) {
			defer func() { done <- struct{}{} }()
			for m := range ch {
				if f := m.(fragment); f.err == nil {
					obs(f.pos, f.data)
				}
			}
		}(obs, ch)
	}
	go df.loadAllFragments()
	var err error
	for m := range frags {
		if err != nil {
			continue // drain
		}
		f := m.(fragment)
		if err = f.err; err == nil {
			err = consume(f)
		}
		if err != nil {
			tracer().Debugf("file %q: stop loading: %v", df.path, err)
			close(df.stop)
		}
	}
	for range observers {
		<-done
	}
	return err
}

// --- File loading goroutine ------------------------------------------------

// loadAllFragments iterates over the file and broadcasts every fragment read.
// It closes the broadcaster when done, which in turn closes all subscriber
// channels.
func (df *digitFile) loadAllFragments() {
	defer df.cast.Close()
	size := df.info.Size()
	for pos := int64(0); pos < size; pos += df.fragSize {
		select {
		case <-df.stop:
			tracer().Debugf("file %q: loading stopped at position %d", df.path, pos)
			return
		default:
		}
		length := min(df.fragSize, size-pos)
		buf := make([]byte, length)
		cnt, err := df.file.ReadAt(buf, pos)
		if err != nil && err != io.EOF {
			df.cast.Pub(fragment{pos: pos, err: fmt.Errorf("error loading fragment of %q: %w", df.path, err)})
			return
		} else if int64(cnt) < length {
			df.cast.Pub(fragment{pos: pos, err: fmt.Errorf("%q at position %d: %w", df.path, pos, ErrShortRead)})
			return
		}
		df.cast.Pub(fragment{pos: pos, data: buf})
	}
}

// --- Trailing whitespace ---------------------------------------------------

// spaceTrimmer holds back whitespace at the end of every fragment until it
// is known whether more digits follow. Only the first held-back byte is
// remembered: if digits follow, it is an invalid digit anyway.
type spaceTrimmer struct {
	w        io.Writer
	held     int64 // number of held-back bytes
	heldPos  int64 // file position of first held-back byte
	heldChar byte
}

func (st *spaceTrimmer) write(f fragment) error {
	k := lastNonSpace(f.data)
	if k < 0 {
		st.hold(f.pos, f.data)
		return nil
	}
	if st.held > 0 {
		return &digitring.InvalidDigitError{Pos: uint64(st.heldPos), Char: st.heldChar}
	}
	if _, err := st.w.Write(f.data[:k+1]); err != nil {
		return err
	}
	st.hold(f.pos+int64(k+1), f.data[k+1:])
	return nil
}

func lastNonSpace(p []byte) int {
	for i := len(p) - 1; i >= 0; i-- {
		if strings.IndexByte(trailingSpace, p[i]) < 0 {
			return i
		}
	}
	return -1
}

func (st *spaceTrimmer) hold(pos int64, space []byte) {
	if len(space) == 0 {
		return
	}
	if st.held == 0 {
		st.heldPos = pos
		st.heldChar = space[0]
	}
	st.held += int64(len(space))
}
