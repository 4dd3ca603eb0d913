package fastq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Reader reads records that occupy exactly four lines each. Unlike a general
// FASTQ parser it does not accept wrapped sequence lines.
type Reader struct {
	r *bufio.Reader
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, 1<<16)}
}

// Read returns the next record. It returns io.EOF only at a record boundary.
func (rd *Reader) Read() (Record, error) {
	var lines [4]string
	for i := range lines {
		line, err := rd.r.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				if i == 0 && line == "" {
					return Record{}, io.EOF
				}
				return Record{}, fmt.Errorf("%w: input ended after %d of 4 lines", ErrTruncated, i)
			}
			return Record{}, err
		}
		lines[i] = strings.TrimSuffix(line, "\n")
	}

	rec := Record{
		Header:    lines[0],
		Sequence:  lines[1],
		Separator: lines[2],
		Quality:   lines[3],
	}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Verify reads every record from r and checks that each equals want. It
// returns the number of records read.
func Verify(r io.Reader, want Record) (int64, error) {
	rd := NewReader(r)
	var count int64
	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("record %d: %w", count, err)
		}
		if !rec.Equal(want) {
			return count, fmt.Errorf("%w at record %d", ErrMismatch, count)
		}
		count++
	}
}
