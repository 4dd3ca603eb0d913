package generator

import (
	"io"

	"pkg.jsn.cam/pseudofq/internal/fastq"
)

// Source produces the record written on each iteration of a generation run
type Source interface {
	// WriteRecord writes a single complete record to the writer
	WriteRecord(w io.Writer) error

	// RecordSize returns the encoded size of one record in bytes
	RecordSize() int64

	// Description returns a human-readable description of the data format
	Description() string
}

// FixedSource repeats one record. The record is encoded once up front.
type FixedSource struct {
	line []byte
}

// NewFixedSource returns a source for rec. It fails if rec is not a
// well-formed four-line record.
func NewFixedSource(rec fastq.Record) (*FixedSource, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &FixedSource{line: rec.Bytes()}, nil
}

// DefaultSource returns a source repeating fastq.Default(). It panics if the
// built-in record fails validation.
func DefaultSource() *FixedSource {
	src, err := NewFixedSource(fastq.Default())
	if err != nil {
		panic(err)
	}
	return src
}

func (s *FixedSource) WriteRecord(w io.Writer) error {
	_, err := w.Write(s.line)
	return err
}

func (s *FixedSource) RecordSize() int64 {
	return int64(len(s.line))
}

func (s *FixedSource) Description() string {
	return "Fixed FASTQ read: header, sequence, +, quality"
}
