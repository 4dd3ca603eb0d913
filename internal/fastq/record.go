// Package fastq holds the FASTQ record used for fixture generation and a
// strict four-line reader for checking generated files.
package fastq

import (
	"fmt"
	"io"
	"strings"
)

const (
	defaultHeader   = "@A00133:401:HGHCHDSX2:4:1101:5385:2143 1:N:0:TCCTGAGC+ATAGAGAG"
	defaultSequence = "ACCTCCAACGAACATGTAGGTCTCAACAACCAGACTACGTATTAGCATACGCTCGACAGTCGACGCTGGTTTTTTTTTTTTTTTTTTTTAAAAAATGGTGGTTTATATTTTTTTTAAAAATTATTACAAAGCCAAACCAATTAAATGCCC"

	// Separator is the third line of every record.
	Separator = "+"

	// QualityChar fills the quality line of the default record.
	QualityChar = 'F'
)

// Record is one four-line FASTQ unit.
type Record struct {
	Header    string
	Sequence  string
	Separator string
	Quality   string
}

// Default returns the fixed read record. Its quality line is QualityChar
// repeated once per base.
func Default() Record {
	return Record{
		Header:    defaultHeader,
		Sequence:  defaultSequence,
		Separator: Separator,
		Quality:   strings.Repeat(string(QualityChar), len(defaultSequence)),
	}
}

// Validate checks the structural rules of a record
func (r Record) Validate() error {
	if !strings.HasPrefix(r.Header, "@") {
		return fmt.Errorf("%w: header line does not start with @", ErrMalformed)
	}
	if !strings.HasPrefix(r.Separator, Separator) {
		return fmt.Errorf("%w: separator line does not start with +", ErrMalformed)
	}
	if len(r.Quality) != len(r.Sequence) {
		return fmt.Errorf("%w: quality length %d does not match sequence length %d",
			ErrMalformed, len(r.Quality), len(r.Sequence))
	}
	for _, line := range []string{r.Header, r.Sequence, r.Separator, r.Quality} {
		if strings.ContainsAny(line, "\r\n") {
			return fmt.Errorf("%w: embedded line break", ErrMalformed)
		}
	}
	return nil
}

// Size returns the encoded length of the record in bytes, including the four
// line terminators.
func (r Record) Size() int64 {
	return int64(len(r.Header) + len(r.Sequence) + len(r.Separator) + len(r.Quality) + 4)
}

// Bytes encodes the record as header, sequence, separator and quality, each
// terminated by '\n'.
func (r Record) Bytes() []byte {
	buf := make([]byte, 0, r.Size())
	buf = append(buf, r.Header...)
	buf = append(buf, '\n')
	buf = append(buf, r.Sequence...)
	buf = append(buf, '\n')
	buf = append(buf, r.Separator...)
	buf = append(buf, '\n')
	buf = append(buf, r.Quality...)
	buf = append(buf, '\n')
	return buf
}

// WriteTo implements io.WriterTo.
func (r Record) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Bytes())
	return int64(n), err
}

// Equal reports whether two records are byte-for-byte identical.
func (r Record) Equal(other Record) bool {
	return r == other
}
