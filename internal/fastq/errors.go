package fastq

import "errors"

var (
	// ErrMalformed is returned for records that break the four-line layout
	ErrMalformed = errors.New("malformed fastq record")

	// ErrTruncated is returned when input ends part way through a record
	ErrTruncated = errors.New("truncated fastq record")

	// ErrMismatch is returned by Verify when a record differs from the expected one
	ErrMismatch = errors.New("fastq record mismatch")
)
