package fastq

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDefaultRecord(t *testing.T) {
	t.Parallel()

	rec := Default()

	if err := rec.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
	if len(rec.Sequence) != 150 {
		t.Errorf("sequence length = %d, want 150", len(rec.Sequence))
	}
	if len(rec.Quality) != len(rec.Sequence) {
		t.Errorf("quality length = %d, want %d", len(rec.Quality), len(rec.Sequence))
	}
	if strings.Trim(rec.Quality, "F") != "" {
		t.Errorf("quality line contains characters other than F: %q", rec.Quality)
	}
	if rec.Separator != "+" {
		t.Errorf("separator = %q, want +", rec.Separator)
	}
	if !strings.HasPrefix(rec.Header, "@A00133:401:HGHCHDSX2") {
		t.Errorf("unexpected header %q", rec.Header)
	}
}

func TestRecordBytes(t *testing.T) {
	t.Parallel()

	rec := Record{Header: "@r1", Sequence: "ACGT", Separator: "+", Quality: "FFFF"}
	want := "@r1\nACGT\n+\nFFFF\n"

	if got := string(rec.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
	if rec.Size() != int64(len(want)) {
		t.Errorf("Size() = %d, want %d", rec.Size(), len(want))
	}

	var buf bytes.Buffer
	n, err := rec.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(len(want)) || buf.String() != want {
		t.Errorf("WriteTo() wrote %d bytes %q, want %q", n, buf.String(), want)
	}
}

func TestDefaultRecordSize(t *testing.T) {
	t.Parallel()

	rec := Default()
	if got := int64(len(rec.Bytes())); got != rec.Size() {
		t.Errorf("len(Bytes()) = %d, Size() = %d", got, rec.Size())
	}
	if rec.Size() != 367 {
		t.Errorf("Size() = %d, want 367", rec.Size())
	}
}

func TestRecordValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rec     Record
		wantErr bool
	}{
		{"valid", Record{"@id", "ACGT", "+", "IIII"}, false},
		{"separator with id", Record{"@id", "ACGT", "+id", "IIII"}, false},
		{"empty sequence", Record{"@id", "", "+", ""}, false},
		{"missing at", Record{"id", "ACGT", "+", "IIII"}, true},
		{"bad separator", Record{"@id", "ACGT", "-", "IIII"}, true},
		{"short quality", Record{"@id", "ACGT", "+", "III"}, true},
		{"newline in sequence", Record{"@id", "AC\nT", "+", "IIII"}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.rec.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrMalformed) {
				t.Errorf("Validate() error = %v, want ErrMalformed", err)
			}
		})
	}
}
