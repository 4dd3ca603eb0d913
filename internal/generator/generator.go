// Package generator writes synthetic FASTQ fixtures made of one record
// repeated N times.
package generator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"math"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
)

const (
	perMillion   = 1_000_000
	bufferSize   = 1 << 16
	progressStep = 4096 // records between progress bar updates
)

// ParseCount reads the record count from the first positional argument.
func ParseCount(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, &ArgumentError{Err: ErrMissingCount}
	}
	digits, err := stripGrouping(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, &ArgumentError{Arg: args[0], Err: fmt.Errorf("%w: %w", ErrInvalidCount, err)}
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, &ArgumentError{Arg: args[0], Err: fmt.Errorf("%w: %w", ErrInvalidCount, err)}
	}
	return n, nil
}

// stripGrouping removes single underscores placed between digits, so
// "1_000_000" parses like "1000000". Leading, trailing and doubled
// underscores are rejected.
func stripGrouping(s string) (string, error) {
	if !strings.Contains(s, "_") {
		return s, nil
	}
	body := strings.TrimLeft(s, "+-")
	sign := s[:len(s)-len(body)]
	if len(sign) > 1 || strings.HasPrefix(body, "_") || strings.HasSuffix(body, "_") || strings.Contains(body, "__") {
		return "", errBadGrouping
	}
	return sign + strings.ReplaceAll(body, "_", ""), nil
}

// Millions returns n divided by one million, rounded toward negative infinity.
func Millions(n int64) int64 {
	q := n / perMillion
	if n%perMillion != 0 && n < 0 {
		q--
	}
	return q
}

// FileName returns the fixture name for a run of n records.
func FileName(n int64) string {
	return fmt.Sprintf("testP%dM_1.fq", Millions(n))
}

// Result describes a finished generation run
type Result struct {
	Path    string
	Records int64
	Bytes   int64
	Format  string // Description of the source
}

// Generator writes fixture files from a Source
type Generator struct {
	src      Source
	dir      string
	progress io.Writer
}

// Option configures a Generator
type Option func(*Generator)

// WithDir sets the directory the fixture is written into. Defaults to the
// working directory.
func WithDir(dir string) Option {
	return func(g *Generator) {
		g.dir = dir
	}
}

// WithProgress renders a byte progress bar to w while writing.
func WithProgress(w io.Writer) Option {
	return func(g *Generator) {
		g.progress = w
	}
}

// New creates a Generator for src
func New(src Source, opts ...Option) *Generator {
	g := &Generator{src: src, dir: "."}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Path returns the output path for a run of n records.
func (g *Generator) Path(n int64) string {
	return filepath.Join(g.dir, FileName(n))
}

// Generate creates (or truncates) the fixture file and writes n copies of
// the source record to it. A non-positive n yields an empty file.
func (g *Generator) Generate(n int64) (res *Result, err error) {
	path := g.Path(n)
	records := max(n, 0)
	size := g.src.RecordSize()
	if size > 0 && records > math.MaxInt64/size {
		return nil, &ArgumentError{Arg: strconv.FormatInt(n, 10), Err: ErrCountTooLarge}
	}
	total := records * size

	file, err := os.Create(path)
	if err != nil {
		return nil, &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			res, err = nil, &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	var bar *progressbar.ProgressBar
	if g.progress != nil && total > 0 {
		bar = progressbar.NewOptions64(total,
			progressbar.OptionSetWriter(g.progress),
			progressbar.OptionSetDescription(filepath.Base(path)+" ("+g.src.Description()+")"),
			progressbar.OptionShowBytes(true),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(g.progress)
			}),
		)
	}

	w := bufio.NewWriterSize(file, bufferSize)
	for i := int64(0); i < records; i++ {
		if err := g.src.WriteRecord(w); err != nil {
			return nil, &IOError{Op: "write", Path: path, Err: err}
		}
		if bar != nil && (i+1)%progressStep == 0 {
			// Progress rendering errors never fail a run.
			_ = bar.Add64(progressStep * size)
		}
	}
	if err := w.Flush(); err != nil {
		return nil, &IOError{Op: "write", Path: path, Err: err}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return &Result{Path: path, Records: records, Bytes: total, Format: g.src.Description()}, nil
}
