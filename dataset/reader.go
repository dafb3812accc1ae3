package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/imputego/tabular"
)

// DefaultMissingToken is the marker written for NaN entries and the primary
// token recognized as missing on read. It is the unphased-missing genotype
// token of hap panel files.
const DefaultMissingToken = ".|."

// defaultMissingTokens are the tokens recognized as missing on read unless
// overridden via WithMissingTokens.
var defaultMissingTokens = []string{DefaultMissingToken, "NA", "NaN", ""}

type options struct {
	missingTokens []string
	missingToken  string
}

// Option configures dataset reading and writing.
type Option func(*options)

// WithMissingTokens sets the tokens recognized as missing entries on read.
func WithMissingTokens(tokens ...string) Option {
	return func(o *options) {
		o.missingTokens = tokens
	}
}

// WithMissingToken sets the marker written for NaN entries on append.
func WithMissingToken(token string) Option {
	return func(o *options) {
		o.missingToken = token
	}
}

func applyOptions(opts []Option) options {
	o := options{
		missingTokens: defaultMissingTokens,
		missingToken:  DefaultMissingToken,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Read parses tab-separated numeric rows from r into a matrix. Tokens in the
// missing set become NaN; everything else must parse as a float. All rows
// must have the same number of fields.
func Read(r io.Reader, opts ...Option) (*tabular.Matrix, error) {
	o := applyOptions(opts)

	missing := make(map[string]struct{}, len(o.missingTokens))
	for _, tok := range o.missingTokens {
		missing[tok] = struct{}{}
	}

	var rows [][]float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if text == "" {
			continue
		}

		fields := strings.Split(text, "\t")
		row := make([]float64, len(fields))
		for j, field := range fields {
			if _, ok := missing[field]; ok {
				row[j] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: line %d field %d: %w", line, j+1, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return tabular.FromRows(rows)
}

// ReadFile reads a dataset file, decompressing by extension
// (see DetectCompression).
func ReadFile(path string, opts ...Option) (*tabular.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dr, err := decompressReader(f, DetectCompression(path))
	if err != nil {
		return nil, err
	}
	defer dr.Close()

	return Read(dr, opts...)
}
