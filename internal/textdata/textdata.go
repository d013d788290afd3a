// Package textdata turns lines of text into token-id records and pads them
// into rectangular batches.
//
// It is the reference example of a caller-supplied collate function: records
// are variable-length, so they are padded instead of stacked.
package textdata

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"github.com/born-ml/dataloader/internal/dataloader"
)

// Encoder converts text to token IDs.
type Encoder interface {
	Encode(text string) ([]int32, error)
}

// TikToken wraps the pkoukk/tiktoken-go library for OpenAI tokenizers.
type TikToken struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// NewTikToken loads a tiktoken encoding such as "cl100k_base" or "p50k_base".
func NewTikToken(encodingName string) (*TikToken, error) {
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encodingName, err)
	}
	return &TikToken{encoding: encoding, name: encodingName}, nil
}

// Encode tokenizes text with no special-token handling. Ids that do not
// fit an int32 column are reported as errors.
func (t *TikToken) Encode(text string) ([]int32, error) {
	ids := t.encoding.Encode(text, nil, nil)
	out := make([]int32, 0, len(ids))
	for _, id := range ids {
		if id < 0 || id > math.MaxInt32 {
			return nil, fmt.Errorf("%s: token id %d outside int32", t.name, id)
		}
		out = append(out, int32(id)) //nolint:gosec // G115: range checked above
	}
	return out, nil
}

// Name returns the encoding name.
func (t *TikToken) Name() string {
	return t.name
}

// TokenRecord is one tokenized line.
type TokenRecord struct {
	Text string
	IDs  []int32
}

// TokenDataset tokenizes lines on demand.
type TokenDataset struct {
	lines  []string
	enc    Encoder
	maxLen int
}

// NewTokenDataset creates a dataset over lines. maxLen > 0 truncates every
// record to at most maxLen tokens.
func NewTokenDataset(lines []string, enc Encoder, maxLen int) (*TokenDataset, error) {
	if enc == nil {
		return nil, fmt.Errorf("encoder must not be nil")
	}
	if maxLen < 0 {
		return nil, fmt.Errorf("maxLen must be >= 0, got %d", maxLen)
	}
	return &TokenDataset{lines: lines, enc: enc, maxLen: maxLen}, nil
}

// Len returns the number of lines.
func (d *TokenDataset) Len() int {
	return len(d.lines)
}

// Get tokenizes line i.
func (d *TokenDataset) Get(i int) (TokenRecord, error) {
	if i < 0 || i >= len(d.lines) {
		return TokenRecord{}, &dataloader.IndexError{Index: i, Len: len(d.lines)}
	}
	ids, err := d.enc.Encode(d.lines[i])
	if err != nil {
		return TokenRecord{}, fmt.Errorf("line %d: %w", i, err)
	}
	if d.maxLen > 0 && len(ids) > d.maxLen {
		ids = ids[:d.maxLen]
	}
	return TokenRecord{Text: d.lines[i], IDs: ids}, nil
}

// ReadLines returns the non-blank lines of r, trimmed.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return lines, nil
}
