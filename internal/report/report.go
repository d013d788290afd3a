// Package report summarizes loader passes and renders them as text tables.
package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/dataloader/internal/dataloader"
)

// EpochStats accumulates what one pass yielded.
type EpochStats struct {
	Epoch        int
	batchSizes   []float64
	fieldMeans   [dataloader.NumFields][]float64
	fieldWeights [dataloader.NumFields][]float64
}

// Observe records one collated batch.
func (s *EpochStats) Observe(b dataloader.SampleBatch) {
	s.batchSizes = append(s.batchSizes, float64(b.Len()))
	for k, f := range b.Fields {
		if f == nil {
			continue
		}
		values := f.Float64s()
		s.fieldMeans[k] = append(s.fieldMeans[k], stat.Mean(values, nil))
		s.fieldWeights[k] = append(s.fieldWeights[k], float64(len(values)))
	}
}

// Summary is the digest of an EpochStats.
type Summary struct {
	Epoch         int
	Batches       int
	Samples       int
	MeanBatchSize float64
	StdBatchSize  float64
	FieldMeans    [dataloader.NumFields]float64
}

// Summary computes the digest. Field means are weighted by element count so
// that a short final batch does not skew them.
func (s *EpochStats) Summary() Summary {
	sum := Summary{Epoch: s.Epoch, Batches: len(s.batchSizes)}
	for _, n := range s.batchSizes {
		sum.Samples += int(n)
	}
	switch len(s.batchSizes) {
	case 0:
	case 1:
		sum.MeanBatchSize = s.batchSizes[0]
	default:
		sum.MeanBatchSize, sum.StdBatchSize = stat.MeanStdDev(s.batchSizes, nil)
	}
	for k := range sum.FieldMeans {
		if len(s.fieldMeans[k]) > 0 {
			sum.FieldMeans[k] = stat.Mean(s.fieldMeans[k], s.fieldWeights[k])
		}
	}
	return sum
}

// Rows formats the summary as key/value rows for Table.
func (s Summary) Rows() ([]string, map[string]string) {
	p := message.NewPrinter(language.English)
	keys := []string{"Epoch", "Batches", "Samples", "Batch Size", "Batch Size STD"}
	rows := map[string]string{
		"Epoch":          p.Sprintf("%d", s.Epoch),
		"Batches":        p.Sprintf("%d", s.Batches),
		"Samples":        p.Sprintf("%d", s.Samples),
		"Batch Size":     p.Sprintf("%.2f", s.MeanBatchSize),
		"Batch Size STD": p.Sprintf("%.3f", s.StdBatchSize),
	}
	for k, m := range s.FieldMeans {
		key := fmt.Sprintf("Field %d Mean", k)
		keys = append(keys, key)
		rows[key] = p.Sprintf("%.4f", m)
	}
	return keys, rows
}

// Table renders rows as a boxed two-column table with a centered title.
// Column widths account for wide runes.
func Table(title string, keys []string, rows map[string]string) string {
	maxKeyLen, maxValLen := 0, 0
	for _, k := range keys {
		maxKeyLen = max(maxKeyLen, runewidth.StringWidth(k))
		maxValLen = max(maxValLen, runewidth.StringWidth(rows[k]))
	}
	maxKeyLen += 2
	maxValLen += 2

	totalInner := maxKeyLen + maxValLen + 1
	titleW := runewidth.StringWidth(title)
	if titleW > totalInner {
		maxValLen += titleW - totalInner
		totalInner = titleW
	}

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", totalInner) + "+\n"
	left := (totalInner - titleW) / 2
	right := totalInner - titleW - left

	var sb strings.Builder
	sb.WriteString(top)
	sb.WriteString("|" + blank(left) + title + blank(right) + "|\n")
	sb.WriteString(divider)
	for _, k := range keys {
		v := rows[k]
		sb.WriteString("| " + k + blank(maxKeyLen-2-runewidth.StringWidth(k)) + " | " +
			v + blank(maxValLen-2-runewidth.StringWidth(v)) + " |\n")
	}
	sb.WriteString(divider)
	return sb.String()
}

func blank(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
