package textdata

import (
	"fmt"

	"github.com/born-ml/dataloader/internal/dataloader"
	"github.com/born-ml/dataloader/internal/tensor"
)

// TokenBatch is a padded batch of token sequences.
type TokenBatch struct {
	IDs     *tensor.RawTensor // int32 [n, width]
	Mask    *tensor.RawTensor // bool [n, width], true on real tokens
	Lengths []int
}

// Width returns the padded sequence length.
func (b TokenBatch) Width() int {
	return b.IDs.Shape()[1]
}

// PadCollate returns a collate function that right-pads every sequence of a
// batch with pad up to the longest one. A batch of empty sequences is given a
// width of one.
func PadCollate(pad int32) dataloader.CollateFunc[TokenRecord, TokenBatch] {
	return func(records []TokenRecord) (TokenBatch, error) {
		if len(records) == 0 {
			return TokenBatch{}, fmt.Errorf("collate: empty batch")
		}

		width := 1
		lengths := make([]int, len(records))
		for i, r := range records {
			lengths[i] = len(r.IDs)
			width = max(width, len(r.IDs))
		}

		ids, err := tensor.NewRaw(tensor.Shape{len(records), width}, tensor.Int32)
		if err != nil {
			return TokenBatch{}, fmt.Errorf("collate: %w", err)
		}
		mask, err := tensor.NewRaw(tensor.Shape{len(records), width}, tensor.Bool)
		if err != nil {
			return TokenBatch{}, fmt.Errorf("collate: %w", err)
		}

		idData, maskData := ids.AsInt32(), mask.AsBool()
		for i, r := range records {
			row := idData[i*width : (i+1)*width]
			n := copy(row, r.IDs)
			for j := n; j < width; j++ {
				row[j] = pad
			}
			for j := 0; j < n; j++ {
				maskData[i*width+j] = true
			}
		}

		return TokenBatch{IDs: ids, Mask: mask, Lengths: lengths}, nil
	}
}
