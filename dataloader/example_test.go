// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dataloader_test

import (
	"fmt"
	"strings"

	"github.com/born-ml/dataloader/dataloader"
	"github.com/born-ml/dataloader/sampler"
)

func ExampleNew() {
	words := dataloader.SliceDataset[string]{"a", "b", "c", "d", "e", "f", "g"}

	l, err := dataloader.New(words, dataloader.Options[string, string]{
		BatchSize: 3,
		LastBatch: sampler.Rollover,
		Collate: func(records []string) (string, error) {
			return strings.Join(records, ""), nil
		},
	})
	if err != nil {
		panic(err)
	}

	for epoch := 1; epoch <= 2; epoch++ {
		fmt.Printf("epoch %d (%d batches):", epoch, l.Len())
		for batch, err := range l.All() {
			if err != nil {
				panic(err)
			}
			fmt.Print(" ", batch)
		}
		fmt.Println()
	}
	// Output:
	// epoch 1 (2 batches): abc def
	// epoch 2 (2 batches): gab cde
}

func ExampleNew_configurationError() {
	s, _ := sampler.NewSequential(4)
	_, err := dataloader.New(dataloader.SliceDataset[int]{1, 2, 3, 4}, dataloader.Options[int, []int]{
		BatchSize: 2,
		Shuffle:   true,
		Sampler:   s,
		Collate:   func(r []int) ([]int, error) { return r, nil },
	})
	fmt.Println(err)
	// Output:
	// invalid shuffle: must not be set together with sampler
}
