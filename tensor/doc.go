// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense host-memory arrays that collated batches
// are built from.
//
// A RawTensor is a row-major byte buffer with a Shape and a runtime DataType.
// Stack joins same-shaped tensors along a new leading axis, which is how the
// default collate function turns per-sample fields into batch fields.
//
// Example:
//
//	a, _ := tensor.FromSlice(tensor.Shape{28, 28}, imageA)
//	b, _ := tensor.FromSlice(tensor.Shape{28, 28}, imageB)
//	batch, err := tensor.Stack([]*tensor.RawTensor{a, b}) // Shape: [2 28 28]
package tensor
