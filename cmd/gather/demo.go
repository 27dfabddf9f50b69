// Copyright 2026 The Gather Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gather-ml/gather/tensor"
)

// DemoHandler walks through the tutorial's central example: the same input
// and index produce different shapes and different values under the
// broadcasting gather and the strict (truncating) primitive, and neither
// raises an error.
func DemoHandler(_ *cobra.Command, _ []string) error {
	x := tensor.Arange[int32](0, 9)
	xr, err := x.Raw().Reshape(tensor.Shape{3, 3})
	if err != nil {
		return err
	}

	index, err := tensor.FromSlice([]int32{2, 2, 0, 0}, tensor.Shape{1, 4})
	if err != nil {
		return err
	}

	fmt.Println("Input (3, 3), values 0..8:")
	renderMatrix(os.Stdout, tensor.New[int32](xr))
	fmt.Println("Index (1, 4) on axis 1:")
	renderMatrix(os.Stdout, index)

	broadcast, err := tensor.Gather(xr, 1, index.Raw())
	if err != nil {
		return err
	}
	fmt.Printf("Gather (broadcasting) -> %v: the extent-1 row axis is\n"+
		"replicated to all 3 rows of the input.\n", broadcast.Shape())
	renderMatrix(os.Stdout, tensor.New[int32](broadcast))

	strict, err := tensor.GatherStrict(xr, 1, index.Raw())
	if err != nil {
		return err
	}
	fmt.Printf("GatherStrict (truncating) -> %v: the same extent-1 axis\n"+
		"silently slices the output down to one row. No error either way --\n"+
		"this is the shape bug the broadcasting wrapper exists to prevent.\n", strict.Shape())
	renderMatrix(os.Stdout, tensor.New[int32](strict))

	return nil
}

// renderMatrix prints a rank-2 int32 tensor as a borderless table.
func renderMatrix(w io.Writer, t *tensor.Tensor[int32]) {
	shape := t.Shape()
	table := tablewriter.NewWriter(w)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")

	for i := 0; i < shape[0]; i++ {
		row := make([]string, shape[1])
		for j := 0; j < shape[1]; j++ {
			row[j] = strconv.FormatInt(int64(t.At(i, j)), 10)
		}
		table.Append(row)
	}
	table.Render()
	fmt.Fprintln(w)
}
