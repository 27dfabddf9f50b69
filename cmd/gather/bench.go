// Copyright 2026 The Gather Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gather-ml/gather/tensor"
)

// benchCase is the tutorial's equivalence setup: a rank-6 input, gather on
// axis 3, full-extent batch axes before it and whole trailing axes after it.
var (
	benchInputShape = tensor.Shape{2, 3, 5, 7, 11, 13}
	benchIndexShape = tensor.Shape{2, 3, 5, 4}
	benchAxis       = 3
)

// BenchHandler times the four equivalent implementations on the same inputs
// and verifies that they agree before reporting anything.
func BenchHandler(cmd *cobra.Command, _ []string) error {
	iterations, err := cmd.Flags().GetInt("iterations")
	if err != nil {
		return err
	}

	x, index, err := benchInputs()
	if err != nil {
		return err
	}

	// The broadcasting gather wants a full-rank index; the batched variants
	// want the compact rank-4 form. Same logical index either way.
	fullIndex, err := index.Reshape(tensor.Shape{2, 3, 5, 4, 1, 1})
	if err != nil {
		return err
	}

	impls := []struct {
		name string
		run  func() (*tensor.RawTensor, error)
	}{
		{"Gather (broadcast)", func() (*tensor.RawTensor, error) { return tensor.Gather(x, benchAxis, fullIndex) }},
		{"GatherByCoords", func() (*tensor.RawTensor, error) { return tensor.GatherByCoords(x, benchAxis, index) }},
		{"GatherFlatten", func() (*tensor.RawTensor, error) { return tensor.GatherFlatten(x, benchAxis, index) }},
		{"GatherFlattenOffset", func() (*tensor.RawTensor, error) { return tensor.GatherFlattenOffset(x, benchAxis, index) }},
	}

	var reference *tensor.RawTensor
	rows := make([][]string, 0, len(impls))
	for _, impl := range impls {
		out, err := impl.run()
		if err != nil {
			return fmt.Errorf("%s: %w", impl.name, err)
		}
		if reference == nil {
			reference = out
		} else if !tensor.AllClose(reference, out, 1e-6) {
			return fmt.Errorf("%s disagrees with %s", impl.name, impls[0].name)
		}

		start := time.Now()
		for i := 0; i < iterations; i++ {
			if _, err := impl.run(); err != nil {
				return fmt.Errorf("%s: %w", impl.name, err)
			}
		}
		perOp := time.Since(start) / time.Duration(iterations)
		log.Info().Str("impl", impl.name).Dur("per_op", perOp).Msg("timed")
		rows = append(rows, []string{impl.name, fmt.Sprint(out.Shape()), perOp.String()})
	}

	fmt.Printf("input %v, axis %d, index %v, %d iterations\n\n",
		benchInputShape, benchAxis, benchIndexShape, iterations)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"IMPLEMENTATION", "OUTPUT", "TIME/OP"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(rows)
	table.Render()

	return nil
}

// benchInputs builds a float32 input with distinct values and an in-range
// index for the benchmark case.
func benchInputs() (*tensor.RawTensor, *tensor.RawTensor, error) {
	x := tensor.Zeros[float32](benchInputShape)
	data := x.Data()
	for i := range data {
		data[i] = float32(i) * 0.5
	}

	index := tensor.Zeros[int32](benchIndexShape)
	idx := index.Data()
	for i := range idx {
		idx[i] = int32((i * 5) % benchInputShape[benchAxis])
	}

	return x.Raw(), index.Raw(), nil
}
