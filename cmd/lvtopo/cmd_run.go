// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/job"
)

// errBadFormat reports an unsupported --format value.
var errBadFormat = errors.New("unsupported output format")

func runJob(cmd *cobra.Command, args []string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("%w: %q", errBadFormat, format)
	}
	s, err := job.Load(args[0])
	if err != nil {
		return err
	}
	res, err := job.Run(s, job.WithLogger(logger))
	if err != nil {
		return err
	}

	if format == "json" {
		return res.WriteJSON(cmd.OutOrStdout())
	}

	return res.WriteText(cmd.OutOrStdout())
}

func validateJob(cmd *cobra.Command, args []string) error {
	s, err := job.Load(args[0])
	if err != nil {
		return err
	}
	input := "complex"
	if s.Rips != nil {
		input = "rips"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s input)\n", s.Name, input)

	return nil
}
