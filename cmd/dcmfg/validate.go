// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
)

var errInvalid = errors.New("functional groups are not valid")

func newValidateCmd(opts *options) *cobra.Command {
	var sopClassUID string
	var quiet bool
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Checks the functional groups of a DICOM file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.readDataSet(args[0])
			if err != nil {
				return err
			}
			result := opts.registry.Validate(ds, sopClassUID)
			out := cmd.OutOrStdout()
			for _, issue := range result.Errors {
				severity := "error"
				if issue.Critical {
					severity = "critical"
				}
				fmt.Fprintf(out, "%v: %v\n", severity, issue)
			}
			if !quiet {
				for _, issue := range result.Warnings {
					fmt.Fprintf(out, "warning: %v\n", issue)
				}
			}
			logger.Verbose(len(result.Errors), "errors,", len(result.Warnings), "warnings")
			if !result.Valid() {
				return errInvalid
			}
			fmt.Fprintln(out, "OK")
			return nil
		},
	}
	cmd.Flags().StringVar(&sopClassUID, "sop-class", "", "SOP Class UID to validate against instead of the one in the file")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print warnings")
	return cmd
}
