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
	"fmt"

	"github.com/GoogleCloudPlatform/go-dicom-iod/dicom"
	"github.com/spf13/cobra"
)

func newFrameCmd(opts *options) *cobra.Command {
	var (
		frameNumber int
		tagName     string
	)
	cmd := &cobra.Command{
		Use:   "frame <file>",
		Short: "Prints the attributes that apply to one frame",
		Long: "Prints the top level attributes of a multi-frame file together with the shared " +
			"functional groups and the functional groups of the frame, flattened into one data set. " +
			"With --tag only the attribute is printed, read from the functional group that defines " +
			"it for the SOP class of the file.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.readDataSet(args[0])
			if err != nil {
				return err
			}
			if tagName != "" {
				return printFrameAttribute(cmd, opts, ds, frameNumber, tagName)
			}
			frame, err := opts.registry.FrameDataSet(ds, frameNumber)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), frame)
			return nil
		},
	}
	cmd.Flags().IntVarP(&frameNumber, "frame", "f", 1, "Frame number, starting at 1")
	cmd.Flags().StringVarP(&tagName, "tag", "t", "", "Keyword or tag (gggg,eeee) of a functional group attribute")
	return cmd
}

func printFrameAttribute(cmd *cobra.Command, opts *options, ds *dicom.DataSet, frameNumber int, tagName string) error {
	tag, err := dicom.ParseTag(tagName)
	if err != nil {
		return err
	}
	e, found, err := opts.registry.MultiFrameAttribute(ds, frameNumber, tag)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%v not found for frame %d", tagName, frameNumber)
	}
	fmt.Fprintln(cmd.OutOrStdout(), e)
	return nil
}
