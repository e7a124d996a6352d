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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GoogleCloudPlatform/go-dicom-iod/dicom"
	"github.com/GoogleCloudPlatform/go-dicom-iod/iod"
)

// groupUsage is where a functional group is found in a multi-frame data set
type groupUsage struct {
	group    *iod.FunctionalGroup
	shared   bool
	perFrame int
}

func (u groupUsage) String() string {
	switch {
	case u.perFrame > 0 && u.shared:
		return fmt.Sprintf("per-frame (%d frames), shared", u.perFrame)
	case u.perFrame > 0:
		return fmt.Sprintf("per-frame (%d frames)", u.perFrame)
	case u.shared:
		return "shared"
	}
	return "absent"
}

func frameCount(mf *iod.MultiFrameFunctionalGroupsModule) int {
	n := len(mf.PerFrameFunctionalGroups())
	if frames, ok := mf.NumberOfFrames(); ok && int(frames) > n {
		n = int(frames)
	}
	if n == 0 {
		n = 1
	}
	return n
}

// usages resolves every applicable group of the SOP class for each frame
func usages(r *iod.Registry, ds *dicom.DataSet, sopClassUID string) ([]groupUsage, error) {
	mf := iod.NewMultiFrameFunctionalGroupsModule(ds)
	frames := frameCount(mf)
	var result []groupUsage
	for _, g := range r.ApplicableGroups(sopClassUID) {
		u := groupUsage{group: g}
		for frame := 1; frame <= frames; frame++ {
			macro, frameSpecific, err := mf.FunctionalGroup(g, frame)
			if err != nil {
				return nil, err
			}
			if frameSpecific {
				u.perFrame++
			} else if macro.HasValues() {
				u.shared = true
			}
		}
		result = append(result, u)
	}
	return result, nil
}

func newGroupsCmd(opts *options) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "groups <file>",
		Short: "Lists the functional groups of the SOP class and where they are found",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.readDataSet(args[0])
			if err != nil {
				return err
			}
			uid := ds.GetString(dicom.SOPClassUIDTag, 0, "")
			name := "default"
			if class, ok := opts.registry.Schema().SOPClass(uid); ok && class.UID != "" {
				name = class.Name
			}
			found, err := usages(opts.registry, ds, uid)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "SOP class: %v (%v)\n", name, uid)
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, u := range found {
				if !all && !u.shared && u.perFrame == 0 {
					continue
				}
				fmt.Fprintf(w, "%v\t%v\t%v\n", u.group.Name, u.group.SequenceTag.Keyword(), u)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Also list applicable groups that are absent")
	return cmd
}
