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
	"strings"

	"github.com/spf13/cobra"
)

func newSchemaCmd(opts *options) *cobra.Command {
	var listGroups bool
	cmd := &cobra.Command{
		Use:   "schema [group...]",
		Short: "Lists the SOP classes and functional groups known to the schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := opts.registry.Schema()
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, name := range args {
					g, ok := schema.Group(name)
					if !ok {
						return fmt.Errorf("unknown functional group %q", name)
					}
					fmt.Fprintf(out, "%v (%v)\n", g, g.Table)
					for _, a := range g.Attributes {
						fmt.Fprintf(out, "  %v %v %v\n", a.Tag, a.Keyword, a.Type)
					}
				}
				return nil
			}
			for _, class := range schema.SOPClasses() {
				uid := class.UID
				if uid == "" {
					uid = "-"
				}
				fmt.Fprintf(out, "%v %v\n", uid, class.Name)
				if listGroups {
					names := make([]string, len(class.Groups))
					for i, g := range class.Groups {
						names[i] = g.Name
					}
					fmt.Fprintf(out, "  %v\n", strings.Join(names, ", "))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&listGroups, "groups", "g", false, "List the functional groups of each SOP class")
	return cmd
}
