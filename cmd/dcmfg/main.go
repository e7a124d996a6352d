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

// Command dcmfg inspects the multi-frame functional groups of DICOM files.
package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/GoogleCloudPlatform/go-dicom-iod/dicom"
	"github.com/GoogleCloudPlatform/go-dicom-iod/iod"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// options are the persistent flags shared by all commands
type options struct {
	verbose       bool
	schemaPath    string
	cacheSize     int
	keepPixelData bool
	dropPrivate   bool
	registry      *iod.Registry
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "dcmfg",
		Short:         "Inspects multi-frame functional groups of DICOM files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				logger.SetLogLevel(logger.LogLevelVerbose)
			} else {
				logger.SetLogLevel(logger.LogLevelInfo)
			}
			return opts.loadRegistry()
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging")
	root.PersistentFlags().StringVar(&opts.schemaPath, "schema", "", "Path to a functional group schema replacing the built-in one")
	root.PersistentFlags().IntVar(&opts.cacheSize, "cache-size", iod.DefaultCacheSize, "Number of SOP classes whose tag maps are cached")
	root.PersistentFlags().BoolVar(&opts.keepPixelData, "pixel-data", false, "Read pixel data")
	root.PersistentFlags().BoolVar(&opts.dropPrivate, "drop-private", false, "Leave out private elements")

	root.AddCommand(
		newDumpCmd(opts),
		newFrameCmd(opts),
		newGroupsCmd(opts),
		newValidateCmd(opts),
		newSchemaCmd(opts),
	)
	return root
}

func (o *options) loadRegistry() error {
	schema := iod.DefaultSchema()
	if o.schemaPath != "" {
		f, err := os.Open(o.schemaPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if schema, err = iod.LoadSchema(f); err != nil {
			return err
		}
		logger.Verbose("loaded schema", o.schemaPath)
	}
	r, err := iod.NewRegistry(schema, o.cacheSize)
	if err != nil {
		return err
	}
	o.registry = r
	return nil
}

func (o *options) parseOptions() []dicom.ParseOption {
	opts := []dicom.ParseOption{dicom.DropGroupLengths}
	if !o.keepPixelData {
		opts = append(opts, dicom.SkipPixelData)
	}
	if o.dropPrivate {
		opts = append(opts, dicom.DropPrivateElements)
	}
	return opts
}

func (o *options) readDataSet(path string) (*dicom.DataSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ds, err := dicom.Parse(bufio.NewReader(f), o.parseOptions()...)
	if err != nil {
		return nil, err
	}
	logger.Verbose("parsed", path, "with", len(ds.Elements), "elements")
	return ds, nil
}
