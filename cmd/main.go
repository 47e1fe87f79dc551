// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose     bool
	textual     bool
	binaryHdr   bool
	index       bool
	traceNumber int
	headerOnly  bool
	cachePath   string
)

func main() {

	var rootCmd = &cobra.Command{
		Use:   "segydump",
		Short: "A SEG-Y seismic data file parser",
		Long:  "Dumps headers, trace indexes and traces of SEG-Y seismic data files",
		Run: func(cmd *cobra.Command, args []string) {
		},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Long:  "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print("You are using version 0.0.1")
		},
	}

	var dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Dumps the file",
		Long:  "Dumps interesting structure of a SEG-Y seismic data file",
		Args:  cobra.MinimumNArgs(1),
		Run:   dump,
	}

	var indexCmd = &cobra.Command{
		Use:   "index",
		Short: "Build an index cache",
		Long:  "Scans a SEG-Y file and writes its trace catalogs to a sidecar cache",
		Args:  cobra.ExactArgs(2),
		Run:   buildIndexCache,
	}

	// Init root command.
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(indexCmd)

	// Init flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	dumpCmd.Flags().BoolVarP(&textual, "textual", "", false, "Dump the textual header")
	dumpCmd.Flags().BoolVarP(&binaryHdr, "binary", "", false, "Dump the binary header")
	dumpCmd.Flags().BoolVarP(&index, "index", "", false, "Dump the trace index summary")
	dumpCmd.Flags().IntVarP(&traceNumber, "trace", "t", -1, "Dump the header of the given trace")
	dumpCmd.Flags().BoolVarP(&headerOnly, "headers-only", "", false, "Skip trace indexing")
	dumpCmd.Flags().StringVarP(&cachePath, "cache", "", "", "Sidecar index cache path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

}
