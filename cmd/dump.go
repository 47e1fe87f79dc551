// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	segyparser "github.com/seisio/segy"
	"github.com/spf13/cobra"
)

func prettyPrint(buff []byte) string {
	var prettyJSON bytes.Buffer
	err := json.Indent(&prettyJSON, buff, "", "\t")
	if err != nil {
		log.Println("JSON parse error: ", err)
		return string(buff)
	}

	return prettyJSON.String()
}

func isDirectory(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func dumpFile(filename string, cmd *cobra.Command) {
	log.Printf("Processing filename %s", filename)

	opts := segyparser.Options{
		HeadersOnly:    headerOnly,
		IndexCachePath: cachePath,
	}
	sgy, err := segyparser.New(filename, &opts)
	if err != nil {
		log.Printf("Error while opening file: %s, reason: %s", filename, err)
		return
	}
	defer sgy.Close()

	err = sgy.Parse()
	if err != nil {
		log.Printf("Error while parsing file: %s, reason: %s", filename, err)
		return
	}

	wantTextual, _ := cmd.Flags().GetBool("textual")
	if wantTextual {
		for _, line := range sgy.TextualHeader {
			fmt.Println(line)
		}
	}

	wantBinary, _ := cmd.Flags().GetBool("binary")
	if wantBinary {
		binaryHeader, _ := json.Marshal(sgy.BinaryHeader)
		fmt.Println(prettyPrint(binaryHeader))
	}

	wantIndex, _ := cmd.Flags().GetBool("index")
	if wantIndex {
		printIndexSummary(sgy)
	}

	wantTrace, _ := cmd.Flags().GetInt("trace")
	if wantTrace >= 0 {
		th, err := sgy.TraceHeaderAt(wantTrace)
		if err != nil {
			log.Printf("Error reading trace %d: %s", wantTrace, err)
			return
		}
		traceHeader, _ := json.Marshal(th)
		fmt.Println(prettyPrint(traceHeader))
	}
}

func printIndexSummary(sgy *segyparser.File) {
	fmt.Printf("%s, %s, %d bytes per sample\n",
		sgy.Revision, sgy.DataSampleFormat(), sgy.BytesPerSample)
	fmt.Printf("traces: %d, max samples per trace: %d\n",
		sgy.NumTraces(), sgy.MaxNumTraceSamples())
	fmt.Printf("offset catalog: %v\n", sgy.OffsetCatalog())
	fmt.Printf("length catalog: %v\n", sgy.LengthCatalog())
	if cat := sgy.CDPCatalog(); cat != nil {
		fmt.Printf("cdp catalog: %v\n", cat)
	} else {
		fmt.Println("cdp catalog: none (duplicate CDP numbers)")
	}
	if cat := sgy.LineCatalog(); cat != nil {
		fmt.Printf("line catalog: %v\n", cat)
		fmt.Printf("inlines: %d, crosslines: %d\n", sgy.NumInlines(), sgy.NumXlines())
	} else {
		fmt.Println("line catalog: none (duplicate inline/crossline pairs)")
	}
}

func dump(cmd *cobra.Command, args []string) {
	filePath := args[0]

	// filePath points to a file.
	if !isDirectory(filePath) {
		dumpFile(filePath, cmd)

	} else {
		// filePath points to a directory,
		// walk recursively through all files.
		fileList := []string{}
		filepath.Walk(filePath, func(path string, f os.FileInfo, err error) error {
			if !isDirectory(path) {
				fileList = append(fileList, path)
			}
			return nil
		})

		for _, file := range fileList {
			dumpFile(file, cmd)
		}
	}
}

func buildIndexCache(cmd *cobra.Command, args []string) {
	sgy, err := segyparser.New(args[0], &segyparser.Options{})
	if err != nil {
		log.Printf("Error while opening file: %s, reason: %s", args[0], err)
		return
	}
	defer sgy.Close()

	if err := sgy.Parse(); err != nil {
		log.Printf("Error while parsing file: %s, reason: %s", args[0], err)
		return
	}
	if err := sgy.WriteIndexCache(args[1]); err != nil {
		log.Printf("Error while writing index cache: %s", err)
		return
	}
	log.Printf("Wrote index cache for %d traces to %s", sgy.NumTraces(), args[1])
}
