//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"

	"github.com/markkurossi/sha1mac/mac"
	"github.com/markkurossi/sha1mac/sha1"
)

// digestFiles prints the SHA-1 digests of the files. Files that can't
// be digested are reported and skipped. The function returns false
// if any of the files failed.
func digestFiles(params *Params, files []string) bool {
	var report *Report
	if params.Verbose {
		report = NewReport()
	}
	ok := true

	for _, file := range files {
		size, sum, err := digestFile(file)
		if err != nil {
			fmt.Fprintf(params.Out, "%s: digest failed: %s\n", file, err)
			ok = false
			continue
		}
		fmt.Fprintf(params.Out, "%x  %s\n", sum, file)
		if report != nil {
			report.Add(file, uint64(size))
		}
	}
	if report != nil {
		report.Print(params.Out)
	}
	return ok
}

func digestFile(file string) (int64, [sha1.Size]byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return 0, [sha1.Size]byte{}, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return 0, [sha1.Size]byte{}, err
	}
	if fi.IsDir() {
		return 0, [sha1.Size]byte{}, fmt.Errorf("is a directory")
	}

	sum, err := sha1.SumReader(f)
	if err != nil {
		return 0, sum, err
	}
	return fi.Size(), sum, nil
}

// macMessage prints the MAC of msg under key.
func macMessage(params *Params, key, msg []byte) {
	fmt.Fprintf(params.Out, "%x\n", mac.Sum(key, msg))

	if params.Verbose {
		report := NewReport()
		report.Add("key || msg", uint64(len(key)+len(msg)))
		report.Print(params.Out)
	}
}
