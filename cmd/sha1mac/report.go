//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"

	"github.com/markkurossi/sha1mac/sha1"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// Report collects padding information of hashed inputs and renders
// it as a table.
type Report struct {
	Entries []*Entry
}

// Entry describes the padding of one input.
type Entry struct {
	Label  string
	Length uint64
}

// NewReport creates a new empty report.
func NewReport() *Report {
	return new(Report)
}

// Add adds an input of length bytes to the report.
func (r *Report) Add(label string, length uint64) {
	r.Entries = append(r.Entries, &Entry{
		Label:  label,
		Length: length,
	})
}

// Print prints the report to out.
func (r *Report) Print(out io.Writer) {
	if len(r.Entries) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Input").SetAlign(tabulate.ML)
	tab.Header("Bytes").SetAlign(tabulate.MR)
	tab.Header("Padded").SetAlign(tabulate.MR)
	tab.Header("Blocks").SetAlign(tabulate.MR)
	tab.Header(fmt.Sprintf("Bits mod 2%s", superscript.Itoa(64))).
		SetAlign(tabulate.MR)

	var blocks uint64
	for _, e := range r.Entries {
		padded := sha1.PadLen(e.Length)
		blocks += padded / sha1.BlockSize

		row := tab.Row()
		row.Column(e.Label)
		row.Column(fmt.Sprintf("%d", e.Length))
		row.Column(fmt.Sprintf("%d", padded))
		row.Column(fmt.Sprintf("%d", padded/sha1.BlockSize))
		row.Column(fmt.Sprintf("%d", e.Length<<3))
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column("")
	row.Column("")
	row.Column(fmt.Sprintf("%d", blocks)).SetFormat(tabulate.FmtBold)
	row.Column("")

	tab.Print(out)
}
