//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"io"
)

// Params specify the harness parameters.
type Params struct {
	Out     io.Writer
	Verbose bool

	// Suffix specifies the data the length extension forgery appends
	// to the original message.
	Suffix []byte
}

// NewParams creates new parameters printing to out.
func NewParams(out io.Writer) *Params {
	return &Params{
		Out:    out,
		Suffix: []byte(";admin=true"),
	}
}
