//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"log"
	"os"
)

func main() {
	key := flag.String("key", "", "MAC key")
	msg := flag.String("msg", "", "message to authenticate")
	suffix := flag.String("suffix", ";admin=true",
		"suffix for the length extension forgery")
	verbose := flag.Bool("v", false, "print padding report")
	flag.Parse()

	log.SetFlags(0)

	params := NewParams(os.Stdout)
	params.Verbose = *verbose
	params.Suffix = []byte(*suffix)

	switch {
	case len(flag.Args()) > 0:
		if !digestFiles(params, flag.Args()) {
			os.Exit(1)
		}

	case macRequested(flag.CommandLine):
		macMessage(params, []byte(*key), []byte(*msg))

	default:
		err := demo(params, []byte("secret_key"), []byte("another_key"),
			[]byte("Hello, world!"), []byte("Hello, forged message!"))
		if err != nil {
			log.Fatal(err)
		}
	}
}

// macRequested tests if the -key or -msg flag was given, including
// with an empty value.
func macRequested(fs *flag.FlagSet) bool {
	var set bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "key" || f.Name == "msg" {
			set = true
		}
	})
	return set
}
