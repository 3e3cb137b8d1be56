//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"

	"github.com/markkurossi/sha1mac/mac"
	"github.com/markkurossi/tabulate"
)

// demo authenticates msg1 with key and shows that the MAC of msg1
// neither authenticates the unrelated msg2 nor matches the MAC of
// msg1 under anotherKey. It then forges a valid MAC for msg1 extended
// with the glue padding and params.Suffix, using only the MAC of msg1
// and the key length.
func demo(params *Params, key, anotherKey, msg1, msg2 []byte) error {
	mac1 := mac.Sum(key, msg1)
	mac2 := mac.Sum(key, msg2)
	macAnother := mac.Sum(anotherKey, msg1)

	forgery, err := mac.Extend(mac1, len(key), msg1, params.Suffix)
	if err != nil {
		return err
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Key").SetAlign(tabulate.ML)
	tab.Header("Message").SetAlign(tabulate.ML)
	tab.Header("MAC").SetAlign(tabulate.ML)
	tab.Header("Matches MAC1").SetAlign(tabulate.ML)

	row := tab.Row()
	row.Column(fmt.Sprintf("%q", key))
	row.Column(fmt.Sprintf("%q", msg1))
	row.Column(fmt.Sprintf("%x", mac1))
	row.Column(fmt.Sprintf("%v", mac.Verify(key, msg1, mac1[:])))

	row = tab.Row()
	row.Column(fmt.Sprintf("%q", key))
	row.Column(fmt.Sprintf("%q", msg2))
	row.Column(fmt.Sprintf("%x", mac2))
	row.Column(fmt.Sprintf("%v", mac.Verify(key, msg2, mac1[:])))

	anotherMatches := macAnother == mac1

	row = tab.Row()
	row.Column(fmt.Sprintf("%q", anotherKey))
	row.Column(fmt.Sprintf("%q", msg1))
	row.Column(fmt.Sprintf("%x", macAnother))
	row.Column(fmt.Sprintf("%v", anotherMatches))

	tab.Print(params.Out)

	if anotherMatches {
		fmt.Fprintf(params.Out, "MAC1 was created with another key\n")
	} else {
		fmt.Fprintf(params.Out,
			"MAC1 could not be created without knowing the key\n")
	}

	fmt.Fprintf(params.Out, "\nLength extension with %q:\n", params.Suffix)

	tab = tabulate.New(tabulate.UnicodeLight)
	tab.Header("Forged Message").SetAlign(tabulate.ML)
	tab.Header("Forged MAC").SetAlign(tabulate.ML)
	tab.Header("Valid").SetAlign(tabulate.ML)

	row = tab.Row()
	row.Column(fmt.Sprintf("%q", forgery.Message))
	row.Column(fmt.Sprintf("%x", forgery.Tag))
	row.Column(fmt.Sprintf("%v",
		mac.Verify(key, forgery.Message, forgery.Tag[:]))).
		SetFormat(tabulate.FmtBold)

	tab.Print(params.Out)

	if params.Verbose {
		report := NewReport()
		report.Add("key || msg1", uint64(len(key)+len(msg1)))
		report.Add("key || forged", uint64(len(key)+len(forgery.Message)))
		report.Print(params.Out)
	}
	return nil
}
