// Command lingua runs the morphology and transliteration engines from the
// command line.
//
//	lingua langs [--service Morpho]
//	lingua info fra
//	lingua conjugate -l eng --tense past --person first be
//	lingua declense -l fra --number plural cheval
//	lingua derivate -l eng --src adjective --dst adverb happy
//	lingua stem -l eng running happiness
//	lingua lemmatize -l fra parlions
//	lingua schemes -l jpn
//	lingua trans -l jpn -s Hepburn しんぶん
//	lingua trans -l eng -s Morse -r "... --- ..."
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lingua:", err)
		os.Exit(1)
	}
}
