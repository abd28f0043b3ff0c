// Command hexaspect grows a compatibility-connected chain of aspect labels
// between the seeds of a hex grid layout.
//
//	hexaspect solve --layout seeds.json
//	hexaspect solve --layout seeds.yaml --catalog aspects.yaml --weight lux=5 --fill-all
//	hexaspect catalog
//	hexaspect grid --radius 2
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
