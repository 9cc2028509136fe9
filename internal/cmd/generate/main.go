// The generate command regenerates the conversion boilerplate in the exprfn
// package. It writes into the working directory and is meant to be invoked
// through go generate from within exprfn.
package main

import (
	"log"

	"github.com/tradekit/tickexpr-go/internal/generate"
)

func main() {
	log.Println("generating conversion boilerplate...")
	if err := generate.ConvertFile().Save("convert_gen.go"); err != nil {
		log.Fatal(err)
	}
	log.Println("done.")
}
