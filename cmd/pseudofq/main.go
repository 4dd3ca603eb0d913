package main

import (
	"log"
	"os"
)

/*writes testP{N/1e6}M_1.fq holding N copies of one fixed FASTQ read*/

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("pseudofq: %v", err)
	}
}
