package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"

	"datagen/internal/generator"
)

// コンソール実行。N件のバンドルを生成してそのままダンプする。
func main() {
	count := flag.Int("n", 1, "number of bundles to generate")
	seed := flag.Int64("seed", 0, "random seed (0 = current time)")
	errorRate := flag.Float64("error-rate", 0, "dirty data injection rate [0,1]")
	flag.Parse()

	if *errorRate < 0 || *errorRate > 1 {
		log.Fatal("error-rate must be in [0,1]")
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	g := generator.New(s, *errorRate)

	printer := spew.NewDefaultConfig()
	printer.DisablePointerAddresses = true
	printer.Indent = "  "

	for i := 0; i < *count; i++ {
		b, err := g.Bundle()
		if err != nil {
			fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
			os.Exit(1)
		}
		printer.Dump(b)
	}
}
