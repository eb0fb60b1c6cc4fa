// Command tipremover reads a read set from stdin, builds a de Bruijn
// graph with k fixed at 15, removes tips with tip_threshold = k, and
// prints the number of edges removed.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/debruijn/algorithms"
	"github.com/katalvlaran/debruijn/builder"
)

const fixedK = 15

func main() {
	logger := log.New(os.Stderr, "", 0)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024*64)
	scanner.Split(bufio.ScanWords)

	var reads []string
	for scanner.Scan() {
		reads = append(reads, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		logger.Printf("tipremover: reading stdin: %v", err)
		os.Exit(1)
	}

	g, err := builder.Build(reads, builder.WithK(fixedK))
	if err != nil {
		logger.Printf("tipremover: %v", err)
		os.Exit(1)
	}

	fmt.Println(algorithms.RemoveTips(g, fixedK))
}
