// Command eulercomposition reads equal-length k-mers from stdin, treats
// them directly as the de Bruijn graph's k-mer composition (no further
// fragmentation), runs Hierholzer's algorithm, and prints the
// reconstructed circular string.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/debruijn/algorithms"
	"github.com/katalvlaran/debruijn/builder"
)

func main() {
	logger := log.New(os.Stderr, "", 0)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024*64)
	scanner.Split(bufio.ScanWords)

	var kmers []string
	for scanner.Scan() {
		kmers = append(kmers, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		logger.Printf("eulercomposition: reading stdin: %v", err)
		os.Exit(1)
	}
	if len(kmers) == 0 {
		logger.Println("eulercomposition: expected at least one k-mer")
		os.Exit(1)
	}

	k := len(kmers[0])
	for _, w := range kmers {
		if len(w) != k {
			logger.Println("eulercomposition: k-mers must be equal length")
			os.Exit(1)
		}
	}

	// Each token already has length k, so builder.Build's fragmentation
	// pass degenerates to one k-mer per token, preserving composition
	// order and multiplicity.
	g, err := builder.Build(kmers, builder.WithK(k))
	if err != nil {
		logger.Printf("eulercomposition: %v", err)
		os.Exit(1)
	}

	cycle, err := algorithms.EulerianCycle(g)
	if err != nil {
		logger.Fatalf("eulercomposition: %v", err)
	}

	genome, err := algorithms.Spell(g, cycle, k)
	if err != nil {
		logger.Fatalf("eulercomposition: %v", err)
	}

	fmt.Println(genome)
}
