// Command assembler reads error-prone reads from stdin, builds a de
// Bruijn graph with k fixed at 20, cleans it (tip and bubble removal at
// threshold k+1), runs Hierholzer's algorithm, and prints the
// reconstructed circular genome.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/debruijn/algorithms"
	"github.com/katalvlaran/debruijn/builder"
)

const fixedK = 20

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
		logger.Printf("assembler: reading stdin: %v", err)
		os.Exit(1)
	}

	g, err := builder.Build(reads, builder.WithK(fixedK))
	if err != nil {
		logger.Printf("assembler: %v", err)
		os.Exit(1)
	}

	threshold := fixedK + 1
	algorithms.RemoveTips(g, threshold)
	g.LeafSweep()
	algorithms.RemoveBubbles(g, threshold)

	cycle, err := algorithms.EulerianCycle(g)
	if err != nil {
		logger.Fatalf("assembler: %v", err)
	}

	genome, err := algorithms.Spell(g, cycle, fixedK)
	if err != nil {
		logger.Fatalf("assembler: %v", err)
	}

	fmt.Println(genome)
}
