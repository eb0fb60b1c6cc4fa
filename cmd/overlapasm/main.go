// Command overlapasm reads one read per line from stdin and assembles
// them via the prefix-trie / greedy-Hamiltonian-path overlap assembler,
// printing the resulting circular genome. A standalone alternative to
// the de Bruijn pipeline, sharing no code with it.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/debruijn/overlap"
)

func main() {
	logger := log.New(os.Stderr, "", 0)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024*64)

	seen := make(map[string]bool)
	var reads []string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		reads = append(reads, line)
	}
	if err := scanner.Err(); err != nil {
		logger.Printf("overlapasm: reading stdin: %v", err)
		os.Exit(1)
	}
	if len(reads) == 0 {
		logger.Println("overlapasm: expected at least one read")
		os.Exit(1)
	}

	fmt.Println(overlap.Assemble(reads))
}
