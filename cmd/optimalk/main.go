// Command optimalk reads one read per line from stdin and prints the
// largest k-mer length whose prefix set equals its suffix set (the
// optimal-k probe; see package optimalk).
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/debruijn/optimalk"
)

func main() {
	logger := log.New(os.Stderr, "", 0)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024*64)

	var reads []string
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			reads = append(reads, line)
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Printf("optimalk: reading stdin: %v", err)
		os.Exit(1)
	}

	k, ok := optimalk.Find(reads)
	if !ok {
		logger.Println("optimalk: no valid k found")
		os.Exit(1)
	}

	fmt.Println(k)
}
