// Command bubblecounter reads k, a bubble threshold, and a read set from
// stdin and prints the number of bubbles in the resulting de Bruijn
// graph without modifying it.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/katalvlaran/debruijn/algorithms"
	"github.com/katalvlaran/debruijn/builder"
)

func main() {
	logger := log.New(os.Stderr, "", 0)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024*64)
	scanner.Split(bufio.ScanWords)

	tokens := make([]string, 0, 2)
	for len(tokens) < 2 && scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if len(tokens) < 2 {
		logger.Println("bubblecounter: expected k and threshold tokens")
		os.Exit(1)
	}

	k, err := strconv.Atoi(tokens[0])
	if err != nil || k < 3 {
		logger.Println("bubblecounter: k must be an integer >= 3")
		os.Exit(1)
	}
	threshold, err := strconv.Atoi(tokens[1])
	if err != nil || threshold < 1 {
		logger.Println("bubblecounter: threshold must be an integer >= 1")
		os.Exit(1)
	}

	var reads []string
	for scanner.Scan() {
		reads = append(reads, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		logger.Printf("bubblecounter: reading stdin: %v", err)
		os.Exit(1)
	}

	g, err := builder.Build(reads, builder.WithK(k))
	if err != nil {
		logger.Printf("bubblecounter: %v", err)
		os.Exit(1)
	}

	fmt.Println(algorithms.CountBubbles(g, threshold))
}
