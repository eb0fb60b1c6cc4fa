// Command eulerlist reads a 1-based edge list from stdin ("V E" header,
// then E "u v" lines), checks whether the graph is balanced, and prints
// either "0" or "1" followed by an Eulerian cycle over the 1-based node
// labels.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/debruijn/algorithms"
	"github.com/katalvlaran/debruijn/core"
)

func main() {
	logger := log.New(os.Stderr, "", 0)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024*64)
	scanner.Split(bufio.ScanWords)

	readInt := func(what string) int {
		if !scanner.Scan() {
			logger.Printf("eulerlist: expected %s", what)
			os.Exit(1)
		}
		n, err := strconv.Atoi(scanner.Text())
		if err != nil {
			logger.Printf("eulerlist: %s must be an integer", what)
			os.Exit(1)
		}

		return n
	}

	v := readInt("vertex count")
	e := readInt("edge count")

	g := core.NewGraph()
	ids := make([]core.NodeID, v+1) // 1-based
	for i := 1; i <= v; i++ {
		id, err := g.Intern(strconv.Itoa(i))
		if err != nil {
			logger.Printf("eulerlist: %v", err)
			os.Exit(1)
		}
		ids[i] = id
	}

	for i := 0; i < e; i++ {
		u := readInt("edge source")
		w := readInt("edge target")
		if u < 1 || u > v || w < 1 || w > v {
			logger.Println("eulerlist: edge endpoint out of range")
			os.Exit(1)
		}
		if err := g.AddEdge(ids[u], ids[w]); err != nil {
			logger.Printf("eulerlist: %v", err)
			os.Exit(1)
		}
	}

	balanced, cycle, err := algorithms.EulerianCycleChecked(g)
	if err != nil {
		logger.Fatalf("eulerlist: %v", err)
	}
	if !balanced {
		fmt.Println(0)

		return
	}

	fmt.Println(1)

	if len(cycle) == 0 {
		fmt.Println()

		return
	}

	labels := make([]string, 0, len(cycle)-1)
	for _, id := range cycle[:len(cycle)-1] {
		label, err := g.LabelOf(id)
		if err != nil {
			logger.Fatalf("eulerlist: %v", err)
		}
		labels = append(labels, label)
	}
	fmt.Println(strings.Join(labels, " "))
}
