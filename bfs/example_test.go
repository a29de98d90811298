package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/flarelath/bfs"
	"github.com/katalvlaran/flarelath/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid.
func ExampleBFS_gridTraversal() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 0)
			}
			if i+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 0)
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleConnectedComponents splits a Mapper-style graph into its islands.
func ExampleConnectedComponents() {
	g := core.NewGraph()
	_, _ = g.AddEdge("n1", "n2", 0)
	_, _ = g.AddEdge("n2", "n3", 0)
	_, _ = g.AddEdge("n7", "n8", 0)
	_ = g.AddVertex("n5")

	comps, _ := bfs.ConnectedComponents(g)
	for _, c := range comps {
		fmt.Println(c)
	}
	// Output:
	// [n1 n2 n3]
	// [n5]
	// [n7 n8]
}
