package core_test

import (
	"fmt"

	"github.com/katalvlaran/flarelath/core"
)

// ExampleGraph_Members shows how Mapper nodes expose their member sets.
func ExampleGraph_Members() {
	g := core.NewGraph()
	_, _ = g.AddEdge("n0", "n1", 0)
	_ = g.SetAttr("n0", core.DefaultMembershipKey, []string{"p2", "p1"})
	_ = g.SetAttr("n1", core.DefaultMembershipKey, []string{"p2"})

	for _, id := range g.Vertices() {
		m, _ := g.Members(id, core.DefaultMembershipKey)
		fmt.Println(id, m, g.HasMember(id, core.DefaultMembershipKey, "p1"))
	}
	// Output:
	// n0 [p1 p2] true
	// n1 [p2] false
}
