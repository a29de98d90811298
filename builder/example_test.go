package builder_test

import (
	"fmt"

	"github.com/katalvlaran/flarelath/builder"
	"github.com/katalvlaran/flarelath/core"
)

// ExampleBuildGraph assembles a six-node Mapper fixture: a path whose first
// node holds entity "bar" and the rest entity "foo".
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, nil,
		builder.Path(6),
		builder.Tag("bar", "0"),
		builder.Tag("foo", "1", "2", "3", "4", "5"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range g.Vertices() {
		m, _ := g.Members(id, core.DefaultMembershipKey)
		fmt.Print(id, m, " ")
	}
	fmt.Println()
	// Output:
	// 0[bar] 1[foo] 2[foo] 3[foo] 4[foo] 5[foo]
}
