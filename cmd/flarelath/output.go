package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/flarelath/core"
	"github.com/katalvlaran/flarelath/flareness"
	"github.com/katalvlaran/flarelath/flaretree"
)

var (
	heading   = color.New(color.FgCyan, color.Bold)
	alive     = color.New(color.FgGreen)
	typeColor = map[flareness.Type]*color.Color{
		flareness.NotFound:       color.New(color.FgRed),
		flareness.None:           color.New(color.FgYellow),
		flareness.PureFlare:      color.New(color.FgGreen),
		flareness.FlareAndIsland: color.New(color.FgMagenta),
		flareness.PureIsland:     color.New(color.FgBlue),
	}
)

func printReport(w io.Writer, rep *flareness.Report) {
	heading.Fprintf(w, "%-24s %5s %-18s %s\n", "ENTITY", "TYPE", "INDEX", "SIGNATURE")
	for _, row := range rep.Rows {
		index := "-"
		if row.Found {
			index = fmt.Sprintf("%g", row.Index)
		}
		typeColor[row.Type].Fprintf(w, "%-24s %5d %-18s %v\n", row.Entity, int(row.Type), index, []float64(row.Signature))
	}

	sections := []struct {
		title    string
		entities []string
	}{
		{"PURE ISLAND", rep.PureIsland},
		{"FLARE AND ISLAND", rep.FlareAndIsland},
		{"FLARE ONLY", rep.FlareOnly},
		{"NOT FLARE NOR ISLAND", rep.Degenerate},
		{"NOT FOUND", rep.NotFound},
	}
	for _, s := range sections {
		fmt.Fprintln(w)
		heading.Fprintf(w, "*** %s ***\n", s.title)
		for _, e := range s.entities {
			fmt.Fprintln(w, e)
		}
	}
}

func printFlares(w io.Writer, res *flaretree.Result) {
	heading.Fprintf(w, "%-4s %-12s %-10s %-10s %-10s %s\n", "#", "ORIGIN", "BIRTH", "DEATH", "LIFESPAN", "MEMBERS")
	for i, fl := range res.Flares {
		c := color.New(color.Reset)
		if fl.Alive() {
			c = alive
		}
		c.Fprintf(w, "%-4d %-12s %-10.4g %-10.4g %-10.4g %s\n",
			i, fl.Origin, fl.Birth, fl.Death, fl.Lifespan(), strings.Join(fl.Members, ","))
	}
}

var annotationColumns = []string{"H", "C", "B"}

func printAnnotations(w io.Writer, g *core.Graph) {
	heading.Fprintf(w, "%-12s", "VERTEX")
	for _, code := range annotationColumns {
		heading.Fprintf(w, " %6s %12s", code+flaretree.FlareSuffix, code+flaretree.CentralitySuffix)
	}
	fmt.Fprintln(w)

	for _, id := range g.Vertices() {
		fmt.Fprintf(w, "%-12s", id)
		for _, code := range annotationColumns {
			idx, _ := g.Attr(id, code+flaretree.FlareSuffix)
			val, _ := g.Attr(id, code+flaretree.CentralitySuffix)
			fmt.Fprintf(w, " %6v %12.4f", idx, val)
		}
		fmt.Fprintln(w)
	}
}
