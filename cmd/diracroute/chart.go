package main

import (
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/diracroute/core"
	"github.com/katalvlaran/diracroute/planner"
	"github.com/katalvlaran/diracroute/tour"
)

// chartScale maps unit-square coordinates onto chart pixels.
const chartScale = 600

// renderHTML writes a standalone HTML page with two overlaid graph
// series: the proximity edges ("roads") and the chosen route — the exact
// Hamiltonian cycle when one was found, the heuristic tour otherwise.
// Nodes are pinned at their true layout coordinates (layout "none").
func renderHTML(rep planner.Report, path string) error {
	nodes := chartNodes(rep.Graph)

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "diracroute",
			Width:     "900px",
			Height:    "700px",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	graph.AddSeries("roads", nodes, edgeLinks(rep.Graph),
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout: "none",
			Roam:   opts.Bool(true),
		}),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "top",
		}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: "#42A5F5", Width: 2}),
	)

	route, name, color := rep.Heuristic, "heuristic route", "orange"
	if rep.ExactStatus == planner.StatusFound {
		route, name, color = rep.Exact, "hamiltonian cycle", "red"
	}
	graph.AddSeries(name, nodes, routeLinks(route),
		charts.WithGraphChartOpts(opts.GraphChart{Layout: "none"}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: color, Width: 3}),
	)

	page := components.NewPage()
	page.AddCharts(graph)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return page.Render(f)
}

// chartNodes pins every vertex at its layout position. The Y axis is
// flipped: chart coordinates grow downward, map coordinates upward.
func chartNodes(g *core.Graph) []opts.GraphNode {
	vertices := g.Vertices()
	nodes := make([]opts.GraphNode, len(vertices))

	for i, v := range vertices {
		nodes[i] = opts.GraphNode{
			Name:       v.ID,
			X:          float32(v.At.X * chartScale),
			Y:          float32((1 - v.At.Y) * chartScale),
			Fixed:      opts.Bool(true),
			SymbolSize: 30,
		}
	}

	return nodes
}

// edgeLinks converts the proximity edge set; link values carry the
// display-rounded weights for tooltips.
func edgeLinks(g *core.Graph) []opts.GraphLink {
	edges := g.Edges()
	links := make([]opts.GraphLink, len(edges))

	for i, e := range edges {
		links[i] = opts.GraphLink{
			Source: e.U,
			Target: e.V,
			Value:  float32(e.RoundedWeight()),
		}
	}

	return links
}

// routeLinks converts a closed route into consecutive-hop links.
func routeLinks(r tour.Route) []opts.GraphLink {
	links := make([]opts.GraphLink, 0, len(r))

	for i := 0; i+1 < len(r); i++ {
		links = append(links, opts.GraphLink{Source: r[i], Target: r[i+1]})
	}

	return links
}
