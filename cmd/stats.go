package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/olekukonko/tablewriter"
)

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	writeRenderStats(&buf, stats)
	logger.Noticef("frame statistics\n%s", buf.String())
}

func writeRenderStats(w io.Writer, stats renderer.RenderStats) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples/pixel", "Bounces", "Tiles", "Workers", "Seed", "Samples/sec"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%.0f", stats.AverageSamples()),
		fmt.Sprintf("%d", stats.MaxBounces),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.Seed),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL", stats.Duration.String()})

	table.Render()
}
