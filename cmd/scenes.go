package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-sphere-pathtracer/pkg/loaders"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scenes and the JSON scenes found in the
// scenes directory.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	scenes, err := scene.ListAllScenes(ctx.String("scenes-dir"))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writeSceneTable(&buf, scenes)
	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}

func writeSceneTable(w io.Writer, scenes []scene.SceneInfo) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Type", "Description"})
	for _, info := range scenes {
		table.Append([]string{info.ID, info.Name, info.Type, info.Description})
	}
	table.Render()
}

// ExportScene writes a scene as a JSON scene file, as a starting point for
// custom scenes.
func ExportScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := resolveScene(ctx.String("scene"), ctx.String("file"), ctx.String("scenes-dir"))
	if err != nil {
		return err
	}

	file := scene.ToSceneFile(sc)
	outFile := ctx.String("out")
	if outFile == "" || outFile == "-" {
		return loaders.WriteSceneJSON(ctx.App.Writer, file)
	}

	if err := writeSceneFile(outFile, file); err != nil {
		return err
	}
	logger.Noticef("wrote scene %q to %s", sc.Name, outFile)
	return nil
}

func writeSceneFile(path string, file *loaders.SceneFile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := loaders.WriteSceneJSON(f, file); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
