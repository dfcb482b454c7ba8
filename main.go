package main

import (
	"os"

	"github.com/df07/go-sphere-pathtracer/cmd"
	"github.com/df07/go-sphere-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

func sceneFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:   "scene, s",
			Value:  "default",
			Usage:  "built-in scene ID or name of a JSON scene in the scenes directory",
			EnvVar: "PATHTRACER_SCENE",
		},
		cli.StringFlag{
			Name:  "file, f",
			Usage: "path to a JSON scene file, takes precedence over --scene",
		},
		cli.StringFlag{
			Name:   "scenes-dir",
			Value:  "scenes",
			Usage:  "directory searched for JSON scenes",
			EnvVar: "PATHTRACER_SCENES_DIR",
		},
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "sphere-pathtracer"
	app.Usage = "render sphere scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a scene to an image file. Image size, samples and bounces default to
the scene's recommended settings. The output format follows the file
extension (png, bmp, tif/tiff).

With --upload the encoded frame is also stored in an S3 bucket configured
through S3_ACCESS_KEY, S3_SECRET_KEY, S3_ENDPOINT, S3_REGION and S3_BUCKET,
optionally read from a .env file.`,
			Flags: append(sceneFlags(),
				cli.IntFlag{
					Name:   "width",
					Usage:  "frame width (default: scene setting)",
					EnvVar: "PATHTRACER_WIDTH",
				},
				cli.IntFlag{
					Name:   "height",
					Usage:  "frame height (default: scene setting)",
					EnvVar: "PATHTRACER_HEIGHT",
				},
				cli.IntFlag{
					Name:   "spp",
					Usage:  "samples per pixel (default: scene setting)",
					EnvVar: "PATHTRACER_SPP",
				},
				cli.IntFlag{
					Name:   "bounces",
					Usage:  "maximum bounces per path (default: scene setting)",
					EnvVar: "PATHTRACER_BOUNCES",
				},
				cli.Uint64Flag{
					Name:   "seed",
					Value:  42,
					Usage:  "random seed",
					EnvVar: "PATHTRACER_SEED",
				},
				cli.IntFlag{
					Name:   "workers",
					Usage:  "number of render workers (0 = one per CPU)",
					EnvVar: "PATHTRACER_WORKERS",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 32,
					Usage: "edge length of a render tile in pixels",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
				cli.IntFlag{
					Name:  "thumbnail",
					Usage: "also write a thumbnail no larger than this many pixels per side",
				},
				cli.StringFlag{
					Name:  "upload",
					Usage: "upload the frame to S3 under this key",
				},
				cli.StringFlag{
					Name:  "env",
					Value: ".env",
					Usage: "dotenv file with S3 settings",
				},
			),
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list available scenes",
			Flags:  sceneFlags()[2:],
			Action: cmd.ListScenes,
		},
		{
			Name:  "export",
			Usage: "write a scene as a JSON scene file",
			Flags: append(sceneFlags(),
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output file (default: stdout)",
				},
			),
			Action: cmd.ExportScene,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New("pathtracer").Error(err)
		os.Exit(1)
	}
}
