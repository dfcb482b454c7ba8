package cmd

import (
	"github.com/df07/go-sphere-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("pathtracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.VerbosityLevel(1))
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.VerbosityLevel(2))
	}
}
