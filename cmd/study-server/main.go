// Command study-server serves the generated commentary data tree and
// the search API.
//
// Usage:
//
//	study-server [--data-dir <dir>] [--addr <host:port>]
package main

import (
	"net/http"

	"github.com/alecthomas/kong"

	"github.com/edydex/bible-study-tool/internal/logging"
	"github.com/edydex/bible-study-tool/internal/server"
)

// CLI defines the command-line interface for study-server.
var CLI struct {
	DataDir string   `name:"data-dir" help:"Directory holding the generated JSON data" default:"public/data" type:"existingdir"`
	Addr    string   `help:"Listen address" default:":8080"`
	Origins []string `help:"Allowed CORS origins (empty allows all)"`
	Debug   bool     `help:"Enable debug logging"`
}

func run() error {
	level := logging.LevelInfo
	if CLI.Debug {
		level = logging.LevelDebug
	}
	logging.InitLogger(level, logging.FormatText)

	study := server.NewStudy(server.StudyConfig{
		DataDir:        CLI.DataDir,
		AllowedOrigins: CLI.Origins,
	})

	logging.Info("study server listening",
		"addr", CLI.Addr, "data_dir", server.AbsPath(CLI.DataDir))
	return http.ListenAndServe(CLI.Addr, study.Handler())
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("study-server"),
		kong.Description("Serve commentary data and the search API"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	ctx.FatalIfErrorf(run())
}
