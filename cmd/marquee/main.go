package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/BrandonKowalski/marquee/pkg/marquee"
	"github.com/BrandonKowalski/marquee/pkg/marquee/catalog"
	"github.com/BrandonKowalski/marquee/pkg/marquee/config"
	"github.com/BrandonKowalski/marquee/pkg/marquee/locale"
)

var (
	configPath = flag.String("config", "./marquee.toml", "Path to configuration file")
	openPath   = flag.String("open", "", `Route to open on start, e.g. "details/tt0499549"`)
)

func init() {
	// SDL must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		if cat, err = catalog.Load(cfg.CatalogPath); err != nil {
			return err
		}
	}

	text, err := locale.New(cfg.Language)
	if err != nil {
		return err
	}

	if err := marquee.Init(marquee.OptionsFromConfig(cfg)); err != nil {
		return err
	}
	defer marquee.Close()

	logger := marquee.GetLogger()
	logger.Info("starting", "movies", cat.Len(), "language", text.Language().String())

	app := marquee.NewApp(cat, text, logger)
	defer app.Close()

	if *openPath != "" {
		if err := app.Open(*openPath); err != nil {
			return err
		}
	}

	if err := app.Run(); err != nil && !marquee.IsCancelled(err) {
		return err
	}
	return nil
}
