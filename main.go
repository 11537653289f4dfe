package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/llehouerou/mediashelf/internal/catalog"
	"github.com/llehouerou/mediashelf/internal/config"
	"github.com/llehouerou/mediashelf/internal/errmsg"
	"github.com/llehouerou/mediashelf/internal/logger"
	"github.com/llehouerou/mediashelf/internal/shell"
	"github.com/llehouerou/mediashelf/internal/ui/styles"
)

func main() {
	os.Exit(run(context.Background(), os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		return 1
	}

	logOut := stderr
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(stderr, errmsg.FormatWith(errmsg.OpLogOpen, cfg.Log.File, err))
			return 1
		}
		defer f.Close()
		logOut = f
	}

	log := logger.New(logger.Config{
		Writer:  logOut,
		Format:  cfg.Log.Format,
		Level:   logger.ParseLevel(cfg.Log.Level),
		NoColor: cfg.Log.File != "" || !isTerminal(logOut),
	})

	sh := shell.New(catalog.New(), stdin, stdout,
		shell.WithLogger(log),
		shell.WithStyles(styles.T().For(stdout, cfg.UI.Color)),
	)
	if err := sh.Run(ctx); err != nil {
		fmt.Fprintln(stderr, errmsg.Format(errmsg.OpRunShell, err))
		return 1
	}
	return 0
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
