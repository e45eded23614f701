package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"fruatrecard.my.id/internal/config"
	"fruatrecard.my.id/internal/handlers"
)

func main() {
	app := &cli.App{
		Name:  "portfolio",
		Usage: "Serve the portfolio page and the project list API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host", Value: config.DefaultHost, EnvVars: []string{"HOST"}, Usage: "interface to bind"},
			&cli.IntFlag{Name: "port", Value: config.DefaultPort, EnvVars: []string{"PORT"}, Usage: "port to listen on (0 selects the default)"},
			&cli.StringFlag{Name: "data", Value: config.DefaultDataPath, EnvVars: []string{"PROJECTS_FILE"}, Usage: "project list (.json, .yaml or .yml)"},
			&cli.StringFlag{Name: "static", Value: config.DefaultStatic, EnvVars: []string{"STATIC_DIR"}, Usage: "directory served under /static"},
			&cli.StringFlag{Name: "dist", Value: config.DefaultDist, EnvVars: []string{"DIST_DIR"}, Usage: "directory served under /dist, holds index.html"},
			&cli.BoolFlag{Name: "minify", EnvVars: []string{"MINIFY_ASSETS"}, Usage: "minify HTML, CSS and JS responses"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(config.Options{
		Host:      c.String("host"),
		Port:      c.Int("port"),
		DataPath:  c.String("data"),
		StaticDir: c.String("static"),
		DistDir:   c.String("dist"),
		Minify:    c.Bool("minify"),
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      handlers.SetupRoutes(cfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Portfolio server listening on http://%s", cfg.ServerAddr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
