package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sshah229/Comcast/config"
	"github.com/sshah229/Comcast/favourites"
	"github.com/sshah229/Comcast/handler"
	"github.com/sshah229/Comcast/tracing"
	"github.com/sshah229/Comcast/utils"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run starts the interactive menu, or the HTTP server with -serve, and
// returns the process exit code.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	flags := flag.NewFlagSet("weather", flag.ContinueOnError)
	flags.SetOutput(errOut)
	serve := flags.Bool("serve", false, "expose the favourites over HTTP instead of the interactive menu")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if path, ok := config.LoadEnvFile(config.DefaultEnvDirs()...); ok {
		log.Printf("Loaded environment from %s", path)
	}

	cfg, err := config.Load("weather-cli")
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	shutdown, err := tracing.InitProvider(ctx, cfg.ServiceName, cfg.OTelEndpoint)
	if err != nil {
		fmt.Fprintf(errOut, "failed to initialize tracing provider: %v\n", err)
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("failed to shutdown tracing provider: %v", err)
		}
	}()

	client := utils.NewWeatherClient(cfg.APIKey, &http.Client{Timeout: utils.RequestTimeout})
	list := favourites.New(favourites.DefaultCapacity)

	if *serve {
		if err := runServer(ctx, cfg.Port, &handler.FavouritesHandler{Client: client, Favourites: list}); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		handler.NewMenu(client, list, in, out).Run(ctx)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Println("Interrupted, exiting")
	}
	return 0
}

func runServer(ctx context.Context, port string, h *handler.FavouritesHandler) error {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: handler.NewRouter(h),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Weather service running on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}
