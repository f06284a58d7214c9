package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/transport/console"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
)

var ErrSizeNotAllowed = errors.New("board size is not in allowed sizes")

// RunApp - runs the application on stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			logger.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - serves console messages from in until EOF or ctx is canceled.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	variant, err := conf.Board.GetVariant()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if !conf.Board.IsAllowedSize(conf.Board.Size) {
		return fmt.Errorf("%w: %d", ErrSizeNotAllowed, conf.Board.Size)
	}

	store := usecase.NewGameStore(logger, conf.Board.Size)
	server := console.New(logger, store, variant, conf.Board.IsAllowedSize)

	log.Info("Starting console game", "game_id", store.ID(), "size", conf.Board.Size, "variant", variant.String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ctx, in, out)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}
		log.Info("Input closed, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
