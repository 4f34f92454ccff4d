package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectfour-cli/internal/config"
	"github.com/rocketscienceinc/connectfour-cli/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-cli/internal/entity"
	"github.com/rocketscienceinc/connectfour-cli/internal/terminal"
	"github.com/rocketscienceinc/connectfour-cli/internal/viewmodel"
	"github.com/rocketscienceinc/connectfour-cli/transport/rest"
	"github.com/rocketscienceinc/connectfour-cli/transport/websocket"
)

// RunApp - runs one game session: the terminal driver in the foreground and
// the optional spectator servers beside it.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	starting, err := startingPlayer(conf.Game.StartingPlayer)
	if err != nil {
		return err
	}

	game := connectfour.NewGame(starting)

	var publishers []terminal.Publisher

	httpErrCh := make(chan error, 1)
	if conf.Spectator.HTTPPort != "" {
		store := viewmodel.NewStore()
		publishers = append(publishers, store)

		go func() {
			log.Info("Starting HTTP server", "port", conf.Spectator.HTTPPort)
			if httpErr := rest.Start(conf.Spectator.HTTPPort, store); httpErr != nil {
				log.Error("HTTP server error", "error", httpErr)
				httpErrCh <- httpErr
			}
		}()
	}

	wsErrCh := make(chan error, 1)
	if conf.Spectator.SocketPort != "" {
		wsServer := websocket.New(logger)
		publishers = append(publishers, wsServer)

		go func() {
			log.Info("Starting WebSocket server", "port", conf.Spectator.SocketPort)
			if wsErr := wsServer.Start(ctx, conf.Spectator.SocketPort); wsErr != nil {
				log.Error("WebSocket server error", "error", wsErr)
				wsErrCh <- wsErr
			}
		}()
	}

	driver := terminal.NewDriver(logger, game, glyphs(conf.Game), os.Stdin, os.Stdout, publishers...)

	driverErrCh := make(chan error, 1)
	go func() {
		driverErrCh <- driver.Run(ctx)
	}()

	select {
	case err = <-driverErrCh:
		if err != nil {
			return fmt.Errorf("terminal driver error: %w", err)
		}
		return nil
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func startingPlayer(name string) (entity.Player, error) {
	switch name {
	case string(entity.PlayerRed), "":
		return entity.PlayerRed, nil
	case string(entity.PlayerYellow):
		return entity.PlayerYellow, nil
	default:
		return "", fmt.Errorf("unknown starting player %q", name)
	}
}

func glyphs(conf config.Game) terminal.Glyphs {
	result := terminal.DefaultGlyphs()

	if conf.RedGlyph != "" {
		result.Red = conf.RedGlyph
	}
	if conf.YellowGlyph != "" {
		result.Yellow = conf.YellowGlyph
	}
	if conf.EmptyGlyph != "" {
		result.Empty = conf.EmptyGlyph
	}

	return result
}
