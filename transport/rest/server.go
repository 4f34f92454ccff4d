package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rocketscienceinc/connectfour-cli/internal/viewmodel"
)

type store interface {
	Latest() (viewmodel.GameView, bool)
}

func Start(port string, gameStore store) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      newMux(gameStore),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func newMux(gameStore store) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", pingHandler)
	mux.HandleFunc("/game", gameHandler(gameStore))

	return mux
}
