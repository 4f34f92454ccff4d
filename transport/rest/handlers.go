package rest

import (
	"encoding/json"
	"net/http"
)

func pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// gameHandler serves the latest published snapshot of the running game.
func gameHandler(gameStore store) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		view, ok := gameStore.Latest()
		if !ok {
			http.Error(w, "no game in progress", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(view); err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}
}
