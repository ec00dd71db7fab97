// Package logger configure le slog global partagé par tous les services.
package logger

import (
	"log/slog"
	"os"
)

// Init installe le logger par défaut : texte lisible en local,
// JSON partout ailleurs (ingestion Loki/ELK).
func Init(env string) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if env == "local" {
		opts.Level = slog.LevelDebug
	}
	var handler slog.Handler
	if env == "local" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
