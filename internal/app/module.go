package app

import (
	"log/slog"
	"os"

	"github.com/Juhwan24/Flown/internal/flown"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.flown.enabled") {
		if err := flown.New(flown.Dependency{
			Config:         a.config,
			Router:         a.router,
			RegisterCloser: a.registerCloser,
		}); err != nil {
			slog.Error("failed to init module flown", "error", err)
			os.Exit(1)
		}
	}
}
