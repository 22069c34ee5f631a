package app

import (
	"log/slog"
	"os"

	"github.com/kbop543/BrokenKayak/internal/kayak"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.kayak.enabled") {
		if err := kayak.New(kayak.Dependency{
			Config: a.config,
			Router: a.router,
		}); err != nil {
			slog.Error("failed to init module kayak", "error", err)
			os.Exit(1)
		}
	}
}
