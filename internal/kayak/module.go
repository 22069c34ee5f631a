package kayak

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kbop543/BrokenKayak/internal/kayak/cache"
	"github.com/kbop543/BrokenKayak/internal/kayak/directory"
	"github.com/kbop543/BrokenKayak/internal/kayak/inbound"
	"github.com/kbop543/BrokenKayak/internal/kayak/usecase"
	"github.com/kbop543/BrokenKayak/internal/pkg/pkgconfig"
	"github.com/kbop543/BrokenKayak/internal/pkg/pkgrouter"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
}

func New(dep Dependency) error {
	cacheTTL := 60 * time.Second
	if ttlSeconds := dep.Config.GetInt("modules.kayak.cache.ttl_seconds"); ttlSeconds > 0 {
		cacheTTL = time.Duration(ttlSeconds) * time.Second
	}

	uc := usecase.New(usecase.Dependency{
		Directory: directory.New(),
		Cache:     cache.New(usecase.CloneItinerariesOutput),
		CacheTTL:  cacheTTL,
	})

	if err := preload(dep.Config, uc); err != nil {
		return err
	}

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}

// preload ingests the CSV files named in config, if any, before the
// server starts taking queries. This is the bulk write phase of the
// read-mostly model; a missing key just means an empty startup.
func preload(cfg pkgconfig.Config, uc *usecase.Usecase) error {
	ctx := context.Background()

	if path := cfg.GetString("modules.kayak.data.clients"); path != "" {
		file, err := os.Open(filepath.Clean(path))
		if err != nil {
			return fmt.Errorf("open clients file: %w", err)
		}
		_, err = uc.UploadClients(ctx, file)
		//nolint:errcheck,gosec // read-only handle
		file.Close()
		if err != nil {
			return fmt.Errorf("preload clients: %w", err)
		}
	}

	if path := cfg.GetString("modules.kayak.data.flights"); path != "" {
		file, err := os.Open(filepath.Clean(path))
		if err != nil {
			return fmt.Errorf("open flights file: %w", err)
		}
		_, err = uc.UploadFlights(ctx, file)
		//nolint:errcheck,gosec // read-only handle
		file.Close()
		if err != nil {
			return fmt.Errorf("preload flights: %w", err)
		}
	}

	return nil
}
