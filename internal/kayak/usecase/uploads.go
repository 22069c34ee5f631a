package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/kbop543/BrokenKayak/internal/kayak/ingest"
	"github.com/kbop543/BrokenKayak/internal/pkg/pkgerror"
	"github.com/kbop543/BrokenKayak/internal/pkg/pkgmetric"
)

type UploadOutput struct {
	Records int
}

// UploadFlights ingests a CSV batch of flights. The batch is parsed in
// full before any flight is admitted; on success the extended network
// replaces the published one and cached search results are purged.
func (u *Usecase) UploadFlights(ctx context.Context, r io.Reader) (*UploadOutput, error) {
	flights, err := ingest.ReadFlights(r)
	if err != nil {
		pkgmetric.UploadsTotal.WithLabelValues("flights", "rejected").Inc()
		return nil, pkgerror.Wrap(err, "malformed flight data", pkgerror.CodeInvalidInput)
	}

	u.mu.Lock()
	next := u.network.Clone()
	for _, f := range flights {
		next.AddFlight(f)
	}
	u.network = next
	u.generation++
	u.mu.Unlock()

	u.cache.Purge()
	pkgmetric.UploadsTotal.WithLabelValues("flights", "accepted").Inc()
	slog.InfoContext(ctx, "flight batch ingested", "records", len(flights))

	return &UploadOutput{Records: len(flights)}, nil
}

// UploadClients ingests a CSV batch of clients, all-or-nothing. A
// duplicate email overwrites the stored record; each overwrite is
// logged.
func (u *Usecase) UploadClients(ctx context.Context, r io.Reader) (*UploadOutput, error) {
	clients, err := ingest.ReadClients(r)
	if err != nil {
		pkgmetric.UploadsTotal.WithLabelValues("clients", "rejected").Inc()
		return nil, pkgerror.Wrap(err, "malformed client data", pkgerror.CodeInvalidInput)
	}

	for _, c := range clients {
		if u.directory.Put(c) {
			slog.WarnContext(ctx, "duplicate client email overwritten", "email", c.Email)
		}
	}
	pkgmetric.UploadsTotal.WithLabelValues("clients", "accepted").Inc()
	slog.InfoContext(ctx, "client batch ingested", "records", len(clients))

	return &UploadOutput{Records: len(clients)}, nil
}
