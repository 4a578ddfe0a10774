// Package cli wires the Shelfkeeper commands: it builds the local store,
// the optional remote client, and the sync service, and exposes them as
// cobra commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/shelfkeeper/internal/config"
	"github.com/dmitrijs2005/shelfkeeper/internal/localstore"
	"github.com/dmitrijs2005/shelfkeeper/internal/logging"
	"github.com/dmitrijs2005/shelfkeeper/internal/remote"
	"github.com/dmitrijs2005/shelfkeeper/internal/syncer"
)

// buildService assembles the sync service from configuration. The returned
// cleanup closes the local database. A missing remote endpoint or token
// yields an offline-only service.
func buildService(ctx context.Context, cfg *config.Config) (*syncer.Service, func(), error) {
	store, err := localstore.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("opening local store: %w", err)
	}
	cleanup := func() { _ = store.Close() }

	var remoteClient remote.Client
	if cfg.RemoteEndpoint != "" && cfg.AuthToken != "" {
		var uploader remote.Uploader
		if cfg.S3Bucket != "" {
			uploader, err = remote.NewS3Uploader(ctx, remote.S3Options{
				Region:       cfg.S3Region,
				BaseEndpoint: cfg.S3BaseEndpoint,
				AccessKey:    cfg.S3AccessKey,
				SecretKey:    cfg.S3SecretKey,
				Bucket:       cfg.S3Bucket,
			})
			if err != nil {
				cleanup()
				return nil, nil, err
			}
		}
		client, err := remote.NewHTTPClient(cfg.RemoteEndpoint, cfg.AuthToken, uploader, cfg.RequestTimeout)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		remoteClient = client
	}

	log := logging.NewTextLogger()

	svc := syncer.NewService(store, remoteClient, syncer.Options{
		Logger:        log,
		Status:        printStatus,
		RetryAttempts: cfg.UploadRetries,
		RetryDelay:    cfg.UploadRetryDelay,
	})
	return svc, cleanup, nil
}

func printStatus(key string, tone syncer.Tone) {
	fmt.Fprintf(os.Stderr, "[%s] %s\n", tone, key)
}
