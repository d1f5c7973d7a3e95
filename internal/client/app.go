// SPDX-License-Identifier: MIT

// Package client assembles the headless sync agent: configuration, local
// SQLite storage, the server adapter and the periodic sync job.
package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/google/uuid"

	"github.com/tuckersync/tucker-sync/internal/adapter"
	"github.com/tuckersync/tucker-sync/internal/config"
	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/service"
	"github.com/tuckersync/tucker-sync/internal/store"
	"github.com/tuckersync/tucker-sync/models"
)

const (
	metaKeyInstallUUID = "install_uuid"
	metaKeyClientID    = "client_id"
)

// Run starts the agent and blocks until the process receives a termination
// signal.
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error loading client config: %w", err)
	}

	log := logger.NewLogger("sync-client")

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating local storages: %w", err)
	}
	defer storages.DB.Close()

	server := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.ServerURL,
		AppKey:  cfg.Adapter.AppKey,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	if _, err = server.Login(ctx, models.User{
		Email:    cfg.Account.Email,
		Password: cfg.Account.Password,
	}); err != nil {
		return fmt.Errorf("error logging in: %w", err)
	}

	clientID, err := registerClient(ctx, cfg, server, storages.Objects, log)
	if err != nil {
		return err
	}

	services := service.NewClientServices(server, storages.Objects, cfg.Sync.Classes, clientID, log)
	services.Job.Start(ctx, cfg.Sync.Interval)
	defer services.Job.Stop()

	log.Info().
		Str("func", "client.Run").
		Int64("client_id", clientID).
		Strs("classes", cfg.Sync.Classes).
		Msg("sync agent started")

	<-ctx.Done()

	log.Info().Str("func", "client.Run").Msg("sync agent shutting down")
	return nil
}

// registerClient resolves this installation's durable client identity.
//
// The install UUID comes from the config when set, otherwise from the local
// meta store, and is generated and persisted on first run. Registration with
// the same UUID is idempotent on the server, so the returned ClientID is
// stable across restarts even if the cached copy is lost.
func registerClient(ctx context.Context, cfg *config.ClientConfig, server adapter.ServerAdapter, local store.LocalObjectRepository, log *logger.Logger) (int64, error) {
	installUUID := cfg.Account.InstallUUID
	if installUUID == "" {
		stored, err := local.GetMeta(ctx, metaKeyInstallUUID)
		switch {
		case err == nil:
			installUUID = stored
		case errors.Is(err, store.ErrNoMetaValue):
			installUUID = uuid.NewString()
			if err = local.SetMeta(ctx, metaKeyInstallUUID, installUUID); err != nil {
				return 0, fmt.Errorf("error persisting install uuid: %w", err)
			}
			log.Info().
				Str("func", "client.registerClient").
				Str("install_uuid", installUUID).
				Msg("generated new install uuid")
		default:
			return 0, fmt.Errorf("error reading install uuid: %w", err)
		}
	}

	registered, err := server.RegisterClient(ctx, installUUID)
	if err != nil {
		return 0, fmt.Errorf("error registering client: %w", err)
	}

	if err = local.SetMeta(ctx, metaKeyClientID, strconv.FormatInt(registered.ClientID, 10)); err != nil {
		return 0, fmt.Errorf("error persisting client id: %w", err)
	}

	return registered.ClientID, nil
}
