package components

import (
	"log/slog"

	"event-sync-service/internal/pkg/clock"
	"event-sync-service/internal/pkg/config"
	"event-sync-service/internal/pkg/idgen"
	"event-sync-service/internal/usecase/artifact"
	"event-sync-service/internal/usecase/offlinesync"
	"event-sync-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		fx.Annotate(idgen.NewRandomGenerator, fx.As(new(idgen.Generator))),
		NewOfflineManager,
		fx.Annotate(func(m *offlinesync.Manager) *offlinesync.Manager { return m }, fx.As(new(offlinesync.Service))),
		NewArtifactFacade,
		fx.Annotate(func(f *artifact.Facade) *artifact.Facade { return f }, fx.As(new(artifact.Service))),
	),
)

type offlineManagerParams struct {
	fx.In

	Lifecycle     fx.Lifecycle
	Config        config.Config
	Store         shared.KeyValueStore
	Network       shared.NetworkStatusSource
	Registrations offlinesync.RegistrationCreator
	MealScans     offlinesync.MealAttendanceCreator
	Events        shared.EventPublisher
	IDs           idgen.Generator
	Clock         clock.Clock
	Logger        *slog.Logger
}

// NewOfflineManager loads persisted offline data and ties the sync loop to
// the application lifecycle.
func NewOfflineManager(p offlineManagerParams) *offlinesync.Manager {
	m := offlinesync.NewManager(offlinesync.Deps{
		Store:         p.Store,
		Network:       p.Network,
		Registrations: p.Registrations,
		MealScans:     p.MealScans,
		Events:        p.Events,
		IDs:           p.IDs,
		Clock:         p.Clock,
		Logger:        p.Logger,
	}, offlinesync.Options{
		StorageKey:   p.Config.Store.Key,
		MaxRetries:   p.Config.Sync.MaxRetries,
		SyncInterval: p.Config.Sync.Interval,
	})
	p.Lifecycle.Append(fx.Hook{OnStart: m.Start, OnStop: m.Stop})
	return m
}

type artifactFacadeParams struct {
	fx.In

	Config    config.Config
	QR        artifact.QRCodeGenerator
	Badges    artifact.BadgeGenerator
	Sink      artifact.FileSink
	Clipboard artifact.Clipboard
	Notifier  shared.Notifier
	Clock     clock.Clock
	Logger    *slog.Logger
}

func NewArtifactFacade(p artifactFacadeParams) *artifact.Facade {
	return artifact.NewFacade(p.QR, p.Badges, p.Sink, p.Clipboard, p.Notifier, p.Clock, p.Logger,
		artifact.Options{QRPrintSize: p.Config.Artifact.QRPrintSize})
}
