package components

import (
	"log/slog"
	"net/http"

	"event-sync-service/internal/infra/network"
	"event-sync-service/internal/infra/notify"
	"event-sync-service/internal/infra/remote"
	"event-sync-service/internal/infra/sink"
	"event-sync-service/internal/pkg/clock"
	"event-sync-service/internal/pkg/config"
	"event-sync-service/internal/usecase/artifact"
	"event-sync-service/internal/usecase/offlinesync"
	"event-sync-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		NewRemoteClient,
		fx.Annotate(func(c *remote.Client) *remote.Client { return c }, fx.As(new(offlinesync.RegistrationCreator))),
		fx.Annotate(func(c *remote.Client) *remote.Client { return c }, fx.As(new(offlinesync.MealAttendanceCreator))),
		fx.Annotate(func(c *remote.Client) *remote.Client { return c }, fx.As(new(artifact.QRCodeGenerator))),
		fx.Annotate(func(c *remote.Client) *remote.Client { return c }, fx.As(new(artifact.BadgeGenerator))),
		NewNotifyHub,
		fx.Annotate(func(h *notify.Hub) *notify.Hub { return h }, fx.As(new(shared.Notifier))),
		fx.Annotate(func(h *notify.Hub) *notify.Hub { return h }, fx.As(new(shared.EventPublisher))),
		NewNetworkMonitor,
		fx.Annotate(func(m *network.Monitor) *network.Monitor { return m }, fx.As(new(shared.NetworkStatusSource))),
		NewFileSink,
		fx.Annotate(func(s *sink.FileSink) *sink.FileSink { return s }, fx.As(new(artifact.FileSink))),
		NewClipboard,
	),
)

func NewRemoteClient(cfg config.Config, logger *slog.Logger) *remote.Client {
	return remote.NewClient(cfg.Remote.GraphQLURL, cfg.Remote.Token, cfg.Remote.Timeout, logger)
}

func NewNotifyHub(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *notify.Hub {
	hub := notify.NewHub(cfg.Notify.HistorySize, logger)
	lc.Append(fx.Hook{OnStop: hub.Close})
	return hub
}

// NewNetworkMonitor probes NETWORK_PROBE_URL when set, the GraphQL endpoint otherwise.
func NewNetworkMonitor(lc fx.Lifecycle, cfg config.Config, client *remote.Client, events shared.EventPublisher, clk clock.Clock, logger *slog.Logger) *network.Monitor {
	var prober network.Prober = client
	if cfg.Network.ProbeURL != "" {
		prober = network.HTTPProber{URL: cfg.Network.ProbeURL, Client: &http.Client{Timeout: cfg.Network.ProbeTimeout}}
	}
	m := network.NewMonitor(prober, events, clk, logger, network.Options{
		InitialOnline: cfg.Network.InitialOnline,
		ProbeInterval: cfg.Network.ProbeInterval,
		ProbeTimeout:  cfg.Network.ProbeTimeout,
	})
	lc.Append(fx.Hook{OnStart: m.Start, OnStop: m.Stop})
	return m
}

func NewFileSink(cfg config.Config, logger *slog.Logger) (*sink.FileSink, error) {
	return sink.NewFileSink(sink.Options{
		Dir:          cfg.Artifact.Dir,
		PublicPath:   cfg.Artifact.PublicPath,
		PrintCommand: cfg.Artifact.PrintCommand,
	}, logger)
}

func NewClipboard(cfg config.Config, logger *slog.Logger) artifact.Clipboard {
	return sink.NewFileClipboard(cfg.Artifact.Dir, cfg.Artifact.ClipboardEnabled, logger)
}

