package components

import (
	"event-sync-service/internal/handler"
	"event-sync-service/internal/handler/api"
	"event-sync-service/internal/infra/network"
	"event-sync-service/internal/infra/notify"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(func(m *network.Monitor) *network.Monitor { return m }, fx.As(new(api.NetworkOverride))),
		fx.Annotate(func(h *notify.Hub) *notify.Hub { return h }, fx.As(new(api.NotificationFeed))),
		api.NewOfflineHandler,
		api.NewQRCodeHandler,
		api.NewBadgeHandler,
		api.NewNotificationHandler,
		func(o *api.OfflineHandler, q *api.QRCodeHandler, b *api.BadgeHandler, n *api.NotificationHandler) handler.Handlers {
			return handler.Handlers{Offline: o, QRCode: q, Badge: b, Notification: n}
		},
	),
	fx.Invoke(handler.NewRouter),
)
