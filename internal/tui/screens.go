package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/MKhiriev/go-admin-config/models"
)

func newScreens(ctx context.Context, services *service.ClientServices) []screen {
	return []screen{
		newPanelScreen(ctx, services.IDCard, "Tarjeta ID", idCardRows(), idCardHeader, resetFor(services, models.ResetIDCard)),
		newPanelScreen(ctx, services.Notifications, "Notificaciones", notificationsRows(), notificationsHeader, resetFor(services, models.ResetNotifications)),
	}
}

func resetFor(services *service.ClientServices, scope models.ResetScope) func(context.Context) error {
	return func(ctx context.Context) error {
		return services.Reset(ctx, scope)
	}
}

func idCardHeader(s models.IDCardStats) string {
	return fmt.Sprintf("Campos visibles: %d/%d   Obligatorios: %d   Opciones QR activas: %d/%d",
		s.VisibleFieldCount, len(models.IDCardFieldKeys),
		s.RequiredFieldCount,
		s.ActiveQROptionCount, len(models.QRFlagKeys))
}

func notificationsHeader(s models.NotificationStats) string {
	return fmt.Sprintf("Canales activos: %d/%d   Plantillas activas: %d/%d   Notificaciones activas: %d",
		s.ActiveChannelCount, s.ChannelTotal,
		s.ActiveTemplateCount, s.TemplateTotal,
		s.TotalActiveNotificationCount)
}
