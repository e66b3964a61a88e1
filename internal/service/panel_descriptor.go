package service

import (
	"github.com/MKhiriev/go-admin-config/internal/app"
	"github.com/MKhiriev/go-admin-config/internal/configmodel"
	"github.com/MKhiriev/go-admin-config/models"
)

// Descriptor binds a configuration model type to its domain.
type Descriptor[M, S any] struct {
	Domain       models.Domain
	Defaults     func() M
	Project      func(M) S
	SavedMessage string
}

// IDCardDescriptor describes the identity-card panel.
func IDCardDescriptor() Descriptor[models.IDCardConfig, models.IDCardStats] {
	return Descriptor[models.IDCardConfig, models.IDCardStats]{
		Domain:       models.DomainIDCard,
		Defaults:     configmodel.DefaultIDCard,
		Project:      configmodel.ProjectIDCard,
		SavedMessage: app.MsgIDCardSaved,
	}
}

// NotificationsDescriptor describes the notifications panel.
func NotificationsDescriptor() Descriptor[models.NotificationsConfig, models.NotificationStats] {
	return Descriptor[models.NotificationsConfig, models.NotificationStats]{
		Domain:       models.DomainNotifications,
		Defaults:     configmodel.DefaultNotifications,
		Project:      configmodel.ProjectNotifications,
		SavedMessage: app.MsgNotificationsSaved,
	}
}

// IDCardPanel is the panel of the identity-card screen.
type IDCardPanel = ConfigPanel[models.IDCardConfig, models.IDCardStats]

// NotificationsPanel is the panel of the notifications screen.
type NotificationsPanel = ConfigPanel[models.NotificationsConfig, models.NotificationStats]
