package configmodel

import (
	"fmt"

	"github.com/MKhiriev/go-admin-config/models"
)

const (
	DefaultQRExpiryDays = 30

	DefaultLegalText = "Este mensaje fue enviado por OpenBlind. Para dejar de recibir notificaciones, actualiza tus preferencias en la aplicación."
)

// DefaultIDCard returns the identity-card defaults.
func DefaultIDCard() models.IDCardConfig {
	return models.IDCardConfig{
		FullName:  models.FieldSpec{Visible: true, Required: true, Order: 1},
		Email:     models.FieldSpec{Visible: true, Required: true, Order: 2},
		Phone:     models.FieldSpec{Visible: true, Required: false, Order: 3},
		Address:   models.FieldSpec{Visible: true, Required: false, Order: 4},
		BloodType: models.FieldSpec{Visible: false, Required: false, Order: 5},
		QRConfig: models.QRConfig{
			IncludePhoto:      false,
			EmergencyContacts: true,
			MedicalInfo:       false,
			BloodType:         false,
			Allergies:         false,
			ExpiryDays:        DefaultQRExpiryDays,
		},
	}
}

// DefaultNotifications returns the notification defaults. Channel event maps
// are allocated on every call.
func DefaultNotifications() models.NotificationsConfig {
	return models.NotificationsConfig{
		Push: channel(true, models.EventRouteStart, models.EventRouteEnd, models.EventSafetyAlert,
			models.EventSupportMessage, models.EventEmergency),
		Email: channel(false, models.EventSupportMessage, models.EventEmergency),
		SMS:   channel(false, models.EventEmergency),

		RouteStart: models.MessageTemplate{
			Subject: "Inicio de Ruta - OpenBlind",
			Body:    "Hola {{userName}}, has iniciado tu ruta hacia {{destination}}.",
			Enabled: true,
		},
		RouteEnd: models.MessageTemplate{
			Subject: "Ruta Finalizada - OpenBlind",
			Body:    "Hola {{userName}}, has finalizado tu ruta exitosamente.",
			Enabled: true,
		},
		SafetyAlert: models.MessageTemplate{
			Subject: "Alerta de Seguridad - OpenBlind",
			Body:    "Alerta: Se ha detectado una situación de riesgo en {{location}}.",
			Enabled: true,
		},
		SupportMessage: models.MessageTemplate{
			Subject: "Mensaje de Soporte - OpenBlind",
			Body:    "Hola {{userName}}, hemos recibido tu mensaje. Te responderemos pronto.",
			Enabled: true,
		},
		Emergency: models.MessageTemplate{
			Subject: "EMERGENCIA - OpenBlind",
			Body:    "EMERGENCIA: {{userName}} ha activado una alerta de emergencia en {{location}}.",
			Enabled: true,
		},

		LegalText: DefaultLegalText,
	}
}

// channel builds a channel where exactly the listed events are on.
func channel(enabled bool, on ...models.EventKind) models.NotificationChannel {
	events := make(map[models.EventKind]bool, len(models.EventKinds))
	for _, kind := range models.EventKinds {
		events[kind] = false
	}
	for _, kind := range on {
		events[kind] = true
	}
	return models.NotificationChannel{Enabled: enabled, Events: events}
}

// Defaults returns the defaults of domain as its concrete model type.
func Defaults(domain models.Domain) (any, error) {
	switch domain {
	case models.DomainIDCard:
		return DefaultIDCard(), nil
	case models.DomainNotifications:
		return DefaultNotifications(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
}
