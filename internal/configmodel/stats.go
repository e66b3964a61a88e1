package configmodel

import "github.com/MKhiriev/go-admin-config/models"

// ProjectIDCard computes the identity-card summary.
//
// The blood type field is left out of RequiredFieldCount even when it is
// marked required. The console has always counted it that way.
func ProjectIDCard(c models.IDCardConfig) models.IDCardStats {
	var s models.IDCardStats
	for _, f := range c.Fields() {
		if f.Spec.Visible {
			s.VisibleFieldCount++
		}
		if f.Spec.Required && f.Key != models.FieldBloodType {
			s.RequiredFieldCount++
		}
	}
	for _, on := range c.QRConfig.Flags() {
		if on {
			s.ActiveQROptionCount++
		}
	}
	return s
}

// ProjectNotifications computes the notification summary.
//
// TotalActiveNotificationCount adds, for each enabled channel, the number of
// true values in its flat form minus one for the master switch itself.
func ProjectNotifications(c models.NotificationsConfig) models.NotificationStats {
	s := models.NotificationStats{
		ChannelTotal:  len(models.ChannelKeys),
		TemplateTotal: len(models.TemplateKeys),
	}
	for _, ch := range c.Channels() {
		if !ch.Channel.Enabled {
			continue
		}
		s.ActiveChannelCount++
		s.TotalActiveNotificationCount += ch.Channel.TrueCount() - 1
	}
	for _, t := range c.Templates() {
		if t.Template.Enabled {
			s.ActiveTemplateCount++
		}
	}
	return s
}
