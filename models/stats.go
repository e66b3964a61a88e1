package models

// IDCardStats is the read-only summary shown on the identity-card screen.
type IDCardStats struct {
	VisibleFieldCount   int `json:"visibleFieldCount"`
	RequiredFieldCount  int `json:"requiredFieldCount"`
	ActiveQROptionCount int `json:"activeQROptionCount"`
}

// NotificationStats is the read-only summary shown on the notifications screen.
type NotificationStats struct {
	ActiveChannelCount           int `json:"activeChannelCount"`
	ChannelTotal                 int `json:"channelTotal"`
	ActiveTemplateCount          int `json:"activeTemplateCount"`
	TemplateTotal                int `json:"templateTotal"`
	TotalActiveNotificationCount int `json:"totalActiveNotificationCount"`
}
