package models

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// EventKind is a notification event a channel can deliver.
type EventKind string

const (
	EventRouteStart     EventKind = "route_start"
	EventRouteEnd       EventKind = "route_end"
	EventSafetyAlert    EventKind = "safety_alert"
	EventSupportMessage EventKind = "support_message"
	EventEmergency      EventKind = "emergency"
)

// EventKinds lists the event kinds in display order.
var EventKinds = []EventKind{EventRouteStart, EventRouteEnd, EventSafetyAlert, EventSupportMessage, EventEmergency}

// Channel and template keys inside the notifications domain.
const (
	ChannelPush  = "pushNotifications"
	ChannelEmail = "emailNotifications"
	ChannelSMS   = "smsNotifications"

	TemplateRouteStart     = "templateRouteStart"
	TemplateRouteEnd       = "templateRouteEnd"
	TemplateSafetyAlert    = "templateSafetyAlert"
	TemplateSupportMessage = "templateSupportMessage"
	TemplateEmergency      = "templateEmergency"

	KeyLegalText = "legalText"
)

var (
	ChannelKeys  = []string{ChannelPush, ChannelEmail, ChannelSMS}
	TemplateKeys = []string{TemplateRouteStart, TemplateRouteEnd, TemplateSafetyAlert, TemplateSupportMessage, TemplateEmergency}
)

const channelEnabledKey = "enabled"

// NotificationChannel is a delivery channel with a master switch and one
// toggle per event kind.
//
// On the wire it is a flat object: {"enabled": true, "route_start": true, ...}.
// Event keys outside [EventKinds] are accepted and kept as long as their value
// is a boolean.
type NotificationChannel struct {
	Enabled bool
	Events  map[EventKind]bool
}

// Event reports whether the channel delivers kind.
func (ch NotificationChannel) Event(kind EventKind) bool {
	return ch.Events[kind]
}

// Clone returns a copy with its own Events map.
func (ch NotificationChannel) Clone() NotificationChannel {
	ch.Events = maps.Clone(ch.Events)
	return ch
}

// TrueCount counts the true values of the flat representation, the master
// switch included.
func (ch NotificationChannel) TrueCount() int {
	n := 0
	if ch.Enabled {
		n++
	}
	for _, v := range ch.Events {
		if v {
			n++
		}
	}
	return n
}

func (ch NotificationChannel) MarshalJSON() ([]byte, error) {
	flat := make(map[string]bool, len(ch.Events)+1)
	for _, kind := range EventKinds {
		flat[string(kind)] = false
	}
	for kind, v := range ch.Events {
		flat[string(kind)] = v
	}
	flat[channelEnabledKey] = ch.Enabled
	return json.Marshal(flat)
}

func (ch *NotificationChannel) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}

	out := NotificationChannel{Events: make(map[EventKind]bool, len(flat))}
	for k, raw := range flat {
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("channel key %q: expected boolean: %w", k, err)
		}
		if k == channelEnabledKey {
			out.Enabled = v
			continue
		}
		out.Events[EventKind(k)] = v
	}
	*ch = out
	return nil
}

// MessageTemplate is the subject/body pair sent for one event. Placeholders
// such as {{userName}} are stored verbatim.
type MessageTemplate struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Enabled bool   `json:"enabled"`
}

// NotificationsConfig is the notification configuration domain.
type NotificationsConfig struct {
	Push  NotificationChannel `json:"pushNotifications"`
	Email NotificationChannel `json:"emailNotifications"`
	SMS   NotificationChannel `json:"smsNotifications"`

	RouteStart     MessageTemplate `json:"templateRouteStart"`
	RouteEnd       MessageTemplate `json:"templateRouteEnd"`
	SafetyAlert    MessageTemplate `json:"templateSafetyAlert"`
	SupportMessage MessageTemplate `json:"templateSupportMessage"`
	Emergency      MessageTemplate `json:"templateEmergency"`

	LegalText string `json:"legalText"`

	Extra map[string]json.RawMessage `json:"-"`
}

// NamedChannel pairs a channel with its wire key.
type NamedChannel struct {
	Key     string
	Channel NotificationChannel
}

// NamedTemplate pairs a template with its wire key.
type NamedTemplate struct {
	Key      string
	Template MessageTemplate
}

// Channels returns the three channels in display order.
func (c NotificationsConfig) Channels() []NamedChannel {
	return []NamedChannel{
		{ChannelPush, c.Push},
		{ChannelEmail, c.Email},
		{ChannelSMS, c.SMS},
	}
}

// Templates returns the five templates in display order.
func (c NotificationsConfig) Templates() []NamedTemplate {
	return []NamedTemplate{
		{TemplateRouteStart, c.RouteStart},
		{TemplateRouteEnd, c.RouteEnd},
		{TemplateSafetyAlert, c.SafetyAlert},
		{TemplateSupportMessage, c.SupportMessage},
		{TemplateEmergency, c.Emergency},
	}
}

// Clone returns a deep copy.
func (c NotificationsConfig) Clone() NotificationsConfig {
	c.Push = c.Push.Clone()
	c.Email = c.Email.Clone()
	c.SMS = c.SMS.Clone()
	c.Extra = cloneExtra(c.Extra)
	return c
}

// NotificationsKeys returns every top-level key the model knows.
func NotificationsKeys() []string {
	keys := slices.Clone(ChannelKeys)
	keys = append(keys, TemplateKeys...)
	return append(keys, KeyLegalText)
}

func (c NotificationsConfig) MarshalJSON() ([]byte, error) {
	type alias NotificationsConfig
	return marshalWithExtra(alias(c), c.Extra)
}

func (c *NotificationsConfig) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	type alias NotificationsConfig
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := unknownKeys(data, NotificationsKeys())
	if err != nil {
		return err
	}
	*c = NotificationsConfig(a)
	c.Extra = extra
	return nil
}
