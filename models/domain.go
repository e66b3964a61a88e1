// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the wire-level and in-memory types shared by the
// admin configuration client, the configuration server and the core
// merge/derive logic.
//
// JSON keys follow the remote configuration API exactly (e.g. "nombreCompleto",
// "obligatorio", "pushNotifications"), Go identifiers are English.
package models

import "fmt"

// Domain identifies one of the configuration areas. Its value is the key the
// domain occupies inside the global configuration envelope.
type Domain string

const (
	// DomainIDCard is the identity-card configuration (field visibility,
	// required flags, order and QR options).
	DomainIDCard Domain = "idCardConfig"

	// DomainNotifications is the notification configuration (channels,
	// message templates and legal text).
	DomainNotifications Domain = "notificationsConfig"
)

// Domains lists every known domain in display order.
var Domains = []Domain{DomainIDCard, DomainNotifications}

// ParseDomain accepts the envelope key ("idCardConfig") as well as the short
// aliases used by the reset endpoint and the CLI ("idCard", "notifications").
func ParseDomain(s string) (Domain, error) {
	switch s {
	case string(DomainIDCard), "idCard", "idcard", "id-card":
		return DomainIDCard, nil
	case string(DomainNotifications), "notifications", "notificaciones":
		return DomainNotifications, nil
	}
	return "", fmt.Errorf("unknown configuration domain %q", s)
}

// String implements fmt.Stringer.
func (d Domain) String() string {
	return string(d)
}

// Route returns the stable console path of the screen bound to the domain.
func (d Domain) Route() string {
	if d == DomainNotifications {
		return RouteNotifications
	}
	return RouteIDCard
}

// Console screen paths. The core is path-agnostic; hosts use these as screen
// identifiers.
const (
	RouteIDCard        = "/config/tarjetaID"
	RouteNotifications = "/config/notificaciones"
)

// ResetScope selects which domains a reset request restores to defaults.
type ResetScope string

const (
	ResetAll           ResetScope = "todo"
	ResetIDCard        ResetScope = "idCard"
	ResetNotifications ResetScope = "notifications"
)

// Domains returns the domains covered by the scope, or nil for an unknown
// scope.
func (s ResetScope) Domains() []Domain {
	switch s {
	case ResetAll:
		return []Domain{DomainIDCard, DomainNotifications}
	case ResetIDCard:
		return []Domain{DomainIDCard}
	case ResetNotifications:
		return []Domain{DomainNotifications}
	}
	return nil
}
