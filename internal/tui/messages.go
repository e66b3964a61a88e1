package tui

import "github.com/MKhiriev/go-admin-config/models"

// NavigateTo switches the active screen. Page is a console route.
type NavigateTo struct {
	Page string
}

type loadDoneMsg struct {
	domain models.Domain
	err    error
}

type saveDoneMsg struct {
	domain models.Domain
	err    error
}

type resetDoneMsg struct {
	domain models.Domain
	err    error
}

type copiedMsg struct {
	domain models.Domain
	err    error
}

type clearStatusMsg struct {
	domain models.Domain
}

type noticeExpiredMsg struct {
	domain models.Domain
}

// panelChangedMsg is sent when a panel changes outside the event loop.
type panelChangedMsg struct{}
