package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-admin-config/internal/adapter"
	"github.com/MKhiriev/go-admin-config/internal/configmodel"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/models"
)

// ClientServices groups the console panels around one ConfigStore.
type ClientServices struct {
	Store         adapter.ConfigStore
	IDCard        *IDCardPanel
	Notifications *NotificationsPanel
}

func NewClientServices(configStore adapter.ConfigStore, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		Store:         configStore,
		IDCard:        NewIDCardPanel(configStore, logger),
		Notifications: NewNotificationsPanel(configStore, logger),
	}
}

// Panel returns the panel bound to domain, or nil for an unknown domain.
func (c *ClientServices) Panel(domain models.Domain) Panel {
	switch domain {
	case models.DomainIDCard:
		return c.IDCard
	case models.DomainNotifications:
		return c.Notifications
	}
	return nil
}

// Panels returns every panel in display order.
func (c *ClientServices) Panels() []Panel {
	return []Panel{c.IDCard, c.Notifications}
}

// LoadAll loads every panel. Each panel keeps its state on failure.
func (c *ClientServices) LoadAll(ctx context.Context) error {
	var errs []error
	for _, p := range c.Panels() {
		errs = append(errs, p.Load(ctx))
	}
	return errors.Join(errs...)
}

// Reset asks the server to forget the domains of scope, then puts the
// matching panels back on their defaults and reloads them.
func (c *ClientServices) Reset(ctx context.Context, scope models.ResetScope) error {
	domains := scope.Domains()
	if len(domains) == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidResetScope, scope)
	}
	for _, domain := range domains {
		if c.Panel(domain).SaveStatus() != SaveIdle {
			return fmt.Errorf("reset %s: %w", scope, ErrSaveInProgress)
		}
	}

	if _, err := c.Store.ResetConfig(ctx, scope); err != nil {
		return fmt.Errorf("reset %s: %w", scope, err)
	}

	var errs []error
	for _, domain := range domains {
		p := c.Panel(domain)
		if err := p.ResetToDefaults(); err != nil {
			errs = append(errs, err)
			continue
		}
		errs = append(errs, p.Load(ctx))
	}
	return errors.Join(errs...)
}

// SetField loads the panel of field, patches "<domain>.<path>" with value and
// saves the domain.
func (c *ClientServices) SetField(ctx context.Context, field string, value any) error {
	domain, path, err := configmodel.SplitDomainPath(field)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	p := c.Panel(domain)
	if err = p.Load(ctx); err != nil {
		return err
	}
	if err = p.ApplyPatch(path, value); err != nil {
		return err
	}
	return p.Save(ctx)
}
