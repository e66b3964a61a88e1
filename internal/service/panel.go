package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-admin-config/internal/adapter"
	"github.com/MKhiriev/go-admin-config/internal/configmodel"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/models"
)

// ConfigPanel owns the working copy of one configuration domain and runs the
// load, edit and save protocol against a ConfigStore. All transitions go
// through [Reduce]. It is safe for concurrent use.
type ConfigPanel[M, S any] struct {
	desc   Descriptor[M, S]
	store  adapter.ConfigStore
	logger *logger.Logger

	mu        sync.Mutex
	state     PanelState[M]
	observers []func(PanelState[M])
}

// NewConfigPanel returns a panel holding the domain defaults. Call Load to
// fetch the remote configuration.
func NewConfigPanel[M, S any](desc Descriptor[M, S], store adapter.ConfigStore, log *logger.Logger) *ConfigPanel[M, S] {
	return &ConfigPanel[M, S]{
		desc:   desc,
		store:  store,
		logger: log,
		state:  PanelState[M]{Config: desc.Defaults()},
	}
}

// NewIDCardPanel returns the identity-card panel.
func NewIDCardPanel(store adapter.ConfigStore, log *logger.Logger) *IDCardPanel {
	return NewConfigPanel(IDCardDescriptor(), store, log)
}

// NewNotificationsPanel returns the notifications panel.
func NewNotificationsPanel(store adapter.ConfigStore, log *logger.Logger) *NotificationsPanel {
	return NewConfigPanel(NotificationsDescriptor(), store, log)
}

// Domain returns the domain edited by the panel.
func (p *ConfigPanel[M, S]) Domain() models.Domain {
	return p.desc.Domain
}

// OnChange registers fn to be called with a copy of the state after every
// transition. fn runs outside the panel lock.
func (p *ConfigPanel[M, S]) OnChange(fn func(PanelState[M])) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, fn)
}

// State returns a deep copy of the current state.
func (p *ConfigPanel[M, S]) State() PanelState[M] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// Config returns a deep copy of the working configuration.
func (p *ConfigPanel[M, S]) Config() M {
	return p.State().Config
}

// Stats projects the working configuration.
func (p *ConfigPanel[M, S]) Stats() S {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.desc.Project(p.state.Config)
}

func (p *ConfigPanel[M, S]) LoadStatus() LoadStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Load
}

func (p *ConfigPanel[M, S]) SaveStatus() SaveStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Save
}

func (p *ConfigPanel[M, S]) Notice() Notice {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Notice
}

// DismissNotice clears the current notice.
func (p *ConfigPanel[M, S]) DismissNotice() {
	p.dispatch(Action[M]{Kind: ActionNoticeDismissed})
}

// ApplyPatch sets one leaf of the working configuration.
// Edits are refused until a running save has reloaded and settled.
func (p *ConfigPanel[M, S]) ApplyPatch(path string, value any) error {
	p.mu.Lock()
	if p.state.Save.inFlight() {
		p.mu.Unlock()
		return ErrSaveInProgress
	}
	patched, err := configmodel.ApplyPatch(p.state.Config, path, value)
	if err != nil {
		p.mu.Unlock()
		return fmt.Errorf("patch %s.%s: %w", p.desc.Domain, path, err)
	}
	notify := p.reduceLocked(Action[M]{Kind: ActionEdited, Config: patched})
	p.mu.Unlock()

	notify()
	return nil
}

// Load fetches the remote configuration and merges the panel domain over the
// defaults. A missing domain or a malformed answer keeps the working state.
// Failures are logged, reflected as LoadError and returned; the working
// state is never lost.
func (p *ConfigPanel[M, S]) Load(ctx context.Context) error {
	p.mu.Lock()
	if p.state.Save == SaveSaving {
		p.mu.Unlock()
		return ErrSaveInProgress
	}
	notify := p.reduceLocked(Action[M]{Kind: ActionLoadStarted})
	p.mu.Unlock()
	notify()

	remote, err := p.store.GetGlobalConfig(ctx)
	if errors.Is(err, adapter.ErrMalformedResponse) {
		p.logger.Warn().Err(err).Str("func", "ConfigPanel.Load").Str("domain", p.desc.Domain.String()).Msg("malformed configuration ignored")
		p.dispatch(Action[M]{Kind: ActionLoadSucceeded})
		return nil
	}
	if err != nil {
		p.logger.Err(err).Str("func", "ConfigPanel.Load").Str("domain", p.desc.Domain.String()).Msg("error loading configuration")
		p.dispatch(Action[M]{Kind: ActionLoadFailed})
		return fmt.Errorf("load %s: %w", p.desc.Domain, err)
	}

	payload := remote.Domain(p.desc.Domain)
	if payload == nil {
		p.dispatch(Action[M]{Kind: ActionLoadSucceeded})
		return nil
	}

	merged, dropped := configmodel.MergeWithReport(p.desc.Defaults(), payload)
	if len(dropped) > 0 {
		p.logger.Warn().Str("domain", p.desc.Domain.String()).Strs("dropped_keys", dropped).Msg("remote keys kept their defaults")
	}
	p.dispatch(Action[M]{Kind: ActionLoadSucceeded, Config: merged, Found: true})
	return nil
}

// Save sends a snapshot of the working configuration for this domain only.
// On success the panel reloads; on failure the working state is kept and an
// error notice is set. A call while another save is in flight returns
// [ErrSaveInProgress] without touching the store.
func (p *ConfigPanel[M, S]) Save(ctx context.Context) error {
	p.mu.Lock()
	if p.state.Save.inFlight() {
		p.mu.Unlock()
		return ErrSaveInProgress
	}
	snapshot := p.state.Config
	notify := p.reduceLocked(Action[M]{Kind: ActionSaveStarted})
	payload, err := json.Marshal(snapshot)
	p.mu.Unlock()
	notify()

	if err == nil {
		_, err = p.store.UpdateDomain(ctx, p.desc.Domain, payload)
	}
	if err != nil {
		p.logger.Err(err).Str("func", "ConfigPanel.Save").Str("domain", p.desc.Domain.String()).Msg("error saving configuration")
		p.dispatch(Action[M]{Kind: ActionSaveFailed, Message: saveErrorMessage(err)})
		p.dispatch(Action[M]{Kind: ActionSaveSettled})
		return fmt.Errorf("save %s: %w", p.desc.Domain, err)
	}

	p.dispatch(Action[M]{Kind: ActionSaveSucceeded, Message: p.desc.SavedMessage})
	// the reload result is reflected in LoadStatus
	_ = p.Load(ctx)
	p.dispatch(Action[M]{Kind: ActionSaveSettled})
	return nil
}

// ResetToDefaults drops the working configuration in favour of the domain
// defaults. It does not touch the store and is refused while a save runs.
func (p *ConfigPanel[M, S]) ResetToDefaults() error {
	p.mu.Lock()
	if p.state.Save.inFlight() {
		p.mu.Unlock()
		return ErrSaveInProgress
	}
	notify := p.reduceLocked(Action[M]{Kind: ActionLoadSucceeded, Config: p.desc.Defaults(), Found: true})
	p.mu.Unlock()
	notify()
	return nil
}

func (p *ConfigPanel[M, S]) dispatch(a Action[M]) {
	p.mu.Lock()
	notify := p.reduceLocked(a)
	p.mu.Unlock()
	notify()
}

// reduceLocked applies a and returns a function that notifies observers.
// The caller must hold p.mu and call the result after unlocking.
func (p *ConfigPanel[M, S]) reduceLocked(a Action[M]) func() {
	p.state = Reduce(p.state, a)
	if len(p.observers) == 0 {
		return func() {}
	}

	observers := slices.Clone(p.observers)
	snapshot := p.snapshotLocked()
	return func() {
		for _, fn := range observers {
			fn(snapshot)
		}
	}
}

func (p *ConfigPanel[M, S]) snapshotLocked() PanelState[M] {
	s := p.state
	s.Config = configmodel.Clone(s.Config)
	return s
}
