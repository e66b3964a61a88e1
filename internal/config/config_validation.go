// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// sectionErrors maps the top-level section of a view to its sentinel.
var sectionErrors = map[string]error{
	"Storage": ErrInvalidStorageConfigs,
	"Server":  ErrInvalidServerConfigs,
	"Adapter": ErrInvalidAdapterConfigs,
	"Console": ErrInvalidConsoleConfigs,
	"App":     ErrInvalidAppConfigs,
}

func (cfg *ServerConfig) validate() error {
	return validateView(cfg)
}

func (cfg *ClientConfig) validate() error {
	return validateView(cfg)
}

// validateView runs the struct tags of a view and reports one wrapped
// sentinel per failing field, e.g. "invalid adapter configuration: Transport".
func validateView(view any) error {
	err := validate.Struct(view)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var joined error
	for _, fe := range fieldErrs {
		// StructNamespace is "ClientConfig.Adapter.Transport".
		parts := strings.Split(fe.StructNamespace(), ".")
		sentinel := ErrInvalidAppConfigs
		if len(parts) > 1 {
			if s, ok := sectionErrors[parts[1]]; ok {
				sentinel = s
			}
		}
		joined = errors.Join(joined, fmt.Errorf("%w: %s failed on %q", sentinel, fe.Field(), fe.Tag()))
	}
	return joined
}
