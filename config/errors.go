// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalid indicates a configuration value outside its domain.
	ErrInvalid = errors.New("config: invalid value")

	// ErrMultipleDocuments indicates more than one YAML document in the input.
	ErrMultipleDocuments = errors.New("config: multiple YAML documents")
)
