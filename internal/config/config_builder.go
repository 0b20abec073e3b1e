// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type validator interface {
	validate() error
}

// configBuilder applies configuration layers on top of a defaults value.
// Each layer only touches the fields it actually carries.
type configBuilder[T any] struct {
	config *T
	err    error
}

func newConfigBuilder[T any](defaults *T) *configBuilder[T] {
	return &configBuilder[T]{
		config: defaults,
	}
}

func (b *configBuilder[T]) build() (*T, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	if v, ok := any(b.config).(validator); ok {
		if err := v.validate(); err != nil {
			return nil, err
		}
	}

	return b.config, nil
}

// withJSON decodes the file at path onto the current config. An empty path
// is a no-op.
func (b *configBuilder[T]) withJSON(path string) *configBuilder[T] {
	if path == "" || b.err != nil {
		return b
	}

	if err := parseJSON(path, b.config); err != nil {
		b.err = errors.Join(b.err, err)
	}

	return b
}

// withEnv overwrites every field whose environment variable is set.
func (b *configBuilder[T]) withEnv() *configBuilder[T] {
	if b.err != nil {
		return b
	}

	if err := parseEnv(b.config); err != nil {
		b.err = errors.Join(b.err, err)
	}

	return b
}

// withFlags merges the non-zero fields of flags over the current config.
func (b *configBuilder[T]) withFlags(flags *T) *configBuilder[T] {
	if b.err != nil || flags == nil {
		return b
	}

	if err := mergo.Merge(b.config, flags, mergo.WithOverride); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error merging configs: %w", err))
	}

	return b
}
