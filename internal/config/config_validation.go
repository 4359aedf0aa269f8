// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	defaultDBDriver             = "pgx"
	defaultHTTPAddress          = "localhost:8080"
	defaultServerRequestTimeout = 3 * time.Minute
	defaultKBRequestTimeout     = 30 * time.Second
	defaultDocumentMode         = "text"
	defaultWorkflowUser         = "api-user"
	defaultSyncConcurrency      = 4
	defaultWorkflowPollInterval = time.Second
	defaultWorkflowTimeout      = 2 * time.Minute
)

// applyDefaults fills every zero-valued optional setting. The workflow key
// is intentionally left empty so the adapter can report the fallback.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDBDriver
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultServerRequestTimeout
	}

	kb := &cfg.Adapter.KnowledgeBase
	if kb.RequestTimeout == 0 {
		kb.RequestTimeout = defaultKBRequestTimeout
	}
	if kb.DocumentMode == "" {
		kb.DocumentMode = defaultDocumentMode
	}
	if kb.WorkflowUser == "" {
		kb.WorkflowUser = defaultWorkflowUser
	}

	if cfg.Workers.SyncConcurrency == 0 {
		cfg.Workers.SyncConcurrency = defaultSyncConcurrency
	}
	if cfg.Workers.WorkflowPollInterval == 0 {
		cfg.Workers.WorkflowPollInterval = defaultWorkflowPollInterval
	}
	if cfg.Workers.WorkflowTimeout == 0 {
		cfg.Workers.WorkflowTimeout = defaultWorkflowTimeout
	}
}

// validate checks the merged [StructuredConfig] against the `validate`
// struct tags before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
