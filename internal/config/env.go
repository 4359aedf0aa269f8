// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// secretFiles holds credentials mounted as files, the way container
// orchestrators expose secrets. Each variable names the file to read.
type secretFiles struct {
	APIKey         string `env:"ADAPTER_KB_API_KEY_FILE,file"`
	WorkflowAPIKey string `env:"ADAPTER_KB_WORKFLOW_API_KEY_FILE,file"`
	DSN            string `env:"STORAGE_DB_DATABASE_URI_FILE,file"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Credentials may also be passed as *_FILE variables. A plain variable wins
// over its *_FILE variant.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var secrets secretFiles
	if err := env.Parse(&secrets); err != nil {
		return fmt.Errorf("error reading secret files: %w", err)
	}

	setIfEmpty(&cfg.Adapter.KnowledgeBase.APIKey, secrets.APIKey)
	setIfEmpty(&cfg.Adapter.KnowledgeBase.WorkflowAPIKey, secrets.WorkflowAPIKey)
	setIfEmpty(&cfg.Storage.DB.DSN, secrets.DSN)

	return nil
}

func setIfEmpty(dst *string, fromFile string) {
	if *dst == "" {
		*dst = strings.TrimSpace(fromFile)
	}
}
