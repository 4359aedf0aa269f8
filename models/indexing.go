// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IndexingConfig is the document processing configuration sent with every
// document create request.
type IndexingConfig struct {
	IndexingTechnique string      `json:"indexing_technique"`
	ProcessRule       ProcessRule `json:"process_rule"`
}

type ProcessRule struct {
	Mode  string       `json:"mode"`
	Rules ProcessRules `json:"rules"`
}

type ProcessRules struct {
	PreProcessingRules []PreProcessingRule `json:"pre_processing_rules"`
	Segmentation       Segmentation        `json:"segmentation"`
}

type PreProcessingRule struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
}

type Segmentation struct {
	Separator  string `json:"separator"`
	MaxTokens  int    `json:"max_tokens"`
	ParentMode string `json:"parent_mode"`
}

// DefaultIndexingConfig returns the fixed configuration used for all posts:
// high quality indexing, automatic processing with whitespace and URL/email
// cleanup, newline segmentation capped at 1000 tokens.
func DefaultIndexingConfig() IndexingConfig {
	return IndexingConfig{
		IndexingTechnique: "high_quality",
		ProcessRule: ProcessRule{
			Mode: "automatic",
			Rules: ProcessRules{
				PreProcessingRules: []PreProcessingRule{
					{ID: "remove_extra_spaces", Enabled: true},
					{ID: "remove_urls_emails", Enabled: true},
				},
				Segmentation: Segmentation{
					Separator:  "\n",
					MaxTokens:  1000,
					ParentMode: "full-doc",
				},
			},
		},
	}
}
