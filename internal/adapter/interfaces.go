// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the remote knowledge-base
// service (datasets, documents and workflows over HTTP).
//
// The primary abstraction is [KnowledgeBaseAdapter]. It is stateless apart
// from configuration and performs no retries or caching: one method call is
// exactly one HTTP exchange.
//
// Failures are reported through the values in errors.go so that callers can
// use [errors.Is] / [errors.As]: [ErrTransport] when no response was
// received, [*RemoteError] (matching [ErrRemote]) for non-2xx responses, and
// [ErrMalformedResponse] for 2xx responses missing an expected field.
package adapter

import (
	"context"
	"encoding/json"
	"io"

	"github.com/MKhiriev/go-kb-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/knowledge_base_adapter_mock.go -package=mock

// KnowledgeBaseAdapter is the typed client of the remote knowledge-base API.
type KnowledgeBaseAdapter interface {
	// CreateDataset creates a dataset and returns its identifier, read from
	// "id" or, failing that, "data.id". An empty description is omitted.
	CreateDataset(ctx context.Context, name, description string) (string, error)

	// UpdateDataset renames or re-describes a dataset. Empty fields are not
	// sent. Returns the raw response body.
	UpdateDataset(ctx context.Context, datasetID, name, description string) (json.RawMessage, error)

	// DeleteDataset deletes a dataset together with its documents.
	DeleteDataset(ctx context.Context, datasetID string) (json.RawMessage, error)

	// CreateDocumentByText creates a text document inside a dataset and
	// returns "document.id".
	CreateDocumentByText(ctx context.Context, datasetID, name, text string, cfg models.IndexingConfig) (string, error)

	// CreateDocumentByFile uploads file as a new document and returns
	// "document.id".
	CreateDocumentByFile(ctx context.Context, datasetID string, file io.Reader, filename string, cfg models.IndexingConfig) (string, error)

	// UpdateDocumentByText replaces the name and/or text of a document.
	// Empty fields are not sent.
	UpdateDocumentByText(ctx context.Context, datasetID, documentID, name, text string) (json.RawMessage, error)

	// UpdateDocumentByFile replaces a document with file. A non-2xx response
	// is reported as false with a nil error; only transport failures return
	// an error.
	UpdateDocumentByFile(ctx context.Context, datasetID, documentID string, file io.Reader, filename string) (bool, error)

	// DeleteDocument deletes a single document.
	DeleteDocument(ctx context.Context, datasetID, documentID string) (json.RawMessage, error)

	// InvokeWorkflow starts a workflow run in blocking response mode and
	// returns the raw JSON response. Nil inputs are sent as an empty object.
	InvokeWorkflow(ctx context.Context, inputs map[string]any) (json.RawMessage, error)

	// PollWorkflowRun fetches the current state of a workflow run.
	PollWorkflowRun(ctx context.Context, runID string) (json.RawMessage, error)
}
