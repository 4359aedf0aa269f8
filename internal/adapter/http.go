package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-kb-sync/internal/config"
	"github.com/MKhiriev/go-kb-sync/internal/logger"
	"github.com/MKhiriev/go-kb-sync/internal/utils"
	"github.com/MKhiriev/go-kb-sync/models"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const responseModeBlocking = "blocking"

type knowledgeBaseAdapter struct {
	client *utils.HTTPClient

	apiKey         string
	workflowAPIKey string
	workflowUser   string
	indexing       models.IndexingConfig

	logger *logger.Logger
}

// NewKnowledgeBaseAdapter constructs the HTTP implementation of
// [KnowledgeBaseAdapter]. It normalises and validates cfg.BaseURL and
// configures the underlying client with the request timeout.
//
// When cfg.WorkflowAPIKey is empty, workflow calls use cfg.APIKey and a
// warning is logged once.
func NewKnowledgeBaseAdapter(cfg config.KnowledgeBase, logger *logger.Logger) (KnowledgeBaseAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid knowledge base url: %w", err)
	}

	workflowKey := cfg.WorkflowAPIKey
	if workflowKey == "" {
		logger.Warn().
			Str("func", "NewKnowledgeBaseAdapter").
			Msg("workflow api key is not configured, falling back to the dataset api key")
		workflowKey = cfg.APIKey
	}

	workflowUser := cfg.WorkflowUser
	if workflowUser == "" {
		workflowUser = "api-user"
	}

	return &knowledgeBaseAdapter{
		client:         utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey:         cfg.APIKey,
		workflowAPIKey: workflowKey,
		workflowUser:   workflowUser,
		indexing:       models.DefaultIndexingConfig(),
		logger:         logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateDataset implements [KnowledgeBaseAdapter]. POST /v1/datasets.
func (a *knowledgeBaseAdapter) CreateDataset(ctx context.Context, name, description string) (string, error) {
	body := map[string]string{"name": name}
	if description != "" {
		body["description"] = description
	}

	resp, err := a.do(ctx, a.jsonRequest(ctx, a.apiKey).SetBody(body), http.MethodPost, "/v1/datasets")
	if err != nil {
		return "", err
	}

	return extractID(resp.Body(), "id", "data.id")
}

// UpdateDataset implements [KnowledgeBaseAdapter]. PATCH /v1/datasets/{id}.
func (a *knowledgeBaseAdapter) UpdateDataset(ctx context.Context, datasetID, name, description string) (json.RawMessage, error) {
	body := make(map[string]string, 2)
	if name != "" {
		body["name"] = name
	}
	if description != "" {
		body["description"] = description
	}

	resp, err := a.do(ctx, a.jsonRequest(ctx, a.apiKey).SetBody(body), http.MethodPatch, datasetPath(datasetID))
	if err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// DeleteDataset implements [KnowledgeBaseAdapter]. DELETE /v1/datasets/{id}.
func (a *knowledgeBaseAdapter) DeleteDataset(ctx context.Context, datasetID string) (json.RawMessage, error) {
	resp, err := a.do(ctx, a.request(ctx, a.apiKey), http.MethodDelete, datasetPath(datasetID))
	if err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

type createDocumentByTextBody struct {
	Name              string             `json:"name"`
	Text              string             `json:"text"`
	IndexingTechnique string             `json:"indexing_technique"`
	ProcessRule       models.ProcessRule `json:"process_rule"`
}

// CreateDocumentByText implements [KnowledgeBaseAdapter].
// POST /v1/datasets/{id}/document/create-by-text.
func (a *knowledgeBaseAdapter) CreateDocumentByText(ctx context.Context, datasetID, name, text string, cfg models.IndexingConfig) (string, error) {
	body := createDocumentByTextBody{
		Name:              name,
		Text:              text,
		IndexingTechnique: cfg.IndexingTechnique,
		ProcessRule:       cfg.ProcessRule,
	}

	resp, err := a.do(ctx, a.jsonRequest(ctx, a.apiKey).SetBody(body), http.MethodPost, datasetPath(datasetID)+"/document/create-by-text")
	if err != nil {
		return "", err
	}

	return extractID(resp.Body(), "document.id")
}

// CreateDocumentByFile implements [KnowledgeBaseAdapter].
// POST /v1/datasets/{id}/document/create-by-file as multipart form data
// with a JSON "data" part and a "file" part.
func (a *knowledgeBaseAdapter) CreateDocumentByFile(ctx context.Context, datasetID string, file io.Reader, filename string, cfg models.IndexingConfig) (string, error) {
	req, err := a.multipartRequest(ctx, file, filename, cfg)
	if err != nil {
		return "", err
	}

	resp, err := a.do(ctx, req, http.MethodPost, datasetPath(datasetID)+"/document/create-by-file")
	if err != nil {
		return "", err
	}

	return extractID(resp.Body(), "document.id")
}

// UpdateDocumentByText implements [KnowledgeBaseAdapter].
// POST /v1/datasets/{id}/documents/{docId}/update-by-text.
func (a *knowledgeBaseAdapter) UpdateDocumentByText(ctx context.Context, datasetID, documentID, name, text string) (json.RawMessage, error) {
	body := make(map[string]string, 2)
	if name != "" {
		body["name"] = name
	}
	if text != "" {
		body["text"] = text
	}

	resp, err := a.do(ctx, a.jsonRequest(ctx, a.apiKey).SetBody(body), http.MethodPost, documentPath(datasetID, documentID)+"/update-by-text")
	if err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// UpdateDocumentByFile implements [KnowledgeBaseAdapter].
// POST /v1/datasets/{id}/documents/{docId}/update-by-file.
func (a *knowledgeBaseAdapter) UpdateDocumentByFile(ctx context.Context, datasetID, documentID string, file io.Reader, filename string) (bool, error) {
	req, err := a.multipartRequest(ctx, file, filename, a.indexing)
	if err != nil {
		return false, err
	}

	_, err = a.do(ctx, req, http.MethodPost, documentPath(datasetID, documentID)+"/update-by-file")
	if err != nil {
		if remoteErr, ok := asRemoteError(err); ok {
			logger.FromContext(ctx).Warn().
				Str("func", "knowledgeBaseAdapter.UpdateDocumentByFile").
				Int("status", remoteErr.StatusCode).
				Str("body", remoteErr.Body).
				Msg("document file update rejected")
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// DeleteDocument implements [KnowledgeBaseAdapter].
// DELETE /v1/datasets/{id}/documents/{docId}.
func (a *knowledgeBaseAdapter) DeleteDocument(ctx context.Context, datasetID, documentID string) (json.RawMessage, error) {
	resp, err := a.do(ctx, a.request(ctx, a.apiKey), http.MethodDelete, documentPath(datasetID, documentID))
	if err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

type workflowRunBody struct {
	Inputs       map[string]any `json:"inputs"`
	ResponseMode string         `json:"response_mode"`
	User         string         `json:"user"`
}

// InvokeWorkflow implements [KnowledgeBaseAdapter]. POST /v1/workflows/run.
func (a *knowledgeBaseAdapter) InvokeWorkflow(ctx context.Context, inputs map[string]any) (json.RawMessage, error) {
	if inputs == nil {
		inputs = map[string]any{}
	}

	body := workflowRunBody{
		Inputs:       inputs,
		ResponseMode: responseModeBlocking,
		User:         a.workflowUser,
	}

	resp, err := a.do(ctx, a.jsonRequest(ctx, a.workflowAPIKey).SetBody(body), http.MethodPost, "/v1/workflows/run")
	if err != nil {
		return nil, err
	}

	return validJSON(resp.Body())
}

// PollWorkflowRun implements [KnowledgeBaseAdapter].
// GET /v1/workflows/run/{runId}.
func (a *knowledgeBaseAdapter) PollWorkflowRun(ctx context.Context, runID string) (json.RawMessage, error) {
	resp, err := a.do(ctx, a.request(ctx, a.workflowAPIKey), http.MethodGet, "/v1/workflows/run/"+url.PathEscape(runID))
	if err != nil {
		return nil, err
	}

	return validJSON(resp.Body())
}

func (a *knowledgeBaseAdapter) request(ctx context.Context, token string) *resty.Request {
	return a.client.R().
		SetContext(ctx).
		SetAuthToken(token)
}

func (a *knowledgeBaseAdapter) jsonRequest(ctx context.Context, token string) *resty.Request {
	return a.request(ctx, token).SetHeader("Content-Type", "application/json")
}

func (a *knowledgeBaseAdapter) multipartRequest(ctx context.Context, file io.Reader, filename string, cfg models.IndexingConfig) (*resty.Request, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode indexing config: %w", err)
	}

	return a.request(ctx, a.apiKey).
		SetMultipartFormData(map[string]string{"data": string(data)}).
		SetFileReader("file", filename, file), nil
}

// do executes a single exchange and maps the outcome onto the adapter's
// error values.
func (a *knowledgeBaseAdapter) do(ctx context.Context, req *resty.Request, method, path string) (*resty.Response, error) {
	log := logger.FromContext(ctx)

	resp, err := req.Execute(method, path)
	if err != nil {
		log.Err(err).
			Str("func", "knowledgeBaseAdapter.do").
			Str("method", method).
			Str("path", path).
			Msg("knowledge base request failed")
		return nil, transportError(method, a.client.BaseURL+path, err)
	}

	log.Debug().
		Str("func", "knowledgeBaseAdapter.do").
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("knowledge base request completed")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func datasetPath(datasetID string) string {
	return "/v1/datasets/" + url.PathEscape(datasetID)
}

func documentPath(datasetID, documentID string) string {
	return datasetPath(datasetID) + "/documents/" + url.PathEscape(documentID)
}

// extractID returns the first non-empty string found at one of paths.
func extractID(body []byte, paths ...string) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("%w: response is not valid json", ErrMalformedResponse)
	}

	for _, path := range paths {
		if id := gjson.GetBytes(body, path); id.Exists() && id.String() != "" {
			return id.String(), nil
		}
	}

	return "", fmt.Errorf("%w: none of %s found in %s", ErrMalformedResponse, strings.Join(paths, ", "), body)
}

func validJSON(body []byte) (json.RawMessage, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: response is not valid json", ErrMalformedResponse)
	}
	return body, nil
}
