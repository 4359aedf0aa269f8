package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		KnowledgeBase struct {
			BaseURL        string   `json:"base_url"`
			APIKey         string   `json:"api_key"`
			WorkflowAPIKey string   `json:"workflow_api_key"`
			RequestTimeout Duration `json:"request_timeout"`
			DocumentMode   string   `json:"document_mode"`
			WorkflowUser   string   `json:"workflow_user"`
		} `json:"knowledge_base,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncConcurrency      int      `json:"sync_concurrency"`
		ReconcileInterval    Duration `json:"reconcile_interval"`
		WorkflowPollInterval Duration `json:"workflow_poll_interval"`
		WorkflowTimeout      Duration `json:"workflow_timeout"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	kb := jsonCfg.Adapter.KnowledgeBase
	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
			LogFile: jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			KnowledgeBase: KnowledgeBase{
				BaseURL:        kb.BaseURL,
				APIKey:         kb.APIKey,
				WorkflowAPIKey: kb.WorkflowAPIKey,
				RequestTimeout: time.Duration(kb.RequestTimeout),
				DocumentMode:   kb.DocumentMode,
				WorkflowUser:   kb.WorkflowUser,
			},
		},
		Workers: Workers{
			SyncConcurrency:      jsonCfg.Workers.SyncConcurrency,
			ReconcileInterval:    time.Duration(jsonCfg.Workers.ReconcileInterval),
			WorkflowPollInterval: time.Duration(jsonCfg.Workers.WorkflowPollInterval),
			WorkflowTimeout:      time.Duration(jsonCfg.Workers.WorkflowTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
