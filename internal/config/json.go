package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types, in particular [Duration] for values like "30s" or "1h".
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Cloud struct {
		BaseURL        string   `json:"base_url"`
		Username       string   `json:"username"`
		AppPassword    string   `json:"app_password"`
		Directory      string   `json:"directory"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"cloud,omitempty"`

	Sync struct {
		UploadToEmpty bool     `json:"upload_to_empty"`
		ProtectLocal  bool     `json:"protect_local"`
		Interval      Duration `json:"interval"`
	} `json:"sync,omitempty"`

	Log struct {
		File       string `json:"file"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
	} `json:"log,omitempty"`
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

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Cloud: Cloud{
			BaseURL:        jsonCfg.Cloud.BaseURL,
			Username:       jsonCfg.Cloud.Username,
			AppPassword:    jsonCfg.Cloud.AppPassword,
			Directory:      jsonCfg.Cloud.Directory,
			RequestTimeout: time.Duration(jsonCfg.Cloud.RequestTimeout),
		},
		Sync: Sync{
			UploadToEmpty: jsonCfg.Sync.UploadToEmpty,
			ProtectLocal:  jsonCfg.Sync.ProtectLocal,
			Interval:      time.Duration(jsonCfg.Sync.Interval),
		},
		Log: Log{
			File:       jsonCfg.Log.File,
			MaxSizeMB:  jsonCfg.Log.MaxSizeMB,
			MaxBackups: jsonCfg.Log.MaxBackups,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
