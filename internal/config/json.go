package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	Server struct {
		HTTPAddress string `json:"http_address"`
		StaticDir   string `json:"static_dir"`
		IndexFile   string `json:"index_file"`
	} `json:"server,omitempty"`

	Backend struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"backend,omitempty"`

	Cache struct {
		TTL Duration `json:"ttl"`
	} `json:"cache,omitempty"`

	Overrides struct {
		FullOverridePath string `json:"full_override_path"`
		PatchPath        string `json:"patch_path"`
		DisableWatch     bool   `json:"disable_watch"`
	} `json:"overrides,omitempty"`

	Log struct {
		Pretty bool `json:"pretty"`
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
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
			StaticDir:   jsonCfg.Server.StaticDir,
			IndexFile:   jsonCfg.Server.IndexFile,
		},
		Backend: Backend{
			Address:        jsonCfg.Backend.Address,
			RequestTimeout: time.Duration(jsonCfg.Backend.RequestTimeout),
		},
		Cache: Cache{
			TTL: time.Duration(jsonCfg.Cache.TTL),
		},
		Overrides: Overrides{
			FullOverridePath: jsonCfg.Overrides.FullOverridePath,
			PatchPath:        jsonCfg.Overrides.PatchPath,
			DisableWatch:     jsonCfg.Overrides.DisableWatch,
		},
		Log: Log{
			Pretty: jsonCfg.Log.Pretty,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
