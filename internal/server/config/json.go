package config

import (
	"encoding/json"
	"os"

	"github.com/emeraldsys/acidity-backend/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It is an intermediate DTO used only for reading JSON
// configuration files; after unmarshalling, non-empty fields are copied
// into the runtime Config struct.
type JsonConfig struct {
	EndpointAddr   string `json:"endpoint_addr"`
	MongoURI       string `json:"mongo_uri"`
	MongoDatabase  string `json:"mongo_database"`
	DatabaseDSN    string `json:"database_dsn"`
	Nonce1         string `json:"nonce1"`
	Nonce2         string `json:"nonce2"`
	ScriptDir      string `json:"script_dir"`
	S3RootUser     string `json:"s3_root_user"`
	S3RootPassword string `json:"s3_root_password"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path comes from the -c or -config command-line flags; when
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics. Empty JSON fields leave the
// corresponding Config values untouched, so a partial file only overrides
// what it names.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlay := []struct {
		src string
		dst *string
	}{
		{c.EndpointAddr, &config.EndpointAddr},
		{c.MongoURI, &config.MongoURI},
		{c.MongoDatabase, &config.MongoDatabase},
		{c.DatabaseDSN, &config.DatabaseDSN},
		{c.Nonce1, &config.Nonce1},
		{c.Nonce2, &config.Nonce2},
		{c.ScriptDir, &config.ScriptDir},
		{c.S3RootUser, &config.S3RootUser},
		{c.S3RootPassword, &config.S3RootPassword},
		{c.S3Bucket, &config.S3Bucket},
		{c.S3Region, &config.S3Region},
		{c.S3BaseEndpoint, &config.S3BaseEndpoint},
	}

	for _, o := range overlay {
		if o.src != "" {
			*o.dst = o.src
		}
	}
}
