// Package config handles configuration for the server component, including
// defaults, JSON overlay, command-line flags and environment variables.
package config

// Config holds runtime settings for the Acidity backend.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - MongoURI / MongoDatabase: document store connection (the default backend).
//   - DatabaseDSN: PostgreSQL DSN (pgx); when set it takes precedence over Mongo.
//   - Nonce1 / Nonce2: the challenge nonce pair. Secret, read once at startup,
//     never rotated within the process lifetime.
//   - ScriptDir: directory for the filesystem script blob backend.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings; a non-empty
//     bucket selects the S3 blob backend over the filesystem one.
type Config struct {
	EndpointAddr   string
	MongoURI       string
	MongoDatabase  string
	DatabaseDSN    string
	Nonce1         string
	Nonce2         string
	ScriptDir      string
	S3RootUser     string
	S3RootPassword string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: The nonce pair has no default; it must be supplied via JSON config
// or the NONCE1/NONCE2 environment variables.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.MongoURI = "mongodb://127.0.0.1:27017"
	c.MongoDatabase = "aciditydb"
	c.ScriptDir = "script"
	c.S3Region = "us-east-1"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, command-line flags and finally the
// environment.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	parseEnv(cfg)
	return cfg
}
