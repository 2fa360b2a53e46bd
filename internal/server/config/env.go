package config

import "os"

// parseEnv overlays values from the environment. Secret material (the
// nonce pair and the store connection strings) is supplied this way in
// production and is read exactly once, at startup.
func parseEnv(config *Config) {
	overlay := []struct {
		name string
		dst  *string
	}{
		{"ADDRESS", &config.EndpointAddr},
		{"MONGODB_AUTH_STR", &config.MongoURI},
		{"MONGODB_DATABASE", &config.MongoDatabase},
		{"DATABASE_DSN", &config.DatabaseDSN},
		{"NONCE1", &config.Nonce1},
		{"NONCE2", &config.Nonce2},
		{"SCRIPT_DIR", &config.ScriptDir},
		{"S3_ROOT_USER", &config.S3RootUser},
		{"S3_ROOT_PASSWORD", &config.S3RootPassword},
		{"S3_BUCKET", &config.S3Bucket},
		{"S3_REGION", &config.S3Region},
		{"S3_BASE_ENDPOINT", &config.S3BaseEndpoint},
	}

	for _, o := range overlay {
		if v, ok := os.LookupEnv(o.name); ok {
			*o.dst = v
		}
	}
}
