package storage

import (
	"strings"
	"time"
)

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service. A https:// scheme forces TLS.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the bucket holding the source sheet exports.
	Bucket string `mapstructure:"bucket" default:"sheets"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Host returns the endpoint without its scheme, as minio expects it.
func (c Config) Host() string {
	host := strings.TrimPrefix(c.Endpoint, "http://")
	host = strings.TrimPrefix(host, "https://")
	return strings.TrimSuffix(host, "/")
}

// Secure reports whether connections use TLS.
func (c Config) Secure() bool {
	return c.UseSSL || strings.HasPrefix(c.Endpoint, "https://")
}

// Timeout returns the connection timeout, 30s when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
