// Package config provides configuration management for the Asset Ledger.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults are declared on the struct fields with
// a `default` tag and registered by reflection, so every key is reachable
// through AutomaticEnv (SECTION_KEY, e.g. SYNC_BATCH_SIZE).
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Database: canonical store driver (mysql, postgres, sqlite, memory) and credentials
//   - Storage: S3/MinIO credentials for the bucket holding source sheets
//   - Source: sheet ids, banner offset and chunking of the external rows
//   - Cache: reconciliation cache backend and TTL
//   - Sync: batch size, fetch timeout and staleness threshold
//   - Events: optional NATS publishing of movements
//   - Log: logging level, format and Sentry DSN
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sync.BatchSize)
package config
