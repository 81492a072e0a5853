package events

import "time"

// Config holds the NATS publisher settings. An empty URL disables publishing.
type Config struct {
	URL            string        `mapstructure:"nats_url"`
	Subject        string        `mapstructure:"subject" default:"ledger.movements"`
	ConnectionName string        `mapstructure:"connection_name" default:"asset-ledger"`
	MaxReconnects  int           `mapstructure:"max_reconnects" default:"10"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait" default:"2s"`
}
