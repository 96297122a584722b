package app

import "time"

// Config contains all runtime configuration loaded from environment variables.
type Config struct {
	HTTPAddr string
	LogLevel string

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int

	// Upstream Solr.
	SolrURL      string
	SolrUser     string
	SolrPassword string
	SolrTimeout  time.Duration

	// Deployment label published in the health document.
	Customer string
}

// LoadConfig loads Config from environment variables with defaults.
// SOLR_* names match what the rest of the deployment tooling already uses.
func LoadConfig() Config {
	return Config{
		HTTPAddr: EnvString("SOLROPS_HTTP_ADDR", "0.0.0.0:8888"),
		LogLevel: EnvString("SOLROPS_LOG_LEVEL", "info"),

		ReadHeaderTimeout: EnvDuration("SOLROPS_HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
		ReadTimeout:       EnvDuration("SOLROPS_HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      EnvDuration("SOLROPS_HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:       EnvDuration("SOLROPS_HTTP_IDLE_TIMEOUT", 60*time.Second),

		MaxHeaderBytes: EnvInt("SOLROPS_HTTP_MAX_HEADER_BYTES", 1<<20),

		SolrURL:      EnvString("SOLR_URL", "http://solr:8983"),
		SolrUser:     EnvString("SOLR_ADMIN_USER", ""),
		SolrPassword: EnvString("SOLR_ADMIN_PASSWORD", ""),
		SolrTimeout:  EnvDuration("SOLROPS_SOLR_TIMEOUT", 5*time.Second),

		Customer: EnvString("CUSTOMER_NAME", "default"),
	}
}
