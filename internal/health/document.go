package health

// DocumentVersion is the published schema version of the health document.
// Downstream monitors parse it; bump only with their owners.
const DocumentVersion = "2.2.0"

// Document statuses.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusError     = "error"
)

// Document is the aggregated status published on /health.
// Field names are a stable contract with downstream consumers.
type Document struct {
	Customer string      `json:"customer"`
	Version  string      `json:"version"`
	Status   string      `json:"status"`
	Solr     SolrStatus  `json:"solr"`
	Cores    []CoreEntry `json:"cores"`
	System   SystemEntry `json:"system"`
	Errors   []string    `json:"errors"`
}

// SolrStatus reports whether Solr answered its ping handler.
type SolrStatus struct {
	Available      bool   `json:"available"`
	Status         string `json:"status,omitempty"`
	ResponseTimeMS int64  `json:"response_time_ms"`
	Error          string `json:"error,omitempty"`
}

// CoreEntry is one core's index stats, or a single error entry when the
// core listing itself failed.
type CoreEntry struct {
	Name         string  `json:"name,omitempty"`
	NumDocs      int64   `json:"num_docs"`
	SizeMB       float64 `json:"size_mb"`
	LastModified string  `json:"last_modified,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// SystemEntry carries JVM and version details, or an error.
type SystemEntry struct {
	SolrVersion   string       `json:"solr_version,omitempty"`
	JVMVersion    string       `json:"jvm_version,omitempty"`
	Memory        *MemoryStats `json:"memory,omitempty"`
	UptimeSeconds int64        `json:"uptime_seconds"`
	Error         string       `json:"error,omitempty"`
}

// MemoryStats is JVM heap usage in MiB (2 decimal places).
type MemoryStats struct {
	UsedMB       float64 `json:"used_mb"`
	TotalMB      float64 `json:"total_mb"`
	MaxMB        float64 `json:"max_mb"`
	UsagePercent float64 `json:"usage_percent"`
}
