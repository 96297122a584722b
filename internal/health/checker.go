package health

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"solrops/internal/solr"
)

// Checker runs the upstream checks and assembles the health document.
type Checker struct {
	client   *solr.Client
	customer string
	log      *slog.Logger
	metrics  *Metrics
}

// NewChecker wires a Checker. metrics may be nil (no instrumentation).
func NewChecker(client *solr.Client, customer string, log *slog.Logger, metrics *Metrics) *Checker {
	return &Checker{
		client:   client,
		customer: customer,
		log:      log,
		metrics:  metrics,
	}
}

// Check builds the full document. It never returns an error: every
// upstream failure is folded into the document itself.
func (c *Checker) Check(ctx context.Context) Document {
	doc := Document{
		Customer: c.customer,
		Version:  DocumentVersion,
		Status:   StatusUnhealthy,
		Cores:    []CoreEntry{},
		Errors:   []string{},
	}

	start := time.Now()
	ping, err := c.client.Ping(ctx)
	c.metrics.observe("ping", start, err)

	if err != nil {
		c.metrics.setUp(false)
		c.log.Warn("health.ping.fail", "err", err)

		doc.Solr = SolrStatus{Available: false, Error: err.Error()}
		if errors.Is(err, solr.ErrBadResponse) {
			// Solr answered but with something we could not use; that is a
			// malfunction, not plain unavailability.
			doc.Status = StatusError
		}
		doc.Errors = append(doc.Errors, "Solr is not available")
		return doc
	}

	c.metrics.setUp(true)
	doc.Status = StatusHealthy
	doc.Solr = SolrStatus{
		Available:      true,
		Status:         ping.Status,
		ResponseTimeMS: ping.ResponseTimeMS,
	}

	doc.Cores = c.checkCores(ctx)
	doc.System = c.checkSystem(ctx)
	return doc
}

// checkCores lists cores; a failure becomes a single error entry rather
// than an overall unhealthy verdict.
func (c *Checker) checkCores(ctx context.Context) []CoreEntry {
	start := time.Now()
	cores, err := c.client.CoreStatuses(ctx)
	c.metrics.observe("cores", start, err)
	if err != nil {
		c.log.Warn("health.cores.fail", "err", err)
		return []CoreEntry{{Error: err.Error()}}
	}

	entries := make([]CoreEntry, 0, len(cores))
	for _, core := range cores {
		entries = append(entries, CoreEntry{
			Name:         core.Name,
			NumDocs:      core.NumDocs,
			SizeMB:       roundMB(core.SizeInBytes),
			LastModified: core.LastModified,
		})
	}
	return entries
}

func (c *Checker) checkSystem(ctx context.Context) SystemEntry {
	start := time.Now()
	info, err := c.client.SystemInfo(ctx)
	c.metrics.observe("system", start, err)
	if err != nil {
		c.log.Warn("health.system.fail", "err", err)
		return SystemEntry{Error: err.Error()}
	}

	var usage float64
	if info.MemoryMax > 0 {
		usage = round2(float64(info.MemoryUsed) / float64(info.MemoryMax) * 100)
	}

	return SystemEntry{
		SolrVersion: info.SolrVersion,
		JVMVersion:  info.JVMVersion,
		Memory: &MemoryStats{
			UsedMB:       roundMB(info.MemoryUsed),
			TotalMB:      roundMB(info.MemoryTotal),
			MaxMB:        roundMB(info.MemoryMax),
			UsagePercent: usage,
		},
		UptimeSeconds: info.UptimeMS / 1000,
	}
}

func roundMB(bytes int64) float64 {
	return round2(float64(bytes) / 1024 / 1024)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
