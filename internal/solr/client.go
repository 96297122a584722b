// Package solr is a minimal client for the Solr admin API surface the
// health service needs: ping, core status and system info.
package solr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
)

// ErrBadResponse marks an upstream reply that arrived but could not be
// used: a non-2xx status or a body that is not the expected JSON.
// Transport failures are returned as-is.
var ErrBadResponse = errors.New("solr: bad response")

// Config controls where and how the client talks to Solr.
type Config struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration
}

// Client speaks to a single Solr instance. Safe for concurrent use.
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
}

// New builds a Client. A zero Timeout defaults to 5s; the admin endpoints
// are cheap and a hung upstream must not hang the health service.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		http:     &http.Client{Timeout: timeout},
	}
}

// PingStatus is the outcome of /solr/admin/ping.
type PingStatus struct {
	Status         string
	ResponseTimeMS int64
}

// CoreStatus describes one core from /solr/admin/cores?action=STATUS.
type CoreStatus struct {
	Name         string
	NumDocs      int64
	SizeInBytes  int64
	LastModified string
}

// SystemInfo is the subset of /solr/admin/info/system the health document
// publishes. Memory values are raw bytes, uptime is milliseconds.
type SystemInfo struct {
	SolrVersion string
	JVMVersion  string
	MemoryUsed  int64
	MemoryTotal int64
	MemoryMax   int64
	UptimeMS    int64
}

// Ping checks that Solr answers its ping handler.
func (c *Client) Ping(ctx context.Context) (PingStatus, error) {
	var body struct {
		ResponseHeader struct {
			QTime int64 `json:"QTime"`
		} `json:"responseHeader"`
		Status string `json:"status"`
	}
	if err := c.get(ctx, "/solr/admin/ping?wt=json", &body); err != nil {
		return PingStatus{}, err
	}
	return PingStatus{Status: body.Status, ResponseTimeMS: body.ResponseHeader.QTime}, nil
}

// CoreStatuses lists all cores, sorted by name. Cores with an empty name
// key (Solr emits one when no cores exist) are skipped.
func (c *Client) CoreStatuses(ctx context.Context) ([]CoreStatus, error) {
	var body struct {
		Status map[string]struct {
			Index struct {
				NumDocs      int64  `json:"numDocs"`
				SizeInBytes  int64  `json:"sizeInBytes"`
				LastModified string `json:"lastModified"`
			} `json:"index"`
		} `json:"status"`
	}
	if err := c.get(ctx, "/solr/admin/cores?action=STATUS&wt=json", &body); err != nil {
		return nil, err
	}

	cores := make([]CoreStatus, 0, len(body.Status))
	for name, core := range body.Status {
		if name == "" {
			continue
		}
		cores = append(cores, CoreStatus{
			Name:         name,
			NumDocs:      core.Index.NumDocs,
			SizeInBytes:  core.Index.SizeInBytes,
			LastModified: core.Index.LastModified,
		})
	}
	sort.Slice(cores, func(i, j int) bool { return cores[i].Name < cores[j].Name })
	return cores, nil
}

// SystemInfo fetches JVM and version details.
func (c *Client) SystemInfo(ctx context.Context) (SystemInfo, error) {
	var body struct {
		Lucene struct {
			SolrSpecVersion string `json:"solr-spec-version"`
		} `json:"lucene"`
		JVM struct {
			Version string `json:"version"`
			Memory  struct {
				Raw struct {
					Used  int64 `json:"used"`
					Total int64 `json:"total"`
					Max   int64 `json:"max"`
				} `json:"raw"`
			} `json:"memory"`
			JMX struct {
				UpTimeMS int64 `json:"upTimeMS"`
			} `json:"jmx"`
		} `json:"jvm"`
	}
	if err := c.get(ctx, "/solr/admin/info/system?wt=json", &body); err != nil {
		return SystemInfo{}, err
	}
	return SystemInfo{
		SolrVersion: body.Lucene.SolrSpecVersion,
		JVMVersion:  body.JVM.Version,
		MemoryUsed:  body.JVM.Memory.Raw.Used,
		MemoryTotal: body.JVM.Memory.Raw.Total,
		MemoryMax:   body.JVM.Memory.Raw.Max,
		UptimeMS:    body.JVM.JMX.UpTimeMS,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.username != "" && c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned %s", ErrBadResponse, path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrBadResponse, path, err)
	}
	return nil
}
