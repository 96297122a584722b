// Package dashboard mutates Grafana dashboard JSON definitions.
//
// Dashboards are open-schema documents, so they are handled as
// map[string]any: a typed model would silently drop every panel field this
// package does not know about when rewriting the file.
package dashboard

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Dashboard is a parsed Grafana dashboard definition.
type Dashboard map[string]any

// Load reads and parses a dashboard file.
func Load(path string) (Dashboard, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dashboard: read %s: %w", path, err)
	}
	var d Dashboard
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("dashboard: parse %s: %w", path, err)
	}
	return d, nil
}

// Save writes the dashboard back with 2-space indentation, matching the
// formatting the provisioning pipeline expects.
func Save(path string, d Dashboard) error {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("dashboard: encode: %w", err)
	}
	raw = append(raw, '\n')
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("dashboard: write %s: %w", path, err)
	}
	return nil
}

// Backup copies the current file to <path>.backup-<label>-<timestamp> and
// returns the backup path.
func Backup(path, label string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("dashboard: read %s: %w", path, err)
	}
	backup := fmt.Sprintf("%s.backup-%s-%s", path, label, time.Now().Format("20060102-150405"))
	if err := os.WriteFile(backup, raw, 0o644); err != nil {
		return "", fmt.Errorf("dashboard: write backup %s: %w", backup, err)
	}
	return backup, nil
}

// panelList returns the top-level panels slice, or nil.
func (d Dashboard) panelList() []any {
	panels, _ := d["panels"].([]any)
	return panels
}

// bumpVersion increments the dashboard's version counter (0 when absent).
func (d Dashboard) bumpVersion() {
	v, _ := toInt(d["version"])
	d["version"] = v + 1
}

// toInt normalizes JSON numbers: values read from a file arrive as
// float64, values this package sets are int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}
