package dashboard

import (
	"regexp"
	"strings"
)

// AddTemplating installs the multi-instance template variables (instance,
// job, core) and rewrites every panel query to filter on them. Hardcoded
// job/core matchers in existing queries are replaced, so running it on an
// already-converted dashboard is a no-op for the queries.
func AddTemplating(d Dashboard) {
	d["templating"] = map[string]any{"list": templateVariables()}

	for _, p := range d.panelList() {
		panel, ok := p.(map[string]any)
		if !ok {
			continue
		}
		targets, ok := panel["targets"].([]any)
		if !ok {
			continue
		}
		for _, t := range targets {
			target, ok := t.(map[string]any)
			if !ok {
				continue
			}
			if expr, ok := target["expr"].(string); ok {
				target["expr"] = rewriteExpr(expr)
			}
		}
	}

	d["title"] = "Solr Monitoring (Multi-Instance)"
	d["description"] = "Solr performance monitoring dashboard with support for multiple instances. " +
		"Use template variables to filter by instance, job, and core."
	d.bumpVersion()
}

var hardcodedCore = regexp.MustCompile(`core="[^"]*"`)

// rewriteExpr converts a hardcoded exporter query into a templated one:
//
//	job="solr-exporter"  ->  job="$job" (plus instance=~"$instance" when absent)
//	solr_metrics_core... ->  gains core=~"$core"
func rewriteExpr(expr string) string {
	if strings.Contains(expr, `job="solr-exporter"`) {
		if strings.Contains(expr, "instance=") {
			expr = strings.ReplaceAll(expr, `job="solr-exporter"`, `job="$job"`)
		} else {
			expr = strings.ReplaceAll(expr, `job="solr-exporter"`, `job="$job",instance=~"$instance"`)
		}
	}

	if strings.Contains(expr, "solr_metrics_core") {
		switch {
		case strings.Contains(expr, "core="):
			// Replace hardcoded core filters; an already templated
			// core=~"$core" does not match the pattern and stays put.
			expr = hardcodedCore.ReplaceAllString(expr, `core=~"$$core"`)
		case strings.Contains(expr, "}"):
			expr = strings.ReplaceAll(expr, "}", `,core=~"$core"}`)
		}
	}

	return expr
}

func templateVariables() []any {
	return []any{
		map[string]any{
			"current": map[string]any{
				"selected": false,
				"text":     "All",
				"value":    "$__all",
			},
			"datasource": "Prometheus",
			"definition": `label_values(up{job="solr-exporter"}, instance)`,
			"hide":       0,
			"includeAll": true,
			"label":      "Instance",
			"multi":      true,
			"name":       "instance",
			"options":    []any{},
			"query": map[string]any{
				"query": `label_values(up{job="solr-exporter"}, instance)`,
				"refId": "StandardVariableQuery",
			},
			"refresh":     1,
			"regex":       "",
			"skipUrlSync": false,
			"sort":        1,
			"type":        "query",
		},
		map[string]any{
			"current": map[string]any{
				"selected": false,
				"text":     "solr-exporter",
				"value":    "solr-exporter",
			},
			"datasource": "Prometheus",
			"definition": "label_values(up, job)",
			"hide":       0,
			"includeAll": false,
			"label":      "Job",
			"multi":      false,
			"name":       "job",
			"options":    []any{},
			"query": map[string]any{
				"query": "label_values(up, job)",
				"refId": "StandardVariableQuery",
			},
			"refresh":     1,
			"regex":       ".*solr.*",
			"skipUrlSync": false,
			"sort":        0,
			"type":        "query",
		},
		map[string]any{
			"allValue": "",
			"current": map[string]any{
				"selected": false,
				"text":     "All",
				"value":    "$__all",
			},
			"datasource": "Prometheus",
			"definition": "label_values(solr_metrics_core_query_requests_total, core)",
			"hide":       0,
			"includeAll": true,
			"label":      "Core",
			"multi":      true,
			"name":       "core",
			"options":    []any{},
			"query": map[string]any{
				"query": "label_values(solr_metrics_core_query_requests_total, core)",
				"refId": "StandardVariableQuery",
			},
			"refresh":     1,
			"regex":       "",
			"skipUrlSync": false,
			"sort":        1,
			"type":        "query",
		},
	}
}
