package dashboard

import (
	"testing"
)

func TestRewriteExpr(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "job gains instance filter",
			in:   `rate(solr_requests_total{job="solr-exporter"}[5m])`,
			want: `rate(solr_requests_total{job="$job",instance=~"$instance"}[5m])`,
		},
		{
			name: "existing instance filter keeps job only",
			in:   `up{job="solr-exporter",instance="solr-1:9854"}`,
			want: `up{job="$job",instance="solr-1:9854"}`,
		},
		{
			name: "core metric gains core filter",
			in:   `rate(solr_metrics_core_query_requests_total{job="solr-exporter"}[5m])`,
			want: `rate(solr_metrics_core_query_requests_total{job="$job",instance=~"$instance",core=~"$core"}[5m])`,
		},
		{
			name: "hardcoded core is replaced",
			in:   `solr_metrics_core_query_requests_total{core="products"}`,
			want: `solr_metrics_core_query_requests_total{core=~"$core"}`,
		},
		{
			name: "already templated core is stable",
			in:   `solr_metrics_core_query_requests_total{core=~"$core"}`,
			want: `solr_metrics_core_query_requests_total{core=~"$core"}`,
		},
		{
			name: "unrelated expr untouched",
			in:   `up{job="node-exporter"}`,
			want: `up{job="node-exporter"}`,
		},
	}

	for _, tc := range cases {
		if got := rewriteExpr(tc.in); got != tc.want {
			t.Fatalf("%s:\n in   %q\n got  %q\n want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestAddTemplating(t *testing.T) {
	d := Dashboard{
		"title":   "Solr Monitoring",
		"version": float64(3), // as it arrives from a parsed file
		"panels": []any{
			map[string]any{
				"id": float64(1),
				"targets": []any{
					map[string]any{"expr": `rate(solr_metrics_core_query_requests_total{job="solr-exporter"}[5m])`},
				},
			},
			map[string]any{"id": float64(2), "type": "row"}, // no targets
		},
	}

	AddTemplating(d)

	templating, ok := d["templating"].(map[string]any)
	if !ok {
		t.Fatalf("templating section missing")
	}
	list, ok := templating["list"].([]any)
	if !ok || len(list) != 3 {
		t.Fatalf("expected 3 template variables, got %v", templating["list"])
	}
	names := map[string]bool{}
	for _, v := range list {
		names[v.(map[string]any)["name"].(string)] = true
	}
	for _, want := range []string{"instance", "job", "core"} {
		if !names[want] {
			t.Fatalf("missing variable %q (have %v)", want, names)
		}
	}

	target := d.panelList()[0].(map[string]any)["targets"].([]any)[0].(map[string]any)
	want := `rate(solr_metrics_core_query_requests_total{job="$job",instance=~"$instance",core=~"$core"}[5m])`
	if target["expr"] != want {
		t.Fatalf("expr not rewritten:\n got  %q\n want %q", target["expr"], want)
	}

	if d["title"] != "Solr Monitoring (Multi-Instance)" {
		t.Fatalf("title = %v", d["title"])
	}
	if v, _ := toInt(d["version"]); v != 4 {
		t.Fatalf("version = %v, want 4", d["version"])
	}
}

func TestAddTemplating_NoVersionStartsAtOne(t *testing.T) {
	d := Dashboard{"panels": []any{}}
	AddTemplating(d)
	if v, _ := toInt(d["version"]); v != 1 {
		t.Fatalf("version = %v, want 1", d["version"])
	}
}
