// Command solr-dashboard rewrites the Grafana Solr dashboard in place.
//
//	solr-dashboard templating [DASHBOARD_JSON]   add multi-instance template variables
//	solr-dashboard queryperf  [DASHBOARD_JSON]   add the query performance panel row
package main

import (
	"fmt"
	"os"

	"solrops/internal/dashboard"
)

const defaultPath = "monitoring/grafana/dashboards/solr-dashboard.json"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		usage()
		return fmt.Errorf("no command specified")
	}

	command := args[0]
	path := defaultPath
	if len(args) > 1 {
		path = args[1]
	}

	switch command {
	case "templating":
		return apply(path, "templating", dashboard.AddTemplating, []string{
			"Instance variable (multi-select)",
			"Job variable",
			"Core variable (multi-select)",
			"Updated all queries to use template variables",
		})
	case "queryperf":
		return apply(path, "query", dashboard.AddQueryPerformance, []string{
			"Query Latency Percentiles (p50, p95, p99)",
			"Slow Queries (>1s)",
			"Query Rate by Handler",
			"Query Cache Hit Ratio",
			"Average Query Time Trend",
		})
	case "help", "--help", "-h":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func apply(path, backupLabel string, mutate func(dashboard.Dashboard), summary []string) error {
	d, err := dashboard.Load(path)
	if err != nil {
		return err
	}

	backup, err := dashboard.Backup(path, backupLabel)
	if err != nil {
		return err
	}
	fmt.Printf("Backup created: %s\n", backup)

	mutate(d)

	if err := dashboard.Save(path, d); err != nil {
		return err
	}

	fmt.Printf("✓ Updated %s\n", path)
	for _, line := range summary {
		fmt.Printf("  - %s\n", line)
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `solr-dashboard - Grafana Solr dashboard mutations

USAGE:
    solr-dashboard templating [DASHBOARD_JSON]
    solr-dashboard queryperf  [DASHBOARD_JSON]

The dashboard path defaults to %s.
A timestamped backup of the file is written before every rewrite.
`, defaultPath)
}
