package dashboard

// AddQueryPerformance appends the "Query Performance Analysis" row and its
// five panels. Panel IDs continue from the highest existing ID and the row
// is placed below the lowest existing panel, so the operation composes
// with whatever the dashboard already contains.
func AddQueryPerformance(d Dashboard) {
	panels := d.panelList()

	nextID := maxPanelID(panels) + 1
	nextY := nextYPos(panels)

	row := map[string]any{
		"collapsed": false,
		"gridPos":   map[string]any{"h": 1, "w": 24, "x": 0, "y": nextY},
		"id":        nextID,
		"panels":    []any{},
		"title":     "Query Performance Analysis",
		"type":      "row",
	}
	nextID++
	nextY++

	latency := latencyPanel(nextID, nextY)
	nextID++
	slow := slowQueriesPanel(nextID, nextY)
	nextID++
	nextY += 8

	rate := queryRatePanel(nextID, nextY)
	nextID++
	cache := cacheHitPanel(nextID, nextY)
	nextID++
	nextY += 8

	trend := avgTimeTrendPanel(nextID, nextY)

	d["panels"] = append(panels, row, latency, slow, rate, cache, trend)
	d["refresh"] = "30s"
	d.bumpVersion()
}

func maxPanelID(panels []any) int {
	maxID := 0
	for _, p := range panels {
		panel, ok := p.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := toInt(panel["id"]); ok && id > maxID {
			maxID = id
		}
	}
	return maxID
}

// nextYPos returns the first free row below all existing panels.
func nextYPos(panels []any) int {
	nextY := 0
	for _, p := range panels {
		panel, ok := p.(map[string]any)
		if !ok {
			continue
		}
		grid, ok := panel["gridPos"].(map[string]any)
		if !ok {
			continue
		}
		y, _ := toInt(grid["y"])
		h, _ := toInt(grid["h"])
		if y+h > nextY {
			nextY = y + h
		}
	}
	return nextY
}

func latencyPanel(id, y int) map[string]any {
	return map[string]any{
		"id":          id,
		"gridPos":     map[string]any{"h": 8, "w": 12, "x": 0, "y": y},
		"type":        "graph",
		"title":       "Query Latency Percentiles",
		"description": "Query response time distribution (p50, p95, p99)",
		"targets": []any{
			map[string]any{
				"expr":         `histogram_quantile(0.50, rate(solr_metrics_core_query_time_bucket{core=~"$core",instance=~"$instance"}[5m]))`,
				"legendFormat": "p50 (median)",
				"refId":        "A",
			},
			map[string]any{
				"expr":         `histogram_quantile(0.95, rate(solr_metrics_core_query_time_bucket{core=~"$core",instance=~"$instance"}[5m]))`,
				"legendFormat": "p95",
				"refId":        "B",
			},
			map[string]any{
				"expr":         `histogram_quantile(0.99, rate(solr_metrics_core_query_time_bucket{core=~"$core",instance=~"$instance"}[5m]))`,
				"legendFormat": "p99",
				"refId":        "C",
			},
		},
		"yaxes": []any{
			map[string]any{"format": "ms", "label": "Latency"},
			map[string]any{"format": "short"},
		},
		"xaxis":       map[string]any{"mode": "time", "show": true},
		"lines":       true,
		"fill":        0,
		"linewidth":   2,
		"pointradius": 2,
		"points":      false,
		"bars":        false,
		"stack":       false,
		"percentage":  false,
		"legend": map[string]any{
			"show":         true,
			"values":       true,
			"current":      true,
			"max":          true,
			"alignAsTable": true,
		},
		"nullPointMode": "null",
		"tooltip":       map[string]any{"shared": true, "sort": 0, "value_type": "individual"},
		"thresholds": []any{
			map[string]any{"value": 100, "colorMode": "critical", "op": "gt", "fill": true, "line": true},
			map[string]any{
				"value": 500, "colorMode": "custom", "op": "gt", "fill": true, "line": true,
				"fillColor": "rgba(234, 112, 112, 0.2)", "lineColor": "rgb(234, 112, 112)",
			},
		},
	}
}

func slowQueriesPanel(id, y int) map[string]any {
	return map[string]any{
		"id":          id,
		"gridPos":     map[string]any{"h": 8, "w": 12, "x": 12, "y": y},
		"type":        "graph",
		"title":       "Slow Queries (>1s)",
		"description": "Number of queries taking longer than 1 second",
		"targets": []any{
			map[string]any{
				"expr":         `sum(rate(solr_metrics_core_query_time_bucket{core=~"$core",instance=~"$instance",le="1000"}[5m])) by (core)`,
				"legendFormat": "{{core}} - queries >1s",
				"refId":        "A",
			},
		},
		"yaxes": []any{
			map[string]any{"format": "reqps", "label": "Queries/sec"},
			map[string]any{"format": "short"},
		},
		"xaxis":       map[string]any{"mode": "time", "show": true},
		"lines":       true,
		"fill":        2,
		"linewidth":   2,
		"pointradius": 2,
		"points":      false,
		"bars":        false,
		"stack":       false,
		"percentage":  false,
		"legend": map[string]any{
			"show":         true,
			"values":       true,
			"current":      true,
			"total":        true,
			"alignAsTable": true,
		},
		"nullPointMode": "null",
		"tooltip":       map[string]any{"shared": true, "sort": 2, "value_type": "individual"},
		"alert": map[string]any{
			"name": "High Slow Query Rate",
			"conditions": []any{
				map[string]any{
					"evaluator": map[string]any{"params": []any{10}, "type": "gt"},
					"operator":  map[string]any{"type": "and"},
					"query":     map[string]any{"params": []any{"A", "5m", "now"}},
					"reducer":   map[string]any{"params": []any{}, "type": "avg"},
					"type":      "query",
				},
			},
			"executionErrorState": "alerting",
			"frequency":           "1m",
			"handler":             1,
			"message":             "Slow query rate is high",
			"noDataState":         "no_data",
			"notifications":       []any{},
		},
	}
}

func queryRatePanel(id, y int) map[string]any {
	return map[string]any{
		"id":          id,
		"gridPos":     map[string]any{"h": 8, "w": 12, "x": 0, "y": y},
		"type":        "graph",
		"title":       "Query Rate by Handler",
		"description": "Queries per second by request handler",
		"targets": []any{
			map[string]any{
				"expr":         `sum(rate(solr_metrics_core_query_requests_total{core=~"$core",instance=~"$instance"}[5m])) by (handler)`,
				"legendFormat": "{{handler}}",
				"refId":        "A",
			},
		},
		"yaxes": []any{
			map[string]any{"format": "reqps", "label": "Queries/sec"},
			map[string]any{"format": "short"},
		},
		"xaxis":       map[string]any{"mode": "time", "show": true},
		"lines":       true,
		"fill":        1,
		"linewidth":   2,
		"pointradius": 2,
		"points":      false,
		"bars":        false,
		"stack":       true,
		"percentage":  false,
		"legend": map[string]any{
			"show":         true,
			"values":       true,
			"current":      true,
			"total":        true,
			"alignAsTable": true,
		},
		"nullPointMode": "null as zero",
		"tooltip":       map[string]any{"shared": true, "sort": 2, "value_type": "individual"},
	}
}

func cacheHitPanel(id, y int) map[string]any {
	return map[string]any{
		"id":          id,
		"gridPos":     map[string]any{"h": 8, "w": 12, "x": 12, "y": y},
		"type":        "stat",
		"title":       "Query Cache Hit Ratio",
		"description": "Percentage of queries served from cache",
		"targets": []any{
			map[string]any{
				"expr": `100 * (rate(solr_metrics_core_query_result_cache_hits_total{core=~"$core",instance=~"$instance"}[5m]) / ` +
					`(rate(solr_metrics_core_query_result_cache_hits_total{core=~"$core",instance=~"$instance"}[5m]) + ` +
					`rate(solr_metrics_core_query_result_cache_misses_total{core=~"$core",instance=~"$instance"}[5m])))`,
				"legendFormat": "{{core}}",
				"refId":        "A",
			},
		},
		"options": map[string]any{
			"reduceOptions": map[string]any{
				"values": false,
				"calcs":  []any{"lastNotNull"},
				"fields": "",
			},
			"orientation": "auto",
			"textMode":    "value_and_name",
			"colorMode":   "value",
			"graphMode":   "area",
			"justifyMode": "auto",
		},
		"fieldConfig": map[string]any{
			"defaults": map[string]any{
				"unit":     "percent",
				"decimals": 1,
				"min":      0,
				"max":      100,
				"thresholds": map[string]any{
					"mode": "absolute",
					"steps": []any{
						map[string]any{"value": 0, "color": "red"},
						map[string]any{"value": 50, "color": "yellow"},
						map[string]any{"value": 80, "color": "green"},
					},
				},
			},
		},
	}
}

func avgTimeTrendPanel(id, y int) map[string]any {
	return map[string]any{
		"id":          id,
		"gridPos":     map[string]any{"h": 8, "w": 24, "x": 0, "y": y},
		"type":        "graph",
		"title":       "Average Query Time Trend",
		"description": "Average query execution time over time by core",
		"targets": []any{
			map[string]any{
				"expr": `rate(solr_metrics_core_query_time_sum{core=~"$core",instance=~"$instance"}[5m]) / ` +
					`rate(solr_metrics_core_query_requests_total{core=~"$core",instance=~"$instance"}[5m])`,
				"legendFormat": "{{core}}",
				"refId":        "A",
			},
		},
		"yaxes": []any{
			map[string]any{"format": "ms", "label": "Avg Time"},
			map[string]any{"format": "short"},
		},
		"xaxis":       map[string]any{"mode": "time", "show": true},
		"lines":       true,
		"fill":        0,
		"linewidth":   2,
		"pointradius": 2,
		"points":      false,
		"bars":        false,
		"stack":       false,
		"percentage":  false,
		"legend": map[string]any{
			"show":         true,
			"values":       true,
			"current":      true,
			"avg":          true,
			"max":          true,
			"alignAsTable": true,
		},
		"nullPointMode": "null",
		"tooltip":       map[string]any{"shared": true, "sort": 0, "value_type": "individual"},
		"thresholds": []any{
			map[string]any{
				"value": 50, "colorMode": "custom", "op": "gt", "fill": false, "line": true,
				"lineColor": "rgba(245, 150, 40, 0.8)",
			},
			map[string]any{
				"value": 100, "colorMode": "custom", "op": "gt", "fill": false, "line": true,
				"lineColor": "rgba(234, 112, 112, 0.8)",
			},
		},
	}
}
