// Package health aggregates Solr's admin endpoints into a single JSON
// status document and serves it over HTTP.
//
// Upstream failures never crash the service: each check folds its error
// into the document and the handler always answers, 200 when healthy and
// 503 otherwise.
package health
