// Package metric provides Prometheus metrics for sigmesh-cli.
//
// The client keeps local counters of dispatched requests by operation
// and outcome. There is no exposition endpoint; the counters are
// gathered in-process for the interactive "stats" command.
package metric
