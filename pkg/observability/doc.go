/*
Package observability provides metrics for the splitcalc engine.

Metrics are collected through engine lifecycle hooks into a private Prometheus
registry. The calculator serves no network endpoint, so hosts export the
registry themselves, for example with WriteText at exit.
*/
package observability
