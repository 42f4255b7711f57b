/*
Package observability provides opt-in Prometheus instrumentation for Folio.

The composition core itself never records anything. Instrumentation is added by
decorating the values handed to it: a Modifier wrapped with Metrics.Modifier
counts and times its Body calls, and a publishing context wrapped with
Metrics.Context counts default-layout lookups.
*/
package observability
