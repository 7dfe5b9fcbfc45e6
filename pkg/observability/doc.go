/*
Package observability provides tools for watching interviews as they run.

Several interview.Hooks can be merged with Combine, so that metrics, audit logs
and test probes observe the same interview. LogHooks turns every event into a
structured log line.
*/
package observability
