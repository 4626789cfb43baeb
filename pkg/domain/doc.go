// Package domain contains the core entities of the scan-run lifecycle: projects,
// scan runs, their ordered tasks, and the audit record produced by a halt. It
// also holds the pure rules that govern them (legal status transitions, stage
// classification and ledger aggregation) so they can be shared by storage,
// services and the API without pulling in infrastructure concerns.
package domain
