// Package api contains the client-side HTTP building blocks for the blog
// backend.
//
// # Overview
//
// The package provides:
//  1. Narrow API contracts (Auth, Posts, Categories) that the stores depend
//     on, keeping them testable with lightweight fakes.
//  2. A concrete implementation (Client) that owns all outbound HTTP: it
//     attaches the persisted bearer token to every request, logs each
//     exchange with a per-request id, evicts the token on any 401 response,
//     and tolerates both {"data": ...} envelopes and bare payloads.
//  3. Error normalization: every failure surfaces as *Error with a message,
//     a status (HTTP code, StatusNetwork, or StatusLocal), and optional
//     per-field validation errors.
//
// # Error Handling
//
// Callers match failures with errors.As against *Error and branch on Status.
// No call retries automatically; every failure is surfaced exactly once.
//
// All operations accept a context.Context and honor cancellation; every
// request is additionally bounded by the client timeout (DefaultTimeout
// unless configured otherwise).
package api
