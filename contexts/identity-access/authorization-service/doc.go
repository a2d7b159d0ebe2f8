// Package authorization implements role records and permission checks inside
// ToolHub.
//
// Layering:
// - domain: role entities, the policy engine, errors
// - application: grant/revoke/check operations using explicit ports
// - ports: stable boundaries for persistence
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under identity-access context.
// - Do not import other context adapters into domain/application.
package authorization
