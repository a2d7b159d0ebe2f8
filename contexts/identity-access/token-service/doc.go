// Package tokenservice implements the Token Service inside ToolHub.
//
// It verifies bearer credentials presented on order and profile routes,
// enforces the ownership check between the verified claim and the caller's
// declared email, and issues access tokens on login.
//
// Layering:
// - domain: sentinel errors for the credential taxonomy
// - application: pure verify/authorize/issue operations using explicit ports
// - transport: module-private DTOs for HTTP contracts
package tokenservice
