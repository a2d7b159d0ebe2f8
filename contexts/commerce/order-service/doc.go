// Package orderservice contains the ToolHub order module: customer order
// creation, owner-scoped listing, merge-style upsert, payment marking, and
// idempotent deletion, with order lifecycle events written to a transactional
// outbox and relayed by the worker process.
//
// The module keeps domain/application logic decoupled from runtime/platform
// concerns through ports and adapter composition.
package orderservice
