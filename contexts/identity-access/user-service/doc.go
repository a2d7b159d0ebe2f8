// Package userservice stores ToolHub user profiles, keyed by email. The HTTP
// upsert route doubles as login: writing the profile issues a fresh access
// token through the token service.
package userservice
