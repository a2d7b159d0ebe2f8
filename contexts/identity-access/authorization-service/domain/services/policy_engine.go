package services

import (
	"strings"

	"toolhub/contexts/identity-access/authorization-service/domain/entities"
)

// Allows reports whether any of the subject's roles carries the permission.
// A role permission of the form "<area>.*" covers every permission in that
// area, so "orders.*" satisfies "orders.list_all".
func Allows(roles []entities.Role, permission string) bool {
	for _, role := range roles {
		for _, granted := range role.Permissions {
			if granted == permission {
				return true
			}
			area, wildcard := strings.CutSuffix(granted, ".*")
			if wildcard && strings.HasPrefix(permission, area+".") {
				return true
			}
		}
	}
	return false
}
