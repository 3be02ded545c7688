// ABOUTME: Pure role-gate predicates for UI-level permission checks.
// ABOUTME: Advisory only; the server enforces the authoritative rules.
package access

import "github.com/workoutplan/cli/internal/models"

// CanManageExercises reports whether the role may create, edit, or delete
// catalog exercises. Only trainers manage the shared catalog.
func CanManageExercises(role models.Role) bool {
	return role == models.RoleTrainer
}

// CanMutatePlanOrLog reports whether the current user may edit or delete a
// plan or log owned by ownerID. Trainers may mutate anything; users only
// their own.
func CanMutatePlanOrLog(role models.Role, ownerID, currentUserID int) bool {
	return role == models.RoleTrainer || ownerID == currentUserID
}

// CanAssignToOthers reports whether plan creation should offer an assignee
// selection (create on behalf of another user).
func CanAssignToOthers(role models.Role) bool {
	return role == models.RoleTrainer
}
