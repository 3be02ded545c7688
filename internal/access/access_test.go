// ABOUTME: Tests for the role-gate predicates.
// ABOUTME: Trainers pass everywhere; users pass only as owners.
package access

import (
	"testing"

	"github.com/workoutplan/cli/internal/models"
)

func TestCanManageExercises(t *testing.T) {
	if !CanManageExercises(models.RoleTrainer) {
		t.Error("trainers manage the catalog")
	}
	if CanManageExercises(models.RoleUser) {
		t.Error("users do not manage the catalog")
	}
}

func TestCanMutatePlanOrLog(t *testing.T) {
	tests := []struct {
		name    string
		role    models.Role
		ownerID int
		userID  int
		want    bool
	}{
		{
			name:    "user owns the entity",
			role:    models.RoleUser,
			ownerID: 7,
			userID:  7,
			want:    true,
		},
		{
			name:    "user does not own the entity",
			role:    models.RoleUser,
			ownerID: 7,
			userID:  8,
			want:    false,
		},
		{
			name:    "trainer mutates anything",
			role:    models.RoleTrainer,
			ownerID: 7,
			userID:  8,
			want:    true,
		},
		{
			name:    "trainer mutates own entity",
			role:    models.RoleTrainer,
			ownerID: 7,
			userID:  7,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMutatePlanOrLog(tt.role, tt.ownerID, tt.userID); got != tt.want {
				t.Errorf("CanMutatePlanOrLog(%s, %d, %d) = %v, want %v",
					tt.role, tt.ownerID, tt.userID, got, tt.want)
			}
		})
	}
}

func TestCanAssignToOthers(t *testing.T) {
	if !CanAssignToOthers(models.RoleTrainer) {
		t.Error("trainers get the assignee selector")
	}
	if CanAssignToOthers(models.RoleUser) {
		t.Error("users do not get the assignee selector")
	}
}
