package auth

import (
	"errors"
	"testing"

	"github.com/kadirhan/alumniport/internal/app/models"
	"github.com/kadirhan/alumniport/internal/pkg/apperrors"
)

func user(id int64, role models.Role, verified bool) *models.User {
	return &models.User{ID: id, Role: role, IsVerified: verified}
}

func TestRequireVerified(t *testing.T) {
	tests := []struct {
		name    string
		actor   *models.User
		wantErr error
	}{
		{"nil actor", nil, apperrors.ErrNoToken},
		{"verified student", user(1, models.RoleStudent, true), nil},
		{"unverified student", user(1, models.RoleStudent, false), apperrors.ErrNotVerified},
		{"unverified alumni", user(2, models.RoleAlumni, false), apperrors.ErrNotVerified},
		{"unverified employer", user(3, models.RoleEmployer, false), apperrors.ErrNotVerified},
		{"institute admin exempt", user(4, models.RoleInstituteAdmin, false), nil},
		{"verified super admin", user(5, models.RoleSuperAdmin, true), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireVerified(tt.actor)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("RequireVerified() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("RequireVerified() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreatorRoleGates(t *testing.T) {
	roles := []models.Role{
		models.RoleStudent, models.RoleAlumni, models.RoleFaculty,
		models.RoleInstituteAdmin, models.RoleEmployer, models.RoleSuperAdmin,
	}

	for _, role := range roles {
		actor := user(1, role, true)

		if err := CanCreatePost(actor); (err == nil) != (role == models.RoleAlumni) {
			t.Errorf("CanCreatePost(%s) = %v", role, err)
		}
		if err := CanCreateJob(actor); (err == nil) != (role == models.RoleAlumni) {
			t.Errorf("CanCreateJob(%s) = %v", role, err)
		}
		if err := CanCreateEvent(actor); (err == nil) != (role == models.RoleInstituteAdmin) {
			t.Errorf("CanCreateEvent(%s) = %v", role, err)
		}
		if err := CanSendMentorshipRequest(actor); (err == nil) != (role == models.RoleStudent) {
			t.Errorf("CanSendMentorshipRequest(%s) = %v", role, err)
		}
		if err := CanVerifyUsers(actor); (err == nil) != (role == models.RoleInstituteAdmin) {
			t.Errorf("CanVerifyUsers(%s) = %v", role, err)
		}
	}
}

func TestCanDeletePost(t *testing.T) {
	post := &models.Post{ID: 1, UserID: 10}

	if err := CanDeletePost(user(10, models.RoleAlumni, true), post); err != nil {
		t.Fatalf("owner should delete: %v", err)
	}
	if err := CanDeletePost(user(20, models.RoleInstituteAdmin, true), post); err != nil {
		t.Fatalf("institute admin should override: %v", err)
	}
	err := CanDeletePost(user(30, models.RoleAlumni, true), post)
	if !errors.Is(err, apperrors.ErrNotOwner) {
		t.Fatalf("other alumni error = %v, want not owner", err)
	}
	if err := CanDeletePost(nil, post); !errors.Is(err, apperrors.ErrNoToken) {
		t.Fatalf("nil actor error = %v, want no token", err)
	}
}

func TestCanDeleteJob(t *testing.T) {
	job := &models.Job{ID: 1, PostedByID: 10}

	if err := CanDeleteJob(user(10, models.RoleAlumni, true), job); err != nil {
		t.Fatalf("poster should delete: %v", err)
	}
	// No admin override on the job board.
	err := CanDeleteJob(user(20, models.RoleInstituteAdmin, true), job)
	if !errors.Is(err, apperrors.ErrWrongRole) {
		t.Fatalf("admin error = %v, want wrong role", err)
	}
	err = CanDeleteJob(user(30, models.RoleAlumni, true), job)
	if !errors.Is(err, apperrors.ErrNotOwner) {
		t.Fatalf("other alumni error = %v, want not owner", err)
	}
}

func TestCanModifyEvent(t *testing.T) {
	event := &models.Event{ID: 1, CreatedByID: 10}

	if err := CanModifyEvent(user(10, models.RoleInstituteAdmin, true), event); err != nil {
		t.Fatalf("creator should modify: %v", err)
	}
	err := CanModifyEvent(user(20, models.RoleInstituteAdmin, true), event)
	if !errors.Is(err, apperrors.ErrNotOwner) {
		t.Fatalf("other admin error = %v, want not owner", err)
	}
	err = CanModifyEvent(user(10, models.RoleAlumni, true), event)
	if !errors.Is(err, apperrors.ErrWrongRole) {
		t.Fatalf("non-admin error = %v, want wrong role", err)
	}
}

func TestEventVisibleTo(t *testing.T) {
	public := &models.Event{Visibility: models.VisibilityAll}
	restricted := &models.Event{Visibility: models.VisibilityAlumniOnly}

	if !EventVisibleTo(user(1, models.RoleStudent, true), public) {
		t.Fatal("students see public events")
	}
	if EventVisibleTo(user(1, models.RoleStudent, true), restricted) {
		t.Fatal("students must not see alumni-only events")
	}
	for _, role := range []models.Role{models.RoleAlumni, models.RoleFaculty, models.RoleInstituteAdmin, models.RoleEmployer, models.RoleSuperAdmin} {
		if !EventVisibleTo(user(1, role, true), restricted) {
			t.Fatalf("%s should see alumni-only events", role)
		}
	}
	if EventVisibleTo(nil, public) {
		t.Fatal("nil actor sees nothing")
	}
}

func TestCanListMentorshipRequests(t *testing.T) {
	if err := CanListMentorshipRequests(user(1, models.RoleStudent, true)); err != nil {
		t.Fatalf("student should list: %v", err)
	}
	if err := CanListMentorshipRequests(user(1, models.RoleAlumni, true)); err != nil {
		t.Fatalf("alumni should list: %v", err)
	}
	for _, role := range []models.Role{models.RoleFaculty, models.RoleInstituteAdmin, models.RoleEmployer, models.RoleSuperAdmin} {
		err := CanListMentorshipRequests(user(1, role, true))
		if !errors.Is(err, apperrors.ErrForbidden) {
			t.Fatalf("%s error = %v, want forbidden", role, err)
		}
	}
}

func TestCanRespondToRequest(t *testing.T) {
	request := &models.MentorshipRequest{ID: 1, StudentID: 5, AlumniID: 10}

	if err := CanRespondToRequest(user(10, models.RoleAlumni, true), request); err != nil {
		t.Fatalf("named alumni should respond: %v", err)
	}
	// Everyone else gets a not-found, including the requesting student.
	for _, actor := range []*models.User{
		user(5, models.RoleStudent, true),
		user(11, models.RoleAlumni, true),
		user(12, models.RoleInstituteAdmin, true),
	} {
		err := CanRespondToRequest(actor, request)
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("actor %d error = %v, want not found", actor.ID, err)
		}
	}
}
