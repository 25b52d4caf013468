package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kadirhan/alumniport/internal/app/models"
	"github.com/kadirhan/alumniport/internal/app/models/dto"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestUpdateProfileRoleScopedFields(t *testing.T) {
	tests := []struct {
		name string
		role models.Role
		// after applying a request that sets both alumni and student fields
		wantCompany bool
		wantMajor   bool
	}{
		{"alumni keeps alumni fields only", models.RoleAlumni, true, false},
		{"student keeps student fields only", models.RoleStudent, false, true},
		{"faculty keeps neither", models.RoleFaculty, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newFakeUserRepo()
			actor := users.add(models.User{ID: 1, Name: "Old Name", Role: tt.role, IsVerified: true})
			svc := NewUserService(users, zerolog.Nop())

			updated, err := svc.UpdateProfile(context.Background(), actor, &dto.UpdateProfileRequest{
				Name:     strPtr("New Name"),
				Headline: strPtr("Hello"),
				Company:  strPtr("Acme"),
				Major:    strPtr("CS"),
			})
			if err != nil {
				t.Fatalf("UpdateProfile() error = %v", err)
			}

			if updated.Name != "New Name" || updated.Profile.Headline != "Hello" {
				t.Fatal("common fields should always apply")
			}
			if got := updated.Profile.Company != nil; got != tt.wantCompany {
				t.Fatalf("company set = %v, want %v", got, tt.wantCompany)
			}
			if got := updated.Profile.Major != nil; got != tt.wantMajor {
				t.Fatalf("major set = %v, want %v", got, tt.wantMajor)
			}
		})
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	users := newFakeUserRepo()
	actor := users.add(models.User{
		ID: 1, Name: "Keep Me", Role: models.RoleAlumni, IsVerified: true,
		Profile: models.Profile{Headline: "Existing", GraduationYear: intPtr(2015)},
	})
	svc := NewUserService(users, zerolog.Nop())

	updated, err := svc.UpdateProfile(context.Background(), actor, &dto.UpdateProfileRequest{
		Bio: strPtr("New bio"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	if updated.Profile.Bio != "New bio" {
		t.Fatal("bio should update")
	}
	if updated.Name != "Keep Me" || updated.Profile.Headline != "Existing" {
		t.Fatal("omitted fields must keep their values")
	}
	if updated.Profile.GraduationYear == nil || *updated.Profile.GraduationYear != 2015 {
		t.Fatal("omitted role field must keep its value")
	}
}

func TestListAlumniOnlyVerified(t *testing.T) {
	users := newFakeUserRepo()
	users.add(models.User{ID: 1, Name: "A", Role: models.RoleAlumni, IsVerified: true})
	users.add(models.User{ID: 2, Name: "B", Role: models.RoleAlumni})
	users.add(models.User{ID: 3, Name: "C", Role: models.RoleStudent, IsVerified: true})
	svc := NewUserService(users, zerolog.Nop())

	alumni, err := svc.ListAlumni(context.Background())
	if err != nil {
		t.Fatalf("ListAlumni() error = %v", err)
	}
	if len(alumni) != 1 || alumni[0].ID != 1 {
		t.Fatalf("directory = %v, want only the verified alumni", alumni)
	}
}
