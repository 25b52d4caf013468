package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kadirhan/alumniport/internal/app/models"
	"github.com/kadirhan/alumniport/internal/app/models/dto"
	"github.com/kadirhan/alumniport/internal/pkg/apperrors"
)

func newMentorshipFixture(t *testing.T) (*MentorshipService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	return NewMentorshipService(newFakeMentorshipRepo(), users, zerolog.Nop()), users
}

func TestMentorshipSendOnlyByStudent(t *testing.T) {
	svc, users := newMentorshipFixture(t)
	alumni := users.add(models.User{ID: 10, Name: "Mentor", Role: models.RoleAlumni, IsVerified: true})

	_, err := svc.Send(context.Background(), alumniActor(2), &dto.SendMentorshipRequest{
		AlumniID: alumni.ID, Message: "hi",
	})
	if !errors.Is(err, apperrors.ErrWrongRole) {
		t.Fatalf("Send() by alumni error = %v, want wrong role", err)
	}
}

func TestMentorshipSendTargetMustBeAlumni(t *testing.T) {
	svc, users := newMentorshipFixture(t)
	faculty := users.add(models.User{ID: 10, Name: "Prof", Role: models.RoleFaculty, IsVerified: true})
	ctx := context.Background()

	tests := []struct {
		name     string
		alumniID int64
	}{
		{"missing user", 99},
		{"wrong role target", faculty.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Send(ctx, studentActor(1), &dto.SendMentorshipRequest{
				AlumniID: tt.alumniID, Message: "hi",
			})
			if !errors.Is(err, apperrors.ErrNotFound) {
				t.Fatalf("Send() error = %v, want not found", err)
			}
		})
	}
}

func TestMentorshipSendCreatesPending(t *testing.T) {
	svc, users := newMentorshipFixture(t)
	alumni := users.add(models.User{ID: 10, Name: "Mentor", Role: models.RoleAlumni, IsVerified: true})
	student := studentActor(1)

	request, err := svc.Send(context.Background(), student, &dto.SendMentorshipRequest{
		AlumniID: alumni.ID, Message: "please mentor me",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if request.Status != models.MentorshipPending {
		t.Fatalf("status = %q, want Pending", request.Status)
	}
	if request.StudentID != student.ID || request.AlumniID != alumni.ID {
		t.Fatal("request parties do not match actor and target")
	}
}

func TestMentorshipListByRole(t *testing.T) {
	svc, users := newMentorshipFixture(t)
	mentor := users.add(models.User{ID: 10, Name: "Mentor", Role: models.RoleAlumni, IsVerified: true})
	otherMentor := users.add(models.User{ID: 11, Name: "Other", Role: models.RoleAlumni, IsVerified: true})
	student := studentActor(1)
	otherStudent := studentActor(2)
	ctx := context.Background()

	mustSend := func(actor *models.User, alumniID int64) {
		t.Helper()
		if _, err := svc.Send(ctx, actor, &dto.SendMentorshipRequest{AlumniID: alumniID, Message: "m"}); err != nil {
			t.Fatalf("Send() error = %v", err)
		}
	}
	mustSend(student, mentor.ID)
	mustSend(student, otherMentor.ID)
	mustSend(otherStudent, mentor.ID)

	studentView, err := svc.List(ctx, student)
	if err != nil {
		t.Fatalf("List() as student error = %v", err)
	}
	if len(studentView) != 2 {
		t.Fatalf("student sees %d requests, want 2", len(studentView))
	}

	mentorActor := &models.User{ID: mentor.ID, Role: models.RoleAlumni, IsVerified: true}
	mentorView, err := svc.List(ctx, mentorActor)
	if err != nil {
		t.Fatalf("List() as alumni error = %v", err)
	}
	if len(mentorView) != 2 {
		t.Fatalf("mentor sees %d requests, want 2", len(mentorView))
	}

	if _, err := svc.List(ctx, adminActor(50)); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("List() as admin error = %v, want forbidden", err)
	}
}

func TestMentorshipRespond(t *testing.T) {
	svc, users := newMentorshipFixture(t)
	mentor := users.add(models.User{ID: 10, Name: "Mentor", Role: models.RoleAlumni, IsVerified: true})
	ctx := context.Background()

	request, err := svc.Send(ctx, studentActor(1), &dto.SendMentorshipRequest{
		AlumniID: mentor.ID, Message: "m",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	mentorActor := &models.User{ID: mentor.ID, Role: models.RoleAlumni, IsVerified: true}

	// Only the named alumni may respond; others get a 404-shaped error.
	stranger := &models.User{ID: 77, Role: models.RoleAlumni, IsVerified: true}
	_, err = svc.Respond(ctx, stranger, request.ID, &dto.RespondMentorshipRequest{Status: "Accepted"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("Respond() by stranger error = %v, want not found", err)
	}

	// Invalid status values are rejected before any lookup.
	_, err = svc.Respond(ctx, mentorActor, request.ID, &dto.RespondMentorshipRequest{Status: "Pending"})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("Respond() with Pending error = %v, want bad request", err)
	}

	responded, err := svc.Respond(ctx, mentorActor, request.ID, &dto.RespondMentorshipRequest{Status: "Accepted"})
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if responded.Status != models.MentorshipAccepted {
		t.Fatalf("status = %q, want Accepted", responded.Status)
	}

	// Terminal states cannot transition again.
	_, err = svc.Respond(ctx, mentorActor, request.ID, &dto.RespondMentorshipRequest{Status: "Rejected"})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("second Respond() error = %v, want bad request", err)
	}

	final, err := svc.List(ctx, mentorActor)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if final[0].Status != models.MentorshipAccepted {
		t.Fatalf("stored status = %q, want Accepted to stick", final[0].Status)
	}
}
