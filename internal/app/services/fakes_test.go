package services

import (
	"context"
	"sort"

	"github.com/kadirhan/alumniport/internal/app/models"
	"github.com/kadirhan/alumniport/internal/pkg/apperrors"
)

// In-memory repository fakes. They reproduce the store contracts the
// services rely on: set semantics for likes and attendees, and the
// single-shot pending-to-terminal transition for mentorship requests.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) add(user models.User) *models.User {
	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	r.users[user.ID] = &user
	return &user
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	stored := r.add(*user)
	user.ID = stored.ID
	return stored.ID, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("User not found")
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.NewNotFoundError("User not found")
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, user *models.User) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return apperrors.NewNotFoundError("User not found")
	}
	stored.Name = user.Name
	stored.Profile = user.Profile
	return nil
}

func (r *fakeUserRepo) FindUnverified(_ context.Context) ([]models.User, error) {
	result := []models.User{}
	for _, user := range r.users {
		if !user.IsVerified && (user.Role == models.RoleStudent || user.Role == models.RoleAlumni) {
			result = append(result, *user)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeUserRepo) FindVerifiedAlumni(_ context.Context) ([]models.User, error) {
	result := []models.User{}
	for _, user := range r.users {
		if user.IsVerified && user.Role == models.RoleAlumni {
			result = append(result, *user)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeUserRepo) Verify(_ context.Context, id int64) error {
	user, ok := r.users[id]
	if !ok {
		return apperrors.NewNotFoundError("User not found")
	}
	user.IsVerified = true
	return nil
}

type fakePostRepo struct {
	posts  map[int64]*models.Post
	nextID int64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[int64]*models.Post{}, nextID: 1}
}

func (r *fakePostRepo) Create(_ context.Context, post *models.Post) (int64, error) {
	post.ID = r.nextID
	r.nextID++
	copied := *post
	copied.Likes = []int64{}
	copied.Comments = []models.Comment{}
	r.posts[copied.ID] = &copied
	return copied.ID, nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id int64) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("Post not found")
	}
	copied := *post
	copied.Likes = append([]int64{}, post.Likes...)
	copied.Comments = append([]models.Comment{}, post.Comments...)
	return &copied, nil
}

func (r *fakePostRepo) GetAll(_ context.Context) ([]models.Post, error) {
	result := []models.Post{}
	for _, post := range r.posts {
		result = append(result, *post)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakePostRepo) GetByUserID(_ context.Context, userID int64) ([]models.Post, error) {
	result := []models.Post{}
	for _, post := range r.posts {
		if post.UserID == userID {
			result = append(result, *post)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakePostRepo) AddLike(_ context.Context, postID, userID int64) (bool, error) {
	post, ok := r.posts[postID]
	if !ok {
		return false, apperrors.NewNotFoundError("Post not found")
	}
	if post.LikedBy(userID) {
		return false, nil
	}
	post.Likes = append(post.Likes, userID)
	return true, nil
}

func (r *fakePostRepo) RemoveLike(_ context.Context, postID, userID int64) (bool, error) {
	post, ok := r.posts[postID]
	if !ok {
		return false, apperrors.NewNotFoundError("Post not found")
	}
	for i, id := range post.Likes {
		if id == userID {
			post.Likes = append(post.Likes[:i], post.Likes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePostRepo) AddComment(_ context.Context, comment *models.Comment) error {
	post, ok := r.posts[comment.PostID]
	if !ok {
		return apperrors.NewNotFoundError("Post not found")
	}
	comment.ID = int64(len(post.Comments) + 1)
	post.Comments = append([]models.Comment{*comment}, post.Comments...)
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.posts[id]; !ok {
		return apperrors.NewNotFoundError("Post not found")
	}
	delete(r.posts, id)
	return nil
}

type fakeEventRepo struct {
	events map[int64]*models.Event
	nextID int64
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[int64]*models.Event{}, nextID: 1}
}

func (r *fakeEventRepo) Create(_ context.Context, event *models.Event) (int64, error) {
	event.ID = r.nextID
	r.nextID++
	copied := *event
	copied.Attendees = []int64{}
	r.events[copied.ID] = &copied
	return copied.ID, nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id int64) (*models.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("Event not found")
	}
	copied := *event
	copied.Attendees = append([]int64{}, event.Attendees...)
	return &copied, nil
}

func (r *fakeEventRepo) GetAll(_ context.Context) ([]models.Event, error) {
	result := []models.Event{}
	for _, event := range r.events {
		result = append(result, *event)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *models.Event) error {
	stored, ok := r.events[event.ID]
	if !ok {
		return apperrors.NewNotFoundError("Event not found")
	}
	attendees := stored.Attendees
	*stored = *event
	stored.Attendees = attendees
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.events[id]; !ok {
		return apperrors.NewNotFoundError("Event not found")
	}
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) AddAttendee(_ context.Context, eventID, userID int64) (bool, error) {
	event, ok := r.events[eventID]
	if !ok {
		return false, apperrors.NewNotFoundError("Event not found")
	}
	if event.HasAttendee(userID) {
		return false, nil
	}
	event.Attendees = append(event.Attendees, userID)
	return true, nil
}

func (r *fakeEventRepo) RemoveAttendee(_ context.Context, eventID, userID int64) (bool, error) {
	event, ok := r.events[eventID]
	if !ok {
		return false, apperrors.NewNotFoundError("Event not found")
	}
	for i, id := range event.Attendees {
		if id == userID {
			event.Attendees = append(event.Attendees[:i], event.Attendees[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeJobRepo struct {
	jobs   map[int64]*models.Job
	nextID int64
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[int64]*models.Job{}, nextID: 1}
}

func (r *fakeJobRepo) Create(_ context.Context, job *models.Job) (int64, error) {
	job.ID = r.nextID
	r.nextID++
	copied := *job
	r.jobs[copied.ID] = &copied
	return copied.ID, nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id int64) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("Job not found")
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) GetAll(_ context.Context) ([]models.Job, error) {
	result := []models.Job{}
	for _, job := range r.jobs {
		result = append(result, *job)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.jobs[id]; !ok {
		return apperrors.NewNotFoundError("Job not found")
	}
	delete(r.jobs, id)
	return nil
}

type fakeMentorshipRepo struct {
	requests map[int64]*models.MentorshipRequest
	nextID   int64
}

func newFakeMentorshipRepo() *fakeMentorshipRepo {
	return &fakeMentorshipRepo{requests: map[int64]*models.MentorshipRequest{}, nextID: 1}
}

func (r *fakeMentorshipRepo) Create(_ context.Context, request *models.MentorshipRequest) (int64, error) {
	request.ID = r.nextID
	r.nextID++
	copied := *request
	r.requests[copied.ID] = &copied
	return copied.ID, nil
}

func (r *fakeMentorshipRepo) GetByID(_ context.Context, id int64) (*models.MentorshipRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("Request not found or not authorized")
	}
	copied := *request
	return &copied, nil
}

func (r *fakeMentorshipRepo) FindByAlumni(_ context.Context, alumniID int64) ([]models.MentorshipRequest, error) {
	result := []models.MentorshipRequest{}
	for _, request := range r.requests {
		if request.AlumniID == alumniID {
			result = append(result, *request)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakeMentorshipRepo) FindByStudent(_ context.Context, studentID int64) ([]models.MentorshipRequest, error) {
	result := []models.MentorshipRequest{}
	for _, request := range r.requests {
		if request.StudentID == studentID {
			result = append(result, *request)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakeMentorshipRepo) UpdateStatus(_ context.Context, id int64, status models.MentorshipStatus) (bool, error) {
	request, ok := r.requests[id]
	if !ok {
		return false, nil
	}
	if request.Status != models.MentorshipPending {
		return false, nil
	}
	request.Status = status
	return true, nil
}
