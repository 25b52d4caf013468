package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles every repository for dependency injection.
type Repositories struct {
	UserRepository       *UserRepository
	PostRepository       *PostRepository
	JobRepository        *JobRepository
	EventRepository      *EventRepository
	MentorshipRepository *MentorshipRepository
}

// NewRepositories creates all repositories sharing one pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		PostRepository:       NewPostRepository(db),
		JobRepository:        NewJobRepository(db),
		EventRepository:      NewEventRepository(db),
		MentorshipRepository: NewMentorshipRepository(db),
	}
}
