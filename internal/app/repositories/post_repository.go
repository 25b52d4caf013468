package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kadirhan/alumniport/internal/app/models"
	"github.com/kadirhan/alumniport/internal/pkg/apperrors"
)

// IPostRepository defines the post store operations consumed by the post
// service.
type IPostRepository interface {
	Create(ctx context.Context, post *models.Post) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Post, error)
	AddLike(ctx context.Context, postID, userID int64) (bool, error)
	RemoveLike(ctx context.Context, postID, userID int64) (bool, error)
	AddComment(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id int64) error
}

// PostRepository handles database operations for posts, likes and comments.
type PostRepository struct {
	db *pgxpool.Pool
}

var _ IPostRepository = (*PostRepository)(nil)

// NewPostRepository creates a new PostRepository.
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post.
func (r *PostRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO posts (user_id, text, image)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		post.UserID, post.Text, post.Image).Scan(&id, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating post: %w", err)
	}
	post.ID = id
	return id, nil
}

// GetByID retrieves a single post with its like set and comments.
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	post := &models.Post{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, text, image, created_at, updated_at
		FROM posts WHERE id = $1`, id).Scan(
		&post.ID, &post.UserID, &post.Text, &post.Image, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("Post not found")
		}
		return nil, fmt.Errorf("error getting post: %w", err)
	}

	posts := []models.Post{*post}
	if err := r.attachLikesAndComments(ctx, posts); err != nil {
		return nil, err
	}
	return &posts[0], nil
}

// GetAll returns every post, newest first, with the author resolved.
func (r *PostRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	return r.find(ctx, `
		SELECT p.id, p.user_id, p.text, p.image, p.created_at, p.updated_at,
			u.name, u.role, u.headline, u.profile_picture, u.company, u.job_title
		FROM posts p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC`)
}

// GetByUserID returns one author's posts, newest first.
func (r *PostRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Post, error) {
	return r.find(ctx, `
		SELECT p.id, p.user_id, p.text, p.image, p.created_at, p.updated_at,
			u.name, u.role, u.headline, u.profile_picture, u.company, u.job_title
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC`, userID)
}

func (r *PostRepository) find(ctx context.Context, query string, args ...any) ([]models.Post, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		author := &models.User{}
		err := rows.Scan(
			&post.ID, &post.UserID, &post.Text, &post.Image, &post.CreatedAt, &post.UpdatedAt,
			&author.Name, &author.Role, &author.Profile.Headline, &author.Profile.ProfilePicture,
			&author.Profile.Company, &author.Profile.JobTitle)
		if err != nil {
			return nil, fmt.Errorf("error scanning post: %w", err)
		}
		author.ID = post.UserID
		post.Author = author
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	if err := r.attachLikesAndComments(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// attachLikesAndComments loads the like sets and comment sequences for a
// batch of posts with two queries instead of one pair per post.
func (r *PostRepository) attachLikesAndComments(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]int64, len(posts))
	index := make(map[int64]*models.Post, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
		index[posts[i].ID] = &posts[i]
		posts[i].Likes = []int64{}
		posts[i].Comments = []models.Comment{}
	}

	likeRows, err := r.db.Query(ctx, `
		SELECT post_id, user_id FROM post_likes WHERE post_id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("error loading likes: %w", err)
	}
	defer likeRows.Close()
	for likeRows.Next() {
		var postID, userID int64
		if err := likeRows.Scan(&postID, &userID); err != nil {
			return fmt.Errorf("error scanning like: %w", err)
		}
		if post, ok := index[postID]; ok {
			post.Likes = append(post.Likes, userID)
		}
	}
	if err := likeRows.Err(); err != nil {
		return fmt.Errorf("error iterating likes: %w", err)
	}

	commentRows, err := r.db.Query(ctx, `
		SELECT id, post_id, user_id, name, text, created_at
		FROM post_comments
		WHERE post_id = ANY($1)
		ORDER BY created_at DESC, id DESC`, ids)
	if err != nil {
		return fmt.Errorf("error loading comments: %w", err)
	}
	defer commentRows.Close()
	for commentRows.Next() {
		var comment models.Comment
		if err := commentRows.Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.Name, &comment.Text, &comment.CreatedAt); err != nil {
			return fmt.Errorf("error scanning comment: %w", err)
		}
		if post, ok := index[comment.PostID]; ok {
			post.Comments = append(post.Comments, comment)
		}
	}
	if err := commentRows.Err(); err != nil {
		return fmt.Errorf("error iterating comments: %w", err)
	}

	return nil
}

// AddLike adds userID to the post's like set. Returns false when the user
// already liked the post; the insert is a no-op in that case.
func (r *PostRepository) AddLike(ctx context.Context, postID, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, postID, userID)
	if err != nil {
		return false, fmt.Errorf("error adding like: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// RemoveLike removes userID from the post's like set. Returns false when
// there was nothing to remove.
func (r *PostRepository) RemoveLike(ctx context.Context, postID, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return false, fmt.Errorf("error removing like: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// AddComment appends a comment; listing returns newest first.
func (r *PostRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO post_comments (post_id, user_id, name, text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		comment.PostID, comment.UserID, comment.Name, comment.Text).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("error adding comment: %w", err)
	}
	return nil
}

// Delete removes a post; likes and comments go with it via cascade.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Post not found")
	}
	return nil
}
