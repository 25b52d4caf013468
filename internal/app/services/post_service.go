package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kadirhan/alumniport/internal/app/auth"
	"github.com/kadirhan/alumniport/internal/app/models"
	"github.com/kadirhan/alumniport/internal/app/models/dto"
	"github.com/kadirhan/alumniport/internal/app/repositories"
)

// PostService handles the feed: posts, likes and comments.
type PostService struct {
	postRepo repositories.IPostRepository
	logger   zerolog.Logger
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repositories.IPostRepository, logger zerolog.Logger) *PostService {
	return &PostService{postRepo: postRepo, logger: logger}
}

// Create authors a new post. Alumni only.
func (s *PostService) Create(ctx context.Context, actor *models.User, req *dto.CreatePostRequest) (*models.Post, error) {
	if err := auth.CanCreatePost(actor); err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID: actor.ID,
		Text:   req.Text,
		Image:  req.Image,
	}
	if _, err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	post.Author = actor
	post.Likes = []int64{}
	post.Comments = []models.Comment{}

	s.logger.Debug().Int64("postId", post.ID).Int64("userId", actor.ID).Msg("Post created")
	return post, nil
}

// GetFeed returns every post, newest first.
func (s *PostService) GetFeed(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.GetAll(ctx)
}

// GetByUser returns one author's posts, newest first.
func (s *PostService) GetByUser(ctx context.Context, userID int64) ([]models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID)
}

// ToggleLike flips the actor's membership in the post's like set and
// returns the updated post. The add and remove are single atomic
// statements, so two concurrent toggles by different users cannot lose
// each other's like.
func (s *PostService) ToggleLike(ctx context.Context, actor *models.User, postID int64) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.LikedBy(actor.ID) {
		if _, err := s.postRepo.RemoveLike(ctx, postID, actor.ID); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.postRepo.AddLike(ctx, postID, actor.ID); err != nil {
			return nil, err
		}
	}

	return s.postRepo.GetByID(ctx, postID)
}

// Comment appends a comment to a post and returns the updated post. The
// comment snapshots the actor's display name at write time.
func (s *PostService) Comment(ctx context.Context, actor *models.User, postID int64, req *dto.CommentRequest) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: post.ID,
		UserID: actor.ID,
		Name:   actor.Name,
		Text:   req.Text,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, postID)
}

// Delete removes a post. Allowed for the author and for institute admins
// moderating the feed.
func (s *PostService) Delete(ctx context.Context, actor *models.User, postID int64) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := auth.CanDeletePost(actor, post); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}
	s.logger.Info().Int64("postId", postID).Int64("actorId", actor.ID).Msg("Post deleted")
	return nil
}
