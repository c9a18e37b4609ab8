package services

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/malik-shaik/DevHub/models"
	"github.com/malik-shaik/DevHub/store"
	"github.com/malik-shaik/DevHub/utils"
)

// PostStore is the slice of the persistence layer the post service needs.
// Mutate must apply fn and persist the result atomically.
type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	All(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id string) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	Mutate(ctx context.Context, id string, fn func(*models.Post) error) (*models.Post, error)
}

var (
	ErrPostNotFound  = utils.NewCustomError(http.StatusNotFound, "Post not found")
	ErrNotAuthorised = utils.NewCustomError(http.StatusUnauthorized, "User not authorised")
	ErrAlreadyLiked  = utils.NewCustomError(http.StatusBadRequest, "User already liked this post")
	ErrNotLiked      = utils.NewCustomError(http.StatusBadRequest, "User not liked this post")
)

type PostInput struct {
	Text string `json:"text" validate:"required"`
}

type PostService struct {
	posts PostStore
	users UserStore
}

func NewPostService(posts PostStore, users UserStore) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create stores a new post, snapshotting the author's current name and
// avatar into it.
func (s *PostService) Create(ctx context.Context, userID string, in PostInput) (*models.Post, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err == store.ErrNotFound {
		return nil, ErrUserNotFound
	}
	if err != nil {
		log.Printf("Error fetching user %s: %v", userID, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}

	post := &models.Post{
		Text:   in.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
		User:   userID,
		Likes:  []models.Like{},
		Date:   time.Now(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		log.Printf("Error creating post: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}
	return post, nil
}

// All returns every post, newest first.
func (s *PostService) All(ctx context.Context) ([]models.Post, error) {
	posts, err := s.posts.All(ctx)
	if err != nil {
		log.Printf("Error fetching posts: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err == store.ErrNotFound {
		return nil, ErrPostNotFound
	}
	if err != nil {
		log.Printf("Error fetching post %s: %v", id, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}
	return post, nil
}

// Delete removes a post; only its owner may do so.
func (s *PostService) Delete(ctx context.Context, userID, id string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err == store.ErrNotFound {
		return ErrPostNotFound
	}
	if err != nil {
		log.Printf("Error fetching post %s: %v", id, err)
		return utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}

	if post.User != userID {
		return ErrNotAuthorised
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		log.Printf("Error deleting post %s: %v", id, err)
		return utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}
	return nil
}

// Like prepends a like for the user; a second like by the same user is
// rejected. Returns the updated likes list.
func (s *PostService) Like(ctx context.Context, userID, postID string) ([]models.Like, error) {
	post, err := s.posts.Mutate(ctx, postID, func(p *models.Post) error {
		for _, like := range p.Likes {
			if like.User == userID {
				return ErrAlreadyLiked
			}
		}
		p.Likes = append([]models.Like{{User: userID}}, p.Likes...)
		return nil
	})
	if err != nil {
		return nil, s.mutateErr(err, postID)
	}
	return post.Likes, nil
}

// Unlike removes the user's like; absent likes are rejected. Returns the
// updated likes list.
func (s *PostService) Unlike(ctx context.Context, userID, postID string) ([]models.Like, error) {
	post, err := s.posts.Mutate(ctx, postID, func(p *models.Post) error {
		for i, like := range p.Likes {
			if like.User == userID {
				p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
				return nil
			}
		}
		return ErrNotLiked
	})
	if err != nil {
		return nil, s.mutateErr(err, postID)
	}
	return post.Likes, nil
}

func (s *PostService) mutateErr(err error, postID string) error {
	if err == store.ErrNotFound {
		return ErrPostNotFound
	}
	if customErr, ok := err.(*utils.CustomError); ok {
		return customErr
	}
	log.Printf("Error updating post %s: %v", postID, err)
	return utils.NewCustomError(http.StatusInternalServerError, "Server Error")
}
