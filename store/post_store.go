package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/malik-shaik/DevHub/models"
)

const postsCollection = "posts"

type PostStore struct {
	client *firestore.Client
}

func NewPostStore(client *firestore.Client) *PostStore {
	return &PostStore{client: client}
}

// Create persists a new post and fills in the store-assigned id.
func (s *PostStore) Create(ctx context.Context, post *models.Post) error {
	ref := s.client.Collection(postsCollection).NewDoc()
	if _, err := ref.Create(ctx, post); err != nil {
		return err
	}
	post.ID = ref.ID
	return nil
}

// All returns every post, newest first.
func (s *PostStore) All(ctx context.Context) ([]models.Post, error) {
	iter := s.client.Collection(postsCollection).OrderBy("date", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	posts := []models.Post{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var post models.Post
		if err := doc.DataTo(&post); err != nil {
			return nil, err
		}
		post.ID = doc.Ref.ID
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *PostStore) FindByID(ctx context.Context, id string) (*models.Post, error) {
	if !validDocID(id) {
		return nil, ErrNotFound
	}

	doc, err := s.client.Collection(postsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var post models.Post
	if err := doc.DataTo(&post); err != nil {
		return nil, err
	}
	post.ID = doc.Ref.ID
	return &post, nil
}

func (s *PostStore) Delete(ctx context.Context, id string) error {
	if !validDocID(id) {
		return ErrNotFound
	}
	_, err := s.client.Collection(postsCollection).Doc(id).Delete(ctx)
	return err
}

// Mutate loads the post, applies fn and writes the result back, all in
// one transaction. An error from fn aborts the write and is returned
// unchanged, so business-rule failures pass through intact.
func (s *PostStore) Mutate(ctx context.Context, id string, fn func(*models.Post) error) (*models.Post, error) {
	if !validDocID(id) {
		return nil, ErrNotFound
	}

	ref := s.client.Collection(postsCollection).Doc(id)
	var post models.Post
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}
		if err := doc.DataTo(&post); err != nil {
			return err
		}
		post.ID = doc.Ref.ID

		if err := fn(&post); err != nil {
			return err
		}
		return tx.Set(ref, &post)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}
