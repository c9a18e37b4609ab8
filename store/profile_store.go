package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/malik-shaik/DevHub/models"
)

const profilesCollection = "profiles"

type ProfileStore struct {
	client *firestore.Client
}

func NewProfileStore(client *firestore.Client) *ProfileStore {
	return &ProfileStore{client: client}
}

// Create persists a new profile and fills in the store-assigned id.
func (s *ProfileStore) Create(ctx context.Context, profile *models.Profile) error {
	ref := s.client.Collection(profilesCollection).NewDoc()
	if _, err := ref.Create(ctx, profile); err != nil {
		return err
	}
	profile.ID = ref.ID
	return nil
}

func (s *ProfileStore) All(ctx context.Context) ([]models.Profile, error) {
	iter := s.client.Collection(profilesCollection).Documents(ctx)
	defer iter.Stop()

	profiles := []models.Profile{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var profile models.Profile
		if err := doc.DataTo(&profile); err != nil {
			return nil, err
		}
		profile.ID = doc.Ref.ID
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (s *ProfileStore) FindByUser(ctx context.Context, userID string) (*models.Profile, error) {
	iter := s.client.Collection(profilesCollection).Where("user", "==", userID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, err
	}
	profile.ID = doc.Ref.ID
	return &profile, nil
}

// MutateByUser loads the user's profile, applies fn and writes the result
// back in one transaction. Returns ErrNotFound when the user has no
// profile; errors from fn abort the write and pass through unchanged.
func (s *ProfileStore) MutateByUser(ctx context.Context, userID string, fn func(*models.Profile) error) (*models.Profile, error) {
	var profile models.Profile
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		iter := tx.Documents(s.client.Collection(profilesCollection).Where("user", "==", userID).Limit(1))
		defer iter.Stop()

		doc, err := iter.Next()
		if err == iterator.Done {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := doc.DataTo(&profile); err != nil {
			return err
		}
		profile.ID = doc.Ref.ID

		if err := fn(&profile); err != nil {
			return err
		}
		return tx.Set(doc.Ref, &profile)
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteWithUser removes the user's profile and the user document in a
// single transaction, so a failed cascade cannot leave an orphaned user.
func (s *ProfileStore) DeleteWithUser(ctx context.Context, userID string) error {
	if !validDocID(userID) {
		return ErrNotFound
	}

	userRef := s.client.Collection(usersCollection).Doc(userID)
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		iter := tx.Documents(s.client.Collection(profilesCollection).Where("user", "==", userID).Limit(1))
		defer iter.Stop()

		doc, err := iter.Next()
		if err != nil && err != iterator.Done {
			return err
		}
		if err == nil {
			if err := tx.Delete(doc.Ref); err != nil {
				return err
			}
		}
		return tx.Delete(userRef)
	})
}
