package services

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/malik-shaik/DevHub/models"
	"github.com/malik-shaik/DevHub/store"
	"github.com/malik-shaik/DevHub/utils"
)

// ProfileStore is the slice of the persistence layer the profile service
// needs. MutateByUser must apply fn and persist atomically; DeleteWithUser
// must remove the profile and its owning user as one unit.
type ProfileStore interface {
	Create(ctx context.Context, profile *models.Profile) error
	All(ctx context.Context) ([]models.Profile, error)
	FindByUser(ctx context.Context, userID string) (*models.Profile, error)
	MutateByUser(ctx context.Context, userID string, fn func(*models.Profile) error) (*models.Profile, error)
	DeleteWithUser(ctx context.Context, userID string) error
}

var (
	ErrNoProfile       = utils.NewCustomError(http.StatusBadRequest, "There is no profile for this user")
	ErrProfileNotFound = utils.NewCustomError(http.StatusBadRequest, "Profile not found.")
)

type ProfileInput struct {
	Status         string `json:"status" validate:"required"`
	Skills         string `json:"skills" validate:"required"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Githubusername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

type ExperienceInput struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location"`
	From        string `json:"from" validate:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type EducationInput struct {
	School       string `json:"school" validate:"required"`
	Degree       string `json:"degree" validate:"required"`
	Fieldofstudy string `json:"fieldofstudy"`
	From         string `json:"from" validate:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

type ProfileService struct {
	profiles ProfileStore
}

func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Me returns the authenticated user's own profile.
func (s *ProfileService) Me(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profiles.FindByUser(ctx, userID)
	if err == store.ErrNotFound {
		return nil, ErrNoProfile
	}
	if err != nil {
		log.Printf("Error fetching profile for user %s: %v", userID, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}
	return profile, nil
}

// GetByUser is the public profile lookup.
func (s *ProfileService) GetByUser(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profiles.FindByUser(ctx, userID)
	if err == store.ErrNotFound {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		log.Printf("Error fetching profile for user %s: %v", userID, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}
	return profile, nil
}

func (s *ProfileService) All(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.profiles.All(ctx)
	if err != nil {
		log.Printf("Error fetching profiles: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}
	return profiles, nil
}

// CreateOrUpdate applies the provided fields to the user's profile,
// creating it first if none exists. Only provided fields overwrite.
func (s *ProfileService) CreateOrUpdate(ctx context.Context, userID string, in ProfileInput) (*models.Profile, error) {
	apply := func(p *models.Profile) error {
		if in.Company != "" {
			p.Company = in.Company
		}
		if in.Website != "" {
			p.Website = in.Website
		}
		if in.Location != "" {
			p.Location = in.Location
		}
		if in.Bio != "" {
			p.Bio = in.Bio
		}
		if in.Status != "" {
			p.Status = in.Status
		}
		if in.Githubusername != "" {
			p.Githubusername = in.Githubusername
		}
		if in.Skills != "" {
			p.Skills = splitSkills(in.Skills)
		}
		if in.Youtube != "" {
			p.Social.Youtube = in.Youtube
		}
		if in.Twitter != "" {
			p.Social.Twitter = in.Twitter
		}
		if in.Facebook != "" {
			p.Social.Facebook = in.Facebook
		}
		if in.Linkedin != "" {
			p.Social.Linkedin = in.Linkedin
		}
		if in.Instagram != "" {
			p.Social.Instagram = in.Instagram
		}
		return nil
	}

	profile, err := s.profiles.MutateByUser(ctx, userID, apply)
	if err == store.ErrNotFound {
		profile = &models.Profile{
			User:       userID,
			Skills:     []string{},
			Experience: []models.Experience{},
			Education:  []models.Education{},
			Date:       time.Now(),
		}
		apply(profile)
		if err := s.profiles.Create(ctx, profile); err != nil {
			log.Printf("Error creating profile: %v", err)
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Server Error")
		}
		return profile, nil
	}
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}
	return profile, nil
}

// Delete removes the profile and its owning user in one unit.
func (s *ProfileService) Delete(ctx context.Context, userID string) error {
	err := s.profiles.DeleteWithUser(ctx, userID)
	if err != nil && err != store.ErrNotFound {
		log.Printf("Error deleting profile for user %s: %v", userID, err)
		return utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}
	return nil
}

// AddExperience prepends a new experience entry with a generated id.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, in ExperienceInput) (*models.Profile, error) {
	return s.mutate(ctx, userID, func(p *models.Profile) error {
		exp := models.Experience{
			ID:          uuid.NewString(),
			Title:       in.Title,
			Company:     in.Company,
			Location:    in.Location,
			From:        in.From,
			To:          in.To,
			Current:     in.Current,
			Description: in.Description,
		}
		p.Experience = append([]models.Experience{exp}, p.Experience...)
		return nil
	})
}

// DeleteExperience removes the entry with the given id; an unknown id
// removes nothing and is not an error.
func (s *ProfileService) DeleteExperience(ctx context.Context, userID, expID string) (*models.Profile, error) {
	return s.mutate(ctx, userID, func(p *models.Profile) error {
		for i, exp := range p.Experience {
			if exp.ID == expID {
				p.Experience = append(p.Experience[:i], p.Experience[i+1:]...)
				break
			}
		}
		return nil
	})
}

// AddEducation prepends a new education entry with a generated id.
func (s *ProfileService) AddEducation(ctx context.Context, userID string, in EducationInput) (*models.Profile, error) {
	return s.mutate(ctx, userID, func(p *models.Profile) error {
		edu := models.Education{
			ID:           uuid.NewString(),
			School:       in.School,
			Degree:       in.Degree,
			Fieldofstudy: in.Fieldofstudy,
			From:         in.From,
			To:           in.To,
			Current:      in.Current,
			Description:  in.Description,
		}
		p.Education = append([]models.Education{edu}, p.Education...)
		return nil
	})
}

// DeleteEducation removes the entry with the given id; unknown ids are a
// no-op.
func (s *ProfileService) DeleteEducation(ctx context.Context, userID, eduID string) (*models.Profile, error) {
	return s.mutate(ctx, userID, func(p *models.Profile) error {
		for i, edu := range p.Education {
			if edu.ID == eduID {
				p.Education = append(p.Education[:i], p.Education[i+1:]...)
				break
			}
		}
		return nil
	})
}

func (s *ProfileService) mutate(ctx context.Context, userID string, fn func(*models.Profile) error) (*models.Profile, error) {
	profile, err := s.profiles.MutateByUser(ctx, userID, fn)
	if err == store.ErrNotFound {
		return nil, ErrNoProfile
	}
	if err != nil {
		log.Printf("Error updating profile for user %s: %v", userID, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}
	return profile, nil
}

func splitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
