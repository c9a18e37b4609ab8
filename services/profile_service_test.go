package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrUpdateCreatesProfile(t *testing.T) {
	profiles := newFakeProfileStore()
	svc := NewProfileService(profiles)

	profile, err := svc.CreateOrUpdate(context.Background(), "user-1", ProfileInput{
		Status:  "Developer",
		Skills:  "Go, JavaScript ,  HTML",
		Company: "Acme",
		Youtube: "https://youtube.com/acme",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "user-1", profile.User)
	assert.Equal(t, "Developer", profile.Status)
	assert.Equal(t, []string{"Go", "JavaScript", "HTML"}, profile.Skills)
	assert.Equal(t, "Acme", profile.Company)
	assert.Equal(t, "https://youtube.com/acme", profile.Social.Youtube)
	assert.False(t, profile.Date.IsZero())
}

func TestCreateOrUpdateIsSparse(t *testing.T) {
	profiles := newFakeProfileStore()
	svc := NewProfileService(profiles)

	_, err := svc.CreateOrUpdate(context.Background(), "user-1", ProfileInput{
		Status: "Developer", Skills: "Go", Company: "Acme",
	})
	require.NoError(t, err)

	// Second write provides only a new status; everything else stays.
	profile, err := svc.CreateOrUpdate(context.Background(), "user-1", ProfileInput{
		Status: "Senior Developer",
	})
	require.NoError(t, err)

	assert.Equal(t, "Senior Developer", profile.Status)
	assert.Equal(t, []string{"Go"}, profile.Skills)
	assert.Equal(t, "Acme", profile.Company)

	// Still a single profile for the user.
	all, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMeWithoutProfile(t *testing.T) {
	svc := NewProfileService(newFakeProfileStore())

	_, err := svc.Me(context.Background(), "user-1")
	assert.Equal(t, ErrNoProfile, err)
}

func TestGetByUserNotFound(t *testing.T) {
	svc := NewProfileService(newFakeProfileStore())

	_, err := svc.GetByUser(context.Background(), "user-1")
	assert.Equal(t, ErrProfileNotFound, err)
}

func TestDeleteCascadesToUser(t *testing.T) {
	profiles := newFakeProfileStore()
	svc := NewProfileService(profiles)

	_, err := svc.CreateOrUpdate(context.Background(), "user-1", ProfileInput{
		Status: "Developer", Skills: "Go",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "user-1"))

	_, err = svc.Me(context.Background(), "user-1")
	assert.Equal(t, ErrNoProfile, err)
	assert.Equal(t, []string{"user-1"}, profiles.deletedUsers)
}

func TestExperienceAddDeleteRoundTrip(t *testing.T) {
	profiles := newFakeProfileStore()
	svc := NewProfileService(profiles)

	_, err := svc.CreateOrUpdate(context.Background(), "user-1", ProfileInput{
		Status: "Developer", Skills: "Go",
	})
	require.NoError(t, err)

	profile, err := svc.AddExperience(context.Background(), "user-1", ExperienceInput{
		Title: "Engineer", Company: "Acme", From: "2019-01-01",
	})
	require.NoError(t, err)
	require.Len(t, profile.Experience, 1)
	require.NotEmpty(t, profile.Experience[0].ID)

	profile, err = svc.DeleteExperience(context.Background(), "user-1", profile.Experience[0].ID)
	require.NoError(t, err)
	assert.Empty(t, profile.Experience)
}

func TestExperiencePrependOrder(t *testing.T) {
	profiles := newFakeProfileStore()
	svc := NewProfileService(profiles)

	_, err := svc.CreateOrUpdate(context.Background(), "user-1", ProfileInput{
		Status: "Developer", Skills: "Go",
	})
	require.NoError(t, err)

	_, err = svc.AddExperience(context.Background(), "user-1", ExperienceInput{
		Title: "Junior", Company: "Acme", From: "2015-01-01",
	})
	require.NoError(t, err)
	profile, err := svc.AddExperience(context.Background(), "user-1", ExperienceInput{
		Title: "Senior", Company: "Acme", From: "2019-01-01",
	})
	require.NoError(t, err)

	require.Len(t, profile.Experience, 2)
	assert.Equal(t, "Senior", profile.Experience[0].Title)
	assert.Equal(t, "Junior", profile.Experience[1].Title)
	assert.NotEqual(t, profile.Experience[0].ID, profile.Experience[1].ID)
}

func TestDeleteExperienceUnknownIDIsNoOp(t *testing.T) {
	profiles := newFakeProfileStore()
	svc := NewProfileService(profiles)

	_, err := svc.CreateOrUpdate(context.Background(), "user-1", ProfileInput{
		Status: "Developer", Skills: "Go",
	})
	require.NoError(t, err)
	_, err = svc.AddExperience(context.Background(), "user-1", ExperienceInput{
		Title: "Engineer", Company: "Acme", From: "2019-01-01",
	})
	require.NoError(t, err)

	profile, err := svc.DeleteExperience(context.Background(), "user-1", "no-such-id")
	require.NoError(t, err)
	assert.Len(t, profile.Experience, 1)
}

func TestAddExperienceWithoutProfile(t *testing.T) {
	svc := NewProfileService(newFakeProfileStore())

	_, err := svc.AddExperience(context.Background(), "user-1", ExperienceInput{
		Title: "Engineer", Company: "Acme", From: "2019-01-01",
	})
	assert.Equal(t, ErrNoProfile, err)
}

func TestEducationAddDeleteRoundTrip(t *testing.T) {
	profiles := newFakeProfileStore()
	svc := NewProfileService(profiles)

	_, err := svc.CreateOrUpdate(context.Background(), "user-1", ProfileInput{
		Status: "Developer", Skills: "Go",
	})
	require.NoError(t, err)

	profile, err := svc.AddEducation(context.Background(), "user-1", EducationInput{
		School: "State University", Degree: "BSc", From: "2010-09-01",
	})
	require.NoError(t, err)
	require.Len(t, profile.Education, 1)
	require.NotEmpty(t, profile.Education[0].ID)

	// Unknown id removes nothing.
	profile, err = svc.DeleteEducation(context.Background(), "user-1", "no-such-id")
	require.NoError(t, err)
	require.Len(t, profile.Education, 1)

	profile, err = svc.DeleteEducation(context.Background(), "user-1", profile.Education[0].ID)
	require.NoError(t, err)
	assert.Empty(t, profile.Education)
}
