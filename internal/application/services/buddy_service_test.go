package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/circleage/backend/internal/application/services"
	"github.com/circleage/backend/internal/domain/entities"
)

func TestBuddyService_Match_RanksBySharedInterests(t *testing.T) {
	repo := &mockBuddyRepo{}
	users := &mockUserRepo{}
	service := services.NewBuddyService(repo, users)

	repo.On("GetByUser", mock.Anything, "user-1").
		Return(&entities.BuddyProfile{
			UserID:        "user-1",
			Interests:     []string{"Tai Chi", "Gardening", "Mahjong"},
			PreferredArea: "Toa Payoh",
		}, nil)

	repo.On("ListActiveExcept", mock.Anything, "user-1").
		Return([]*entities.BuddyProfile{
			{UserID: "user-2", Interests: []string{"gardening"}, PreferredArea: "Bedok"},
			{UserID: "user-3", Interests: []string{"tai chi", "mahjong"}, PreferredArea: "toa payoh"},
			{UserID: "user-4", Interests: []string{"chess"}, PreferredArea: "Toa Payoh"},
			{UserID: "user-5", Interests: []string{"photography"}},
		}, nil)

	users.On("GetByID", mock.Anything, "user-2").Return(&entities.User{ID: "user-2", Name: "Ben"}, nil)
	users.On("GetByID", mock.Anything, "user-3").Return(&entities.User{ID: "user-3", Name: "Mei"}, nil)
	users.On("GetByID", mock.Anything, "user-4").Return(&entities.User{ID: "user-4", Name: "Raj"}, nil)

	matches, err := service.Match(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, matches, 3)

	// Two shared interests plus the area bonus.
	assert.Equal(t, "user-3", matches[0].UserID)
	assert.Equal(t, 25, matches[0].Score)
	assert.ElementsMatch(t, []string{"tai chi", "mahjong"}, matches[0].SharedInterests)

	assert.Equal(t, "user-2", matches[1].UserID)
	assert.Equal(t, 10, matches[1].Score)

	// Area-only match still qualifies.
	assert.Equal(t, "user-4", matches[2].UserID)
	assert.Equal(t, 5, matches[2].Score)
	assert.Empty(t, matches[2].SharedInterests)
}

func TestBuddyService_Match_NoCandidates(t *testing.T) {
	repo := &mockBuddyRepo{}
	users := &mockUserRepo{}
	service := services.NewBuddyService(repo, users)

	repo.On("GetByUser", mock.Anything, "user-1").
		Return(&entities.BuddyProfile{UserID: "user-1", Interests: []string{"Tai Chi"}}, nil)
	repo.On("ListActiveExcept", mock.Anything, "user-1").
		Return([]*entities.BuddyProfile{}, nil)

	matches, err := service.Match(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Empty(t, matches)
}
