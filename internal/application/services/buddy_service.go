package services

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/repositories"
)

// Scoring weights for buddy matching
const (
	sharedInterestScore = 10
	sameAreaBonus       = 5
)

// BuddyService matches users by shared interests and preferred area
type BuddyService struct {
	repo  repositories.BuddyRepository
	users repositories.UserRepository
}

// NewBuddyService creates a new buddy-matching service
func NewBuddyService(repo repositories.BuddyRepository, users repositories.UserRepository) *BuddyService {
	return &BuddyService{repo: repo, users: users}
}

// Upsert creates or replaces a user's matching profile
func (s *BuddyService) Upsert(ctx context.Context, profile *entities.BuddyProfile) error {
	profile.IsActive = true
	return s.repo.Upsert(ctx, profile)
}

// GetByUser retrieves a user's matching profile
func (s *BuddyService) GetByUser(ctx context.Context, userID string) (*entities.BuddyProfile, error) {
	return s.repo.GetByUser(ctx, userID)
}

// Deactivate opts a user out of matching
func (s *BuddyService) Deactivate(ctx context.Context, userID string) error {
	return s.repo.Deactivate(ctx, userID)
}

// Match ranks other active profiles against the user's: each shared
// interest scores 10, a matching preferred area adds 5. Candidates with
// a zero score are dropped.
func (s *BuddyService) Match(ctx context.Context, userID string) ([]*entities.BuddyMatch, error) {
	own, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.repo.ListActiveExcept(ctx, userID)
	if err != nil {
		return nil, err
	}

	ownInterests := make(map[string]struct{}, len(own.Interests))
	for _, interest := range own.Interests {
		ownInterests[strings.ToLower(interest)] = struct{}{}
	}

	var matches []*entities.BuddyMatch
	for _, candidate := range candidates {
		var shared []string
		for _, interest := range candidate.Interests {
			if _, ok := ownInterests[strings.ToLower(interest)]; ok {
				shared = append(shared, interest)
			}
		}

		score := len(shared) * sharedInterestScore
		if own.PreferredArea != "" && strings.EqualFold(own.PreferredArea, candidate.PreferredArea) {
			score += sameAreaBonus
		}
		if score == 0 {
			continue
		}

		match := &entities.BuddyMatch{
			UserID:          candidate.UserID,
			SharedInterests: shared,
			Score:           score,
		}
		if user, err := s.users.GetByID(ctx, candidate.UserID); err == nil {
			match.Name = user.Name
		} else {
			log.Warn().Err(err).Str("user_id", candidate.UserID).Msg("Failed to resolve match name")
		}
		matches = append(matches, match)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Name < matches[j].Name
	})

	return matches, nil
}
