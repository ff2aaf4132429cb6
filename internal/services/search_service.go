package services

import (
	"context"
	"strings"

	"rms-backend/internal/models"
	"rms-backend/internal/policy"
	"rms-backend/internal/repositories"
)

// searchLimit caps each result category.
const searchLimit = 5

// SearchService runs the cross-entity text search. Every category is first
// restricted by the same visibility rules as the listing endpoints, then
// truncated.
type SearchService struct {
	Users       *repositories.UserRepository
	Rooms       *repositories.RoomRepository
	Assignments *repositories.AssignmentRepository
	Payments    *repositories.PaymentRepository
}

func NewSearchService(users *repositories.UserRepository, rooms *repositories.RoomRepository, assignments *repositories.AssignmentRepository, payments *repositories.PaymentRepository) *SearchService {
	return &SearchService{Users: users, Rooms: rooms, Assignments: assignments, Payments: payments}
}

func (s *SearchService) Global(ctx context.Context, actor *models.User, query string) (*models.SearchResult, error) {
	result := &models.SearchResult{
		Rooms:    []models.Room{},
		Users:    []models.User{},
		Payments: []models.Payment{},
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || actor == nil {
		return result, nil
	}

	rooms, err := s.Rooms.All(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := s.Assignments.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range policy.VisibleRooms(actor, rooms, assignments) {
		if contains(r.RoomNumber, q) || contains(r.Building, q) || contains(r.Floor, q) {
			result.Rooms = append(result.Rooms, r)
			if len(result.Rooms) == searchLimit {
				break
			}
		}
	}

	if policy.IsAdmin(actor) {
		users, err := s.Users.All(ctx)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			if contains(u.FullName, q) || contains(u.Username, q) {
				result.Users = append(result.Users, u)
				if len(result.Users) == searchLimit {
					break
				}
			}
		}
	}

	payments, err := s.Payments.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range policy.VisiblePayments(actor, payments) {
		if contains(p.RoomNumber, q) || contains(p.RecordedBy, q) {
			result.Payments = append(result.Payments, p)
			if len(result.Payments) == searchLimit {
				break
			}
		}
	}

	return result, nil
}

func contains(haystack, loweredNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), loweredNeedle)
}
