package checkin

import (
	"context"
	"errors"
	"testing"
)

type mockRepository struct {
	createFunc func(therapistID string, clientID int64, req CreateCheckInRequest) (*CheckIn, error)
}

func (m *mockRepository) Create(ctx context.Context, therapistID string, clientID int64, req CreateCheckInRequest) (*CheckIn, error) {
	if m.createFunc != nil {
		return m.createFunc(therapistID, clientID, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) ListForClient(ctx context.Context, therapistID string, clientID int64) ([]CheckIn, error) {
	return nil, errors.New("not implemented")
}

func TestCreateCheckIn_RatingBounds(t *testing.T) {
	service := NewService(&mockRepository{})
	ctx := context.Background()

	cases := []CreateCheckInRequest{
		{EnergyRating: 0, FocusRating: 5},
		{EnergyRating: 11, FocusRating: 5},
		{EnergyRating: 5, FocusRating: 0},
		{EnergyRating: 5, FocusRating: 11},
	}
	for _, req := range cases {
		if _, err := service.Create(ctx, "alice", 1, req); err != ErrInvalidRating {
			t.Errorf("Expected ErrInvalidRating for %+v, got: %v", req, err)
		}
	}
}

func TestCreateCheckIn_DefaultsDate(t *testing.T) {
	var gotDate string
	mockRepo := &mockRepository{
		createFunc: func(therapistID string, clientID int64, req CreateCheckInRequest) (*CheckIn, error) {
			gotDate = req.Date
			return &CheckIn{ID: 1, ClientID: clientID, Date: req.Date}, nil
		},
	}
	service := NewService(mockRepo)

	_, err := service.Create(context.Background(), "alice", 1, CreateCheckInRequest{EnergyRating: 7, FocusRating: 8})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if gotDate == "" {
		t.Error("Expected check-in date to default to today")
	}
}
