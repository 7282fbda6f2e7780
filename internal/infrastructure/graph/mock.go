package graph

import (
	"context"

	"github.com/rs/zerolog/log"
)

// MockClient logs calls instead of reaching a graph service.
// Used in development when no graph service is running.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) CreateUser(ctx context.Context, req CreateUserRequest) error {
	log.Info().
		Int64("user_id", req.UserID).
		Str("user_name", req.UserName).
		Msg("[MOCK] graph user created")
	return nil
}

func (m *MockClient) DeleteUser(ctx context.Context, userID int64) error {
	log.Info().
		Int64("user_id", userID).
		Msg("[MOCK] graph user deleted")
	return nil
}
