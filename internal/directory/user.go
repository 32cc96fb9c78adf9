package directory

import (
	"context"
	"fmt"
	"time"

	"github.com/coworkly/SpaceBooker/internal/domain"
)

type UserClient struct {
	client *client
}

func NewUserClient(baseURL string, timeout time.Duration) *UserClient {
	return &UserClient{client: newClient(baseURL, timeout)}
}

func (c *UserClient) Get(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := c.client.getJSON(ctx, "/api/users/"+id, domain.ErrUserNotFound, &user); err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}

	return &user, nil
}
