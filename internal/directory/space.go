package directory

import (
	"context"
	"fmt"
	"time"

	"github.com/coworkly/SpaceBooker/internal/domain"
)

type SpaceClient struct {
	client *client
}

func NewSpaceClient(baseURL string, timeout time.Duration) *SpaceClient {
	return &SpaceClient{client: newClient(baseURL, timeout)}
}

func (c *SpaceClient) Get(ctx context.Context, id string) (*domain.Space, error) {
	var space domain.Space
	if err := c.client.getJSON(ctx, "/api/spaces/"+id, domain.ErrSpaceNotFound, &space); err != nil {
		return nil, fmt.Errorf("get space %s: %w", id, err)
	}

	return &space, nil
}
