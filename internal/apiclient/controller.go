package apiclient

import (
	"context"

	"brew_console/internal/model"
)

// Messages drains the controller's queued messages.
func (c *Client) Messages(ctx context.Context) ([]model.Message, error) {
	return GetJSON[[]model.Message](ctx, c, "/messages")
}
