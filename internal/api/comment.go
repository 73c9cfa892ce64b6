// internal/api/comment.go
//
// Comment service collaborator.
//

package api

import (
	"context"
	"fmt"
)

const commentService = "comment"

// CommentClient talks to the comment service.
type CommentClient struct {
	c *Client
}

// NewCommentClient wraps the shared transport.
func NewCommentClient(c *Client) *CommentClient { return &CommentClient{c: c} }

// List returns all comments on a place, oldest first as the backend sends
// them.
func (cc *CommentClient) List(ctx context.Context, placeID int64) ([]Comment, error) {
	var comments []Comment
	err := cc.c.getJSON(ctx, commentService,
		fmt.Sprintf("/comment-service/comment/getAllByPlaceId/%d", placeID), "", &comments)
	return comments, err
}

// Post publishes a new comment.  Requires a bearer token.
func (cc *CommentClient) Post(ctx context.Context, sub CommentSubmission, token string) error {
	return cc.c.postJSON(ctx, commentService, "/comment-service/comment", token, sub, nil)
}
