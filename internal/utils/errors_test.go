package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusToAppError(t *testing.T) {
	assert.Equal(t, ErrAuthRequired, HTTPStatusToAppError("list_posts", 401).Code)
	assert.Equal(t, ErrPermissionDenied, HTTPStatusToAppError("delete_post", 403).Code)
	assert.Equal(t, ErrConflictOrMissing, HTTPStatusToAppError("delete_post", 404).Code)
	assert.Equal(t, ErrConflictOrMissing, HTTPStatusToAppError("edit_post", 409).Code)
	assert.Equal(t, ErrConflictOrMissing, HTTPStatusToAppError("delete_comment", 410).Code)
	assert.Equal(t, ErrTransport, HTTPStatusToAppError("list_posts", 500).Code)
	assert.Equal(t, ErrTransport, HTTPStatusToAppError("list_posts", 502).Code)
}

func TestIsLocalRejection(t *testing.T) {
	assert.True(t, IsLocalRejection(NewValidationError("bad")))
	assert.True(t, IsLocalRejection(NewDuplicateSubmissionError("post")))
	assert.True(t, IsLocalRejection(NewAppError(ErrSubmissionInFlight, "busy", nil)))

	assert.False(t, IsLocalRejection(NewTransportError("list_posts", errors.New("boom"))))
	assert.False(t, IsLocalRejection(errors.New("plain")))
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(NewAuthRequiredError("create comment")))
	assert.False(t, IsAuthError(NewPermissionDeniedError("delete post")))
	assert.False(t, IsAuthError(nil))
}

func TestAppErrorMessage(t *testing.T) {
	plain := NewValidationError("Post title is required")
	assert.Equal(t, "Post title is required", plain.Error())

	wrapped := NewTransportError("list_posts", errors.New("connection refused"))
	assert.Contains(t, wrapped.Error(), "list_posts")
	assert.Contains(t, wrapped.Error(), "connection refused")
}
