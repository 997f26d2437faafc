package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amsa-mn/website-backend/internal/dto"
)

func TestBlogCreateDerivesSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlogService(db)

	blog, err := svc.Create(uuid.New(), &dto.CreateBlogRequest{
		Title:   "Hello, World! A First Post",
		Content: "body",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello-world-a-first-post", blog.Slug)

	got, err := svc.GetBySlug("hello-world-a-first-post")
	require.NoError(t, err)
	assert.Equal(t, blog.ID, got.ID)
}

func TestBlogCreateSlugConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlogService(db)
	authorID := uuid.New()

	_, err := svc.Create(authorID, &dto.CreateBlogRequest{Title: "Same Title", Content: "a"})
	require.NoError(t, err)

	// Different punctuation, same slug.
	_, err = svc.Create(authorID, &dto.CreateBlogRequest{Title: "Same: Title!", Content: "b"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestBlogUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlogService(db)

	blog, err := svc.Create(uuid.New(), &dto.CreateBlogRequest{Title: "Original", Content: "body"})
	require.NoError(t, err)

	content := "new body"
	updated, err := svc.Update(blog.ID, &dto.UpdateBlogRequest{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "original", updated.Slug)
	assert.Equal(t, "new body", updated.Content)
}

func TestBlogUpdateTitleConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlogService(db)
	authorID := uuid.New()

	_, err := svc.Create(authorID, &dto.CreateBlogRequest{Title: "First", Content: "a"})
	require.NoError(t, err)
	second, err := svc.Create(authorID, &dto.CreateBlogRequest{Title: "Second", Content: "b"})
	require.NoError(t, err)

	title := "First"
	_, err = svc.Update(second.ID, &dto.UpdateBlogRequest{Title: &title})
	assert.ErrorIs(t, err, ErrSlugTaken)

	// Re-saving a blog under its own title is not a conflict.
	title = "Second"
	_, err = svc.Update(second.ID, &dto.UpdateBlogRequest{Title: &title})
	assert.NoError(t, err)
}

func TestBlogDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlogService(db)

	blog, err := svc.Create(uuid.New(), &dto.CreateBlogRequest{Title: "Gone", Content: "soon"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(blog.ID))
	assert.ErrorIs(t, svc.Delete(blog.ID), ErrBlogNotFound)

	_, err = svc.GetBySlug("gone")
	assert.ErrorIs(t, err, ErrBlogNotFound)
}
