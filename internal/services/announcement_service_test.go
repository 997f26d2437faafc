package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amsa-mn/website-backend/internal/dto"
)

func TestAnnouncementCreateDefaultsPublishedAt(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnnouncementService(db)

	before := time.Now().Add(-time.Second)
	a, err := svc.Create(uuid.New(), &dto.CreateAnnouncementRequest{Title: "News", Body: "Body"})
	require.NoError(t, err)
	assert.True(t, a.PublishedAt.After(before))
}

func TestAnnouncementListOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnnouncementService(db)
	authorID := uuid.New()

	older := time.Now().Add(-48 * time.Hour)
	newer := time.Now().Add(-1 * time.Hour)

	_, err := svc.Create(authorID, &dto.CreateAnnouncementRequest{Title: "Old", Body: "b", PublishedAt: &older})
	require.NoError(t, err)
	_, err = svc.Create(authorID, &dto.CreateAnnouncementRequest{Title: "New", Body: "b", PublishedAt: &newer})
	require.NoError(t, err)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "New", list[0].Title)
	assert.Equal(t, "Old", list[1].Title)
}

func TestAnnouncementUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnnouncementService(db)

	a, err := svc.Create(uuid.New(), &dto.CreateAnnouncementRequest{Title: "Original", Body: "body"})
	require.NoError(t, err)

	body := "<script>x</script>updated"
	updated, err := svc.Update(a.ID, &dto.UpdateAnnouncementRequest{Body: &body})
	require.NoError(t, err)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "updated", updated.Body)
}

func TestAnnouncementDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnnouncementService(db)

	assert.ErrorIs(t, svc.Delete(uuid.New()), ErrAnnouncementNotFound)
}
