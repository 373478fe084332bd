package services_test

import (
	"context"
	"testing"

	"taskhub/internal/models"
	"taskhub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNoteSave_ContentIsOptional(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	content := "long body"
	note := &models.Note{Title: "With content", Content: &content}
	require.NoError(t, env.noteService.Save(ctx, note))
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)

	// Writing nil clears the body.
	note.Content = nil
	require.NoError(t, env.noteService.Save(ctx, note))

	reloaded, err := env.noteService.FindOneByID(ctx, note.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.Content)
	assert.Equal(t, "With content", reloaded.Title)
}

func TestNoteGetPaginatedList_FilteredByCategory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	category := env.mustCreateCategory(t, "Journal")
	other := env.mustCreateCategory(t, "Scratch")

	for i := 0; i < 2; i++ {
		note := &models.Note{Title: "Entry", CategoryID: &category.ID}
		require.NoError(t, env.noteService.Save(ctx, note))
	}
	uncategorized := &models.Note{Title: "Loose"}
	require.NoError(t, env.noteService.Save(ctx, uncategorized))
	strayID := other.ID
	stray := &models.Note{Title: "Stray", CategoryID: &strayID}
	require.NoError(t, env.noteService.Save(ctx, stray))

	page, err := env.noteService.GetPaginatedList(ctx, 1, services.RawFilters{CategoryID: category.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)
	for _, note := range page.Items {
		require.NotNil(t, note.CategoryID)
		assert.Equal(t, category.ID, *note.CategoryID)
	}

	// Unfiltered listing sees every note.
	all, err := env.noteService.GetPaginatedList(ctx, 1, services.RawFilters{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), all.TotalCount)
}

func TestNoteDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	note := &models.Note{Title: "Gone soon"}
	require.NoError(t, env.noteService.Save(ctx, note))
	require.NoError(t, env.noteService.Delete(ctx, note))

	_, err := env.noteService.FindOneByID(ctx, note.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
