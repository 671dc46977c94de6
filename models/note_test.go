package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNoteFromJSON(t *testing.T) {
	data := `{
		"id": "550e8400-e89b-41d4-a716-446655440000",
		"user_id": "550e8400-e89b-41d4-a716-446655440001",
		"folder_id": "550e8400-e89b-41d4-a716-446655440002",
		"title": "Test Note",
		"content": "Some content",
		"tags": [{"id": "550e8400-e89b-41d4-a716-446655440003", "name": "urgent"}]
	}`

	var note Note
	assert.NoError(t, note.FromJSON([]byte(data)))
	assert.Equal(t, "Test Note", note.Title)
	assert.Equal(t, "Some content", note.Content)
	assert.NotNil(t, note.FolderID)
	assert.Equal(t, "550e8400-e89b-41d4-a716-446655440002", note.FolderID.String())
	assert.Len(t, note.Tags, 1)
	assert.Equal(t, "urgent", note.Tags[0].Name)
}

func TestNoteWithoutFolder(t *testing.T) {
	data := `{"title": "Loose Note", "folder_id": null}`

	var note Note
	assert.NoError(t, note.FromJSON([]byte(data)))
	assert.Nil(t, note.FolderID)

	// An unfiled note serializes folder_id as an explicit null
	out, err := note.ToJSON()
	assert.NoError(t, err)

	var raw map[string]interface{}
	assert.NoError(t, json.Unmarshal(out, &raw))
	value, present := raw["folder_id"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestNoteToJSON(t *testing.T) {
	folderID := uuid.New()
	note := Note{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		FolderID: &folderID,
		Title:    "Test Note",
		Tags:     []Tag{{ID: uuid.New(), Name: "urgent"}},
	}

	data, err := note.ToJSON()
	assert.NoError(t, err)

	var result Note
	assert.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, note.ID, result.ID)
	assert.Equal(t, note.Title, result.Title)
	assert.Equal(t, folderID, *result.FolderID)
	assert.Len(t, result.Tags, 1)
}
