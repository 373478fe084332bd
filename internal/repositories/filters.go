package repositories

import "taskhub/internal/models"

// Filters carry resolved entities, never raw ids. Resolving an id to an
// entity happens one layer up, in the services, so query construction here
// stays free of store lookups.

type TaskFilters struct {
	Category *models.Category
}

type NoteFilters struct {
	Category *models.Category
}
