package services

import "taskhub/internal/models"

// Authorization is a pure policy: (action, subject, actor) in, an explicit
// decision out. Handlers evaluate it before every mutating operation.

const (
	ActionView   = "VIEW"
	ActionEdit   = "EDIT"
	ActionDelete = "DELETE"
)

type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}

func allow(reason string) Decision {
	return Decision{Allowed: true, Reason: reason}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// AuthorizeTask grants VIEW to any authenticated user (tasks share the
// listing's visibility) and EDIT/DELETE to the author or an admin.
func AuthorizeTask(action string, task *models.Task, actor *models.User) Decision {
	if actor == nil {
		return deny("no authenticated user")
	}
	if actor.IsAdmin() {
		return allow("admin has full access")
	}

	switch action {
	case ActionView:
		return allow("tasks are visible to authenticated users")
	case ActionEdit, ActionDelete:
		if task.AuthorID == actor.ID {
			return allow("actor is the task author")
		}
		return deny("only the author may modify a task")
	}

	return deny("unknown action")
}

// AuthorizeUser limits profile edits to the subject themselves or an admin.
func AuthorizeUser(action string, subject *models.User, actor *models.User) Decision {
	if actor == nil {
		return deny("no authenticated user")
	}
	if actor.IsAdmin() {
		return allow("admin has full access")
	}

	switch action {
	case ActionView:
		return allow("profiles are visible to authenticated users")
	case ActionEdit, ActionDelete:
		if subject.ID == actor.ID {
			return allow("actor is the subject")
		}
		return deny("only admins may modify other users")
	}

	return deny("unknown action")
}
