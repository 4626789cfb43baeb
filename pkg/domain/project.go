package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectID uniquely identifies a project.
type ProjectID uuid.UUID

func (id ProjectID) String() string { return uuid.UUID(id).String() }

// Project owns scan runs. Mutations of a run are authorized only through its project.
type Project struct {
	ID      ProjectID `json:"id"`
	OwnerID UserID    `json:"ownerId"`
	Name    string    `json:"name"`

	// TargetURL is the site the project's runs scan, in NormalizeTargetURL form.
	TargetURL string `json:"targetUrl"`

	CreatedAt time.Time `json:"createdAt"`
}

// OwnedBy reports whether the given user owns the project.
func (p Project) OwnedBy(userID UserID) bool {
	return p.OwnerID == userID
}
