package skins

import "github.com/google/uuid"

// Identity is the player reference a skin is resolved for.
// Name is best-effort: when the host doesn't know the player's name,
// the string form of the Id is used instead.
type Identity struct {
	Id   uuid.UUID
	Name string
}

func NewIdentity(id uuid.UUID, name string) Identity {
	if name == "" {
		name = id.String()
	}

	return Identity{
		Id:   id,
		Name: name,
	}
}
