package skinsrestorer

import (
	"context"

	"github.com/google/uuid"
)

// SkinProperty is the textures property SkinsRestorer assigns to a player.
// Value holds the base64 encoded textures payload in the Mojang format.
type SkinProperty struct {
	Value     string `json:"value"`
	Signature string `json:"signature,omitempty"`
}

type PlayerStorage interface {
	// GetSkinOfPlayer must return nil without an error when no skin is stored for the player
	GetSkinOfPlayer(ctx context.Context, playerUuid uuid.UUID) (*SkinProperty, error)
}
