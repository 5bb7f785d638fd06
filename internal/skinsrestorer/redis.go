package skinsrestorer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mediocregopher/radix/v4"
)

const playerSkinsKey = "skinsrestorer:player-skins"

// Redis reads the SkinsRestorer player skins mirrored into a Redis hash:
// the field is the player's uuid, the value is the JSON encoded SkinProperty.
type Redis struct {
	client radix.Client
}

func NewRedis(ctx context.Context, addr string, poolSize int) (*Redis, error) {
	client, err := (radix.PoolConfig{Size: poolSize}).New(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Redis{
		client: client,
	}, nil
}

func (r *Redis) GetSkinOfPlayer(ctx context.Context, playerUuid uuid.UUID) (*SkinProperty, error) {
	var encodedResult []byte
	err := r.client.Do(ctx, radix.Cmd(&encodedResult, "HGET", playerSkinsKey, normalizeUuid(playerUuid)))
	if err != nil {
		return nil, err
	}

	if len(encodedResult) == 0 {
		return nil, nil
	}

	var property *SkinProperty
	err = json.Unmarshal(encodedResult, &property)
	if err != nil {
		return nil, fmt.Errorf("unable to decode stored skin property: %w", err)
	}

	if property == nil || property.Value == "" {
		return nil, nil
	}

	return property, nil
}

func (r *Redis) StoreSkinOfPlayer(ctx context.Context, playerUuid uuid.UUID, property *SkinProperty) error {
	serialized, err := json.Marshal(property)
	if err != nil {
		return err
	}

	return r.client.Do(ctx, radix.FlatCmd(nil, "HSET", playerSkinsKey, normalizeUuid(playerUuid), serialized))
}

func (r *Redis) RemoveSkinOfPlayer(ctx context.Context, playerUuid uuid.UUID) error {
	return r.client.Do(ctx, radix.Cmd(nil, "HDEL", playerSkinsKey, normalizeUuid(playerUuid)))
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Do(ctx, radix.Cmd(nil, "PING"))
}

func (r *Redis) Close() error {
	return r.client.Close()
}

// uuid.UUID is always formatted in the canonical lowercased dashed form
func normalizeUuid(playerUuid uuid.UUID) string {
	return playerUuid.String()
}
