// Package myredis loads the instance list from Redis.
package myredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"mymultichain/domain"
	"mymultichain/helpers"
	"mymultichain/interfaces"
	"mymultichain/service"

	"github.com/go-redis/redis/v8"
)

// instanceRecord is the JSON value stored under <prefix>:<key>.
type instanceRecord struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

var _ interfaces.InstanceSource = (*InstanceSource)(nil)

// InstanceSource implements interfaces.InstanceSource on top of a redis client. It only reads.
type InstanceSource struct {
	client redis.UniversalClient
	prefix string
}

// NewInstanceSource creates the redis instance source. Panics on nil client or empty prefix.
//
// Called from cmd/main when INSTANCES_SOURCE=redis.
func NewInstanceSource(client redis.UniversalClient, prefix string) *InstanceSource {
	return &InstanceSource{
		client: helpers.NilPanic(client, "myredis.instance_source.go: client is required"),
		prefix: helpers.StrPanic(prefix, "myredis.instance_source.go: prefix is required"),
	}
}

// LoadInstances lists all keys under the prefix, then fetches and decodes every record.
// A record without an id takes the key suffix as its id.
//
// Returns: instances sorted by key; entity_not_found when nothing is stored; bad_parameter on an
// undecodable or invalid record; internal_server_error on redis errors.
func (s *InstanceSource) LoadInstances(ctx context.Context) ([]domain.Instance, error) {
	fullKeys, err := s.client.Keys(ctx, s.prefix+":*").Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis get keys error", fmt.Errorf("redis get keys error, err: %w", err))
	}
	if len(fullKeys) == 0 {
		return nil, service.NewEntityNotFoundError("No instances stored", fmt.Errorf("no keys match %s:*", s.prefix))
	}
	sort.Strings(fullKeys)

	prefixWithColon := s.prefix + ":"
	instances := make([]domain.Instance, 0, len(fullKeys))
	for i, fullKey := range fullKeys {
		raw, err := s.client.Get(ctx, fullKey).Bytes()
		if errors.Is(err, redis.Nil) {
			// expired between KEYS and GET
			continue
		}
		if err != nil {
			return nil, service.NewInternalServerError("Redis read key error", fmt.Errorf("can't read instance from redis (key='%s'), err: %w", fullKey, err))
		}

		var rec instanceRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, service.NewBadParameterError("Invalid instance record", fmt.Errorf("can't unmarshal instance (key='%s'), err: %w", fullKey, err))
		}
		if strings.TrimSpace(rec.ID) == "" {
			rec.ID = strings.TrimPrefix(fullKey, prefixWithColon)
		}

		inst, err := domain.NewInstance(rec.ID, rec.Title, rec.URL)
		if err != nil {
			var cfgErr *domain.InstanceConfigError
			if errors.As(err, &cfgErr) {
				cfgErr.Index = i
			}
			return nil, service.NewBadParameterError("Invalid instance record", fmt.Errorf("key='%s': %w", fullKey, err))
		}
		instances = append(instances, inst)
	}
	if len(instances) == 0 {
		return nil, service.NewEntityNotFoundError("No instances stored", nil)
	}

	return instances, nil
}
