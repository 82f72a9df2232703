package interfaces

import (
	"context"

	"mymultichain/domain"
)

// InstanceRegistry exposes the fixed, ordered set of backend instances the proxy fans out to.
// The set is supplied once at construction and never changes; a new set requires a new registry.
//
// Implemented by service.instanceRegistry. Called from service.aggregator for every fan-out call and
// from handlers.HTTPServer.GetInstances.
//
//go:generate moq -stub -out mock/registry.go -pkg mock . InstanceRegistry
type InstanceRegistry interface {
	// Instances returns a snapshot of all instances in configuration order.
	// Returns: a new slice on every call; callers may modify it without affecting the registry.
	Instances() []domain.Instance
}

// InstanceSource loads the instance list from an external store once at startup.
//
// Implemented by myredis.InstanceSource. Called from cmd/main when INSTANCES_SOURCE=redis.
type InstanceSource interface {
	// LoadInstances reads every stored instance record.
	// Returns: (instances, nil) - possibly unordered; (nil, error) on storage or decode error, or when nothing is stored.
	LoadInstances(ctx context.Context) ([]domain.Instance, error)
}
