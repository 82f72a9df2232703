package service

import (
	"slices"

	"mymultichain/domain"
	"mymultichain/interfaces"
)

// instanceRegistry implements interfaces.InstanceRegistry over an immutable slice captured at construction.
type instanceRegistry struct {
	instances []domain.Instance
}

// NewInstanceRegistry validates instances (non-empty, unique IDs, URL set) and returns a registry that
// owns a private copy of the list.
//
// Parameter instances - ordered list from cmd.LoadConfig (YAML) or myredis.InstanceSource (Redis).
//
// Returns: (interfaces.InstanceRegistry, nil) on success; (nil, *domain.InstanceConfigError) when validation fails.
//
// Called from cmd/main at startup.
func NewInstanceRegistry(instances []domain.Instance) (interfaces.InstanceRegistry, error) {
	if err := domain.ValidateInstances(instances); err != nil {
		return nil, err
	}
	owned := make([]domain.Instance, len(instances))
	for i, inst := range instances {
		u := *inst.URL
		inst.URL = &u
		owned[i] = inst
	}
	return &instanceRegistry{instances: owned}, nil
}

// Instances returns a copy of the instance list in configuration order.
func (r *instanceRegistry) Instances() []domain.Instance {
	return slices.Clone(r.instances)
}
