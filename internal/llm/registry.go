package llm

import (
	"fmt"
	"sync"
)

// Registry manages available completion providers, caching initialized
// instances by name.
type Registry struct {
	mu        sync.RWMutex
	instances map[string]Provider
}

// NewRegistry creates a new provider registry.
func NewRegistry() *Registry {
	return &Registry{
		instances: make(map[string]Provider),
	}
}

// Get returns an initialized provider for the given type, creating and
// caching it on first use. Supported types: "openai", "azure".
func (r *Registry) Get(providerType, modelName string) (Provider, error) {
	r.mu.RLock()
	if p, ok := r.instances[providerType]; ok {
		r.mu.RUnlock()
		return p, nil
	}
	r.mu.RUnlock()

	p, err := r.initialize(providerType, modelName)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.instances[providerType] = p
	r.mu.Unlock()
	return p, nil
}

func (r *Registry) initialize(providerType, modelName string) (Provider, error) {
	switch providerType {
	case "openai":
		return NewOpenAIProvider(modelName)
	case "azure":
		return NewAzureOpenAIProvider()
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}
