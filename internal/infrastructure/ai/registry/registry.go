package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/Tomas-vilte/FixBot/internal/config"
	"github.com/Tomas-vilte/FixBot/internal/domain/ports"
)

// ProviderFactory crea un proveedor generativo a partir de la configuración.
// Un error significa que el proveedor no está disponible (por ejemplo, sin API key).
type ProviderFactory func(ctx context.Context, cfg *config.Config) (ports.PatchSuggester, error)

// SuggesterRegistry gestiona el registro de proveedores generativos de parches.
type SuggesterRegistry struct {
	mu        sync.RWMutex
	factories map[string]ProviderFactory
}

// NewSuggesterRegistry crea un nuevo registro de proveedores
func NewSuggesterRegistry() *SuggesterRegistry {
	return &SuggesterRegistry{
		factories: make(map[string]ProviderFactory),
	}
}

// Register registra un nuevo proveedor
func (r *SuggesterRegistry) Register(name string, factory ProviderFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("proveedor '%s' ya esta registrado", name)
	}

	r.factories[name] = factory
	return nil
}

// IsRegistered verifica si un proveedor está registrado
func (r *SuggesterRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// BuildChain instancia los proveedores en el orden de cfg.AIConfig.Providers.
// Los nombres no registrados y los proveedores que no se pueden crear se
// omiten en silencio: la cadena generativa no tiene superficie de error propia.
func (r *SuggesterRegistry) BuildChain(ctx context.Context, cfg *config.Config) []ports.PatchSuggester {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var chain []ports.PatchSuggester
	for _, name := range cfg.AIConfig.Providers {
		factory, exists := r.factories[name]
		if !exists {
			continue
		}

		suggester, err := factory(ctx, cfg)
		if err != nil {
			continue
		}
		chain = append(chain, suggester)
	}

	return chain
}
