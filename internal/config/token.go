package config

import (
	"os"

	domainerrors "github.com/Tomas-vilte/FixBot/internal/domain/errors"
)

// ResolveToken evalúa las fuentes de credenciales en orden hasta que una
// devuelva un valor no vacío: argumento explícito, GH_TOKEN y GITHUB_TOKEN.
// No hay estado global: cada invocación vuelve a consultar el entorno.
func ResolveToken(explicit string) (string, error) {
	sources := []func() string{
		func() string { return explicit },
		func() string { return os.Getenv("GH_TOKEN") },
		func() string { return os.Getenv("GITHUB_TOKEN") },
	}

	for _, source := range sources {
		if token := source(); token != "" {
			return token, nil
		}
	}

	return "", domainerrors.NewMissingCredentialError()
}
