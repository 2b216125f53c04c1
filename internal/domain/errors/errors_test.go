package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	t.Run("debería incluir el campo y el error envuelto", func(t *testing.T) {
		wrapped := stderrors.New("archivo corrupto")
		err := NewConfigError("language", "no se pudo leer", wrapped)

		assert.Contains(t, err.Error(), "language")
		assert.Contains(t, err.Error(), "archivo corrupto")
		assert.ErrorIs(t, err, wrapped)
	})

	t.Run("debería formatear sin error envuelto", func(t *testing.T) {
		err := NewConfigError("api_base_url", "valor inválido", nil)

		assert.Equal(t, "config error [api_base_url]: valor inválido", err.Error())
	})
}

func TestRemoteRequestError(t *testing.T) {
	t.Run("debería conservar el código y el cuerpo", func(t *testing.T) {
		err := NewRemoteRequestError("comment", 404, "Not Found")

		assert.Equal(t, 404, err.StatusCode)
		assert.Equal(t, "Not Found", err.Body)
		assert.Contains(t, err.Error(), "404")
		assert.Contains(t, err.Error(), "Not Found")
	})
}

func TestMissingCredentialError(t *testing.T) {
	t.Run("debería mencionar las fuentes de credenciales", func(t *testing.T) {
		err := NewMissingCredentialError()

		assert.Contains(t, err.Error(), "GH_TOKEN")
		assert.Contains(t, err.Error(), "GITHUB_TOKEN")
		assert.Contains(t, err.Error(), "--token")
	})
}
