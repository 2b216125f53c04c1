package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslations(t *testing.T) {
	t.Run("debería resolver mensajes en inglés por defecto", func(t *testing.T) {
		trans, err := NewTranslations("en", "locales")
		require.NoError(t, err)

		msg := trans.GetMessage("comment_posted", 0, map[string]interface{}{
			"URL": "https://example.com/1",
		})
		assert.Equal(t, "Comment posted: https://example.com/1", msg)
	})

	t.Run("debería cambiar al locale español", func(t *testing.T) {
		trans, err := NewTranslations("es", "locales")
		require.NoError(t, err)

		msg := trans.GetMessage("comment_posted", 0, map[string]interface{}{
			"URL": "https://example.com/1",
		})
		assert.Equal(t, "Comentario publicado: https://example.com/1", msg)
	})

	t.Run("debería marcar los mensajes faltantes", func(t *testing.T) {
		trans, err := NewTranslations("en", "locales")
		require.NoError(t, err)

		assert.Equal(t, "Translation missing: no_existe", trans.GetMessage("no_existe", 0, nil))
	})

	t.Run("SetLanguage debería rechazar idiomas no soportados", func(t *testing.T) {
		trans, err := NewTranslations("en", "locales")
		require.NoError(t, err)

		assert.Error(t, trans.SetLanguage("fr"))
		assert.NoError(t, trans.SetLanguage("es"))
	})
}
