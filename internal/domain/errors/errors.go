package errors

import "fmt"

// ConfigError representa un error de configuración
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError crea un nuevo error de configuración
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// MissingCredentialError indica que ninguna fuente aportó un token.
// Las CLI lo traducen al código de salida 2, antes de tocar la red.
type MissingCredentialError struct{}

func (e *MissingCredentialError) Error() string {
	return "no credential found: pass --token or set GH_TOKEN / GITHUB_TOKEN"
}

// NewMissingCredentialError crea un nuevo error de credencial faltante
func NewMissingCredentialError() *MissingCredentialError {
	return &MissingCredentialError{}
}

// RemoteRequestError indica que el proveedor respondió con un estado no exitoso.
// Conserva el código y el cuerpo de la respuesta para mostrarlos al usuario.
type RemoteRequestError struct {
	Resource   string
	StatusCode int
	Body       string
}

func (e *RemoteRequestError) Error() string {
	return fmt.Sprintf("request for %s failed: %d %s", e.Resource, e.StatusCode, e.Body)
}

// NewRemoteRequestError crea un nuevo error de petición remota fallida
func NewRemoteRequestError(resource string, statusCode int, body string) *RemoteRequestError {
	return &RemoteRequestError{
		Resource:   resource,
		StatusCode: statusCode,
		Body:       body,
	}
}
