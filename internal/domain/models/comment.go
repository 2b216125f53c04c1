package models

// Comment representa el comentario creado en el proveedor VCS.
type Comment struct {
	ID      int64  `json:"id"`
	HTMLURL string `json:"html_url"`
}
