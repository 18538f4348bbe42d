// Package api defines the wire types exchanged with the back-office REST API.
// Every resource carries a server-assigned string id; the client never
// invents ids for persisted entities.
package api

// Resource is implemented by every server-owned entity.
type Resource interface {
	ResourceID() string
}

// Paginated is the list envelope returned by every collection endpoint.
type Paginated[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// Attachment is a server-hosted file (logo, cover, signed document).
type Attachment struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimetype"`
}
