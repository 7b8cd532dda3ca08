// Package content defines the application's core content-related domain entities.
package content

// Dialog is a registered dialog definition. ModuleName seeds the class naming
// convention (main, -isOpen, -container, -backdrop); Direction picks the pull
// edge. Body copy is plain text rendered inside the content container.
type Dialog struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	ModuleName string `json:"moduleName"`
	Direction  string `json:"direction"`
	Body       string `json:"body"`
}
