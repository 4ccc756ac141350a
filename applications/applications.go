package applications

import "errors"

var ErrApplicationNotFound = errors.New("application not found")

// Application is the identity record of a registered single-page
// application. Immutable once loaded into the directory.
type Application struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	RedirectURL string `json:"redirectUrl"`
}

// Repo is the read-mostly application directory.
type Repo interface {
	FindApplication(name string) (Application, error)
	FindRedirectURL(app Application) string
}
