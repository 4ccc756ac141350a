package applications

import "sync"

// InMemoryRepo is an in-memory application directory keyed by name.
type InMemoryRepo struct {
	mu   sync.RWMutex
	apps map[string]Application
}

var _ Repo = (*InMemoryRepo)(nil)

func NewInMemoryRepo(apps ...Application) *InMemoryRepo {
	r := &InMemoryRepo{apps: make(map[string]Application)}
	for _, app := range apps {
		r.apps[app.Name] = app
	}
	return r
}

func (r *InMemoryRepo) Add(app Application) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[app.Name] = app
}

func (r *InMemoryRepo) FindApplication(name string) (Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	app, ok := r.apps[name]
	if !ok {
		return Application{}, ErrApplicationNotFound
	}
	return app, nil
}

// FindRedirectURL returns the registered redirect URL for an application,
// used as the Access-Control-Allow-Origin of proxied responses.
func (r *InMemoryRepo) FindRedirectURL(app Application) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	registered, ok := r.apps[app.Name]
	if !ok {
		return ""
	}
	return registered.RedirectURL
}
