package proxyspec

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

var placeholderPattern = regexp.MustCompile(`\{[^{}/]+\}`)

var knownPlaceholders = map[string]struct{}{
	PlaceholderApplicationTokenID:      {},
	PlaceholderUserTokenID:             {},
	PlaceholderLogonServiceURL:         {},
	PlaceholderSecurityTokenServiceURL: {},
}

type specKey struct {
	method string
	name   string
}

// Registry holds named request templates keyed by (HTTP method, name).
// Registration validates placeholders so a broken template fails at
// startup instead of proxying garbage per request.
type Registry struct {
	mu    sync.RWMutex
	specs map[specKey]Specification
}

func NewRegistry() *Registry {
	return &Registry{specs: make(map[specKey]Specification)}
}

func (r *Registry) Register(spec Specification) error {
	if spec.Name == "" {
		return fmt.Errorf("specification without a name")
	}
	if spec.Method != http.MethodGet && spec.Method != http.MethodPost {
		return fmt.Errorf("specification %q: unsupported method %q", spec.Name, spec.Method)
	}
	if err := validatePlaceholders(spec); err != nil {
		return fmt.Errorf("specification %q: %w", spec.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs[specKey{method: spec.Method, name: spec.Name}] = spec
	return nil
}

// Get looks up a template by exact (method, name). Absence is a normal
// outcome the caller handles as "target unknown".
func (r *Registry) Get(method, name string) (Specification, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, ok := r.specs[specKey{method: method, name: name}]
	return spec, ok
}

// Names lists registered specification names, for the admin surface.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.specs))
	for key := range r.specs {
		names = append(names, key.method+" "+key.name)
	}
	return names
}

// LoadDir registers every specification found in *.json files under dir.
// Each file holds either a single specification or an array of them. A
// missing directory is not an error; an invalid template is.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading specifications dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		var specs []Specification
		if err := json.Unmarshal(data, &specs); err != nil {
			var single Specification
			if err := json.Unmarshal(data, &single); err != nil {
				return fmt.Errorf("parsing %s: %w", path, err)
			}
			specs = []Specification{single}
		}
		for _, spec := range specs {
			if err := r.Register(spec); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	return nil
}

func validatePlaceholders(spec Specification) error {
	templates := []string{spec.TargetURLTemplate, spec.BodyTemplate}
	for _, value := range spec.HeaderTemplates {
		templates = append(templates, value)
	}
	for _, template := range templates {
		for _, token := range placeholderPattern.FindAllString(template, -1) {
			if _, ok := knownPlaceholders[token]; !ok {
				return fmt.Errorf("unknown placeholder %s", token)
			}
		}
	}
	return nil
}
