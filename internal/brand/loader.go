package brand

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/tair/storefront/brands"
	"github.com/tair/storefront/pkg/logger"
)

// ConfigFile is the name of the brand document inside a brand directory
const ConfigFile = "brand.yaml"

// NewFS returns the brands directory at dir, or the embedded built-in brands when dir is empty
func NewFS(dir string) fs.FS {
	if dir == "" {
		return brands.FS
	}
	return os.DirFS(dir)
}

// Load reads slug/brand.yaml and slug/locales/*.yaml from fsys
func Load(fsys fs.FS, slug string) (*Config, error) {
	if slug == "" || strings.ContainsAny(slug, `/\`) || slug == "." || slug == ".." {
		return nil, fmt.Errorf("%w: %q", ErrBrandNotFound, slug)
	}

	data, err := fs.ReadFile(fsys, path.Join(slug, ConfigFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBrandNotFound, slug)
		}
		return nil, fmt.Errorf("failed to read %s/%s: %w", slug, ConfigFile, err)
	}

	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBrand, slug, err)
	}
	cfg.Slug = slug

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", slug, err)
	}

	cfg.Translations, err = loadLocales(fsys, slug)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadLocales(fsys fs.FS, slug string) (map[string]map[string]string, error) {
	files, err := fs.Glob(fsys, path.Join(slug, "locales", "*.yaml"))
	if err != nil {
		return nil, err
	}

	translations := make(map[string]map[string]string, len(files))
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		var doc map[string]interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBrand, file, err)
		}

		locale := strings.TrimSuffix(path.Base(file), ".yaml")
		table := make(map[string]string)
		flatten("", doc, table)
		translations[locale] = table
	}
	return translations, nil
}

// flatten turns nested locale documents into dotted keys, e.g. nav.home
func flatten(prefix string, node map[string]interface{}, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			flatten(key, val, out)
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Registry loads brands lazily and caches them
type Registry struct {
	fsys  fs.FS
	mu    sync.RWMutex
	cache map[string]*Config
}

func NewRegistry(fsys fs.FS) *Registry {
	return &Registry{fsys: fsys, cache: make(map[string]*Config)}
}

// Get returns the brand named slug
func (r *Registry) Get(slug string) (*Config, error) {
	r.mu.RLock()
	cfg, ok := r.cache[slug]
	r.mu.RUnlock()
	if ok {
		return cfg, nil
	}

	cfg, err := Load(r.fsys, slug)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[slug] = cfg
	r.mu.Unlock()

	logger.Logger.Debug().Str("brand", slug).Int("locales", len(cfg.Translations)).Msg("Brand loaded")
	return cfg, nil
}

// List returns the slugs of every directory that holds a brand.yaml, sorted
func (r *Registry) List() ([]string, error) {
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}

	var slugs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := fs.Stat(r.fsys, path.Join(entry.Name(), ConfigFile)); err == nil {
			slugs = append(slugs, entry.Name())
		}
	}
	sort.Strings(slugs)
	return slugs, nil
}
