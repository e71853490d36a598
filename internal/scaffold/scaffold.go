// Package scaffold creates a new brand directory from generated files and template assets.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/tair/storefront/internal/brand"
	"github.com/tair/storefront/pkg/logger"
)

var (
	ErrBrandExists = errors.New("brand already exists")
	ErrInvalidName = errors.New("brand name must be lowercase kebab-case")
)

var brandNamePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Options describe the brand to create
type Options struct {
	Root        string // brands root, e.g. "brands"
	Template    string // brand whose shell assets are copied
	Name        string
	Identifier  string
	ProductName string
}

// Result lists what Scaffold wrote
type Result struct {
	Dir   string
	Files []string
}

type generatedFile struct {
	path   string
	render func() ([]byte, error)
}

func text(s string) func() ([]byte, error) {
	return func() ([]byte, error) { return []byte(s), nil }
}

// Scaffold writes Root/Name. It refuses to touch a directory that already has a brand.yaml.
func Scaffold(opts Options) (*Result, error) {
	if !brandNamePattern.MatchString(opts.Name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, opts.Name)
	}

	dir := filepath.Join(opts.Root, opts.Name)
	if _, err := os.Stat(filepath.Join(dir, brand.ConfigFile)); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrBrandExists, dir)
	}

	templateDir := filepath.Join(opts.Root, opts.Template)
	if _, err := os.Stat(filepath.Join(templateDir, "shell")); err != nil {
		return nil, fmt.Errorf("template %q has no shell assets: %w", opts.Template, err)
	}

	libName := DeriveLibName(opts.Name)
	files := []generatedFile{
		{brand.ConfigFile, func() ([]byte, error) {
			return GenerateBrandYAML(opts.Name, opts.Identifier, opts.ProductName)
		}},
		{"locales/en.yaml", func() ([]byte, error) { return GenerateLocale("en", opts.ProductName) }},
		{"locales/el.yaml", func() ([]byte, error) { return GenerateLocale("el", opts.ProductName) }},
		{"shell/Cargo.toml", text(GenerateCargoToml(opts.Name, libName))},
		{"shell/src/lib.rs", text("#[cfg_attr(mobile, tauri::mobile_entry_point)]\npub fn run() {\n\ttauri_core::run(tauri::generate_context!(), tauri_core::AppConfig::default());\n}\n")},
		{"shell/src/main.rs", text("#![cfg_attr(not(debug_assertions), windows_subsystem = \"windows\")]\n\nfn main() {\n\t" + libName + "::run();\n}\n")},
		{"shell/build.rs", text("fn main() {\n\ttauri_build::build()\n}\n")},
		{"shell/tauri.conf.json", func() ([]byte, error) {
			return marshalJSON(GenerateShellConf(opts.ProductName, opts.Identifier), "\t")
		}},
		{"shell/tauri.android.conf.json", func() ([]byte, error) {
			return marshalJSON(GenerateAndroidConf(opts.ProductName), "\t")
		}},
		{"package.json", func() ([]byte, error) { return marshalJSON(GeneratePackageJSON(opts.Name), "  ") }},
		{"assets/css/brand.css", text(GenerateBrandCSS(opts.ProductName))},
		{"pages/index.vue", text(GenerateIndexPage(opts.ProductName))},
		{"pages/splashscreen.vue", text(GenerateSplashscreenPage(opts.ProductName))},
	}

	result := &Result{Dir: dir}
	for _, f := range files {
		data, err := f.render()
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", f.path, err)
		}
		if err := writeFile(filepath.Join(dir, f.path), data); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, f.path)
	}

	capabilities, err := os.ReadFile(filepath.Join(templateDir, "shell", "capabilities", "main.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read template capabilities: %w", err)
	}
	if err := writeFile(filepath.Join(dir, "shell", "capabilities", "main.json"), capabilities); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, "shell/capabilities/main.json")

	iconsDir := filepath.Join(dir, "shell", "icons")
	if err := os.RemoveAll(iconsDir); err != nil {
		return nil, fmt.Errorf("failed to reset icons: %w", err)
	}
	if err := os.CopyFS(iconsDir, os.DirFS(filepath.Join(templateDir, "shell", "icons"))); err != nil {
		return nil, fmt.Errorf("failed to copy template icons: %w", err)
	}
	result.Files = append(result.Files, "shell/icons/")

	logger.Logger.Info().
		Str("brand", opts.Name).
		Str("template", opts.Template).
		Int("files", len(result.Files)).
		Msg("Brand scaffolded")

	return result, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// NextSteps is the checklist printed after scaffolding
func NextSteps(opts Options) string {
	dir := filepath.Join(opts.Root, opts.Name)
	return fmt.Sprintf(`
Brand %[1]q scaffolded at %[2]s/

Next steps:
  1. Replace icons in %[2]s/shell/icons/
  2. Customize %[2]s/brand.yaml:
     - brand colors, logo, metadata
     - account.menuItems (add brand-specific menu items)
     - cart.supportPhone and cart.freeShippingThreshold
  3. Add translations to %[2]s/locales/
  4. Edit %[2]s/assets/css/brand.css for brand CSS variables
  5. Run: BRAND=%[1]s BRANDS_DIR=%[3]s storefront
`, opts.Name, dir, opts.Root)
}
