package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/brand"
)

func TestDeriveLibName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"pharmaplus", "pharmaplus_lib"},
		{"my-brand", "my_brand_lib"},
		{"a-b-c", "a_b_c_lib"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveLibName(tt.name))
		})
	}
}

func TestGenerateCargoToml(t *testing.T) {
	out := GenerateCargoToml("my-brand", "my_brand_lib")
	assert.Contains(t, out, `name = "my-brand-app"`)
	assert.Contains(t, out, `name = "my_brand_lib"`)
	assert.Contains(t, out, "tauri-plugin-biometric = { workspace = true }")
}

func TestGenerateShellConf(t *testing.T) {
	conf := GenerateShellConf("PharmaPlus", "com.pharmaplus.app")

	assert.Equal(t, "PharmaPlus", conf.ProductName)
	assert.Equal(t, "com.pharmaplus.app", conf.Identifier)
	assert.Equal(t, "1.0.0", conf.Version)

	require.Len(t, conf.App.Windows, 2)
	main, splash := conf.App.Windows[0], conf.App.Windows[1]
	assert.Equal(t, "main", main.Label)
	require.NotNil(t, main.Visible)
	assert.False(t, *main.Visible)
	assert.Equal(t, "splashscreen", splash.Label)
	assert.Equal(t, "/splashscreen", splash.URL)

	data, err := marshalJSON(conf, "\t")
	require.NoError(t, err)
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	app := raw["app"].(map[string]interface{})
	assert.Nil(t, app["security"].(map[string]interface{})["csp"])
}

func TestGenerateAndroidConf(t *testing.T) {
	conf := GenerateAndroidConf("PharmaPlus")
	require.Len(t, conf.App.Windows, 1)
	assert.Equal(t, "/splashscreen", conf.App.Windows[0].URL)
}

func TestGeneratePackageJSON(t *testing.T) {
	pkg := GeneratePackageJSON("pharmaplus")
	assert.Equal(t, "@apps/pharmaplus", pkg.Name)
	assert.True(t, pkg.Private)
	assert.Equal(t, "tauri dev", pkg.Scripts["tauri:dev"])
}

func TestGeneratePages(t *testing.T) {
	assert.Contains(t, GenerateIndexPage("PharmaPlus"), "Welcome to PharmaPlus")
	assert.Contains(t, GenerateSplashscreenPage("PharmaPlus"), "PharmaPlus")
	assert.Contains(t, GenerateBrandCSS("PharmaPlus"), "/* PharmaPlus Brand CSS Variables */")
}

func newTemplate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "wecare", "shell", "capabilities"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "wecare", "shell", "icons"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "wecare", "shell", "capabilities", "main.json"), []byte(`{"identifier":"main"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "wecare", "shell", "icons", "icon.svg"), []byte("<svg/>"), 0o644))
	return root
}

func TestScaffoldCreatesLoadableBrand(t *testing.T) {
	root := newTemplate(t)
	opts := Options{Root: root, Template: "wecare", Name: "my-brand", Identifier: "com.mybrand.app", ProductName: "My Brand"}

	result, err := Scaffold(opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "my-brand"), result.Dir)

	for _, f := range []string{
		"brand.yaml",
		"locales/en.yaml",
		"shell/Cargo.toml",
		"shell/tauri.conf.json",
		"shell/capabilities/main.json",
		"shell/icons/icon.svg",
		"package.json",
		"pages/splashscreen.vue",
	} {
		assert.FileExists(t, filepath.Join(result.Dir, filepath.FromSlash(f)))
	}

	main, err := os.ReadFile(filepath.Join(result.Dir, "shell", "src", "main.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(main), "my_brand_lib::run();")

	cfg, err := brand.Load(os.DirFS(root), "my-brand")
	require.NoError(t, err)
	assert.Equal(t, "My Brand", cfg.Brand.Name)
	assert.Equal(t, "com.mybrand.app", cfg.Shell.Identifier)
	assert.Len(t, cfg.Nav.Items, 5)
	assert.Equal(t, "Welcome to My Brand", cfg.Translate("en", "welcome"))

	assert.Contains(t, NextSteps(opts), "BRAND=my-brand")
}

func TestScaffoldRejectsExistingBrand(t *testing.T) {
	root := newTemplate(t)
	opts := Options{Root: root, Template: "wecare", Name: "pharmaplus", Identifier: "com.pharmaplus.app", ProductName: "PharmaPlus"}

	_, err := Scaffold(opts)
	require.NoError(t, err)

	_, err = Scaffold(opts)
	assert.ErrorIs(t, err, ErrBrandExists)
}

func TestScaffoldRejectsBadInput(t *testing.T) {
	root := newTemplate(t)

	_, err := Scaffold(Options{Root: root, Template: "wecare", Name: "../escape"})
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = Scaffold(Options{Root: root, Template: "wecare", Name: "My_Brand"})
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = Scaffold(Options{Root: root, Template: "missing", Name: "fresh"})
	assert.Error(t, err)
}
