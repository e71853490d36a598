package scaffold

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tair/storefront/internal/brand"
	"github.com/tair/storefront/internal/navigation"
)

// DeriveLibName turns a kebab-case brand name into the shell library name
func DeriveLibName(brandName string) string {
	return strings.ReplaceAll(brandName, "-", "_") + "_lib"
}

var shellPlugins = []string{
	"shell", "notification", "os", "fs", "store", "http", "deep-link",
	"stronghold", "biometric", "barcode-scanner", "geolocation", "mcp-bridge",
}

// GenerateCargoToml renders the Rust manifest of the brand's native shell
func GenerateCargoToml(brandName, libName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[package]\nname = %q\nversion = \"1.0.0\"\nedition = \"2021\"\n\n", brandName+"-app")
	fmt.Fprintf(&b, "[lib]\nname = %q\ncrate-type = [\"staticlib\", \"cdylib\", \"rlib\"]\n\n", libName)
	b.WriteString("[build-dependencies]\ntauri-build = { workspace = true }\n\n")
	b.WriteString("[dependencies]\ntauri-core = { path = \"../../../packages/tauri-core\" }\ntauri = { workspace = true }\n\n")
	b.WriteString("# Plugin crates must be direct dependencies for the capability resolver\n")
	for _, p := range shellPlugins {
		fmt.Fprintf(&b, "tauri-plugin-%s = { workspace = true }\n", p)
	}
	return b.String()
}

// Window is one native window of the shell
type Window struct {
	Label          string `json:"label"`
	Title          string `json:"title"`
	URL            string `json:"url,omitempty"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	MinWidth       int    `json:"minWidth,omitempty"`
	MinHeight      int    `json:"minHeight,omitempty"`
	Resizable      bool   `json:"resizable"`
	Fullscreen     *bool  `json:"fullscreen,omitempty"`
	Visible        *bool  `json:"visible,omitempty"`
	Decorations    *bool  `json:"decorations,omitempty"`
	Center         bool   `json:"center,omitempty"`
	Transparent    *bool  `json:"transparent,omitempty"`
	UseHTTPSScheme *bool  `json:"useHttpsScheme,omitempty"`
}

type Bundle struct {
	Active           bool     `json:"active"`
	Targets          string   `json:"targets"`
	Icon             []string `json:"icon"`
	Resources        []string `json:"resources"`
	Category         string   `json:"category"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
}

type Build struct {
	BeforeBuildCommand string `json:"beforeBuildCommand,omitempty"`
	FrontendDist       string `json:"frontendDist,omitempty"`
	BeforeDevCommand   string `json:"beforeDevCommand,omitempty"`
	DevURL             string `json:"devUrl"`
}

type Security struct {
	CSP *string `json:"csp"`
}

type App struct {
	WithGlobalTauri bool      `json:"withGlobalTauri"`
	Windows         []Window  `json:"windows"`
	Security        *Security `json:"security,omitempty"`
}

// ShellConf is the desktop shell configuration document
type ShellConf struct {
	Bundle      Bundle                 `json:"bundle"`
	Build       Build                  `json:"build"`
	ProductName string                 `json:"productName"`
	Version     string                 `json:"version"`
	Identifier  string                 `json:"identifier"`
	Plugins     map[string]interface{} `json:"plugins"`
	App         App                    `json:"app"`
}

// AndroidConf overrides ShellConf on Android
type AndroidConf struct {
	Build Build `json:"build"`
	App   App   `json:"app"`
}

func boolPtr(v bool) *bool { return &v }

// GenerateShellConf builds the shell config: a hidden main window and a splashscreen shown at startup
func GenerateShellConf(productName, identifier string) ShellConf {
	return ShellConf{
		Bundle: Bundle{
			Active:  true,
			Targets: "all",
			Icon: []string{
				"icons/32x32.png",
				"icons/128x128.png",
				"icons/128x128@2x.png",
				"icons/icon.icns",
				"icons/icon.ico",
			},
			Resources:        []string{},
			Category:         "Medical",
			ShortDescription: productName + " App",
			LongDescription:  productName + " - Mobile application",
		},
		Build: Build{
			BeforeBuildCommand: "bun run generate",
			FrontendDist:       "../.output/public",
			BeforeDevCommand:   "bun run dev",
			DevURL:             "http://localhost:3000",
		},
		ProductName: productName,
		Version:     "1.0.0",
		Identifier:  identifier,
		Plugins:     map[string]interface{}{},
		App: App{
			WithGlobalTauri: true,
			Windows: []Window{
				{
					Label:      "main",
					Title:      productName,
					Width:      1366,
					Height:     768,
					MinWidth:   375,
					MinHeight:  812,
					Resizable:  true,
					Fullscreen: boolPtr(false),
					Visible:    boolPtr(false),
				},
				{
					Label:       "splashscreen",
					Title:       productName,
					URL:         "/splashscreen",
					Width:       400,
					Height:      500,
					Resizable:   false,
					Decorations: boolPtr(false),
					Center:      true,
					Transparent: boolPtr(false),
				},
			},
			Security: &Security{},
		},
	}
}

// GenerateAndroidConf builds the Android override, where the single window starts on the splashscreen
func GenerateAndroidConf(productName string) AndroidConf {
	return AndroidConf{
		Build: Build{DevURL: "http://localhost:3000"},
		App: App{
			WithGlobalTauri: true,
			Windows: []Window{{
				Label:          "main",
				Title:          productName,
				URL:            "/splashscreen",
				Width:          1366,
				Height:         768,
				MinWidth:       375,
				MinHeight:      812,
				Resizable:      true,
				Fullscreen:     boolPtr(false),
				UseHTTPSScheme: boolPtr(false),
			}},
		},
	}
}

// PackageJSON is the frontend package manifest
type PackageJSON struct {
	Name            string            `json:"name"`
	Type            string            `json:"type"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func GeneratePackageJSON(brandName string) PackageJSON {
	return PackageJSON{
		Name:    "@apps/" + brandName,
		Type:    "module",
		Version: "1.0.0",
		Private: true,
		Scripts: map[string]string{
			"dev":                 "nuxt dev",
			"build":               "nuxt build",
			"generate":            "nuxt generate",
			"preview":             "nuxt preview",
			"tauri:dev":           "tauri dev",
			"tauri:build":         "tauri build",
			"tauri:build:debug":   "tauri build --debug",
			"tauri:android:init":  "tauri android init",
			"tauri:android:dev":   "tauri android dev",
			"tauri:android:build": "tauri android build",
			"web:dev":             "NUXT_TARGET=web nuxt dev",
			"web:build":           "NUXT_TARGET=web nuxt build",
			"web:preview":         "NUXT_TARGET=web nuxt preview",
		},
		Dependencies: map[string]string{
			"@packages/core":                    "workspace:*",
			"@tauri-apps/api":                   "^2.10.1",
			"@tauri-apps/plugin-barcode-scanner": "^2.4.4",
			"@tauri-apps/plugin-biometric":      "^2.3.2",
			"@tauri-apps/plugin-deep-link":      "^2.4.7",
			"@tauri-apps/plugin-geolocation":    "^2.3.2",
			"@tauri-apps/plugin-http":           "^2.5.7",
			"@tauri-apps/plugin-os":             "^2.3.2",
			"@tauri-apps/plugin-shell":          "^2.3.5",
			"@tauri-apps/plugin-stronghold":     "^2.3.1",
		},
		DevDependencies: map[string]string{
			"@tauri-apps/cli": "^2.10.0",
		},
	}
}

// GenerateBrandConfig returns the starting brand.yaml document: default nav, account menu and colors
func GenerateBrandConfig(brandName, identifier, productName string) brand.Config {
	return brand.Config{
		Brand: brand.Identity{
			Name:   productName,
			Author: productName,
			Colors: brand.Colors{Primary: "#000000", PrimaryDark: "#000000"},
			Logo:   "/images/" + brandName + "-logo.png",
			Metadata: brand.Metadata{
				Title:       productName,
				Description: productName,
			},
		},
		Shell: brand.Shell{Identifier: identifier, ProductName: productName},
		Nav: brand.Nav{Items: []navigation.Item{
			{LabelKey: "nav.home", Icon: "lucide:house", Route: "/"},
			{LabelKey: "nav.shop", Icon: "lucide:search", Route: "/shop"},
			{LabelKey: "nav.cart", Icon: "lucide:shopping-cart", Route: "/cart"},
			{LabelKey: "nav.favorites", Icon: "lucide:heart", Route: "/favorites"},
			{LabelKey: "nav.account", Icon: "lucide:user", Route: "/account"},
		}},
		Account: brand.Account{MenuItems: []navigation.Item{
			{LabelKey: "account.myOrders", Icon: "lucide:package", Route: "/orders"},
			{LabelKey: "account.purchasedProducts", Icon: "lucide:shopping-bag", Route: "/purchased"},
			{LabelKey: "account.accountSettings", Icon: "lucide:settings", Route: "/settings"},
			{LabelKey: "account.help", Icon: "lucide:help-circle", Route: "/help"},
		}},
		UI: brand.UI{Colors: map[string]string{
			"primary":   "cyan",
			"secondary": "cyan",
			"neutral":   "neutral",
		}},
		I18n: brand.I18n{DefaultLocale: "en", Locales: []string{"en", "el"}},
	}
}

// GenerateBrandYAML renders GenerateBrandConfig as brand.yaml
func GenerateBrandYAML(brandName, identifier, productName string) ([]byte, error) {
	cfg := GenerateBrandConfig(brandName, identifier, productName)
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode brand config: %w", err)
	}
	return data, nil
}

// GenerateLocale renders a locale stub carrying the home page greeting
func GenerateLocale(locale, productName string) ([]byte, error) {
	greeting := "Welcome to " + productName
	if locale == "el" {
		greeting = "Καλωσήρθατε στο " + productName
	}
	return yaml.Marshal(map[string]string{"welcome": greeting})
}

func GenerateBrandCSS(productName string) string {
	return fmt.Sprintf(`/* %s Brand CSS Variables */
:root {
  --brand-primary: #000000;
  --brand-primary-dark: #000000;
  --brand-primary-rgb: 0, 0, 0;
}
`, productName)
}

func GenerateIndexPage(productName string) string {
	return fmt.Sprintf(`<script setup lang="ts">
// Brand-specific home page
</script>

<template>
  <div class="px-4 py-8 text-center md:px-6 lg:px-8">
    <h1 class="text-3xl font-bold text-default">
      {{ $t('welcome') }}
    </h1>
  </div>
</template>

<i18n lang="yaml">
en:
  welcome: Welcome to %[1]s
el:
  welcome: Καλωσήρθατε στο %[1]s
</i18n>
`, productName)
}

func GenerateSplashscreenPage(productName string) string {
	return fmt.Sprintf(`<script setup lang="ts">
definePageMeta({
  layout: 'blank',
  middleware: 'shell-only',
})
</script>

<template>
  <div class="flex min-h-screen items-center justify-center bg-default">
    <h1 class="text-2xl font-bold text-default">
      %s
    </h1>
  </div>
</template>
`, productName)
}

func marshalJSON(v interface{}, indent string) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
