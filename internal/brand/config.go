package brand

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tair/storefront/internal/navigation"
)

var (
	ErrBrandNotFound = errors.New("brand not found")
	ErrInvalidBrand  = errors.New("invalid brand config")
)

// Colors are the brand's theme colors
type Colors struct {
	Primary     string `json:"primary" yaml:"primary"`
	PrimaryDark string `json:"primaryDark" yaml:"primaryDark"`
}

// Metadata is used for the document title and description
type Metadata struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Identity is the visual identity of one brand
type Identity struct {
	Name     string   `json:"name" yaml:"name"`
	Author   string   `json:"author" yaml:"author"`
	Colors   Colors   `json:"colors" yaml:"colors"`
	Logo     string   `json:"logo" yaml:"logo"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// Shell describes the packaged app of the brand
type Shell struct {
	Identifier  string `json:"identifier" yaml:"identifier"`
	ProductName string `json:"productName" yaml:"productName"`
}

type Nav struct {
	Items []navigation.Item `json:"items" yaml:"items"`
}

type Account struct {
	MenuItems []navigation.Item `json:"menuItems" yaml:"menuItems"`
}

// Cart holds brand-specific cart page settings
type Cart struct {
	SupportPhone          string `json:"supportPhone" yaml:"supportPhone"`
	FreeShippingThreshold string `json:"freeShippingThreshold" yaml:"freeShippingThreshold"`
}

type UI struct {
	Colors map[string]string `json:"colors" yaml:"colors"`
}

type I18n struct {
	DefaultLocale string   `json:"defaultLocale" yaml:"defaultLocale"`
	Locales       []string `json:"locales" yaml:"locales"`
}

// Config is a complete brand.yaml document plus its translation tables
type Config struct {
	Slug    string   `json:"slug" yaml:"-"`
	Brand   Identity `json:"brand" yaml:"brand"`
	Shell   Shell    `json:"shell" yaml:"shell"`
	Nav     Nav      `json:"nav" yaml:"nav"`
	Account Account  `json:"account" yaml:"account"`
	Cart    Cart     `json:"cart" yaml:"cart"`
	UI      UI       `json:"ui" yaml:"ui"`
	I18n    I18n     `json:"i18n" yaml:"i18n"`

	// locale -> dotted key -> text
	Translations map[string]map[string]string `json:"-" yaml:"-"`
}

// Validate checks the fields every brand must set
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Brand.Name) == "" {
		return fmt.Errorf("%w: brand.name is required", ErrInvalidBrand)
	}
	for i, item := range c.Nav.Items {
		if item.Route == "" {
			return fmt.Errorf("%w: nav item %d has no route", ErrInvalidBrand, i)
		}
	}
	return nil
}

// DefaultLocale falls back to "en" when the brand does not set one
func (c *Config) DefaultLocale() string {
	if c.I18n.DefaultLocale == "" {
		return "en"
	}
	return c.I18n.DefaultLocale
}

// HasLocale reports whether locale is one of the brand's locales
func (c *Config) HasLocale(locale string) bool {
	if locale == c.DefaultLocale() {
		return true
	}
	for _, l := range c.I18n.Locales {
		if l == locale {
			return true
		}
	}
	return false
}

// Translate looks key up in locale, then in the default locale; a missing key is returned as is
func (c *Config) Translate(locale, key string) string {
	if text, ok := c.Translations[locale][key]; ok {
		return text
	}
	if text, ok := c.Translations[c.DefaultLocale()][key]; ok {
		return text
	}
	return key
}

// Translator binds Translate to a locale
func (c *Config) Translator(locale string) navigation.TranslateFunc {
	return func(key string) string {
		return c.Translate(locale, key)
	}
}
