// Package navigation resolves brand nav items against the current path and locale.
package navigation

import "strings"

// Item is a nav entry as configured by a brand. LabelKey is a translation key;
// Label is used verbatim when no key is set.
type Item struct {
	LabelKey string `json:"labelKey,omitempty" yaml:"labelKey,omitempty"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Icon     string `json:"icon" yaml:"icon"`
	Route    string `json:"route" yaml:"route"`
}

// ResolvedItem is an Item annotated for rendering
type ResolvedItem struct {
	LabelKey      string `json:"labelKey,omitempty"`
	Label         string `json:"label"`
	Icon          string `json:"icon"`
	Route         string `json:"route"`
	ResolvedRoute string `json:"resolvedRoute"`
	Active        bool   `json:"active"`
}

// TranslateFunc maps a translation key to a label
type TranslateFunc func(key string) string

// LocalePathFunc maps a route to its locale-specific path
type LocalePathFunc func(route string) string

// BuildNavItems resolves every item. An item is active only when currentPath equals
// its resolved route exactly, so "/shop/item/1" does not activate "/shop".
func BuildNavItems(items []Item, currentPath string, t TranslateFunc, localePath LocalePathFunc) []ResolvedItem {
	resolved := make([]ResolvedItem, 0, len(items))
	for _, item := range items {
		route := localePath(item.Route)

		label := item.Label
		if item.LabelKey != "" {
			label = t(item.LabelKey)
		}

		resolved = append(resolved, ResolvedItem{
			LabelKey:      item.LabelKey,
			Label:         label,
			Icon:          item.Icon,
			Route:         item.Route,
			ResolvedRoute: route,
			Active:        currentPath == route,
		})
	}
	return resolved
}

// PrefixExceptDefault returns a LocalePathFunc that leaves routes of the default
// locale unchanged and prefixes every other locale with "/{locale}".
func PrefixExceptDefault(locale, defaultLocale string) LocalePathFunc {
	return func(route string) string {
		if !strings.HasPrefix(route, "/") {
			route = "/" + route
		}
		if locale == "" || locale == defaultLocale {
			return route
		}
		if route == "/" {
			return "/" + locale
		}
		return "/" + locale + route
	}
}
