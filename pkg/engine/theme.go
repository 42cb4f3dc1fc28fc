package engine

import (
	"fmt"

	theme "github.com/goliatone/go-theme"
)

type themeConfig struct {
	selector theme.ThemeSelector
	name     string
	variant  string
}

// WithTheme resolves a go-theme selection at construction time and assigns
// its name, variant, and design tokens into the data bag under "theme", so
// every template can reference them.
func WithTheme(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		if selector == nil {
			return
		}
		cfg.theme = &themeConfig{selector: selector, name: name, variant: variant}
	}
}

func (e *Engine) applyTheme(cfg *themeConfig) error {
	selection, err := cfg.selector.Select(cfg.name, cfg.variant)
	if err != nil {
		return fmt.Errorf("engine: select theme %q: %w", cfg.name, err)
	}
	if selection == nil {
		return nil
	}

	ctx := map[string]any{
		"name":    selection.Theme,
		"variant": selection.Variant,
	}
	if selection.Manifest != nil && len(selection.Manifest.Tokens) > 0 {
		tokens := make(map[string]string, len(selection.Manifest.Tokens))
		for key, value := range selection.Manifest.Tokens {
			tokens[key] = value
		}
		ctx["tokens"] = tokens
	}

	e.data["theme"] = ctx
	return nil
}
