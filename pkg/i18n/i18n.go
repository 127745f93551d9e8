package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

type ctxKey struct{}

// Catalog holds the parsed message bundle.
type Catalog struct {
	bundle        *i18n.Bundle
	defaultLocale string
}

// NewCatalog loads every embedded locale file.
func NewCatalog(defaultLocale string) (*Catalog, error) {
	if defaultLocale == "" {
		defaultLocale = "en"
	}
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
	}
	return &Catalog{bundle: bundle, defaultLocale: defaultLocale}, nil
}

// WithLocale returns a context carrying locale (e.g. "en", "id").
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ctxKey{}, locale)
}

func (c *Catalog) locale(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return v
	}
	return c.defaultLocale
}

// T translates messageID for the context locale. Unknown ids come back
// unchanged so callers can fall back.
func (c *Catalog) T(ctx context.Context, messageID string, data map[string]any) string {
	msg, err := c.Localize(ctx, messageID, data)
	if err != nil {
		return messageID
	}
	return msg
}

// Localize is T with the lookup error exposed.
func (c *Catalog) Localize(ctx context.Context, messageID string, data map[string]any) (string, error) {
	l := i18n.NewLocalizer(c.bundle, c.locale(ctx), c.defaultLocale)
	return l.Localize(&i18n.LocalizeConfig{MessageID: messageID, TemplateData: data})
}
