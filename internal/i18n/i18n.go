// Package i18n translates user facing messages and determines the
// language to use for a request.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Languages are the supported languages.
var Languages = []language.Tag{language.German, language.English}

// Localizer translates messages and resolves request languages.
type Localizer struct {
	fallback language.Tag
	tags     []language.Tag
	matcher  language.Matcher
	catalog  catalog.Catalog
}

// New returns a Localizer that uses fallback when no other
// language can be determined.
func New(fallback string) (*Localizer, error) {
	tag, ok := parse(fallback)
	if !ok {
		return nil, fmt.Errorf("unsupported default language %q", fallback)
	}

	// The matcher falls back to the first tag
	tags := []language.Tag{tag}
	for _, t := range Languages {
		if t != tag {
			tags = append(tags, t)
		}
	}

	c, err := newCatalog(tag)
	if err != nil {
		return nil, err
	}

	return &Localizer{
		fallback: tag,
		tags:     tags,
		matcher:  language.NewMatcher(tags),
		catalog:  c,
	}, nil
}

// parse returns the supported language for the input, which is
// either a plain language code like "en" or a full tag like "en-US".
func parse(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return language.Und, false
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, false
	}

	base, _ := tag.Base()
	index := slices.IndexFunc(Languages, func(t language.Tag) bool {
		b, _ := t.Base()
		return b == base
	})
	if index == -1 {
		return language.Und, false
	}

	return Languages[index], true
}

// Supported returns the supported language for the input.
func (l *Localizer) Supported(raw string) (language.Tag, bool) {
	return parse(raw)
}

// Fallback is the language used when no other can be determined.
func (l *Localizer) Fallback() language.Tag {
	return l.fallback
}

// Resolve determines the language of a request.
//
// The query parameter takes precedence over the language stored in the
// session, which takes precedence over the Accept-Language header.
func (l *Localizer) Resolve(query, session, acceptLanguage string) language.Tag {
	if tag, ok := parse(query); ok {
		return tag
	}

	if tag, ok := parse(session); ok {
		return tag
	}

	accepted, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(accepted) == 0 {
		return l.fallback
	}

	_, index, confidence := l.matcher.Match(accepted...)
	if confidence == language.No {
		return l.fallback
	}

	return l.tags[index]
}

// Translate returns the message for the key in the language.
// Unknown keys are formatted as they are.
func (l *Localizer) Translate(tag language.Tag, key string, args ...any) string {
	return message.NewPrinter(tag, message.Catalog(l.catalog)).Sprintf(key, args...)
}
