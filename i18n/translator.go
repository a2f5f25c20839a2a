// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package i18n provides dotted-path message lookup over the per-locale
// translation dictionaries carried by a resolved configuration.
//
// Lookup is a pure traversal: no caching, no memoisation, O(depth of key)
// per call. Missing keys fall back to the en-US dictionary and finally to
// the key itself, so a missed translation renders as a visible marker
// instead of failing.
package i18n

import (
	"strings"

	"github.com/akashmahale123/nextjs-brand/models"
)

// FallbackLocale is the dictionary consulted when the requested locale has
// no dictionary, or has one that misses the requested key.
const FallbackLocale = "en-US"

// Translator resolves dotted-path keys against a set of per-locale
// dictionaries. It holds no mutable state and is safe for concurrent use.
type Translator struct {
	dicts         map[string]models.TranslationDictionary
	defaultLocale string
}

// NewTranslator builds a Translator over dicts. defaultLocale is used by
// [Translator.T] when the caller passes no locale; "" falls back to
// [FallbackLocale]. A nil dicts map is treated as empty.
func NewTranslator(dicts map[string]models.TranslationDictionary, defaultLocale string) *Translator {
	if dicts == nil {
		dicts = map[string]models.TranslationDictionary{}
	}
	if defaultLocale == "" {
		defaultLocale = FallbackLocale
	}

	return &Translator{
		dicts:         dicts,
		defaultLocale: defaultLocale,
	}
}

// Lookup resolves key against the dictionary for locale.
//
// The primary dictionary is dicts[locale], or dicts[en-US] when the locale
// has none. When the primary traversal misses and locale is not en-US, the
// en-US dictionary is tried once more. Only string leaves count as found;
// a nested table or non-string leaf under an exhausted key reports a miss
// rather than leaking non-display data to callers.
func (t *Translator) Lookup(key, locale string) (string, bool) {
	primary, ok := t.dicts[locale]
	if !ok {
		primary = t.dicts[FallbackLocale]
	}

	if v, found := traverse(primary, key); found {
		return v, true
	}
	if locale != FallbackLocale {
		if v, found := traverse(t.dicts[FallbackLocale], key); found {
			return v, true
		}
	}

	return "", false
}

// T is the render-path helper: it resolves key for the optional locale
// (defaulting to the translator's default locale) and returns the key
// itself when no translation exists, acting as the missing-translation
// marker in rendered output.
func (t *Translator) T(key string, locale ...string) string {
	loc := t.defaultLocale
	if len(locale) > 0 && locale[0] != "" {
		loc = locale[0]
	}

	if v, ok := t.Lookup(key, loc); ok {
		return v
	}

	return key
}

// DefaultLocale returns the locale used by [Translator.T] when none is
// passed explicitly.
func (t *Translator) DefaultLocale() string {
	return t.defaultLocale
}

// traverse walks dict segment by segment along the dotted key. The walk
// aborts on the first absent or nil value, and on a terminal value reached
// while segments remain.
func traverse(dict models.TranslationDictionary, key string) (string, bool) {
	if dict == nil {
		return "", false
	}

	var current any = map[string]any(dict)
	for _, segment := range strings.Split(key, ".") {
		node, ok := asTable(current)
		if !ok {
			return "", false
		}
		current, ok = node[segment]
		if !ok || current == nil {
			return "", false
		}
	}

	leaf, ok := current.(string)
	return leaf, ok
}

// asTable normalises the two map shapes a dictionary value can carry:
// plain decoder output and nested TranslationDictionary values.
func asTable(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case models.TranslationDictionary:
		return m, true
	}

	return nil, false
}
