// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package whitelabel is the factory entry point of the module: it resolves a
// [config.Config] from caller options, environment variables and built-in
// defaults, and bundles it with the runtime helpers — translation lookup and
// locale cookie read/write.
//
// Typical server-rendered usage:
//
//	wl := whitelabel.New(config.Options{
//		Brand:        config.BrandOptions{Name: "Acme"},
//		Translations: dictionaries,
//	})
//
//	store := locale.NewRequestStore(w, r)
//	loc, ok := wl.LocaleCookie(store)
//	if !ok {
//		loc = wl.Config.Regional.DefaultLocale
//	}
//	title := wl.T("nav.home", loc)
package whitelabel

import (
	"github.com/akashmahale123/nextjs-brand/config"
	"github.com/akashmahale123/nextjs-brand/i18n"
	"github.com/akashmahale123/nextjs-brand/locale"
)

// Whitelabel bundles the resolved configuration with its runtime helpers.
// It is immutable after New returns and safe for concurrent use across
// request-handling contexts.
type Whitelabel struct {
	// Config is the resolved aggregate configuration.
	Config *config.Config

	// Translator resolves dotted-path translation keys. Its default locale
	// is the resolved Regional.DefaultLocale.
	Translator *i18n.Translator
}

// New assembles the configuration once and wires the translator to the
// resolved default locale. Construction cannot fail.
func New(opts config.Options) *Whitelabel {
	cfg := config.New(opts)

	return &Whitelabel{
		Config:     cfg,
		Translator: i18n.NewTranslator(cfg.Translations, cfg.Regional.DefaultLocale),
	}
}

// T resolves a dotted-path translation key for the optional locale,
// defaulting to the configuration's default locale. A missed key is
// returned verbatim as the missing-translation marker.
func (w *Whitelabel) T(key string, loc ...string) string {
	return w.Translator.T(key, loc...)
}

// SetLocaleCookie persists loc in the injected cookie store. A nil store is
// a safe no-op (the server-side, no-request case).
func (w *Whitelabel) SetLocaleCookie(s locale.Store, loc string) {
	locale.SetLocale(s, loc)
}

// LocaleCookie reads the persisted locale choice from the injected cookie
// store, reporting ("", false) when the store is nil or holds no choice.
func (w *Whitelabel) LocaleCookie(s locale.Store) (string, bool) {
	return locale.Locale(s)
}
