// Package locale supplies the user-visible strings of the marquee screens.
// Messages live in embedded go-i18n TOML files, one per language, with
// English as the fallback.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message ids.
const (
	HomeTitle     = "HomeTitle"
	DetailsTitle  = "DetailsTitle"
	DirectorLine  = "DirectorLine"
	ReleasedLine  = "ReleasedLine"
	PlotLabel     = "PlotLabel"
	ActorsLine    = "ActorsLine"
	RatingLine    = "RatingLine"
	ImagesHeading = "ImagesHeading"
	MovieNotFound = "MovieNotFound"
	EmptyCatalog  = "EmptyCatalog"
	HelpOpen      = "HelpOpen"
	HelpExpand    = "HelpExpand"
	HelpBack      = "HelpBack"
	HelpQuit      = "HelpQuit"
)

//go:embed messages/*.toml
var messageFiles embed.FS

// Localizer renders messages for one language.
type Localizer struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(messageFiles, "messages")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(messageFiles, path.Join("messages", entry.Name())); err != nil {
			return nil, fmt.Errorf("locale: load %s: %w", entry.Name(), err)
		}
	}
	return bundle, nil
}

// New returns a Localizer for a BCP 47 language tag such as "en" or "es-MX".
// An empty tag means English. Languages without messages fall back to English.
func New(lang string) (*Localizer, error) {
	tag := language.English
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("locale: %q: %w", lang, err)
		}
		tag = parsed
	}

	bundle, err := newBundle()
	if err != nil {
		return nil, err
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	_, index, _ := matcher.Match(tag)

	return &Localizer{
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		tag:       bundle.LanguageTags()[index],
	}, nil
}

// English returns the fallback Localizer. The embedded messages are known
// good, so it panics only on a broken build.
func English() *Localizer {
	l, err := New("en")
	if err != nil {
		panic(err)
	}
	return l
}

// Language returns the language messages are actually rendered in.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Text renders message id with optional template data.
// Unknown ids render as the id itself so a missing string is visible, not fatal.
func (l *Localizer) Text(id string, data map[string]any) string {
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return s
}
