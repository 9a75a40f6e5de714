package i18n

import (
	"embed"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/internal/common/cnst"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

var (
	translatorMu sync.Mutex
	translator   *I18n

	supported = []language.Tag{language.English, language.Chinese}
	matcher   = language.NewMatcher(supported)
)

// I18n manages internationalization and translations
type I18n struct {
	bundle      *i18n.Bundle
	defaultLang language.Tag
}

// NewI18n creates a translator preloaded with the embedded catalogues
func NewI18n(defaultLang language.Tag) (*I18n, error) {
	bundle := i18n.NewBundle(defaultLang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(locales, "locales/"+e.Name()); err != nil {
			return nil, fmt.Errorf("failed to load embedded translations %s: %w", e.Name(), err)
		}
	}

	return &I18n{bundle: bundle, defaultLang: defaultLang}, nil
}

// LoadTranslations loads extra .toml files, overriding embedded messages with the same id
func (i *I18n) LoadTranslations(dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read translations directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".toml") {
			continue
		}
		if _, err := i.bundle.LoadMessageFile(filepath.Join(dir, file.Name())); err != nil {
			return fmt.Errorf("failed to load translations %s: %w", file.Name(), err)
		}
	}
	return nil
}

// Translate returns a localized string for the given message ID and language.
// Unknown ids come back unchanged.
func (i *I18n) Translate(msgID string, lang string, templateData map[string]any) string {
	localizer := i18n.NewLocalizer(i.bundle, lang, i.defaultLang.String())

	lc := &i18n.LocalizeConfig{MessageID: msgID}
	if len(templateData) > 0 {
		lc.TemplateData = templateData
	}

	msg, err := localizer.Localize(lc)
	if err != nil {
		return msgID
	}
	return msg
}

// InitTranslator installs the global translator. An empty path loads only
// the embedded catalogues.
func InitTranslator(path, defaultLang string) error {
	t, err := NewI18n(language.Make(defaultLang))
	if err != nil {
		return err
	}
	if path != "" {
		if err := t.LoadTranslations(path); err != nil {
			return err
		}
	}

	translatorMu.Lock()
	translator = t
	translatorMu.Unlock()
	return nil
}

// GetTranslator returns the global translator, creating the embedded one on first use
func GetTranslator() *I18n {
	translatorMu.Lock()
	defer translatorMu.Unlock()
	if translator == nil {
		t, err := NewI18n(language.Make(cnst.LangDefault))
		if err != nil {
			return nil
		}
		translator = t
	}
	return translator
}

// LanguageFromRequest picks X-Lang first, then Accept-Language, matched against the supported set
func LanguageFromRequest(r *http.Request) string {
	if lang := r.Header.Get(cnst.XLang); lang != "" {
		return normalizeLang(lang)
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		tags, _, err := language.ParseAcceptLanguage(accept)
		if err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return baseOf(supported[idx])
			}
		}
	}
	return cnst.LangDefault
}

func normalizeLang(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return cnst.LangDefault
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return cnst.LangDefault
	}
	return baseOf(supported[idx])
}

func baseOf(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// TranslateMessage translates a message ID using the context's language preference
func TranslateMessage(c *gin.Context, msgID string, data map[string]any) string {
	lang := c.GetString(cnst.CtxKeyLang)
	if lang == "" {
		lang = cnst.LangDefault
	}

	if t := GetTranslator(); t != nil {
		return t.Translate(msgID, lang, data)
	}
	return msgID
}
