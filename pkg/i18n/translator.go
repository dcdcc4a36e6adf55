package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"path"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/pixkit/pkg/validator"
)

// DefaultLanguage is used when a request carries no supported language.
const DefaultLanguage = "pt-BR"

//go:embed locales/*.yaml
var embedded embed.FS

// Translator resolves message keys to localized text.
// It is immutable after construction and safe for concurrent use.
type Translator struct {
	// messages is keyed by lower-cased language, then by flattened dotted key.
	messages    map[string]map[string]string
	languages   map[string]string
	defaultLang string
	logger      *slog.Logger
	logMissing  bool
}

// Default returns a translator over the embedded catalog.
func Default(opts ...Option) (*Translator, error) {
	return NewFromFS(embedded, "locales", opts...)
}

// NewFromFS loads every *.yaml and *.yml file in dir.
func NewFromFS(fsys fs.FS, dir string, opts ...Option) (*Translator, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	var sources [][]byte
	for _, entry := range entries {
		ext := path.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		sources = append(sources, content)
	}

	return New(sources, opts...)
}

// New builds a translator from raw YAML documents. Later documents override
// keys defined by earlier ones.
func New(sources [][]byte, opts ...Option) (*Translator, error) {
	t := &Translator{
		messages:    make(map[string]map[string]string),
		languages:   make(map[string]string),
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	for _, src := range sources {
		var doc map[string]any
		if err := yaml.Unmarshal(src, &doc); err != nil {
			return nil, errors.Join(ErrFailedToParseYAML, err)
		}
		for lang, tree := range doc {
			node, ok := tree.(map[string]any)
			if lang == "" || !ok {
				return nil, fmt.Errorf("%w: language %q must map to a tree of messages", ErrInvalidCatalog, lang)
			}
			norm := strings.ToLower(lang)
			t.languages[norm] = lang
			if t.messages[norm] == nil {
				t.messages[norm] = make(map[string]string)
			}
			flatten(t.messages[norm], "", node)
		}
	}

	if len(t.messages) == 0 {
		return nil, fmt.Errorf("%w: no languages found", ErrInvalidCatalog)
	}

	return t, nil
}

func flatten(dst map[string]string, prefix string, node map[string]any) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(dst, key, val)
		case nil:
		default:
			dst[key] = fmt.Sprint(val)
		}
	}
}

// SupportedLanguages returns the catalog languages as written in the YAML files.
func (t *Translator) SupportedLanguages() []string {
	return slices.Sorted(maps.Values(t.languages))
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation reports whether lang defines key, without fallbacks.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.messages[strings.ToLower(lang)][key]
	return ok
}

// T translates key for lang. Arguments are key-value pairs substituted into
// %{name} placeholders:
//
//	t.T("pt-BR", "validation.min_length", "field", "Nome", "min", "3")
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if t.logMissing {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
		tmpl = key
	}
	return substitute(tmpl, args)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	if msg, ok := t.messages[strings.ToLower(lang)][key]; ok {
		return msg, true
	}
	msg, ok := t.messages[strings.ToLower(t.defaultLang)][key]
	return msg, ok
}

// ValidationErrors localizes rule failures, grouped by field. Field names are
// looked up under "fields.<name>"; a rule whose key is missing from the
// catalog keeps its original message.
func (t *Translator) ValidationErrors(lang string, verrs validator.ValidationErrors) map[string][]string {
	if len(verrs) == 0 {
		return nil
	}

	result := make(map[string][]string, len(verrs))
	for _, ve := range verrs {
		msg := ve.Message
		if tmpl, ok := t.lookup(lang, ve.TranslationKey); ok && ve.TranslationKey != "" {
			args := make([]string, 0, 2*len(ve.TranslationValues))
			for name, val := range ve.TranslationValues {
				args = append(args, name, fmt.Sprint(val))
			}
			if label, ok := t.lookup(lang, "fields."+ve.Field); ok {
				args = append(args, "field", label)
			}
			msg = substitute(tmpl, args)
		}
		result[ve.Field] = append(result[ve.Field], msg)
	}
	return result
}

var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders; unknown names are left as is.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
