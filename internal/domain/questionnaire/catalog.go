package questionnaire

import (
	_ "embed"
	"sync"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog is the immutable table of sections and questions.
// Accessors hand out copies so callers can't mutate the shared table.
type Catalog struct {
	sections  []Section
	questions []Question
	labels    map[string]string
}

type catalogFile struct {
	Sections  []Section  `yaml:"sections"`
	Questions []Question `yaml:"questions"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. It panics if the embedded data is invalid.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(defaultCatalogYAML)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load decodes and validates a catalog document.
func Load(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "catalog: decode yaml")
	}
	if len(f.Sections) == 0 {
		return nil, eris.New("catalog: no sections")
	}

	sections := make(map[SectionKey]bool, len(f.Sections))
	for _, s := range f.Sections {
		if s.Key == "" {
			return nil, eris.New("catalog: section without key")
		}
		if sections[s.Key] {
			return nil, eris.Errorf("catalog: duplicate section %q", s.Key)
		}
		sections[s.Key] = true
	}

	// answers are addressed by one flat map, so ids must be unique across sub-fields too
	labels := make(map[string]string)
	claim := func(id, label string) error {
		if id == "" {
			return eris.New("catalog: empty identifier")
		}
		if _, dup := labels[id]; dup {
			return eris.Errorf("catalog: duplicate identifier %q", id)
		}
		labels[id] = label
		return nil
	}

	for _, q := range f.Questions {
		if err := claim(q.ID, q.Label); err != nil {
			return nil, err
		}
		if !sections[q.Section] {
			return nil, eris.Errorf("catalog: question %q references unknown section %q", q.ID, q.Section)
		}
		if !q.Kind.valid() {
			return nil, eris.Errorf("catalog: question %q has unknown kind %q", q.ID, q.Kind)
		}
		if q.Kind == KindSelect && len(q.Options) == 0 {
			return nil, eris.Errorf("catalog: select question %q has no options", q.ID)
		}
		for _, sf := range q.SubFields {
			if err := claim(sf.ID, sf.Label); err != nil {
				return nil, err
			}
			if sf.Kind != KindNumeric && sf.Kind != KindShortText {
				return nil, eris.Errorf("catalog: sub-field %q must be numeric or short_text", sf.ID)
			}
		}
	}

	return &Catalog{
		sections:  f.Sections,
		questions: f.Questions,
		labels:    labels,
	}, nil
}

// Sections returns the sections in navigation order.
func (c *Catalog) Sections() []Section {
	return append([]Section(nil), c.sections...)
}

// Questions returns every question in declaration order.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	for i, q := range c.questions {
		out[i] = q.clone()
	}
	return out
}

// QuestionsFor returns the questions of one section in declaration order.
func (c *Catalog) QuestionsFor(key SectionKey) []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Section == key {
			out = append(out, q.clone())
		}
	}
	return out
}

// Label returns the display label for a question or sub-field id,
// or the id itself when the catalog doesn't know it.
func (c *Catalog) Label(id string) string {
	if l, ok := c.labels[id]; ok {
		return l
	}
	return id
}

// Has reports whether id names a question or sub-field.
func (c *Catalog) Has(id string) bool {
	_, ok := c.labels[id]
	return ok
}
