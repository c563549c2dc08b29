package questionnaire

// SectionKey identifies one of the five questionnaire sections.
type SectionKey string

const (
	SectionVision    SectionKey = "A"
	SectionWedge     SectionKey = "B"
	SectionExpansion SectionKey = "C"
	SectionTraction  SectionKey = "D"
	SectionTeam      SectionKey = "E"
)

// Kind is the input kind of a question or sub-field.
type Kind string

const (
	KindLongText  Kind = "long_text"
	KindShortText Kind = "short_text"
	KindNumeric   Kind = "numeric"
	KindSelect    Kind = "single_select"
	KindFounders  Kind = "founders"
)

func (k Kind) valid() bool {
	switch k {
	case KindLongText, KindShortText, KindNumeric, KindSelect, KindFounders:
		return true
	}
	return false
}

// Section groups questions. Catalog order is navigation and prompt order.
type Section struct {
	Key      SectionKey `yaml:"key" json:"key"`
	Title    string     `yaml:"title" json:"title"`
	Subtitle string     `yaml:"subtitle" json:"subtitle"`
}

// SubField is an extra input rendered alongside a question, answered under its own id.
type SubField struct {
	ID          string `yaml:"id" json:"id"`
	Label       string `yaml:"label" json:"label"`
	Kind        Kind   `yaml:"kind" json:"kind"`
	Placeholder string `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
}

// Question is one prompt item of the questionnaire.
type Question struct {
	ID          string     `yaml:"id" json:"id"`
	Section     SectionKey `yaml:"section" json:"section"`
	Label       string     `yaml:"label" json:"label"`
	HelpText    string     `yaml:"help,omitempty" json:"helpText,omitempty"`
	Kind        Kind       `yaml:"kind" json:"kind"`
	Required    bool       `yaml:"required" json:"required"`
	Options     []string   `yaml:"options,omitempty" json:"options,omitempty"`
	Placeholder string     `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	SubFields   []SubField `yaml:"sub_fields,omitempty" json:"subFields,omitempty"`
}

func (q Question) clone() Question {
	c := q
	if q.Options != nil {
		c.Options = append([]string(nil), q.Options...)
	}
	if q.SubFields != nil {
		c.SubFields = append([]SubField(nil), q.SubFields...)
	}
	return c
}
