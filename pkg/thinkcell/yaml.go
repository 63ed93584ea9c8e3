package thinkcell

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// Object types accepted in YAML presentation configs.
const (
	ObjectTypeText  = "text"
	ObjectTypeTable = "table"
	ObjectTypeChart = "chart"
	ObjectTypePie   = "pie"
)

// presentationConfig is the YAML structure.
type presentationConfig struct {
	Slides []slideEntry `yaml:"slides"`
}

type slideEntry struct {
	Template string        `yaml:"template"`
	Objects  []objectEntry `yaml:"objects"`
}

type objectEntry struct {
	Name          string          `yaml:"name"`
	Type          string          `yaml:"type"`
	Text          string          `yaml:"text"`
	Categories    []interface{}   `yaml:"categories"`
	Data          [][]interface{} `yaml:"data"`
	Fill          []string        `yaml:"fill"`
	FirstRowBlank *bool           `yaml:"first_row_blank"`
}

// NewPresentationFromYamlConfig builds a full Presentation from a declarative
// YAML description. Each slide entry names its .pptx template and a list of
// objects (text, table, chart or pie) with the same parameters the builder
// methods take. TemplateOptions are applied to every Template created.
func NewPresentationFromYamlConfig(yamlConfig string, opts ...TemplateOption) (*Presentation, error) {
	if yamlConfig == "" {
		return nil, fmt.Errorf("yaml config is empty")
	}
	var cfg presentationConfig
	if err := yaml.Unmarshal([]byte(yamlConfig), &cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(cfg.Slides) == 0 {
		return nil, fmt.Errorf("yaml config declares no slides")
	}

	p := NewPresentation()
	for _, slide := range cfg.Slides {
		t := NewTemplate(slide.Template, opts...)
		for _, obj := range slide.Objects {
			if err := addConfiguredObject(t, obj); err != nil {
				return nil, fmt.Errorf("object %q: %w", obj.Name, err)
			}
		}
		if err := p.AddTemplate(t); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func addConfiguredObject(t *Template, obj objectEntry) error {
	var objOpts []ObjectOption
	if obj.Fill != nil {
		objOpts = append(objOpts, WithFill(obj.Fill))
	}
	if obj.FirstRowBlank != nil {
		objOpts = append(objOpts, WithFirstRowBlank(*obj.FirstRowBlank))
	}

	switch obj.Type {
	case ObjectTypeText:
		return t.AddTextField(obj.Name, obj.Text)
	case ObjectTypeTable:
		return t.AddTable(obj.Name, obj.Data, objOpts...)
	case ObjectTypeChart:
		return t.AddChart(obj.Name, obj.Categories, obj.Data, objOpts...)
	case ObjectTypePie:
		return t.AddPieChart(obj.Name, obj.Data, objOpts...)
	default:
		return fmt.Errorf("unknown object type %q", obj.Type)
	}
}
