package templates

import (
	"fmt"
	"strings"
)

// DefaultTemplateName is the template used when --template is not specified.
const DefaultTemplateName = Vanilla

// Template describes a bundled template.
type Template struct {
	// Name is the template identifier.
	Name TemplateName `json:"name" yaml:"name"`

	// Description explains what the template contains.
	Description string `json:"description" yaml:"description"`

	// Default marks the template used when --template is omitted.
	Default bool `json:"default" yaml:"default"`
}

var registry = map[TemplateName]Template{
	Vanilla: {
		Name:        Vanilla,
		Description: "Plain JavaScript with a single entry module",
		Default:     true,
	},
	Vue: {
		Name:        Vue,
		Description: "Vue 3 with single-file components",
	},
}

// Get returns a template by name.
func Get(name string) (Template, error) {
	t, ok := registry[TemplateName(name)]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q; valid templates: %s", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// List returns all available templates in display order.
func List() []Template {
	return []Template{registry[Vanilla], registry[Vue]}
}

// Names returns all template names.
func Names() []string {
	return []string{string(Vanilla), string(Vue)}
}
