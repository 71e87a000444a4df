package commands

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pixil98/go-adventure/internal/display"
)

// templateFuncs provides utility functions for templates.
var templateFuncs = func() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["capitalize"] = display.Capitalize
	return funcs
}()

func parseTemplate(tmplStr string) (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return tmpl, nil
}

// ExpandTemplate expands a template string using the provided data.
// The data can be any struct - templates access fields via {{ .FieldName }}.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := parseTemplate(tmplStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// MessageData is what message templates see.
type MessageData struct {
	// Name is the name the player typed, or the matched entity's name.
	Name        string
	Description string
	// Container is the name of the container involved in the action.
	Container string
	// State is the current state of the interactable involved.
	State string
	// Key is the name of the key being used.
	Key      string
	Contents []string
}

// Messages maps a message key to its template.
type Messages map[string]string

// withOverrides returns a copy of m with the templates found under
// config["messages"] replacing the defaults. Unknown keys are rejected.
func (m Messages) withOverrides(config map[string]any) (Messages, error) {
	out := make(Messages, len(m))
	for k, v := range m {
		out[k] = v
	}

	raw, ok := config["messages"]
	if !ok {
		return out, nil
	}
	overrides, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("messages must be an object")
	}
	for k, v := range overrides {
		if _, known := m[k]; !known {
			return nil, fmt.Errorf("unknown message %q", k)
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("message %q must be a string", k)
		}
		if _, err := parseTemplate(s); err != nil {
			return nil, fmt.Errorf("message %q: %w", k, err)
		}
		out[k] = s
	}
	return out, nil
}

// Render expands the message stored under key.
func (m Messages) Render(key string, data MessageData) (string, error) {
	tmpl, ok := m[key]
	if !ok {
		return "", fmt.Errorf("unknown message %q", key)
	}
	return ExpandTemplate(tmpl, data)
}

// Reply renders key as a successful result.
func (m Messages) Reply(key string, data MessageData) (*Result, error) {
	msg, err := m.Render(key, data)
	if err != nil {
		return nil, err
	}
	return &Result{Text: msg}, nil
}

// Fail renders key as a UserError of the given kind.
func (m Messages) Fail(kind ErrorKind, key string, data MessageData) error {
	msg, err := m.Render(key, data)
	if err != nil {
		return err
	}
	return NewUserError(kind, msg)
}
