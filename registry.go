package screenreport

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lvillar/screenreport/screenplay"
	"github.com/lvillar/screenreport/textdoc"
)

// Report is one kind of exportable report.
type Report interface {
	// Title is the human-readable name of the report.
	Title() string
	// RequiresConfiguration reports whether the user should fill in the
	// report's form before generating it.
	RequiresConfiguration() bool
	// Fields describes the report's configurable fields.
	Fields() []FieldDescriptor
	// Render builds the report content for sp.
	Render(sp *screenplay.Screenplay) (*textdoc.Document, error)
}

// Configurable is a Report whose fields can be set by name.
type Configurable interface {
	Report
	SetField(name string, value any) error
}

// FieldDescriptor describes one configurable field of a report for a
// properties panel.
type FieldDescriptor struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Editor string `json:"editor"`
}

// Form is the configuration-form description of a report.
type Form struct {
	Title  string            `json:"title"`
	Fields []FieldDescriptor `json:"fields"`
}

// FormInfo returns the configuration form of r.
func FormInfo(r Report) Form {
	fields := r.Fields()
	if fields == nil {
		fields = []FieldDescriptor{}
	}
	return Form{Title: r.Title(), Fields: fields}
}

// Configure sets each of values on r. Reports that are not Configurable
// accept no values.
func Configure(r Report, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	c, ok := r.(Configurable)
	if !ok {
		return fmt.Errorf("screenreport: %s has no configurable fields", r.Title())
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := c.SetField(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]func() Report)
)

// Register makes a report available under name. It panics if name is
// already registered or factory is nil.
func Register(name string, factory func() Report) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if factory == nil {
		panic("screenreport: Register factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic("screenreport: Register called twice for report " + name)
	}
	registry[name] = factory
}

// NewReport creates a fresh report of the named kind.
func NewReport(name string) (Report, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("screenreport: %w %q", ErrUnknownReport, name)
	}
	return factory(), nil
}

// Reports returns the sorted names of the registered reports.
func Reports() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
