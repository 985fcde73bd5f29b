package screenreport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvillar/screenreport/screenplay"
	"github.com/lvillar/screenreport/textdoc"
)

func init() {
	Register("scene-list", func() Report { return &sceneListReport{} })
}

type plainReport struct{}

func (plainReport) Title() string               { return "Plain" }
func (plainReport) RequiresConfiguration() bool { return false }
func (plainReport) Fields() []FieldDescriptor   { return nil }
func (plainReport) Render(*screenplay.Screenplay) (*textdoc.Document, error) {
	return textdoc.New(), nil
}

func TestRegistry(t *testing.T) {
	assert.Contains(t, Reports(), "scene-list")

	r, err := NewReport("scene-list")
	require.NoError(t, err)
	assert.Equal(t, "Scene List", r.Title())

	other, err := NewReport("scene-list")
	require.NoError(t, err)
	assert.NotSame(t, r, other, "each NewReport returns a fresh report")

	_, err = NewReport("budget")
	assert.ErrorIs(t, err, ErrUnknownReport)
	assert.ErrorContains(t, err, `"budget"`)
}

func TestRegisterPanics(t *testing.T) {
	assert.Panics(t, func() { Register("scene-list", func() Report { return plainReport{} }) })
	assert.Panics(t, func() { Register("nil-factory", nil) })
}

func TestFormInfo(t *testing.T) {
	out, err := json.Marshal(FormInfo(&sceneListReport{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"title": "Scene List",
		"fields": [{"name": "repeat", "label": "Repeat each scene", "editor": "IntegerSpinBox"}]
	}`, string(out))

	out, err = json.Marshal(FormInfo(plainReport{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"title": "Plain", "fields": []}`, string(out))
}

func TestConfigure(t *testing.T) {
	r := &sceneListReport{}
	require.NoError(t, Configure(r, map[string]any{"repeat": 3}))
	assert.Equal(t, 3, r.repeat)

	assert.ErrorIs(t, Configure(r, map[string]any{"colour": "red"}), ErrUnknownField)
	assert.NoError(t, Configure(plainReport{}, nil))
	assert.ErrorContains(t, Configure(plainReport{}, map[string]any{"x": 1}), "no configurable fields")
}
