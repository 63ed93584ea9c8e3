package thinkcell

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyTemplate(t *testing.T) {
	t.Run("valid path", func(t *testing.T) {
		got, err := VerifyTemplate("example.pptx")
		assert.NoError(t, err)
		assert.Equal(t, "example.pptx", got)
	})

	t.Run("wrong extension", func(t *testing.T) {
		_, err := VerifyTemplate("not a file name")
		assert.True(t, errors.Is(err, ErrInvalidTemplate))
	})

	t.Run("not a string", func(t *testing.T) {
		_, err := VerifyTemplate(5)
		assert.True(t, errors.Is(err, ErrInvalidTemplate))
	})

	t.Run("extension is case sensitive", func(t *testing.T) {
		_, err := VerifyTemplate("example.PPTX")
		assert.True(t, errors.Is(err, ErrInvalidTemplate))
	})
}

func TestAddTemplate(t *testing.T) {
	p := NewPresentation()

	err := p.AddTemplate(NewTemplate("bad path"))
	assert.True(t, errors.Is(err, ErrInvalidTemplate))
	assert.Empty(t, p.Slides(), "failed add must leave the slide list unmodified")

	err = p.AddTemplate(NewTemplate("example.pptx"))
	assert.NoError(t, err)
	assert.Len(t, p.Slides(), 1)
}

func TestSavePPTTCBadExtension(t *testing.T) {
	p := NewPresentation(NewTemplate("example.pptx"))
	err := p.SavePPTTC("output.json")
	assert.True(t, errors.Is(err, ErrInvalidOutputPath))
}

func TestSavePPTTCNoSlides(t *testing.T) {
	p := NewPresentation()
	err := p.SavePPTTC(filepath.Join(t.TempDir(), "output.ppttc"))
	assert.True(t, errors.Is(err, ErrNoSlides))
}

func TestSavePPTTC(t *testing.T) {
	tmpl := NewTemplate("example.pptx")
	assert.NoError(t, tmpl.AddTextField("Title", "A great slide"))

	second := NewTemplate("other.pptx")
	assert.NoError(t, second.AddPieChart("Pie 1", [][]interface{}{{"label1", 1}}))

	p := NewPresentation()
	assert.NoError(t, p.AddTemplate(tmpl))
	assert.NoError(t, p.AddTemplate(second))

	path := filepath.Join(t.TempDir(), "output.ppttc")
	assert.NoError(t, p.SavePPTTC(path))

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)

	want := `[
		{
			"template": "example.pptx",
			"data": [{"name": "Title", "table": [[{"string": "A great slide"}]]}]
		},
		{
			"template": "other.pptx",
			"data": [
				{"name": "Pie 1", "table": [[], [{"string": "label1"}, {"number": 1}]]}
			]
		}
	]`
	assert.JSONEq(t, want, string(raw))
}

// Templates are held by reference: objects added after AddTemplate must show
// up in the saved document.
func TestTemplateAliasing(t *testing.T) {
	tmpl := NewTemplate("example.pptx")
	assert.NoError(t, tmpl.AddTextField("Before", "first"))

	p := NewPresentation()
	assert.NoError(t, p.AddTemplate(tmpl))

	assert.NoError(t, tmpl.AddTextField("After", "second"))

	path := filepath.Join(t.TempDir(), "output.ppttc")
	assert.NoError(t, p.SavePPTTC(path))

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"After"`)
}
