package thinkcell

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// TemplateExt is the extension a template path must carry.
	TemplateExt = ".pptx"
	// OutputExt is the extension ppttc output files must carry.
	OutputExt = ".ppttc"
)

// Presentation collects Templates and saves them as one ppttc document.
// Templates are held by reference: mutating a Template after it has been
// added is visible in the saved output, which is intentional and lets callers
// keep filling slides up to the final save.
type Presentation struct {
	slides []*Template
}

// NewPresentation returns a Presentation seeded with the given slides. The
// slides are not validated here; use AddTemplate for checked insertion.
func NewPresentation(slides ...*Template) *Presentation {
	return &Presentation{slides: slides}
}

// Slides returns the templates added so far, in insertion order.
func (p *Presentation) Slides() []*Template { return p.slides }

// VerifyTemplate checks that a template path is a string ending in .pptx and
// returns it unchanged. It does not check that the file exists or that it
// contains think-cell objects.
func VerifyTemplate(path interface{}) (string, error) {
	s, ok := path.(string)
	if !ok {
		return "", fmt.Errorf("%w: %v is not a string", ErrInvalidTemplate, path)
	}
	if !strings.HasSuffix(s, TemplateExt) {
		return "", fmt.Errorf("%w: %q is not a PowerPoint file", ErrInvalidTemplate, s)
	}
	return s, nil
}

// AddTemplate verifies the template's path and appends it to the slide list.
// On error the slide list is left unmodified.
func (p *Presentation) AddTemplate(t *Template) error {
	if _, err := VerifyTemplate(t.Path()); err != nil {
		return err
	}
	p.slides = append(p.slides, t)
	return nil
}

// Write serializes the presentation as a JSON array, one document per slide
// template, to w.
func (p *Presentation) Write(w io.Writer) error {
	if len(p.slides) == 0 {
		return fmt.Errorf("%w: add data before saving with AddTemplate", ErrNoSlides)
	}
	docs := make([]Document, 0, len(p.slides))
	for _, t := range p.slides {
		docs = append(docs, t.Serialize())
	}
	return json.NewEncoder(w).Encode(docs)
}

// SavePPTTC writes the presentation to a .ppttc file at path.
func (p *Presentation) SavePPTTC(path string) error {
	if !strings.HasSuffix(path, OutputExt) {
		return fmt.Errorf("%w: got %q", ErrInvalidOutputPath, path)
	}
	if len(p.slides) == 0 {
		return fmt.Errorf("%w: add data before saving with AddTemplate", ErrNoSlides)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := p.Write(f); err != nil {
		return err
	}
	return f.Close()
}
