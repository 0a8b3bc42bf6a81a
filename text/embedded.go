package text

import (
	"fmt"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10boldoblique"
	"github.com/go-fonts/latin-modern/lmsans10oblique"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// family holds the four style variants of an embedded family.
type family struct {
	name                           string
	regular, bold, italic, boldIta []byte
}

func (f *family) variant(bold, italic bool) ([]byte, string) {
	switch {
	case bold && italic:
		return f.boldIta, f.name + " Bold Italic"
	case bold:
		return f.bold, f.name + " Bold"
	case italic:
		return f.italic, f.name + " Italic"
	default:
		return f.regular, f.name
	}
}

// DefaultFamily is the embedded family used when no requested family can
// be found.
const DefaultFamily = "Go"

var embeddedFamilies = []*family{
	{DefaultFamily, goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF},
	{"Go Mono", gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF},
	{"Latin Modern Roman", lmroman10regular.TTF, lmroman10bold.TTF, lmroman10italic.TTF, lmroman10bolditalic.TTF},
	{"Latin Modern Sans", lmsans10regular.TTF, lmsans10bold.TTF, lmsans10oblique.TTF, lmsans10boldoblique.TTF},
}

// EmbeddedFamilies returns the names of the families compiled into the
// package.
func EmbeddedFamilies() []string {
	names := make([]string, len(embeddedFamilies))
	for i, f := range embeddedFamilies {
		names[i] = f.name
	}
	return names
}

func lookupEmbedded(name string) *family {
	want := font.NormalizeFamily(name)
	for _, f := range embeddedFamilies {
		if font.NormalizeFamily(f.name) == want {
			return f
		}
	}
	return nil
}

// embeddedSources memoizes parsed embedded fonts by variant name.
var embeddedSources sync.Map // map[string]*FontSource

func openEmbedded(f *family, req Request) (xfont.Face, string, error) {
	data, name := f.variant(req.Bold, req.Italic)
	v, ok := embeddedSources.Load(name)
	if !ok {
		src, err := NewFontSource(data, 0)
		if err != nil {
			return nil, "", fmt.Errorf("text: embedded font %s: %w", name, err)
		}
		v, _ = embeddedSources.LoadOrStore(name, src)
	}
	face, err := v.(*FontSource).Face(req.Size)
	if err != nil {
		return nil, "", err
	}
	return face, name, nil
}

type embeddedCandidate struct{}

// Embedded returns a candidate that matches the requested family against
// the embedded families ("Go", "Go Mono", "Latin Modern Roman",
// "Latin Modern Sans"), ignoring case and spacing.
func Embedded() Candidate { return embeddedCandidate{} }

func (embeddedCandidate) Name() string { return CandidateEmbedded }

func (embeddedCandidate) Open(req Request) (xfont.Face, string, error) {
	f := lookupEmbedded(req.Family)
	if f == nil {
		return nil, "", fmt.Errorf("%w: %q is not embedded", ErrNoMatch, req.Family)
	}
	return openEmbedded(f, req)
}

type embeddedDefaultCandidate struct{}

// EmbeddedDefault returns a candidate that opens DefaultFamily at the
// requested size and style, whatever family was asked for.
func EmbeddedDefault() Candidate { return embeddedDefaultCandidate{} }

func (embeddedDefaultCandidate) Name() string { return CandidateEmbeddedDefault }

func (embeddedDefaultCandidate) Open(req Request) (xfont.Face, string, error) {
	return openEmbedded(embeddedFamilies[0], req)
}
