package text

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Request describes the font wanted for a piece of text.
type Request struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
}

func (r Request) String() string {
	s := fmt.Sprintf("%s %gpx", r.Family, r.Size)
	if r.Bold {
		s += " bold"
	}
	if r.Italic {
		s += " italic"
	}
	return s
}

// Candidate is one entry in an ordered font resolution list.
type Candidate interface {
	// Name identifies the candidate in a Resolution.
	Name() string

	// Open returns a face for the request and a description of the font
	// used. It returns an error wrapping ErrNoMatch when the candidate
	// has nothing suitable.
	Open(req Request) (font.Face, string, error)
}

// Resolution reports which candidate produced a face.
type Resolution struct {
	// Candidate is the Name of the candidate that succeeded.
	Candidate string

	// Font describes the font file or family that was opened.
	Font string
}

// Substituted reports whether the face came from a generic fallback
// rather than a font matching the requested family.
func (r Resolution) Substituted() bool {
	return r.Candidate == CandidateEmbeddedDefault || r.Candidate == CandidateBasic
}

// Candidate names.
const (
	CandidateSystem          = "system"
	CandidateDir             = "dir"
	CandidateEmbedded        = "embedded"
	CandidateEmbeddedDefault = "embedded-default"
	CandidateBasic           = "basic"
)

// Resolver tries candidates in order until one produces a face.
// The last candidate is always the basic face, so Resolve cannot fail.
//
// Resolver is safe for concurrent use.
type Resolver struct {
	candidates []Candidate
}

// NewResolver creates a resolver from an ordered candidate list. The basic
// candidate is appended unless the list already ends with it.
func NewResolver(candidates ...Candidate) *Resolver {
	cs := make([]Candidate, 0, len(candidates)+1)
	for _, c := range candidates {
		if c != nil {
			cs = append(cs, c)
		}
	}
	if len(cs) == 0 || cs[len(cs)-1].Name() != CandidateBasic {
		cs = append(cs, Basic())
	}
	return &Resolver{candidates: cs}
}

// DefaultResolver returns the standard order: installed system fonts, font
// files in dirs, embedded families by name, the embedded default family,
// and finally the basic face.
func DefaultResolver(dirs ...string) *Resolver {
	return NewResolver(
		System(),
		Dir(dirs...),
		Embedded(),
		EmbeddedDefault(),
	)
}

// EmbeddedResolver returns a resolver that never touches the file system.
// Results depend only on the request, which makes it suitable for tests
// and reproducible builds.
func EmbeddedResolver() *Resolver {
	return NewResolver(Embedded(), EmbeddedDefault())
}

// Candidates returns the candidate names in resolution order.
func (r *Resolver) Candidates() []string {
	names := make([]string, len(r.candidates))
	for i, c := range r.candidates {
		names[i] = c.Name()
	}
	return names
}

// Resolve returns a face for req from the first candidate that succeeds.
func (r *Resolver) Resolve(req Request) (font.Face, Resolution) {
	log := Logger()
	for _, c := range r.candidates {
		face, desc, err := c.Open(req)
		if err != nil {
			if !errors.Is(err, ErrNoMatch) {
				log.Warn("text: font candidate failed",
					"candidate", c.Name(), "request", req.String(), "err", err)
			}
			continue
		}
		res := Resolution{Candidate: c.Name(), Font: desc}
		log.Debug("text: font resolved",
			"candidate", res.Candidate, "font", res.Font, "request", req.String())
		if res.Substituted() {
			log.Warn("text: requested font unavailable, using fallback",
				"family", req.Family, "fallback", res.Font)
		}
		return face, res
	}

	// Unreachable with a well-formed list: the basic candidate never fails.
	return basicfont.Face7x13, Resolution{Candidate: CandidateBasic, Font: basicName}
}

// sourceCache memoizes parsed font files by path and collection index.
type sourceCache struct {
	mu      sync.Mutex
	sources map[sourceKey]*FontSource
}

type sourceKey struct {
	path  string
	index int
}

func (c *sourceCache) load(path string, index int) (*FontSource, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := sourceKey{path, index}
	if s, ok := c.sources[k]; ok {
		return s, nil
	}
	s, err := NewFontSourceFromFile(path, index)
	if err != nil {
		return nil, err
	}
	if c.sources == nil {
		c.sources = make(map[sourceKey]*FontSource)
	}
	c.sources[k] = s
	return s, nil
}

var fileSources sourceCache

// dirCandidate looks for <family>.ttf, .otf or .ttc in a list of
// directories.
type dirCandidate struct {
	dirs []string
}

// Dir returns a candidate that opens <family>.ttf, <family>.otf or
// <family>.ttc from the given directories, in order. A bold or italic
// request first tries the conventional suffixed names
// ("<family>-Bold.ttf", "<family>bd.ttf", ...).
func Dir(dirs ...string) Candidate {
	return &dirCandidate{dirs: dirs}
}

func (c *dirCandidate) Name() string { return CandidateDir }

func (c *dirCandidate) Open(req Request) (font.Face, string, error) {
	if req.Family == "" {
		return nil, "", ErrNoMatch
	}
	for _, dir := range c.dirs {
		for _, stem := range styleStems(req) {
			for _, ext := range []string{".ttf", ".otf", ".ttc"} {
				path := filepath.Join(dir, stem+ext)
				if _, err := os.Stat(path); err != nil {
					continue
				}
				src, err := fileSources.load(path, 0)
				if err != nil {
					return nil, "", err
				}
				face, err := src.Face(req.Size)
				if err != nil {
					return nil, "", err
				}
				return face, path, nil
			}
		}
	}
	return nil, "", fmt.Errorf("%w: %q in %d directories", ErrNoMatch, req.Family, len(c.dirs))
}

// styleStems returns the file name stems to try for req, most specific
// first.
func styleStems(req Request) []string {
	f := req.Family
	var stems []string
	switch {
	case req.Bold && req.Italic:
		stems = append(stems, f+"-BoldItalic", f+"bi", f+"z")
	case req.Bold:
		stems = append(stems, f+"-Bold", f+"bd")
	case req.Italic:
		stems = append(stems, f+"-Italic", f+"i")
	}
	stems = append(stems, f)
	if lower := strings.ToLower(f); lower != f {
		stems = append(stems, lower)
	}
	return stems
}

const basicName = "basicfont 7x13"

type basicCandidate struct{}

// Basic returns the candidate of last resort. It ignores the request and
// always returns basicfont.Face7x13.
func Basic() Candidate { return basicCandidate{} }

func (basicCandidate) Name() string { return CandidateBasic }

func (basicCandidate) Open(Request) (font.Face, string, error) {
	return basicfont.Face7x13, basicName, nil
}
