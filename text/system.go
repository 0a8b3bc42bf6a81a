package text

import (
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	xfont "golang.org/x/image/font"
)

// systemIndex is the lazily built index of installed fonts. Scanning is
// expensive the first time and served from fontscan's on-disk cache
// afterwards.
var systemIndex struct {
	once       sync.Once
	footprints []fontscan.Footprint
	err        error
}

// SystemFonts returns the footprints of all installed fonts. The first
// call scans the system font directories.
func SystemFonts() ([]fontscan.Footprint, error) {
	systemIndex.once.Do(func() {
		systemIndex.footprints, systemIndex.err = fontscan.SystemFonts(printfLogger{}, "")
		if systemIndex.err != nil {
			Logger().Warn("text: system font scan failed", "err", systemIndex.err)
			return
		}
		Logger().Debug("text: system fonts indexed", "count", len(systemIndex.footprints))
	})
	return systemIndex.footprints, systemIndex.err
}

// SystemFontDirs returns the platform's standard font directories.
func SystemFontDirs() []string {
	dirs, err := fontscan.DefaultFontDirectories(printfLogger{})
	if err != nil {
		Logger().Debug("text: no system font directories", "err", err)
		return nil
	}
	return dirs
}

type systemCandidate struct{}

// System returns a candidate that opens installed fonts whose family
// matches the request, preferring the variant closest to the requested
// weight and style.
func System() Candidate { return systemCandidate{} }

func (systemCandidate) Name() string { return CandidateSystem }

func (systemCandidate) Open(req Request) (xfont.Face, string, error) {
	fps, err := SystemFonts()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrNoMatch, err)
	}
	fp, ok := bestFootprint(fps, req)
	if !ok {
		return nil, "", fmt.Errorf("%w: %q is not installed", ErrNoMatch, req.Family)
	}
	src, err := fileSources.load(fp.Location.File, int(fp.Location.Index))
	if err != nil {
		return nil, "", err
	}
	face, err := src.Face(req.Size)
	if err != nil {
		return nil, "", err
	}
	return face, fp.Location.File, nil
}

// bestFootprint picks the footprint of req.Family whose aspect is closest
// to the requested bold and italic flags.
func bestFootprint(fps []fontscan.Footprint, req Request) (fontscan.Footprint, bool) {
	want := font.NormalizeFamily(req.Family)
	if want == "" {
		return fontscan.Footprint{}, false
	}

	best, bestScore := -1, 0
	for i := range fps {
		if fps[i].Family != want {
			continue
		}
		if s := aspectScore(fps[i].Aspect, req); best < 0 || s < bestScore {
			best, bestScore = i, s
		}
	}
	if best < 0 {
		return fontscan.Footprint{}, false
	}
	return fps[best], true
}

// aspectScore measures how far an aspect is from the request. Lower is
// better; a style mismatch outweighs any weight difference.
func aspectScore(a font.Aspect, req Request) int {
	wantWeight := font.WeightNormal
	if req.Bold {
		wantWeight = font.WeightBold
	}
	d := int(a.Weight - wantWeight)
	if d < 0 {
		d = -d
	}
	italic := a.Style == font.StyleItalic
	if italic != req.Italic {
		d += 10000
	}
	if a.Stretch != 0 && a.Stretch != font.StretchNormal {
		d += 100
	}
	return d
}
