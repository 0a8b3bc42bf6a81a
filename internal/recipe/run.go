package recipe

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/gogpu/thumb"
)

// Step operation names.
const (
	OpFill       = "fill"
	OpGradient   = "gradient"
	OpLoad       = "load"
	OpBlur       = "blur"
	OpBrightness = "brightness"
	OpClear      = "clear"
	OpTemplate   = "template"
	OpText       = "text"
	OpCircle     = "circle"
	OpRectangle  = "rectangle"
	OpArrow      = "arrow"
	OpStarburst  = "starburst"
	OpEmoji      = "emoji"
	OpUndo       = "undo"
)

// ErrUnknownOp is returned for a step whose op is not recognized.
var ErrUnknownOp = errors.New("recipe: unknown op")

// ErrMissingArg is returned for a step that lacks a required argument.
var ErrMissingArg = errors.New("recipe: missing argument")

// StepError reports which step failed.
type StepError struct {
	Index int // zero-based
	Op    string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("recipe: step %d (%s): %v", e.Index+1, e.Op, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// runner carries state between steps: the text style and the text
// staged by the last template.
type runner struct {
	r      *Recipe
	c      *thumb.Canvas
	style  thumb.Style
	staged string
}

// Run executes the steps in order and stops at the first error, which
// is a *StepError. Glyphs that no font can draw are logged and skipped.
func (r *Recipe) Run(c *thumb.Canvas) error {
	start := time.Now()
	run := &runner{r: r, c: c, style: thumb.DefaultStyle()}
	for i, st := range r.Steps {
		if err := run.step(st); err != nil {
			return &StepError{Index: i, Op: st.Op, Err: err}
		}
	}
	thumb.Logger().Debug("recipe: done", "steps", len(r.Steps), "elapsed", time.Since(start))
	return nil
}

func (run *runner) step(st Step) error {
	c := run.c
	switch st.Op {
	case OpFill:
		if st.Color == nil {
			return fmt.Errorf("%w: color", ErrMissingArg)
		}
		c.Fill(*st.Color)

	case OpGradient:
		if st.From == nil || st.To == nil {
			return fmt.Errorf("%w: from, to", ErrMissingArg)
		}
		c.Gradient(*st.From, *st.To)

	case OpLoad:
		if st.Path == "" {
			return fmt.Errorf("%w: path", ErrMissingArg)
		}
		return c.LoadBackground(run.r.resolve(st.Path))

	case OpBlur:
		c.Blur()

	case OpBrightness:
		c.BeginBrightness()
		defer c.EndBrightness()
		return c.SetBrightness(st.Factor)

	case OpClear:
		c.Clear()

	case OpTemplate:
		p, err := c.ApplyTemplate(thumb.TemplateName(st.Name), run.style)
		if err != nil {
			return err
		}
		run.style = p.Style
		run.staged = p.Text

	case OpText:
		style := run.style
		st.Style.apply(&style)
		s := st.Text
		if s == "" {
			s = run.staged
		}
		res, err := c.DrawText(s, style)
		if err != nil {
			return err
		}
		if res.Substituted() {
			thumb.Logger().Info("recipe: font substituted", "family", style.FontFamily, "font", res.Font)
		}

	case OpCircle:
		s := thumb.DefaultCircle()
		st.Shape.applyCircle(&s)
		c.DrawCircle(s)

	case OpRectangle:
		s := thumb.DefaultRect()
		st.Shape.applyRect(&s)
		c.DrawRectangle(s)

	case OpArrow:
		s := thumb.DefaultArrow()
		st.Shape.applyArrow(&s)
		c.DrawArrow(s)

	case OpStarburst:
		s := thumb.DefaultStarburst()
		st.Shape.applyStarburst(&s)
		c.DrawStarburst(s)

	case OpEmoji:
		at := thumb.EmojiPosition
		if st.At != nil {
			at = image.Pt(st.At[0], st.At[1])
		}
		_, err := c.DrawEmojiAt(st.Glyph, at)
		if errors.Is(err, thumb.ErrGlyphUnsupported) {
			thumb.Logger().Warn("recipe: emoji skipped", "glyph", st.Glyph)
			return nil
		}
		return err

	case OpUndo:
		if !c.Undo() {
			thumb.Logger().Debug("recipe: nothing to undo")
		}

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, st.Op)
	}
	return nil
}

func (s *StyleSpec) apply(st *thumb.Style) {
	if s == nil {
		return
	}
	if s.Color != nil {
		st.TextColor = *s.Color
	}
	if s.Outline != nil {
		st.OutlineColor = *s.Outline
	}
	if s.OutlineWidth != nil {
		st.OutlineWidth = *s.OutlineWidth
	}
	if s.Font != "" {
		st.FontFamily = s.Font
	}
	if s.Size != 0 {
		st.FontSize = s.Size
	}
	if s.Bold != nil {
		st.Bold = *s.Bold
	}
	if s.Italic != nil {
		st.Italic = *s.Italic
	}
	if s.Shadow != nil {
		st.Shadow = *s.Shadow
	}
	if s.ShadowOffset != nil {
		st.ShadowOffset = *s.ShadowOffset
	}
	if s.Anchor != nil {
		st.Anchor = *s.Anchor
	}
}

// paint overrides the colors shared by every shape.
func (s *ShapeSpec) paint(fill, outline *thumb.Color, width *float64) {
	if s.Fill != nil {
		*fill = *s.Fill
	}
	if s.Outline != nil {
		*outline = *s.Outline
	}
	if s.OutlineWidth != nil {
		*width = *s.OutlineWidth
	}
}

func setf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func (s *ShapeSpec) applyCircle(c *thumb.Circle) {
	if s == nil {
		return
	}
	setf(&c.X, s.X)
	setf(&c.Y, s.Y)
	setf(&c.Radius, s.Radius)
	s.paint(&c.Fill, &c.Outline, &c.OutlineWidth)
}

func (s *ShapeSpec) applyRect(r *thumb.Rect) {
	if s == nil {
		return
	}
	if s.Rect != nil {
		r.X0, r.Y0, r.X1, r.Y1 = s.Rect[0], s.Rect[1], s.Rect[2], s.Rect[3]
	}
	s.paint(&r.Fill, &r.Outline, &r.OutlineWidth)
}

func (s *ShapeSpec) applyArrow(a *thumb.Arrow) {
	if s == nil {
		return
	}
	if len(s.Points) > 0 {
		a.Points = make([]thumb.Point, len(s.Points))
		for i, p := range s.Points {
			a.Points[i] = thumb.Pt(p[0], p[1])
		}
	}
	s.paint(&a.Fill, &a.Outline, &a.OutlineWidth)
}

func (s *ShapeSpec) applyStarburst(b *thumb.Starburst) {
	if s == nil {
		return
	}
	setf(&b.Center.X, s.X)
	setf(&b.Center.Y, s.Y)
	setf(&b.Outer, s.Outer)
	setf(&b.Inner, s.Inner)
	if s.Vertices != nil {
		b.Vertices = *s.Vertices
	}
	s.paint(&b.Fill, &b.Outline, &b.OutlineWidth)
}
