package component

import (
	"golang.org/x/text/unicode/norm"

	"ledboard/canvas"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
)

// Animation selects how SetText transitions between old and new content.
type Animation int

const (
	AnimNone Animation = iota
	AnimPush
	AnimFade
	AnimTypewriter
	AnimSlideLeft
	AnimSlideRight
	AnimSlideUp
	AnimSlideDown
)

const ellipsis = '…'

// Text renders a string with alignment and optional transition animations.
// Animation progress advances one tick at a time through Advance, typically
// driven by an anim.Ticker decoupled from the compositor cadence; while
// animating the component always reports dirty so the next compositor pass
// picks up the latest frame.
type Text struct {
	Base
	text   string
	font   canvas.Font
	color  canvas.Color
	align  Align
	valign VAlign
	maxLen int

	animType  Animation
	elapsed   int
	duration  int
	oldText   string
	newText   string
	animating bool
}

func NewText(region canvas.Region, text string, f canvas.Font, color canvas.Color) *Text {
	return &Text{
		Base:  newBase(region),
		text:  norm.NFC.String(text),
		font:  f,
		color: color,
	}
}

func (t *Text) SetAlign(a Align) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.align != a {
		t.align = a
		t.dirty = true
	}
}

func (t *Text) SetVAlign(a VAlign) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.valign != a {
		t.valign = a
		t.dirty = true
	}
}

func (t *Text) SetColor(c canvas.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.color != c {
		t.color = c
		t.dirty = true
	}
}

func (t *Text) SetFont(f canvas.Font) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.font != f {
		t.font = f
		t.dirty = true
	}
}

// SetMaxLength caps the displayed rune count; longer text is truncated with
// an ellipsis before layout. Zero means unlimited.
func (t *Text) SetMaxLength(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.maxLen != n {
		t.maxLen = n
		t.dirty = true
	}
}

// Text returns the committed text. Mid-animation this is still the old
// content; the new text commits when the animation completes.
func (t *Text) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.text
}

// SetText swaps the displayed text. With AnimNone the change is instant.
// Otherwise an animation starts from the currently committed text; calling
// again mid-animation abandons the running transition and starts over from
// the current state. Setting the identical text while idle is a no-op.
func (t *Text) SetText(text string, anim Animation, duration int) {
	text = norm.NFC.String(text)
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.text == text && !t.animating {
		return
	}
	if anim == AnimNone {
		t.text = text
		t.animating = false
		t.animType = AnimNone
		t.dirty = true
		return
	}
	if duration <= 0 {
		duration = 30
	}
	t.oldText = t.text
	t.newText = text
	t.animType = anim
	t.elapsed = 0
	t.duration = duration
	t.animating = true
	t.dirty = true
}

// Advance moves the animation forward one tick. After exactly duration
// ticks the new text commits and the component returns to static state.
func (t *Text) Advance() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.animating {
		return
	}
	t.elapsed++
	if t.elapsed >= t.duration {
		t.text = t.newText
		t.animating = false
		t.animType = AnimNone
	}
	t.dirty = true
}

func (t *Text) IsAnimating() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.animating
}

// IsDirty reports true while animating even without explicit mutation.
func (t *Text) IsDirty() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.animating || t.dirty
}

func (t *Text) progress() float64 {
	return float64(t.elapsed) / float64(t.duration)
}

func (t *Text) Render(c canvas.Canvas) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.visible {
		return
	}
	t.draw(canvasPut(c))
}

func (t *Text) Pixels() []Pixel {
	t.mu.Lock()
	defer t.mu.Unlock()
	var pixels []Pixel
	if !t.visible {
		return pixels
	}
	t.draw(collectPut(&pixels))
	return pixels
}

func (t *Text) draw(put putFunc) {
	// Stale glyphs from the previous frame must never survive, so the
	// region is always cleared to the background (or black) first.
	t.clearRegion(put)
	if t.font == nil {
		return
	}
	if t.animating {
		t.drawAnimated(put)
		return
	}
	if t.text == "" {
		return
	}
	text := t.truncate(t.text)
	x, y := t.textPosition(text)
	t.drawClipped(put, x, y, t.color, text)
}

func (t *Text) drawAnimated(put putFunc) {
	p := t.progress()
	oldText := t.truncate(t.oldText)
	newText := t.truncate(t.newText)

	switch t.animType {
	case AnimPush:
		t.drawPush(put, p, oldText, newText)
	case AnimFade:
		if newText != "" {
			x, y := t.textPosition(newText)
			t.drawClipped(put, x, y, t.color.WithAlpha(p), newText)
		}
	case AnimTypewriter:
		t.drawTypewriter(put, p, newText)
	case AnimSlideLeft, AnimSlideRight, AnimSlideUp, AnimSlideDown:
		t.drawSlide(put, p, oldText, newText)
	default:
		x, y := t.textPosition(newText)
		t.drawClipped(put, x, y, t.color, newText)
	}
}

// drawPush translates the old text out in the reading direction (reversed
// for right alignment) while the new text enters from the opposite edge.
// Alpha windows: old fades over p∈[0,0.8], new over p∈[0.2,1].
func (t *Text) drawPush(put putFunc, p float64, oldText, newText string) {
	w := t.region.Width
	baseXOld, textY := t.textPosition(oldText)
	baseXNew, _ := t.textPosition(newText)

	var oldX, newX int
	if t.align == AlignRight {
		oldX = baseXOld + int(p*float64(w))
		newX = baseXNew - int((1-p)*float64(w))
	} else {
		oldX = baseXOld - int(p*float64(w))
		newX = baseXNew + int((1-p)*float64(w))
	}

	if oldText != "" && p < 0.8 {
		t.drawClipped(put, oldX, textY, t.color.WithAlpha(1-p/0.8), oldText)
	}
	if newText != "" && p > 0.2 {
		t.drawClipped(put, newX, textY, t.color.WithAlpha((p-0.2)/0.8), newText)
	}
}

// drawTypewriter reveals the leading floor(len*p) runes of the new text.
func (t *Text) drawTypewriter(put putFunc, p float64, newText string) {
	runes := []rune(newText)
	shown := int(float64(len(runes)) * p)
	if shown > len(runes) {
		shown = len(runes)
	}
	if shown == 0 {
		return
	}
	display := string(runes[:shown])
	x, y := t.textPosition(display)
	t.drawClipped(put, x, y, t.color, display)
}

// drawSlide translates old and new text along one axis. Horizontal slides
// travel the region width; vertical slides travel max(region height, font
// height) so motion stays visible in short regions. Alpha windows: old
// fades over p∈[0,0.9], new over p∈[0.1,1].
func (t *Text) drawSlide(put putFunc, p float64, oldText, newText string) {
	baseXOld, textY := t.textPosition(oldText)
	baseXNew, _ := t.textPosition(newText)
	w := t.region.Width

	oldX, newX := baseXOld, baseXNew
	oldY, newY := textY, textY

	switch t.animType {
	case AnimSlideLeft:
		newX += int((1 - p) * float64(w))
		oldX -= int(p * float64(w))
	case AnimSlideRight:
		newX -= int((1 - p) * float64(w))
		oldX += int(p * float64(w))
	case AnimSlideUp:
		dist := max(t.region.Height, t.font.Height())
		newY -= int((1 - p) * float64(dist))
		oldY += int(p * float64(dist))
	case AnimSlideDown:
		dist := max(t.region.Height, t.font.Height())
		newY += int((1 - p) * float64(dist))
		oldY -= int(p * float64(dist))
	}

	if oldText != "" && p < 0.9 {
		t.drawClipped(put, oldX, oldY, t.color.WithAlpha(1-p/0.9), oldText)
	}
	if newText != "" && p > 0.1 {
		t.drawClipped(put, newX, newY, t.color.WithAlpha((p-0.1)/0.9), newText)
	}
}

// truncate applies the configured maximum display length, appending an
// ellipsis when text is cut.
func (t *Text) truncate(text string) string {
	if t.maxLen <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= t.maxLen {
		return text
	}
	return string(runes[:t.maxLen]) + string(ellipsis)
}

// textPosition computes the baseline origin for text under the current
// alignment. Center/right placement never starts left of the region edge.
func (t *Text) textPosition(text string) (int, int) {
	x := t.region.X
	if t.align == AlignCenter {
		x = t.region.X + (t.region.Width-t.textWidth(text))/2
	} else if t.align == AlignRight {
		x = t.region.X + t.region.Width - t.textWidth(text)
	}
	if x < t.region.X {
		x = t.region.X
	}

	baseline := t.font.Baseline()
	y := t.region.Y + baseline
	switch t.valign {
	case VAlignCenter:
		y = t.region.Y + (t.region.Height-t.font.Height())/2 + baseline
	case VAlignBottom:
		y = t.region.Y + t.region.Height - t.font.Height() + baseline
	}
	return x, y
}

func (t *Text) textWidth(text string) int {
	w := 0
	for _, r := range text {
		w += t.font.CharWidth(r)
	}
	return w
}

// drawClipped renders text with its baseline at y, discarding every glyph
// pixel outside the region. Animations routinely position text partially
// outside the region, so clipping here is what keeps neighbours intact.
// When the glyph mask cannot be decoded it falls back to a coarse
// per-character draw without clipping guarantees.
func (t *Text) drawClipped(put putFunc, x, y int, color canvas.Color, text string) {
	if text == "" {
		return
	}
	top := y - t.font.Baseline()
	bottom := top + t.font.Height()
	width := t.textWidth(text)
	if x+width < t.region.X || x > t.region.Right() ||
		bottom < t.region.Y || top > t.region.Bottom() {
		return
	}

	mask, err := t.font.GlyphMask(text)
	if err != nil {
		t.drawFallback(put, x, top, color, text)
		return
	}
	for my, row := range mask {
		py := top + my
		for mx, on := range row {
			if !on {
				continue
			}
			px := x + mx
			if t.region.Contains(canvas.Position{X: px, Y: py}) {
				put(px, py, color)
			}
		}
	}
}

// drawFallback paints a solid block per character cell. Coarse, but keeps
// the text visible when glyph data is unavailable.
func (t *Text) drawFallback(put putFunc, x, top int, color canvas.Color, text string) {
	for _, r := range text {
		w := t.font.CharWidth(r)
		for dy := 1; dy < t.font.Height()-1; dy++ {
			for dx := 0; dx < w-1; dx++ {
				put(x+dx, top+dy, color)
			}
		}
		x += w
	}
}
