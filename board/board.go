// Package board assembles a live departure board: two lines with primary
// and rotating later arrivals, a clock, a crowding gauge, and a dashed
// border, fed from a TfL data source. All mutation funnels through a
// mailbox owned by one goroutine, so feeders never race each other.
package board

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"ledboard/actor"
	"ledboard/anim"
	"ledboard/canvas"
	"ledboard/component"
	"ledboard/font"
	"ledboard/lifecycle"
	"ledboard/screen"
)

var lineColors = map[string]canvas.Color{
	"jubilee":      {R: 160, G: 165, B: 169},
	"metropolitan": {R: 155, G: 0, B: 86},
}

var boardLines = []string{"jubilee", "metropolitan"}

type Config struct {
	Station       Station
	RotateEvery   time.Duration
	FetchEvery    time.Duration
	CrowdingEvery time.Duration
	SlideTicks    int
}

func (c *Config) withDefaults() {
	if c.Station == (Station{}) {
		c.Station = WembleyPark
	}
	if c.RotateEvery <= 0 {
		c.RotateEvery = 5 * time.Second
	}
	if c.FetchEvery <= 0 {
		c.FetchEvery = 30 * time.Second
	}
	if c.CrowdingEvery <= 0 {
		c.CrowdingEvery = time.Minute
	}
	if c.SlideTicks <= 0 {
		c.SlideTicks = 15
	}
}

type Board struct {
	screen   *screen.Screen
	font     *font.Face
	source   Source
	cfg      Config
	mailbox  actor.Actor[func()]
	rotation *rotation
	texts    map[string]*component.Text
	crowding *component.Crowding
	log      zerolog.Logger
}

func New(s *screen.Screen, f *font.Face, src Source, ticker *anim.Ticker, cfg Config, log zerolog.Logger) (*Board, error) {
	cfg.withDefaults()
	b := &Board{
		screen:   s,
		font:     f,
		source:   src,
		cfg:      cfg,
		rotation: newRotation(),
		texts:    map[string]*component.Text{},
		log:      log,
	}
	if err := b.build(ticker); err != nil {
		return nil, err
	}
	b.mailbox = actor.New(func(u func()) bool {
		if u == nil {
			return false
		}
		u()
		return true
	})
	return b, nil
}

// build lays the display out: a dashed border around the edge, two
// two-row line blocks, and a footer with the crowding gauge, a roundel,
// and the clock.
func (b *Board) build(ticker *anim.Ticker) error {
	width, height := b.screen.Size()
	rowH := b.font.Height() + 1
	if height-4 < 4*rowH+b.font.Height() {
		return fmt.Errorf("display %dx%d too small for %d-pixel font", width, height, b.font.Height())
	}

	l := b.screen.CreateLayout()
	// The border advances its own frame counter inside Render, so it needs
	// no animator registration; being always dirty keeps it on every pass.
	border := component.NewBorder(canvas.Region{Width: width, Height: height}, 8, 4, 0.5)
	if err := b.screen.AddComponent("border", border); err != nil {
		return err
	}

	if err := l.DefineRegion("content", canvas.Region{X: 2, Y: 2, Width: width - 4, Height: height - 4}); err != nil {
		return err
	}
	blocks, err := l.SplitVertical("content", 2*rowH, 2*rowH, -1)
	if err != nil {
		return err
	}

	for i, line := range boardLines {
		rows, err := l.SplitVertical(blocks[i], rowH, -1)
		if err != nil {
			return err
		}
		for j, kind := range []string{"primary", "later"} {
			if err := b.buildRow(ticker, line, kind, rows[j]); err != nil {
				return err
			}
		}
	}
	return b.buildFooter(ticker, blocks[2])
}

func (b *Board) buildRow(ticker *anim.Ticker, line, kind, row string) error {
	l := b.screen.Layout()
	idxW := b.font.CharWidth('8') + 2
	timeW := 4 * b.font.CharWidth('0')
	cells, err := l.SplitHorizontal(row, idxW, -1, timeW)
	if err != nil {
		return err
	}

	index := component.NewText(canvas.Region{}, "", b.font, lineColors[line])
	station := component.NewText(canvas.Region{}, "", b.font, canvas.Yellow)
	eta := component.NewText(canvas.Region{}, "", b.font, canvas.Green)
	eta.SetAlign(component.AlignRight)
	if kind == "primary" {
		index.SetText("1", component.AnimNone, 0)
	}

	for i, part := range []struct {
		suffix string
		text   *component.Text
	}{
		{"train_index", index},
		{"station_name", station},
		{"time_to_arrival", eta},
	} {
		name := fmt.Sprintf("%s_%s_%s", line, kind, part.suffix)
		if err := b.screen.AddComponent(name, part.text, cells[i]); err != nil {
			return err
		}
		b.texts[name] = part.text
		ticker.Add(part.text)
	}
	return nil
}

func (b *Board) buildFooter(ticker *anim.Ticker, footer string) error {
	l := b.screen.Layout()
	cells, err := l.SplitHorizontal(footer, -1, logoSize, -1)
	if err != nil {
		return err
	}

	b.crowding = component.NewCrowding(canvas.Region{}, b.font)
	if err := b.screen.AddComponent("crowding", b.crowding, cells[0]); err != nil {
		return err
	}

	logo := component.NewPixelSet(canvas.Region{}, logoPixels())
	if err := b.screen.AddComponent("logo", logo, cells[1]); err != nil {
		return err
	}

	clock := component.NewText(canvas.Region{}, "", b.font, canvas.White)
	clock.SetAlign(component.AlignRight)
	if err := b.screen.AddComponent("real_time", clock, cells[2]); err != nil {
		return err
	}
	b.texts["real_time"] = clock
	ticker.Add(clock)
	return nil
}

const logoSize = 9

// logoPixels draws a small roundel: a red ring crossed by a blue bar.
func logoPixels() []component.Pixel {
	const r = logoSize / 2
	var px []component.Pixel
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			d := x*x + y*y
			if d <= r*r && d > (r-1)*(r-1) {
				px = append(px, component.Pixel{X: x + r, Y: y + r, Color: canvas.Red})
			}
		}
	}
	for x := 0; x < logoSize; x++ {
		px = append(px, component.Pixel{X: x, Y: r, Color: canvas.Blue})
	}
	return px
}

// SetArrivals installs the soonest arrival per line on the primary row and
// queues the rest for rotation on the later row.
func (b *Board) SetArrivals(byLine map[string][]Arrival) {
	b.mailbox.Send(func() {
		for _, line := range boardLines {
			arrivals := byLine[line]
			if len(arrivals) == 0 {
				b.setRow(line, "primary", "", "", "")
				b.rotation.set(line, nil)
				continue
			}
			primary := arrivals[0]
			b.setRow(line, "primary", "1", primary.Destination, formatETA(primary.TimeToStation))
			b.rotation.set(line, arrivals[1:])
		}
	})
}

// RotateLater advances each later row to the next queued arrival.
func (b *Board) RotateLater() {
	b.mailbox.Send(func() {
		for _, line := range boardLines {
			next, ok := b.rotation.next(line)
			if !ok {
				b.setRow(line, "later", "", "", "")
				continue
			}
			b.setRow(line, "later",
				fmt.Sprintf("%d", next.Index+1),
				next.Destination,
				formatETA(next.TimeToStation))
		}
	})
}

func (b *Board) setRow(line, kind, index, station, eta string) {
	b.texts[line+"_"+kind+"_train_index"].SetText(index, component.AnimNone, 0)
	b.texts[line+"_"+kind+"_station_name"].SetText(station, component.AnimSlideUp, b.cfg.SlideTicks)
	b.texts[line+"_"+kind+"_time_to_arrival"].SetText(eta, component.AnimSlideUp, b.cfg.SlideTicks)
}

func (b *Board) SetClock(now time.Time) {
	b.mailbox.Send(func() {
		b.texts["real_time"].SetText(now.Format("15:04:05"), component.AnimNone, 0)
	})
}

func (b *Board) SetCrowding(level int) {
	b.mailbox.Send(func() {
		b.crowding.SetValue(level)
	})
}

// Run starts the clock, rotation and data feeds. They stop with the
// lifecycle; the mailbox drains and shuts down last.
func (b *Board) Run(lc *lifecycle.Lifecycle) {
	lc.Go(func() {
		<-lc.Stopping()
		b.mailbox.Send(nil)
	})
	lc.Go(func() { b.runClock(lc) })
	lc.Go(func() { b.runFeed(lc) })
}

func (b *Board) runClock(lc *lifecycle.Lifecycle) {
	clock := time.NewTicker(time.Second)
	defer clock.Stop()
	rotate := time.NewTicker(b.cfg.RotateEvery)
	defer rotate.Stop()

	b.SetClock(time.Now())
	for {
		select {
		case <-lc.Stopping():
			return
		case now := <-clock.C:
			b.SetClock(now)
		case <-rotate.C:
			b.RotateLater()
		}
	}
}

func (b *Board) runFeed(lc *lifecycle.Lifecycle) {
	fetch := time.NewTicker(b.cfg.FetchEvery)
	defer fetch.Stop()
	crowd := time.NewTicker(b.cfg.CrowdingEvery)
	defer crowd.Stop()

	b.fetchArrivals()
	b.fetchCrowding()
	for {
		select {
		case <-lc.Stopping():
			return
		case <-fetch.C:
			b.fetchArrivals()
		case <-crowd.C:
			b.fetchCrowding()
		}
	}
}

func (b *Board) fetchArrivals() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	byLine, err := b.source.Arrivals(ctx, b.cfg.Station)
	if err != nil {
		b.log.Error().Err(err).Str("station", b.cfg.Station.Name).Msg("arrivals fetch failed")
		return
	}
	b.log.Info().Int("lines", len(byLine)).Msg("arrivals updated")
	b.SetArrivals(byLine)
}

func (b *Board) fetchCrowding() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	status, err := b.source.Crowding(ctx, b.cfg.Station)
	if err != nil {
		b.log.Error().Err(err).Str("station", b.cfg.Station.Name).Msg("crowding fetch failed")
		return
	}
	b.log.Info().Int("level", status.CrowdingLevel).Msg("crowding updated")
	b.SetCrowding(status.CrowdingLevel)
}
