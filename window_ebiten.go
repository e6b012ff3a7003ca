package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wireframe/control"
	"wireframe/render"
	"wireframe/scene"
)

// ebitenGame rasterises the current frame into an RGBA buffer in software
// and blits it, redrawing only after a key was handled.
type ebitenGame struct {
	state *control.State
	vp    scene.Viewport
	cull  bool

	img   *image.RGBA
	dirty bool
	keys  []rune
}

func (g *ebitenGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.keys = ebiten.AppendInputChars(g.keys[:0])
	for _, r := range g.keys {
		if f, ok := g.state.Handle(string(r)); ok {
			log.Println(f.HUD())
			g.dirty = true
		}
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, g.vp.Width, g.vp.Height))
		g.dirty = true
	}
	f := g.state.Frame()
	if g.dirty {
		render.Rasterize(g.img, g.vp, f.Projections, g.cull)
		g.dirty = false
	}
	screen.WritePixels(g.img.Pix)
	ebitenutil.DebugPrint(screen, f.HUD())
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.vp.Width, g.vp.Height
}

func runEbiten(cfg config, state *control.State) error {
	g := &ebitenGame{state: state, vp: cfg.viewport(), cull: cfg.cull}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(cfg.width, cfg.height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
