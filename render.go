package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/blobdrop/arena"
	"github.com/milk9111/blobdrop/common"
	"golang.org/x/image/colornames"
)

const (
	outlineSpacing = 5
	outlinePasses  = 3
	outlineWidth   = 8
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// drawBody fills the node ring and strokes a smoothed outline over it so the
// blob reads as round.
func drawBody(screen *ebiten.Image, body arena.BodyView, clr color.Color, highlight bool) {
	if len(body.Points) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(body.Points[0].X), float32(body.Points[0].Y))
	for _, p := range body.Points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleNonZero, AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteSubImage, op)

	hull := common.SmoothOutline(body.Points, outlineSpacing, outlinePasses)
	for i := range hull {
		p := hull[i]
		q := hull[(i+1)%len(hull)]
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), outlineWidth, clr, true)
	}

	if highlight {
		vector.StrokeCircle(screen, float32(body.Center.X), float32(body.Center.Y), 3, 1, colornames.White, true)
	}
}

func drawScore(screen *ebiten.Image, face ebtext.Face, points int) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2, 10)
	op.PrimaryAlign = ebtext.AlignCenter
	op.ColorScale.ScaleWithColor(colornames.White)
	ebtext.Draw(screen, fmt.Sprintf("Score: %d", points), face, op)
}
