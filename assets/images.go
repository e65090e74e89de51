package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Tile and character art is drawn once at first use and cached.

var (
	dirt      = color.RGBA{R: 140, G: 92, B: 52, A: 255}
	dirtDark  = color.RGBA{R: 105, G: 66, B: 36, A: 255}
	grass     = color.RGBA{R: 96, G: 184, B: 64, A: 255}
	grassTop  = color.RGBA{R: 140, G: 214, B: 90, A: 255}
	crate     = color.RGBA{R: 176, G: 120, B: 60, A: 255}
	crateEdge = color.RGBA{R: 110, G: 70, B: 30, A: 255}
	steel     = color.RGBA{R: 170, G: 176, B: 186, A: 255}
	steelDark = color.RGBA{R: 98, G: 104, B: 114, A: 255}
	wood      = color.RGBA{R: 196, G: 150, B: 92, A: 255}
	black     = color.RGBA{A: 255}
)

var whiteSubImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

type ImageLoader struct {
	tiles   map[leveldata.TileKind]*ebiten.Image
	players map[color.RGBA][]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		tiles:   make(map[leveldata.TileKind]*ebiten.Image),
		players: make(map[color.RGBA][]*ebiten.Image),
	}
}

var imageLoader = NewImageLoader()

// TileImage returns the art for a tile kind at the scaled tile size.
func TileImage(kind leveldata.TileKind) *ebiten.Image {
	return imageLoader.TileImage(kind)
}

// PlayerFrames returns the walk cycle for a player of the given colour.
func PlayerFrames(c color.RGBA) []*ebiten.Image {
	return imageLoader.PlayerFrames(c)
}

func (l *ImageLoader) TileImage(kind leveldata.TileKind) *ebiten.Image {
	if img, ok := l.tiles[kind]; ok {
		return img
	}

	size := int(math.Round(config.Map.ScaledTileSize()))
	img := ebiten.NewImage(size, size)
	drawTile(img, kind, float32(size))
	l.tiles[kind] = img
	return img
}

func (l *ImageLoader) PlayerFrames(c color.RGBA) []*ebiten.Image {
	if frames, ok := l.players[c]; ok {
		return frames
	}

	w := int(math.Round(config.Player.CollisionWidth))
	h := int(math.Round(config.Player.CollisionHeight))
	frames := make([]*ebiten.Image, 2)
	for i := range frames {
		frames[i] = ebiten.NewImage(w, h)
		drawCharacter(frames[i], c, float32(w), float32(h), i)
	}
	l.players[c] = frames
	return frames
}

func drawTile(img *ebiten.Image, kind leveldata.TileKind, s float32) {
	band := s * 0.22

	switch kind {
	case leveldata.Box:
		vector.FillRect(img, 0, 0, s, s, crateEdge, false)
		vector.FillRect(img, 4, 4, s-8, s-8, crate, false)
		vector.FillRect(img, 4, s/2-3, s-8, 6, crateEdge, false)
		vector.FillRect(img, s/2-3, 4, 6, s-8, crateEdge, false)

	case leveldata.GrassMid:
		drawGrassBlock(img, s, band)

	case leveldata.GrassLeft:
		drawGrassBlock(img, s, band)
		vector.FillRect(img, 0, 0, band/2, s*0.6, grass, false)

	case leveldata.GrassRight:
		drawGrassBlock(img, s, band)
		vector.FillRect(img, s-band/2, 0, band/2, s*0.6, grass, false)

	case leveldata.Grass:
		vector.FillRect(img, 0, 0, s, s, grass, false)
		vector.FillRect(img, 0, 0, s, band/2, grassTop, false)

	case leveldata.GrassCenterRound:
		vector.FillRect(img, 0, 0, s, s, dirt, false)
		for i := float32(0); i < 3; i++ {
			vector.FillCircle(img, s*(0.25+0.25*i), s*(0.3+0.2*i), s*0.06, dirtDark, true)
		}

	case leveldata.GrassCornerLeft:
		fillTriangle(img, 0, band, s, band, s, s, dirt)
		vector.FillRect(img, 0, 0, s, band, grass, false)

	case leveldata.GrassCornerRight:
		fillTriangle(img, 0, band, s, band, 0, s, dirt)
		vector.FillRect(img, 0, 0, s, band, grass, false)

	case leveldata.GrassHillLeft:
		fillTriangle(img, 0, s, s, 0, s, s, grass)
		fillTriangle(img, band, s, s, band, s, s, dirt)

	case leveldata.GrassHillRight:
		fillTriangle(img, 0, 0, s, s, 0, s, grass)
		fillTriangle(img, 0, band, s-band, s, 0, s, dirt)

	case leveldata.Chain:
		link := s / 4
		for y := float32(0); y < s; y += link {
			x := s/2 - link/3
			vector.FillRect(img, x, y, link*2/3, 3, steelDark, false)
			vector.FillRect(img, x, y+link-5, link*2/3, 3, steelDark, false)
			vector.FillRect(img, x, y, 3, link-2, steelDark, false)
			vector.FillRect(img, x+link*2/3-3, y, 3, link-2, steelDark, false)
		}

	case leveldata.Spikes:
		n := float32(4)
		w := s / n
		for i := float32(0); i < n; i++ {
			fillTriangle(img, i*w, s, i*w+w/2, s/2, (i+1)*w, s, steel)
		}
		vector.FillRect(img, 0, s-4, s, 4, steelDark, false)

	case leveldata.SignLeft, leveldata.SignRight:
		vector.FillRect(img, s/2-3, s*0.45, 6, s*0.55, crateEdge, false)
		vector.FillRect(img, s*0.15, s*0.15, s*0.7, s*0.35, wood, false)
		if kind == leveldata.SignRight {
			fillTriangle(img, s*0.35, s*0.22, s*0.65, s*0.325, s*0.35, s*0.43, crateEdge)
		} else {
			fillTriangle(img, s*0.65, s*0.22, s*0.35, s*0.325, s*0.65, s*0.43, crateEdge)
		}
	}
}

func drawGrassBlock(img *ebiten.Image, s, band float32) {
	vector.FillRect(img, 0, 0, s, s, dirt, false)
	vector.FillRect(img, 0, 0, s, band, grass, false)
	vector.FillRect(img, 0, 0, s, band/3, grassTop, false)
}

func drawCharacter(img *ebiten.Image, c color.RGBA, w, h float32, frame int) {
	legH := h * 0.25
	stride := w * 0.12
	if frame == 1 {
		stride = -stride
	}

	// legs
	vector.FillRect(img, w*0.2+stride, h-legH, w*0.22, legH, black, false)
	vector.FillRect(img, w*0.58-stride, h-legH, w*0.22, legH, black, false)

	// body and head
	vector.FillRect(img, w*0.1, h*0.35, w*0.8, h*0.42, c, false)
	vector.FillCircle(img, w/2, h*0.2, w*0.3, c, true)

	// eye, facing right
	vector.FillCircle(img, w*0.62, h*0.17, w*0.07, black, true)
}

// fillTriangle fills a solid triangle in image pixel coordinates.
func fillTriangle(img *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, c color.RGBA) {
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	vs := []ebiten.Vertex{
		{DstX: x0, DstY: y0, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: x2, DstY: y2, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
	}
	img.DrawTriangles(vs, []uint16{0, 1, 2}, whitePixel(), nil)
}
