package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is a line of text whose opacity follows a tween sequence.
type BannerData struct {
	Text  string
	Alpha float32
	Fade  *gween.Sequence
	Done  bool
}

var Banner = donburi.NewComponentType[BannerData]()
