package asset

import (
	"embed"
	"image"
	"path"
	"path/filepath"

	"github.com/vovakirdan/thecubes/internal/config"
	"github.com/vovakirdan/thecubes/internal/core"
	"github.com/vovakirdan/thecubes/internal/entity"
)

//go:embed defaults/*.png
var builtin embed.FS

type sprite struct {
	img   image.Image
	rect  core.Rect
	color core.Color
}

// Library resolves every cube kind to a sprite file and caches decoded
// images, so each file is read at most once. It is not safe for
// concurrent use; every game instance owns its own Library.
type Library struct {
	images config.ImagesConfig
	cache  map[entity.Kind]sprite
}

// NewLibrary returns a library for the configured image files.
func NewLibrary(images config.ImagesConfig) *Library {
	return &Library{
		images: images,
		cache:  make(map[entity.Kind]sprite),
	}
}

// Preload decodes every sprite up front so that a missing file is
// reported before the game starts.
func (l *Library) Preload() error {
	for _, k := range entity.Kinds {
		if _, err := l.get(k); err != nil {
			return err
		}
	}
	return nil
}

// Sprite implements entity.AssetSource.
func (l *Library) Sprite(kind entity.Kind) (image.Image, core.Rect, error) {
	s, err := l.get(kind)
	if err != nil {
		return nil, core.Rect{}, err
	}
	return s.img, s.rect, nil
}

// Color returns the terminal color used to draw the given kind.
func (l *Library) Color(kind entity.Kind) core.Color {
	s, err := l.get(kind)
	if err != nil {
		return core.ColorWhite
	}
	return s.color
}

func (l *Library) get(kind entity.Kind) (sprite, error) {
	if s, ok := l.cache[kind]; ok {
		return s, nil
	}

	name := l.fileName(kind)
	var (
		img  image.Image
		rect core.Rect
		err  error
	)
	if l.images.FolderName == "" {
		img, rect, err = LoadFS(builtin, path.Join("defaults", name))
	} else {
		img, rect, err = Load(filepath.Join(l.images.FolderName, name))
	}
	if err != nil {
		return sprite{}, err
	}

	s := sprite{img: img, rect: rect, color: DominantColor(img)}
	l.cache[kind] = s
	return s, nil
}

func (l *Library) fileName(kind entity.Kind) string {
	switch kind {
	case entity.KindPlayer:
		return l.images.PlayerCube
	case entity.KindHorizontalLeft:
		return l.images.HoriLCube
	case entity.KindHorizontalRight:
		return l.images.HoriRCube
	case entity.KindVerticalTop:
		return l.images.VertiTCube
	case entity.KindVerticalBottom:
		return l.images.VertiBCube
	case entity.KindRock:
		return l.images.RockCube
	case entity.KindDiamond:
		return l.images.DiamondCube
	default:
		return ""
	}
}

var _ entity.AssetSource = (*Library)(nil)
