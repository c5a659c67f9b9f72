package internal

import (
	"context"
	"net/http"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

type imageResult struct {
	path    string
	surface *sdl.Surface
	err     error
}

// ImageLoader decodes movie images in the background and turns them into
// textures on the UI thread. Each path is requested at most once; failures
// are remembered so the placeholder stays up instead of retrying every frame.
type ImageLoader struct {
	dir      string
	client   *http.Client
	textures *TextureCache
	results  chan imageResult
	pending  map[string]bool
	failed   map[string]bool
	ctx      context.Context
	cancel   context.CancelFunc
	inFlight *atomic.Int32
	closed   *atomic.Bool
}

func NewImageLoader(dir string, cacheSize int) *ImageLoader {
	ctx, cancel := context.WithCancel(context.Background())
	return &ImageLoader{
		dir:      dir,
		client:   &http.Client{},
		textures: NewTextureCacheWithSize(cacheSize),
		results:  make(chan imageResult, 32),
		pending:  make(map[string]bool),
		failed:   make(map[string]bool),
		ctx:      ctx,
		cancel:   cancel,
		inFlight: atomic.NewInt32(0),
		closed:   atomic.NewBool(false),
	}
}

// Texture returns the texture for path if it has loaded, starting the load
// otherwise. Nil means draw the placeholder.
func (l *ImageLoader) Texture(path string) *sdl.Texture {
	if path == "" || l.closed.Load() {
		return nil
	}
	if t := l.textures.Get(path); t != nil {
		return t
	}
	if l.pending[path] || l.failed[path] {
		return nil
	}

	l.pending[path] = true
	l.inFlight.Inc()
	go l.load(path)
	return nil
}

func (l *ImageLoader) load(path string) {
	defer l.inFlight.Dec()

	res := imageResult{path: path}
	data, err := readImage(l.ctx, l.client, l.dir, path)
	if err == nil {
		res.surface, err = decodeImage(data)
	}
	res.err = err

	select {
	case l.results <- res:
	case <-l.ctx.Done():
		if res.surface != nil {
			res.surface.Free()
		}
	}
}

func decodeImage(data []byte) (*sdl.Surface, error) {
	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, err
	}
	return img.LoadRW(rw, true)
}

// Poll moves finished loads into the texture cache. It must run on the UI
// thread and reports whether anything changed.
func (l *ImageLoader) Poll(renderer *sdl.Renderer) bool {
	changed := false
	for {
		select {
		case res := <-l.results:
			delete(l.pending, res.path)
			changed = true
			if res.err != nil {
				l.failed[res.path] = true
				GetInternalLogger().Warn("Failed to load image", "path", res.path, "error", res.err)
				continue
			}
			if l.closed.Load() {
				res.surface.Free()
				continue
			}
			texture, err := renderer.CreateTextureFromSurface(res.surface)
			res.surface.Free()
			if err != nil {
				l.failed[res.path] = true
				GetInternalLogger().Warn("Failed to create image texture", "path", res.path, "error", err)
				continue
			}
			l.textures.Set(res.path, texture)
		default:
			return changed
		}
	}
}

// Close stops outstanding loads and destroys every texture. Results that
// arrive afterwards are dropped.
func (l *ImageLoader) Close() {
	if l.closed.Swap(true) {
		return
	}
	l.cancel()
	GetInternalLogger().Debug("Image loader closed", "in_flight", l.inFlight.Load())
	for {
		select {
		case res := <-l.results:
			if res.surface != nil {
				res.surface.Free()
			}
		default:
			l.textures.Destroy()
			return
		}
	}
}
