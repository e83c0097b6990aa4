package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	DefaultMaxEdge     = 1600
	DefaultWebPQuality = 80
)

// WebPEncoder decodes jpeg, png, gif or webp uploads, shrinks them so the
// longest edge fits MaxEdge and re-encodes them as lossy WebP.
type WebPEncoder struct {
	MaxEdge int
	Quality float32
}

func NewWebPEncoder() *WebPEncoder {
	return &WebPEncoder{MaxEdge: DefaultMaxEdge, Quality: DefaultWebPQuality}
}

func (e *WebPEncoder) ContentType() string { return "image/webp" }
func (e *WebPEncoder) Extension() string   { return "webp" }

func (e *WebPEncoder) Encode(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	img := fit(src, e.MaxEdge)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: e.Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func fit(src image.Image, maxEdge int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxEdge <= 0 || (w <= maxEdge && h <= maxEdge) {
		return src
	}

	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
