// Package imaging prepares user images for custom puzzles: decoding,
// downscaling, square cropping, and slicing into board tiles.
package imaging

import (
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for the supported custom puzzle formats
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"

	"github.com/aetherial/gardens/internal/platform"
)

// MaxImageWidth is the width above which loaded images are downscaled.
const MaxImageWidth = 1920

// LoadFromFile decodes a user-selected image. Files wider than MaxImageWidth
// are downscaled preserving aspect ratio so tile slicing stays cheap.
func LoadFromFile(path string) (image.Image, error) {
	if !platform.IsSupportedImage(path) {
		return nil, fmt.Errorf("unsupported image format: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxImageWidth {
		newHeight := bounds.Dy() * MaxImageWidth / bounds.Dx()
		img = Scale(img, MaxImageWidth, newHeight)
	}
	return img, nil
}

// Scale resizes an image to the exact target dimensions.
func Scale(img image.Image, width, height int) image.Image {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// CropSquare returns the centered square region of an image. Square input is
// returned unchanged.
func CropSquare(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == h {
		return img
	}

	side := w
	if h < side {
		side = h
	}
	x0 := bounds.Min.X + (w-side)/2
	y0 := bounds.Min.Y + (h-side)/2
	rect := image.Rect(x0, y0, x0+side, y0+side)

	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Copy(dst, image.Point{}, img, rect, draw.Over, nil)
	return dst
}

// SliceTiles cuts a square image into n×n equal tiles, returned row-major.
// The source is first scaled so the side divides evenly by n.
func SliceTiles(img image.Image, n int) ([]image.Image, error) {
	if n < 2 {
		return nil, fmt.Errorf("tile count too small: %d", n)
	}

	square := CropSquare(img)
	side := square.Bounds().Dx()
	if side < n {
		return nil, fmt.Errorf("image too small to slice into %dx%d tiles", n, n)
	}
	if side%n != 0 {
		side = side - side%n
		square = Scale(square, side, side)
	}

	tileSize := side / n
	min := square.Bounds().Min

	tiles := make([]image.Image, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			rect := image.Rect(
				min.X+col*tileSize,
				min.Y+row*tileSize,
				min.X+(col+1)*tileSize,
				min.Y+(row+1)*tileSize,
			)
			tile := image.NewRGBA(image.Rect(0, 0, tileSize, tileSize))
			draw.Copy(tile, image.Point{}, square, rect, draw.Over, nil)
			tiles = append(tiles, tile)
		}
	}
	return tiles, nil
}

// Thumbnail scales an image down to fit within the given bounding box,
// preserving aspect ratio. Images already inside the box are returned as-is.
func Thumbnail(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxWidth && h <= maxHeight {
		return img
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	return Scale(img, int(float64(w)*scale), int(float64(h)*scale))
}
