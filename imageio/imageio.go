// Package imageio bridges grayscale images and dense float64 matrices for
// the 2-D transform path.
package imageio

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/mat"
)

// LoadGray decodes the image at path, converts it to grayscale and returns
// it as a row-major matrix with intensities in [0, 1]. Row i corresponds to
// pixel row i.
func LoadGray(path string) (*mat.Dense, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open: %w", err)
	}

	gray := imaging.Grayscale(img)
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("imageio: empty image %q", path)
	}

	m := mat.NewDense(h, w, nil)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Grayscale output has equal channels; red carries the value.
			v := gray.NRGBAAt(b.Min.X+x, b.Min.Y+y).R
			m.Set(y, x, float64(v)/255)
		}
	}
	return m, nil
}

// SaveGray clamps m to [0, 1] and writes it as a grayscale image; the format
// follows the file extension (png, jpg, gif, tif, bmp).
func SaveGray(m *mat.Dense, path string) error {
	if m == nil {
		return fmt.Errorf("imageio: nil matrix")
	}

	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("imageio: empty matrix")
	}

	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := m.At(y, x)
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v*255 + 0.5)})
		}
	}

	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("imageio: save: %w", err)
	}
	return nil
}

// Transpose returns a copy of m with its axes swapped, the display
// orientation flip applied before an image is handed to a viewer.
func Transpose(m *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.CloneFrom(m.T())
	return &out
}
