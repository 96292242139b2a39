package textsource

import (
	"fmt"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// tesseract reads small phone screenshots poorly; upscale anything narrower
// than this before OCR.
const minOCRWidth = 1000

// preprocessImage writes an OCR-friendlier copy of the image into dstDir and
// returns its path: auto-orient, grayscale, contrast boost, and upscale for
// small captures.
func preprocessImage(path, dstDir string) (string, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}

	img = imaging.Grayscale(img)
	img = imaging.AdjustContrast(img, 20)
	if img.Bounds().Dx() < minOCRWidth {
		img = imaging.Resize(img, 1600, 0, imaging.Lanczos)
	}

	out := filepath.Join(dstDir, "preprocessed.png")
	if err := imaging.Save(img, out); err != nil {
		return "", fmt.Errorf("save preprocessed image: %w", err)
	}
	return out, nil
}
