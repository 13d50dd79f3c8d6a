package document

import (
	"bytes"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// grayPNG resamples src from srcDPI to dstDPI and flattens it to 8-bit
// grayscale in a single Catmull-Rom pass, returning the result encoded
// as PNG. Grayscale input improves Tesseract accuracy and keeps the
// temp images handed to the subprocess small.
func grayPNG(src image.Image, srcDPI, dstDPI float64) ([]byte, error) {
	if dstDPI <= 0 || dstDPI > srcDPI {
		dstDPI = srcDPI
	}

	b := src.Bounds()
	scale := dstDPI / srcDPI
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
