package image

import (
	"errors"
	"fmt"
	goimage "image"
	"image/color"
	"math"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/colour-go/colour"
	"github.com/kpfaulkner/colour-go/vecmath"
)

var (
	ErrPlaneCount = errors.New("plane count does not match encoding")
	ErrPlaneSize  = errors.New("plane size does not match dimensions")
	ErrTooLarge   = errors.New("image dimensions too large")
)

// planeSize returns the number of values in one plane of a height x width
// buffer. Planes are limited to math.MaxInt32 values.
func planeSize(height int32, width int32) (int, error) {
	if height < 0 || width < 0 {
		return 0, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	n := int64(width) * int64(height)
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("%dx%d: %w", width, height, ErrTooLarge)
	}
	return int(n), nil
}

// ImageBuffer holds a planar image in one encoding: one plane per lane of the
// encoding, each Height rows of Width values, row major. Planes of u8
// encodings hold 0..255, the same as colour lanes.
type ImageBuffer struct {
	Width    int32
	Height   int32
	Encoding string
	Planes   [][]float32

	layout colour.Layout
}

func NewImageBuffer(encoding string, height int32, width int32) (*ImageBuffer, error) {
	layout, ok := colour.EncodingLayout(encoding)
	if !ok {
		return nil, fmt.Errorf("%q: %w", encoding, colour.ErrUnknownEncoding)
	}
	size, err := planeSize(height, width)
	if err != nil {
		return nil, err
	}

	planes := make([][]float32, layout.Lanes)
	for i := range planes {
		planes[i] = planePool.Get(size)
	}
	return &ImageBuffer{Width: width, Height: height, Encoding: encoding, Planes: planes, layout: layout}, nil
}

// NewImageBufferFromPlanes wraps existing planes without copying them.
func NewImageBufferFromPlanes(encoding string, height int32, width int32, planes [][]float32) (*ImageBuffer, error) {
	layout, ok := colour.EncodingLayout(encoding)
	if !ok {
		return nil, fmt.Errorf("%q: %w", encoding, colour.ErrUnknownEncoding)
	}
	if len(planes) != layout.Lanes {
		return nil, fmt.Errorf("%s has %d lanes, got %d planes: %w", encoding, layout.Lanes, len(planes), ErrPlaneCount)
	}
	size, err := planeSize(height, width)
	if err != nil {
		return nil, err
	}
	for i, p := range planes {
		if len(p) != size {
			return nil, fmt.Errorf("plane %d has %d values, expected %d: %w", i, len(p), size, ErrPlaneSize)
		}
	}
	return &ImageBuffer{Width: width, Height: height, Encoding: encoding, Planes: planes, layout: layout}, nil
}

func (ib *ImageBuffer) Layout() colour.Layout {
	return ib.layout
}

// At returns the lanes of the pixel at (x, y). Note y is first.
func (ib *ImageBuffer) At(y int32, x int32) vecmath.Vec4 {
	var v vecmath.Vec4
	idx := int(y)*int(ib.Width) + int(x)
	for i, p := range ib.Planes {
		v[i] = p[idx]
	}
	return v
}

func (ib *ImageBuffer) Set(y int32, x int32, v vecmath.Vec4) {
	idx := int(y)*int(ib.Width) + int(x)
	for i, p := range ib.Planes {
		p[idx] = v[i]
	}
}

// Equals compares two ImageBuffers lane by lane, allowing delta of difference.
func (ib *ImageBuffer) Equals(other *ImageBuffer, delta float32) bool {
	if ib.Encoding != other.Encoding || ib.Width != other.Width || ib.Height != other.Height {
		return false
	}
	for i := range ib.Planes {
		for j, v := range ib.Planes[i] {
			d := v - other.Planes[i][j]
			if d > delta || d < -delta {
				return false
			}
		}
	}
	return true
}

// Convert returns a new buffer holding every pixel converted to dst. Rows are
// split among up to maxGoroutines workers.
func (ib *ImageBuffer) Convert(dst string, maxGoroutines int) (*ImageBuffer, error) {
	convert, err := colour.LanesConverter(ib.Encoding, dst)
	if err != nil {
		return nil, err
	}
	out, err := NewImageBuffer(dst, ib.Height, ib.Width)
	if err != nil {
		return nil, err
	}

	processRows := func(startY int32, endY int32) {
		for y := startY; y < endY; y++ {
			for x := int32(0); x < ib.Width; x++ {
				out.Set(y, x, convert(ib.At(y, x)))
			}
		}
	}

	// Divide work among goroutines
	numWorkers := maxGoroutines
	if numWorkers < 1 {
		numWorkers = 1
	}
	rowsPerWorker := (ib.Height + int32(numWorkers) - 1) / int32(numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		startY := int32(w) * rowsPerWorker
		endY := startY + rowsPerWorker
		if endY > ib.Height {
			endY = ib.Height
		}
		if startY >= ib.Height {
			break
		}
		wg.Add(1)
		go func(sy, ey int32) {
			defer wg.Done()
			processRows(sy, ey)
		}(startY, endY)
	}
	wg.Wait()

	log.Debugf("converted %dx%d buffer from %s to %s", ib.Width, ib.Height, ib.Encoding, dst)
	return out, nil
}

// Release hands the planes back for reuse. The buffer must not be used
// afterwards.
func (ib *ImageBuffer) Release() {
	for _, p := range ib.Planes {
		planePool.Put(p)
	}
	ib.Planes = nil
}

// FromImage copies img into an EncodedSrgbaU8 buffer, treating its colours as
// gamma encoded sRGB like the image package does.
func FromImage(img goimage.Image) *ImageBuffer {
	bounds := img.Bounds()
	ib, err := NewImageBuffer(colour.EncodedSrgbaU8{}.Name(), int32(bounds.Dy()), int32(bounds.Dx()))
	if err != nil {
		// the encoding is always registered
		log.Panicf("image buffer: %v", err)
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := colour.FromStdColor(img.At(x, y))
			ib.Set(int32(y-bounds.Min.Y), int32(x-bounds.Min.X), c.Lanes())
		}
	}
	return ib
}

// ToNRGBA converts the buffer to EncodedSrgbaU8 and copies it into a new
// image.NRGBA.
func (ib *ImageBuffer) ToNRGBA(maxGoroutines int) (*goimage.NRGBA, error) {
	// Convert normalises u8 lanes even when the encoding already matches.
	src, err := ib.Convert(colour.EncodedSrgbaU8{}.Name(), maxGoroutines)
	if err != nil {
		return nil, err
	}
	defer src.Release()

	img := goimage.NewNRGBA(goimage.Rect(0, 0, int(ib.Width), int(ib.Height)))
	for y := int32(0); y < ib.Height; y++ {
		for x := int32(0); x < ib.Width; x++ {
			v := src.At(y, x)
			img.SetNRGBA(int(x), int(y), color.NRGBA{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: uint8(v[3])})
		}
	}
	return img, nil
}
