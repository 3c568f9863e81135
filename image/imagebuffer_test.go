package image

import (
	goimage "image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/colour-go/colour"
	"github.com/kpfaulkner/colour-go/testcommon"
	"github.com/kpfaulkner/colour-go/vecmath"
)

func TestNewImageBuffer(t *testing.T) {

	for _, tc := range []struct {
		name           string
		encoding       string
		height         int32
		width          int32
		expectedPlanes int
		expectErr      bool
	}{
		{
			name:           "u8 rgb",
			encoding:       "EncodedSrgbU8",
			height:         5,
			width:          4,
			expectedPlanes: 3,
		},
		{
			name:           "float rgba",
			encoding:       "LinearSrgba",
			height:         2,
			width:          3,
			expectedPlanes: 4,
		},
		{
			name:           "empty",
			encoding:       "Oklab",
			expectedPlanes: 3,
		},
		{
			name:      "unknown encoding",
			encoding:  "Hsv",
			height:    1,
			width:     1,
			expectErr: true,
		},
		{
			name:      "negative size",
			encoding:  "Oklab",
			height:    -1,
			width:     1,
			expectErr: true,
		},
		{
			name:      "too large",
			encoding:  "EncodedSrgbU8",
			height:    65536,
			width:     65537,
			expectErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			buf, err := NewImageBuffer(tc.encoding, tc.height, tc.width)
			if err != nil && tc.expectErr {
				// got what we wanted..
				return
			}

			if err != nil && !tc.expectErr {
				t.Errorf("expected no error but got %v", err)
				return
			}

			if err == nil && tc.expectErr {
				t.Errorf("expected error but got none")
				return
			}

			assert.Len(t, buf.Planes, tc.expectedPlanes)
			for _, p := range buf.Planes {
				assert.Len(t, p, int(tc.height*tc.width))
			}
			assert.Equal(t, tc.expectedPlanes, buf.Layout().Lanes)
		})
	}
}

func TestNewImageBufferFromPlanes(t *testing.T) {
	planes := [][]float32{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}}
	buf, err := NewImageBufferFromPlanes("EncodedSrgbU8", 2, 2, planes)
	require.NoError(t, err)
	assert.Equal(t, vecmath.Vec4{4, 8, 12, 0}, buf.At(1, 1))
	assert.Equal(t, vecmath.Vec4{2, 6, 10, 0}, buf.At(0, 1))

	_, err = NewImageBufferFromPlanes("EncodedSrgbaU8", 2, 2, planes)
	assert.ErrorIs(t, err, ErrPlaneCount)

	_, err = NewImageBufferFromPlanes("EncodedSrgbU8", 2, 3, planes)
	assert.ErrorIs(t, err, ErrPlaneSize)

	_, err = NewImageBufferFromPlanes("Hsv", 2, 2, planes)
	assert.ErrorIs(t, err, colour.ErrUnknownEncoding)
}

func TestLargeDimensions(t *testing.T) {
	_, err := NewImageBuffer("EncodedSrgbU8", 65536, 65537)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = NewImageBufferFromPlanes("EncodedSrgbU8", 65536, 65536, [][]float32{{}, {}, {}})
	assert.ErrorIs(t, err, ErrTooLarge)

	size, err := planeSize(46341, 46340)
	require.NoError(t, err)
	assert.Equal(t, 46341*46340, size)

	_, err = planeSize(46341, 46341)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestEquals(t *testing.T) {
	a, err := NewImageBufferFromPlanes("LinearSrgb", 1, 2, [][]float32{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}})
	require.NoError(t, err)
	b, err := NewImageBufferFromPlanes("LinearSrgb", 1, 2, [][]float32{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6001}})
	require.NoError(t, err)
	c, err := NewImageBufferFromPlanes("Oklab", 1, 2, [][]float32{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}})
	require.NoError(t, err)

	assert.True(t, a.Equals(b, 1e-3))
	assert.False(t, a.Equals(b, 1e-5))
	assert.False(t, a.Equals(c, 1))
}

func TestConvert(t *testing.T) {
	src, err := NewImageBuffer("EncodedSrgbU8", 3, 5)
	require.NoError(t, err)
	for y := int32(0); y < src.Height; y++ {
		for x := int32(0); x < src.Width; x++ {
			src.Set(y, x, vecmath.Vec4{float32(x * 50), float32(y * 100), 255, 0})
		}
	}

	out, err := src.Convert("LinearSrgb", 1)
	require.NoError(t, err)
	assert.Equal(t, "LinearSrgb", out.Encoding)
	for y := int32(0); y < src.Height; y++ {
		for x := int32(0); x < src.Width; x++ {
			in := colour.SrgbU8(uint8(x*50), uint8(y*100), 255)
			expected := colour.Convert[colour.LinearSrgb](in).Lanes()
			testcommon.AssertVec4InDelta(t, expected, out.At(y, x), 0)
		}
	}

	parallel, err := src.Convert("LinearSrgb", 4)
	require.NoError(t, err)
	assert.True(t, out.Equals(parallel, 0))

	back, err := out.Convert("EncodedSrgbU8", 2)
	require.NoError(t, err)
	assert.True(t, src.Equals(back, 0))

	_, err = src.Convert("CieXYZ", 1)
	assert.ErrorIs(t, err, colour.ErrNoConversion)
}

func TestImageRoundTrip(t *testing.T) {
	img := goimage.NewNRGBA(goimage.Rect(10, 20, 13, 22))
	img.SetNRGBA(10, 20, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	img.SetNRGBA(12, 21, color.NRGBA{R: 10, G: 200, B: 30, A: 128})

	buf := FromImage(img)
	assert.Equal(t, int32(3), buf.Width)
	assert.Equal(t, int32(2), buf.Height)
	assert.Equal(t, vecmath.Vec4{255, 0, 0, 255}, buf.At(0, 0))
	assert.Equal(t, vecmath.Vec4{10, 200, 30, 128}, buf.At(1, 2))

	out, err := buf.ToNRGBA(2)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 10, G: 200, B: 30, A: 128}, out.NRGBAAt(2, 1))

	linear, err := buf.Convert("LinearSrgba", 2)
	require.NoError(t, err)
	viaLinear, err := linear.ToNRGBA(2)
	require.NoError(t, err)
	assert.Equal(t, out.Pix, viaLinear.Pix)
}

func TestToNRGBANormalisesLanes(t *testing.T) {
	buf, err := NewImageBufferFromPlanes("EncodedSrgbaU8", 1, 1, [][]float32{{300}, {127.9}, {-4}, {255}})
	require.NoError(t, err)

	img, err := buf.ToNRGBA(1)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, G: 128, B: 0, A: 255}, img.NRGBAAt(0, 0))

	converted, err := buf.Convert("EncodedSrgbaU8", 1)
	require.NoError(t, err)
	assert.Equal(t, vecmath.Vec4{255, 128, 0, 255}, converted.At(0, 0))
}

func TestPlanePool(t *testing.T) {
	pool := NewPlanePool()
	plane := pool.Get(64)
	assert.Len(t, plane, 64)
	plane[3] = 42

	pool.Put(plane)
	again := pool.Get(64)
	assert.Len(t, again, 64)
	assert.Equal(t, float32(0), again[3])

	hits, misses := pool.Metrics()
	assert.Equal(t, int64(2), hits+misses)
	assert.Empty(t, pool.Get(0))
}

func TestRelease(t *testing.T) {
	buf, err := NewImageBuffer("LinearSrgba", 8, 8)
	require.NoError(t, err)
	buf.Planes[0][0] = 1
	buf.Release()
	assert.Nil(t, buf.Planes)

	hitsBefore, missesBefore := PoolMetrics()
	next, err := NewImageBuffer("LinearSrgba", 8, 8)
	require.NoError(t, err)
	hits, misses := PoolMetrics()
	assert.Equal(t, int64(4), hits-hitsBefore+misses-missesBefore)
	for _, p := range next.Planes {
		assert.Equal(t, float32(0), p[0])
	}
}
