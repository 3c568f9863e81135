package spaceasset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/kpfaulkner/colour-go/colour"
	"github.com/kpfaulkner/colour-go/custom"
	"github.com/kpfaulkner/colour-go/transform"
)

var (
	ErrUnknownFormat     = errors.New("unknown asset format")
	ErrMissingPrimaries  = errors.New("asset has no primaries")
	ErrMissingWhitePoint = errors.New("asset has no white point")
	ErrUnknownStandard   = errors.New("unknown standard colour space")
	ErrUnknownWhitePoint = errors.New("unknown white point")
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Descriptor is the serialised form of a colour space. Either Standard names
// one of the registered linear spaces, or the primaries are given together
// with a white point, by name (White) or by chromaticity (WhitePoint).
type Descriptor struct {
	Name       string    `yaml:"name,omitempty" toml:"name,omitempty"`
	Standard   string    `yaml:"standard,omitempty" toml:"standard,omitempty"`
	Red        []float32 `yaml:"red,omitempty" toml:"red,omitempty"`
	Green      []float32 `yaml:"green,omitempty" toml:"green,omitempty"`
	Blue       []float32 `yaml:"blue,omitempty" toml:"blue,omitempty"`
	White      string    `yaml:"white,omitempty" toml:"white,omitempty"`
	WhitePoint []float32 `yaml:"white_point,omitempty" toml:"white_point,omitempty"`
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Decode parses a descriptor without building the colour space.
func Decode(r io.Reader, format Format) (Descriptor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Descriptor{}, err
	}

	var d Descriptor
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &d)
	case FormatTOML:
		err = toml.Unmarshal(data, &d)
	default:
		return Descriptor{}, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return Descriptor{}, fmt.Errorf("failed to parse %s colour space: %w", format, err)
	}
	return d, nil
}

// Encode writes d in the given format.
func Encode(w io.Writer, d Descriptor, format Format) error {
	var data []byte
	var err error
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(d)
	case FormatTOML:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(d)
		data = buf.Bytes()
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Load reads a descriptor and builds the colour space it describes.
func Load(r io.Reader, format Format) (custom.CustomColorSpace, error) {
	d, err := Decode(r, format)
	if err != nil {
		return custom.CustomColorSpace{}, err
	}
	return d.Space()
}

// LoadFile loads a descriptor from disk, choosing the format from the
// extension.
func LoadFile(path string) (custom.CustomColorSpace, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return custom.CustomColorSpace{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return custom.CustomColorSpace{}, err
	}
	defer f.Close()

	space, err := Load(f, format)
	if err != nil {
		return custom.CustomColorSpace{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("loaded colour space %v from %s", space, path)
	return space, nil
}

// Space validates d and builds the colour space.
func (d Descriptor) Space() (custom.CustomColorSpace, error) {
	if d.Standard != "" {
		std, ok := colour.SpaceByName(d.Standard)
		if !ok {
			return custom.CustomColorSpace{}, fmt.Errorf("%q: %w", d.Standard, ErrUnknownStandard)
		}
		return custom.FromLinearSpace(std), nil
	}

	red, err := chromaticity("red", d.Red)
	if err != nil {
		return custom.CustomColorSpace{}, err
	}
	green, err := chromaticity("green", d.Green)
	if err != nil {
		return custom.CustomColorSpace{}, err
	}
	blue, err := chromaticity("blue", d.Blue)
	if err != nil {
		return custom.CustomColorSpace{}, err
	}

	wp, err := d.whitePoint()
	if err != nil {
		return custom.CustomColorSpace{}, err
	}
	return custom.FromPrimariesAndWhitePoint(red, green, blue, wp.X, wp.Y)
}

func (d Descriptor) whitePoint() (transform.WhitePoint, error) {
	if d.White != "" {
		wp, ok := transform.WhitePointByName(d.White)
		if !ok {
			return transform.WhitePoint{}, fmt.Errorf("%q: %w", d.White, ErrUnknownWhitePoint)
		}
		return wp, nil
	}
	if len(d.WhitePoint) == 0 {
		return transform.WhitePoint{}, ErrMissingWhitePoint
	}
	xy, err := chromaticity("white_point", d.WhitePoint)
	if err != nil {
		return transform.WhitePoint{}, err
	}
	return transform.NewWhitePoint(xy.X, xy.Y), nil
}

func chromaticity(field string, v []float32) (transform.CIEXY, error) {
	if len(v) == 0 {
		return transform.CIEXY{}, fmt.Errorf("%s: %w", field, ErrMissingPrimaries)
	}
	if len(v) != 2 {
		return transform.CIEXY{}, fmt.Errorf("%s: expected [x, y], got %d values", field, len(v))
	}
	return transform.NewCIEXY(v[0], v[1]), nil
}

// Describe builds the descriptor for space, using the standard name when the
// space is one of the registered ones.
func Describe(space custom.CustomColorSpace) Descriptor {
	if std, ok := space.Standard(); ok {
		return Descriptor{Name: std.Name, Standard: std.Name}
	}
	p := space.Primaries()
	wp := space.WhitePoint()
	d := Descriptor{
		Name:  space.String(),
		Red:   []float32{p.Red.X, p.Red.Y},
		Green: []float32{p.Green.X, p.Green.Y},
		Blue:  []float32{p.Blue.X, p.Blue.Y},
	}
	if wp.Name != "" {
		d.White = wp.Name
	} else {
		d.WhitePoint = []float32{wp.X, wp.Y}
	}
	return d
}
