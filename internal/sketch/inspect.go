package sketch

import (
	"fmt"
	"image"
	"math"
	"slices"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"mapsketch/internal/core"
	"mapsketch/internal/palette"
)

// Method selects how the sketch palette is extracted.
type Method int

const (
	MethodDominantColor Method = iota
	MethodKMeans
)

func (m Method) String() string {
	switch m {
	case MethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

// ParseMethod accepts "dominantcolor" (or "dominant") and "kmeans".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "dominantcolor", "dominant", "":
		return MethodDominantColor, nil
	case "kmeans", "k-means":
		return MethodKMeans, nil
	default:
		return 0, fmt.Errorf("unknown palette method %q", s)
	}
}

// maxSamples bounds the k-means dataset for large sketches.
const maxSamples = 12000

// Entry is one extracted sketch colour and what the generators make of it.
type Entry struct {
	Color  core.RGB `yaml:"color"`
	Weight float64  `yaml:"weight"`

	// Class is the label of the perceptually nearest palette colour.
	Class       string   `yaml:"class"`
	Nearest     core.RGB `yaml:"nearest"`
	LabDistance float64  `yaml:"lab_distance"`

	// Exact is set when the colour is already a palette member.
	Exact bool `yaml:"exact"`

	// Snaps is set when the quantizer would replace the colour by SnapsTo.
	Snaps   bool     `yaml:"snaps"`
	SnapsTo core.RGB `yaml:"snaps_to"`
}

// Report lists the extracted colours, heaviest first. Weights sum to one.
type Report struct {
	Method  Method
	Entries []Entry
}

// Inspect extracts up to k representative colours from img and classifies
// each against set.
func Inspect(img image.Image, k int, method Method, set palette.Set) (*Report, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	if k <= 0 {
		return nil, fmt.Errorf("inspect: palette size must be positive, got %d", k)
	}

	var weighted []weightedColor
	if method == MethodDominantColor {
		weighted = dominantColors(img, k)
	}
	if len(weighted) == 0 {
		var err error
		weighted, err = kmeansColors(img, k)
		if err != nil {
			return nil, err
		}
	}
	if len(weighted) == 0 {
		return nil, fmt.Errorf("inspect: %s found no opaque pixels", method)
	}

	total := 0.0
	for _, w := range weighted {
		total += w.weight
	}
	slices.SortStableFunc(weighted, func(a, b weightedColor) int {
		switch {
		case a.weight > b.weight:
			return -1
		case a.weight < b.weight:
			return 1
		}
		return 0
	})

	preferred := set.Preferred()
	report := &Report{Method: method, Entries: make([]Entry, 0, len(weighted))}
	for _, w := range weighted {
		e := Entry{Color: w.color, Weight: w.weight / total}
		if nearest, d, ok := nearestLab(w.color, preferred); ok {
			e.Nearest, e.LabDistance = nearest, d
			e.Class = set.Label(nearest)
		}
		e.Exact = slices.Contains(preferred, w.color)
		e.SnapsTo = palette.Snap(w.color, preferred)
		e.Snaps = e.SnapsTo != w.color
		report.Entries = append(report.Entries, e)
	}
	return report, nil
}

type weightedColor struct {
	color  core.RGB
	weight float64
}

func dominantColors(img image.Image, k int) []weightedColor {
	var out []weightedColor
	for _, c := range dominantcolor.FindWeight(img, k) {
		w := c.Weight
		if w <= 0 {
			w = 1e-6
		}
		out = append(out, weightedColor{color: core.FromColor(c.RGBA), weight: w})
	}
	return out
}

func kmeansColors(img image.Image, k int) ([]weightedColor, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	step := 1
	if width*height > maxSamples {
		step = int(math.Sqrt(float64(width*height)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r, g, bl, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r) / 65535.0,
				float64(g) / 65535.0,
				float64(bl) / 65535.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil, nil
	}

	cc, err := kmeans.New().Partition(dataset, min(k, len(dataset)))
	if err != nil {
		return nil, fmt.Errorf("inspect: kmeans: %w", err)
	}
	out := make([]weightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		r, g, bl := col.RGB255()
		out = append(out, weightedColor{color: core.RGB{R: r, G: g, B: bl}, weight: float64(len(c.Observations))})
	}
	return out, nil
}

// nearestLab finds the palette colour closest to c in CIE Lab space.
func nearestLab(c core.RGB, preferred []core.RGB) (core.RGB, float64, bool) {
	if len(preferred) == 0 {
		return core.RGB{}, 0, false
	}
	cc := c.Colorful()
	best, bestD := preferred[0], cc.DistanceLab(preferred[0].Colorful())
	for _, p := range preferred[1:] {
		if d := cc.DistanceLab(p.Colorful()); d < bestD {
			best, bestD = p, d
		}
	}
	return best, bestD, true
}
