package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/colour-go/colour"
	"github.com/kpfaulkner/colour-go/image"
	"github.com/kpfaulkner/colour-go/options"
)

func main() {
	configFile := flag.String("config", "", "optional YAML options file")
	iterations := flag.Int("n", 0, "conversions per benchmark")
	cpuProfile := flag.Bool("profile", true, "write a CPU profile")
	flag.Parse()

	opts, err := loadOptions(*configFile, &options.ColourOptions{Iterations: *iterations, Profile: *cpuProfile})
	if err != nil {
		log.Errorf("Error loading options: %v\n", err)
		os.Exit(1)
	}
	if err := opts.ApplyLogLevel(); err != nil {
		log.Errorf("Error setting log level: %v\n", err)
		os.Exit(1)
	}

	//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	if opts.Profile {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		defer p.Stop()
	}

	rng := rand.New(rand.NewPCG(1, 2))
	inputs := make([]colour.EncodedSrgbaU8, 4096)
	for i := range inputs {
		inputs[i] = colour.SrgbaU8(uint8(rng.IntN(256)), uint8(rng.IntN(256)), uint8(rng.IntN(256)), uint8(rng.IntN(256)))
	}

	n := opts.Iterations
	run("EncodedSrgbaU8 -> LinearSrgba", n, func(i int) {
		_ = colour.Convert[colour.LinearSrgba](inputs[i%len(inputs)])
	})
	run("EncodedSrgbaU8 -> Oklab", n, func(i int) {
		_ = colour.Convert[colour.Oklab](inputs[i%len(inputs)])
	})
	run("EncodedSrgbaU8 -> LinearSrgbaPremultiplied", n, func(i int) {
		_ = colour.Convert[colour.LinearSrgbaPremultiplied](inputs[i%len(inputs)])
	})
	run("LinearSrgb -> LinearAcesCg", n, func(i int) {
		lin := colour.Convert[colour.LinearSrgb](inputs[i%len(inputs)])
		_ = colour.Convert[colour.LinearAcesCg](lin)
	})
	run("perceptual blend", n, func(i int) {
		a := colour.Convert[colour.Oklab](inputs[i%len(inputs)])
		b := colour.Convert[colour.Oklab](inputs[(i+1)%len(inputs)])
		_ = colour.Convert[colour.EncodedSrgbaU8](colour.PerceptualBlend(a, b, 0.5))
	})
	run("composite", n, func(i int) {
		_ = colour.Composite(inputs[i%len(inputs)], inputs[(i+7)%len(inputs)])
	})

	benchBuffer(inputs, opts.MaxGoroutines)

	if _, err := colour.ConvertLanes(opts.Source, opts.Target, inputs[0].Lanes()); err != nil {
		log.Errorf("skipping lanes benchmark: %v", err)
		return
	}
	run(fmt.Sprintf("%s -> %s by name", opts.Source, opts.Target), n, func(i int) {
		_, _ = colour.ConvertLanes(opts.Source, opts.Target, inputs[i%len(inputs)].Lanes())
	})
}

// loadOptions reads path when given and lays the flag values over it. Profiling
// runs if either the flags or the file ask for it.
func loadOptions(path string, flags *options.ColourOptions) (*options.ColourOptions, error) {
	if path == "" {
		return options.NewColourOptions(flags), nil
	}
	opts, err := options.LoadOptions(path)
	if err != nil {
		return nil, err
	}
	if flags.Iterations > 0 {
		opts.Iterations = flags.Iterations
	}
	opts.Profile = opts.Profile || flags.Profile
	return opts, nil
}

func run(name string, n int, fn func(i int)) {
	start := time.Now()
	for i := 0; i < n; i++ {
		fn(i)
	}
	elapsed := time.Since(start)
	fmt.Printf("%-45s %d conversions took %d ms (%.1f ns/op)\n", name, n, elapsed.Milliseconds(), float64(elapsed.Nanoseconds())/float64(n))
}

// benchBuffer converts a 1024x1024 planar buffer to Oklab and back.
func benchBuffer(inputs []colour.EncodedSrgbaU8, maxGoroutines int) {
	buf, err := image.NewImageBuffer(colour.EncodedSrgbaU8{}.Name(), 1024, 1024)
	if err != nil {
		log.Errorf("Error making buffer: %v\n", err)
		return
	}
	for y := int32(0); y < buf.Height; y++ {
		for x := int32(0); x < buf.Width; x++ {
			buf.Set(y, x, inputs[int(y*buf.Width+x)%len(inputs)].Lanes())
		}
	}

	for count := 0; count < 5; count++ {
		start := time.Now()
		lab, err := buf.Convert(colour.Oklab{}.Name(), maxGoroutines)
		if err != nil {
			log.Errorf("Error converting buffer: %v\n", err)
			return
		}
		back, err := lab.Convert(colour.LinearSrgba{}.Name(), maxGoroutines)
		if err != nil {
			log.Errorf("Error converting buffer: %v\n", err)
			return
		}
		fmt.Printf("buffer round trip with %d goroutines took %d ms\n", maxGoroutines, time.Since(start).Milliseconds())
		lab.Release()
		back.Release()
	}
	hits, misses := image.PoolMetrics()
	fmt.Printf("plane pool hits %d misses %d\n", hits, misses)
}
