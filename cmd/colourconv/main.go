package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/colour-go/colour"
	"github.com/kpfaulkner/colour-go/options"
	"github.com/kpfaulkner/colour-go/spaceasset"
	"github.com/kpfaulkner/colour-go/vecmath"
)

func main() {
	configFile := flag.String("config", "", "optional YAML options file")
	from := flag.String("from", "", "source encoding (default EncodedSrgbU8)")
	to := flag.String("to", "", "target encoding (default Oklab)")
	spaceFile := flag.String("space", "", "YAML or TOML custom colour space; input is linear RGB in that space")
	verbose := flag.Bool("v", false, "debug logging")
	list := flag.Bool("list", false, "list encodings and conversions")
	flag.Parse()

	opts, err := loadOptions(*configFile, &options.ColourOptions{Source: *from, Target: *to, SpaceAsset: *spaceFile})
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
	if *verbose {
		opts.LogLevel = "debug"
	}
	if err := opts.ApplyLogLevel(); err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if *list {
		printEncodings()
		return
	}

	if flag.NArg() == 0 {
		fmt.Printf("a colour value must be specified: hex (#336699), a colour name or comma separated lanes\n")
		os.Exit(1)
	}
	value := strings.Join(flag.Args(), ",")

	source := opts.Source
	var lanes vecmath.Vec4
	if opts.SpaceAsset != "" {
		space, err := spaceasset.LoadFile(opts.SpaceAsset)
		if err != nil {
			log.Errorf("Error loading colour space: %v", err)
			os.Exit(1)
		}
		lin, err := parseCustom(value, space)
		if err != nil {
			log.Errorf("Error parsing value: %v", err)
			os.Exit(1)
		}
		source = lin.Name()
		lanes = lin.Lanes()
	} else {
		layout, ok := colour.EncodingLayout(source)
		if !ok {
			log.Errorf("unknown source encoding %q, try -list", source)
			os.Exit(1)
		}
		lanes, err = parseValue(value, layout)
		if err != nil {
			log.Errorf("Error parsing value: %v", err)
			os.Exit(1)
		}
	}

	log.Debugf("converting %v from %s to %s", lanes, source, opts.Target)
	out, err := colour.ConvertLanes(source, opts.Target, lanes)
	if err != nil {
		log.Errorf("Error converting: %v", err)
		os.Exit(1)
	}

	layout, _ := colour.EncodingLayout(opts.Target)
	fmt.Printf("%s\n", formatLanes(opts.Target, layout, out))
}

func loadOptions(path string, flags *options.ColourOptions) (*options.ColourOptions, error) {
	if path == "" {
		return options.NewColourOptions(flags), nil
	}
	opts, err := options.LoadOptions(path)
	if err != nil {
		return nil, err
	}
	if flags.Source != "" {
		opts.Source = flags.Source
	}
	if flags.Target != "" {
		opts.Target = flags.Target
	}
	if flags.SpaceAsset != "" {
		opts.SpaceAsset = flags.SpaceAsset
	}
	return opts, nil
}

func printEncodings() {
	fmt.Printf("encodings:\n")
	for _, name := range colour.EncodingNames() {
		layout, _ := colour.EncodingLayout(name)
		fmt.Printf("  %-28s %v\n", name, layout)
	}
	fmt.Printf("conversions:\n")
	for _, r := range colour.Relations() {
		fmt.Printf("  %v\n", r)
	}
}
