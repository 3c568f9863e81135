package main

import (
	"fmt"
	"reflect"

	"github.com/kpfaulkner/colour-go/colour"
	"github.com/kpfaulkner/colour-go/custom"
)

// displays sizes of the colour types, which should be exactly their raw lanes
func memStats(input any) {

	rType := reflect.TypeOf(input)
	fmt.Printf("Size of %s : %d bytes (comparable %v)\n", rType.Name(), rType.Size(), rType.Comparable())

	if rType.Kind() == reflect.Struct {
		for i := 0; i < rType.NumField(); i++ {
			field := rType.Field(i)
			fmt.Printf("  Name %s\n", field.Name)
			fmt.Printf("    Offset of    : %d bytes\n", field.Offset)
			fmt.Printf("    Size of      : %d bytes\n", field.Type.Size())
			fmt.Printf("    Alignment of : %d bytes\n", field.Type.Align())
			fmt.Println()
		}
	}
}

func main() {
	memStats(colour.EncodedSrgbU8{})
	memStats(colour.EncodedSrgbaU8{})
	memStats(colour.EncodedSrgbaPremultipliedU8{})
	memStats(colour.LinearSrgb{})
	memStats(colour.LinearSrgba{})
	memStats(colour.Oklab{})
	memStats(colour.LinearAcesCg{})
	memStats(colour.CieXYZ{})
	memStats(custom.DynamicColor{})
}
