//go:build js && !wasm

package main

import (
	"fmt"
	"time"

	"colorclass/pkg/colorclass"

	"github.com/gopherjs/gopherjs/js"
)

var engine *colorclass.Engine

func main() {
	t1 := time.Now()
	var err error
	engine, err = colorclass.NewDefault()
	if err != nil {
		fmt.Printf("Color names unavailable: %s\n", err)
	}
	fmt.Printf("Time to load color names: %g\n", timeDeltaMS(t1, time.Now()))

	funcs := []struct {
		name string
		fn   any
	}{
		{"goClassifyColor", goClassifyColor},
		{"goClassifyName", goClassifyName},
		{"goToHsb", goToHsb},
	}
	for _, fn := range funcs {
		js.Global.Set(fn.name, fn.fn)
	}
}

func timeDeltaMS(t1, t2 time.Time) float64 {
	return float64(t2.Sub(t1)) / float64(time.Millisecond)
}

// goClassifyColor is the entry point for RGB classification from JavaScript.
func goClassifyColor(r, g, b int) any {
	label, err := engine.ClassifyRGB(r, g, b)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return map[string]any{
		"label":  label.String(),
		"family": label.Family().String(),
	}
}

// goClassifyName classifies a color name; unknown names give null.
func goClassifyName(name string) any {
	label, ok := engine.ClassifyName(name)
	if !ok {
		return nil
	}
	return map[string]any{
		"label":  label.String(),
		"family": label.Family().String(),
	}
}

func goToHsb(r, g, b int) any {
	hsb, err := engine.ToHsb(r, g, b)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return []int{hsb.Hue, hsb.Saturation, hsb.Brightness}
}
