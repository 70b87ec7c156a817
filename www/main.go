//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"colorclass/pkg/colorclass"
)

var engine *colorclass.Engine

func main() {
	var err error
	engine, err = colorclass.NewDefault()
	if err != nil {
		fmt.Printf("Color names unavailable: %s\n", err)
	}
	js.Global().Set("goClassifyColor", js.FuncOf(goClassifyColor))
	js.Global().Set("goClassifyName", js.FuncOf(goClassifyName))
	<-make(chan any)
}

// goClassifyColor classifies an (r, g, b) triple from JavaScript. It returns
// {label, family}, or {error} for channels outside 0-255.
func goClassifyColor(this js.Value, args []js.Value) any {
	if len(args) != 3 {
		return map[string]any{"error": "expected r, g, b"}
	}
	label, err := engine.ClassifyRGB(args[0].Int(), args[1].Int(), args[2].Int())
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return map[string]any{
		"label":  label.String(),
		"family": label.Family().String(),
	}
}

// goClassifyName classifies a color name. Unknown names return null.
func goClassifyName(this js.Value, args []js.Value) any {
	if len(args) != 1 {
		return map[string]any{"error": "expected a color name"}
	}
	label, ok := engine.ClassifyName(args[0].String())
	if !ok {
		return nil
	}
	return map[string]any{
		"label":  label.String(),
		"family": label.Family().String(),
	}
}
