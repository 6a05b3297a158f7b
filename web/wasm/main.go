//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-flute/flute"
)

var (
	engine *flute.Engine
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		length, bore, wall := 60.0, 0.95, 0.4
		if len(args) > 2 {
			length = args[0].Float()
			bore = args[1].Float()
			wall = args[2].Float()
		}
		e, err := flute.New(length, bore, wall)
		if err != nil {
			return err.Error()
		}
		engine = e
		return js.Null()
	}))

	api.Set("setPhysicsParams", export(func(args []js.Value) any {
		if engine == nil || len(args) < 3 {
			return js.Null()
		}
		err := engine.SetPhysicsParams(args[0].Float(), args[1].Float(), args[2].Float())
		if err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("setEmbouchure", export(func(args []js.Value) any {
		if engine == nil || len(args) < 3 {
			return js.Null()
		}
		engine.SetEmbouchure(args[0].Float(), args[1].Float(), args[2].Float())
		return js.Null()
	}))

	api.Set("setHoles", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		arr := args[0]
		n := arr.Length()
		positions := make([]float64, n)
		radii := make([]float64, n)
		open := make([]bool, n)
		for i := 0; i < n; i++ {
			item := arr.Index(i)
			positions[i] = item.Get("position").Float()
			radii[i] = item.Get("radius").Float()
			open[i] = item.Get("open").Bool()
		}
		if err := engine.SetHoles(positions, radii, open); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("updateHole", export(func(args []js.Value) any {
		if engine == nil || len(args) < 4 {
			return js.Null()
		}
		err := engine.UpdateHole(args[0].Int(), args[1].Float(), args[2].Float(), args[3].Bool())
		if err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("calculatePitch", export(func(args []js.Value) any {
		if engine == nil {
			return -1
		}
		guess := 0.0
		if len(args) > 0 {
			guess = args[0].Float()
		}
		pitch, err := engine.CalculatePitch(guess)
		if err != nil {
			return -1
		}
		return pitch
	}))

	api.Set("impedanceCurve", export(func(args []js.Value) any {
		if engine == nil || len(args) < 3 {
			return js.Global().Get("Float32Array").New(0)
		}
		curve, err := engine.ImpedanceCurve(args[0].Float(), args[1].Float(), args[2].Int())
		if err != nil {
			return js.Global().Get("Float32Array").New(0)
		}
		arr := js.Global().Get("Float32Array").New(len(curve))
		for i, v := range curve {
			arr.SetIndex(i, v)
		}
		return arr
	}))

	api.Set("reflectogram", export(func(args []js.Value) any {
		if engine == nil || len(args) < 2 {
			return js.Global().Get("Float32Array").New(0)
		}
		samples, err := engine.Reflectogram(args[0].Float(), args[1].Int())
		if err != nil {
			return js.Global().Get("Float32Array").New(0)
		}
		arr := js.Global().Get("Float32Array").New(len(samples))
		for i, v := range samples {
			arr.SetIndex(i, v)
		}
		return arr
	}))

	api.Set("exportObj", export(func(args []js.Value) any {
		if engine == nil {
			return ""
		}
		return engine.ExportOBJ()
	}))

	js.Global().Set("AlgoFlute", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
