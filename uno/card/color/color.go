package color

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Color int

const (
	Red Color = iota
	Green
	Blue
	Yellow
	Black
)

// Colors lists the four suit colors in catalog order. Black is not a suit.
var Colors = []Color{Red, Green, Blue, Yellow}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var painters = map[Color]colorStruct{
	Red:    {name: "Red", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Green:  {name: "Green", colorFunction: color.New(color.FgHiGreen).SprintfFunc()},
	Blue:   {name: "Blue", colorFunction: color.New(color.FgHiCyan).SprintfFunc()},
	Yellow: {name: "Yellow", colorFunction: color.New(color.FgHiYellow).SprintfFunc()},
	Black:  {name: "Black", colorFunction: color.New(color.FgHiMagenta).SprintfFunc()},
}

var Stdout io.Writer = color.Output

func (c Color) Name() string {
	if p, ok := painters[c]; ok {
		return p.name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(text string, args ...interface{}) string {
	p, ok := painters[c]
	if !ok {
		return fmt.Sprintf(text, args...)
	}
	return p.colorFunction(text, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}
