package commands

import (
	"github.com/mgutz/ansi"

	"github.com/pivotal-cf/pw-alert/strength"
)

var red = ansi.ColorFunc("red+b")
var yellow = ansi.ColorFunc("yellow+b")
var green = ansi.ColorFunc("green+b")
var gray = ansi.ColorFunc("white")

func colorCategory(category strength.Category) string {
	switch category {
	case strength.Strong:
		return green(string(category))
	case strength.Medium:
		return yellow(string(category))
	case strength.Weak:
		return red(string(category))
	default:
		return gray(string(category))
	}
}
