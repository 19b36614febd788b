// This file is part of Famiemu.
//
// Famiemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famiemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famiemu.  If not, see <https://www.gnu.org/licenses/>.

// Package ansi builds the ANSI escape sequences used to colour terminal
// output.
package ansi

import (
	"fmt"
	"strings"

	"github.com/famiemu/famiemu/curated"
)

// Error patterns.
const (
	UnknownColour    = "ansi: unknown %s colour (%s)"
	UnknownAttribute = "ansi: unknown attribute (%s)"
)

const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

const (
	attrBold      = 1
	attrUnderline = 4
	attrInverse   = 7
	attrStrike    = 9
)

// Pens used by the step monitor, keyed by what they colour.
var Pens map[string]string

// NormalPen returns the terminal to its default colours.
var NormalPen string

func init() {
	Pens = make(map[string]string)

	NormalPen, _ = ColorBuild("", "", "", false, false)
	Pens["address"], _ = ColorBuild("cyan", "", "", false, false)
	Pens["instruction"], _ = ColorBuild("white", "", "bold", true, false)
	Pens["state"], _ = ColorBuild("green", "", "", false, false)
	Pens["interrupt"], _ = ColorBuild("yellow", "", "bold", true, false)
	Pens["fault"], _ = ColorBuild("red", "", "bold", true, false)
	Pens["prompt"], _ = ColorBuild("blue", "", "", true, false)
}

func colour(name string) (int, bool) {
	switch strings.ToUpper(name) {
	case "BLACK":
		return colBlack, true
	case "RED":
		return colRed, true
	case "GREEN":
		return colGreen, true
	case "YELLOW":
		return colYellow, true
	case "BLUE":
		return colBlue, true
	case "MAGENTA":
		return colMagenta, true
	case "CYAN":
		return colCyan, true
	case "WHITE":
		return colWhite, true
	case "NORMAL":
		return colDefault, true
	}
	return 0, false
}

// ColorBuild creates the ANSI sequence to create the pen, paper and attribute
// combination. An empty string for any argument leaves that part of the
// sequence out.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	s := strings.Builder{}
	s.Grow(32)
	s.WriteString("\033[")

	if pen != "" {
		c, ok := colour(pen)
		if !ok {
			return "", curated.Errorf(UnknownColour, "pen", pen)
		}
		penType := targetPen
		if brightPen {
			penType = targetBrightPen
		}
		s.WriteString(fmt.Sprintf("%d%d", penType, c))
	}

	if paper != "" {
		c, ok := colour(paper)
		if !ok {
			return "", curated.Errorf(UnknownColour, "paper", paper)
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		paperType := targetPaper
		if brightPaper {
			paperType = targetBrightPaper
		}
		s.WriteString(fmt.Sprintf("%d%d", paperType, c))
	}

	if attribute != "" {
		var a int
		switch strings.ToUpper(attribute) {
		case "BOLD":
			a = attrBold
		case "UNDERLINE":
			a = attrUnderline
		case "INVERSE":
			a = attrInverse
		case "STRIKE":
			a = attrStrike
		case "NORMAL":
			a = 0
		default:
			return "", curated.Errorf(UnknownAttribute, attribute)
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		s.WriteString(fmt.Sprintf("%d", a))
	}

	s.WriteString("m")

	return s.String(), nil
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"
