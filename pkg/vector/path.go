// Package vector reconstructs outline geometry from the vector masks of
// shape layers and renders it as SVG documents or raster previews.
package vector

import (
	"strconv"
	"strings"

	"github.com/kataras/psd-extractor/pkg/psd"
)

// Op is a path command operator.
type Op byte

// Path operators, named after their SVG path letters.
const (
	MoveTo  Op = 'M'
	CubicTo Op = 'C'
	Close   Op = 'Z'
)

// Point is a position in document pixels.
type Point struct {
	X, Y float64
}

// Command is a single path command. MoveTo carries one point, CubicTo
// carries two control points and the end point, Close carries none.
type Command struct {
	Op     Op
	Points []Point
}

// String renders the command in SVG path syntax with two decimals.
func (c Command) String() string {
	var sb strings.Builder
	sb.WriteByte(byte(c.Op))
	for _, p := range c.Points {
		sb.WriteByte(' ')
		sb.WriteString(coord(p.X))
		sb.WriteByte(' ')
		sb.WriteString(coord(p.Y))
	}
	return sb.String()
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ToPath converts a knot sequence to path commands, scaling the normalized
// knot coordinates by width and height.
//
// The path starts at the first anchor. Every knot is joined to its successor
// by a cubic curve using the knot's next control point, the successor's
// previous control point and the successor's anchor. Closed paths wrap from
// the last knot back to the first and end with Close; open paths omit both.
func ToPath(knots []psd.Knot, open bool, width, height float64) []Command {
	n := len(knots)
	if n == 0 {
		return nil
	}

	anchor := func(k psd.Knot) Point { return Point{k.Points[2] * width, k.Points[3] * height} }
	prev := func(k psd.Knot) Point { return Point{k.Points[0] * width, k.Points[1] * height} }
	next := func(k psd.Knot) Point { return Point{k.Points[4] * width, k.Points[5] * height} }

	cmds := make([]Command, 0, n+2)
	cmds = append(cmds, Command{Op: MoveTo, Points: []Point{anchor(knots[0])}})

	segments := n
	if open {
		segments = n - 1
	}

	for i := 0; i < segments; i++ {
		cur, succ := knots[i], knots[(i+1)%n]
		cmds = append(cmds, Command{
			Op:     CubicTo,
			Points: []Point{next(cur), prev(succ), anchor(succ)},
		})
	}

	if !open {
		cmds = append(cmds, Command{Op: Close})
	}

	return cmds
}

// MaskPath converts every sub-path of a vector mask and concatenates the
// commands in order.
func MaskPath(mask *psd.VectorMask, width, height float64) []Command {
	if mask == nil {
		return nil
	}

	var cmds []Command
	for _, p := range mask.Paths {
		cmds = append(cmds, ToPath(p.Knots, p.Open, width, height)...)
	}
	return cmds
}

// FormatPath renders commands as an SVG path data string.
func FormatPath(cmds []Command) string {
	parts := make([]string, len(cmds))
	for i, c := range cmds {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
