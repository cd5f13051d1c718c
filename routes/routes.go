// Package routes provides reference payload types for the graph engine:
// land and sea routes carrying a name, a color, and a span. The engine
// itself reads nothing but Length(); everything else passes through
// opaquely for rendering and rule checks in the game layer.
//
// Each route is one game object: two routes between the same cities with
// identical fields are still distinct payloads, which is exactly what gives
// parallel edges their identity in core.
package routes

// Color is the claim color of a route. Gray routes accept any color.
type Color int

// Route colors.
const (
	Gray Color = iota
	Red
	Green
	Blue
	Yellow
	Purple
	Black
	White
)

var colorNames = map[Color]string{
	Gray:   "gray",
	Red:    "red",
	Green:  "green",
	Blue:   "blue",
	Yellow: "yellow",
	Purple: "purple",
	Black:  "black",
	White:  "white",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}

	return "unknown"
}

// Land is an overland route claimed with wagons.
type Land struct {
	Name  string
	Color Color
	Span  int64
}

// Length reports the route span; it is what the engine charges for
// traversing the edge.
func (r *Land) Length() int64 { return r.Span }

// Sea is a maritime route claimed with boats.
type Sea struct {
	Name  string
	Color Color
	Span  int64
}

// Length reports the route span.
func (r *Sea) Length() int64 { return r.Span }
