package schema

// Constraints carries the leaf validation bounds a node may declare. The
// generator copies them onto the synthesized fragment; they never affect
// recursion or effects.
type Constraints struct {
	// String
	MinLen  *int
	MaxLen  *int
	Pattern string
	Format  string

	// Number / Integer
	Min *float64
	Max *float64

	// Array
	MinItems *int
	MaxItems *int
}

// MinLen returns a copy of a string node with a minimum length.
func (n *Node) MinLen(min int) *Node {
	c := n.clone()
	c.constraints.MinLen = &min
	return c
}

// MaxLen returns a copy of a string node with a maximum length.
func (n *Node) MaxLen(max int) *Node {
	c := n.clone()
	c.constraints.MaxLen = &max
	return c
}

// Pattern returns a copy of a string node with a regular-expression pattern.
func (n *Node) Pattern(pattern string) *Node {
	c := n.clone()
	c.constraints.Pattern = pattern
	return c
}

// Format returns a copy of a string node with a format annotation
// (e.g., "email", "uuid", "uri").
func (n *Node) Format(format string) *Node {
	c := n.clone()
	c.constraints.Format = format
	return c
}

// Min returns a copy of a numeric node with an inclusive lower bound.
func (n *Node) Min(min float64) *Node {
	c := n.clone()
	c.constraints.Min = &min
	return c
}

// Max returns a copy of a numeric node with an inclusive upper bound.
func (n *Node) Max(max float64) *Node {
	c := n.clone()
	c.constraints.Max = &max
	return c
}

// MinItems returns a copy of an array node with a minimum length.
func (n *Node) MinItems(min int) *Node {
	c := n.clone()
	c.constraints.MinItems = &min
	return c
}

// MaxItems returns a copy of an array node with a maximum length.
func (n *Node) MaxItems(max int) *Node {
	c := n.clone()
	c.constraints.MaxItems = &max
	return c
}
