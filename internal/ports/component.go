package ports

// ComponentExpanderPort maps a component name to the ordered package
// names it contains. Unknown components must produce an error.
type ComponentExpanderPort interface {
	Expand(name string) ([]string, error)
}
