package pip

// Package identifies what to install. Path wins over URL, URL wins over
// Name; Version only applies to a plain Name.
type Package struct {
	Name    string
	Version string
	URL     string
	Path    string
}

// Source returns the specifier handed to pip install.
func (p Package) Source() string {
	switch {
	case p.Path != "":
		return p.Path
	case p.URL != "":
		return p.URL
	case p.Version != "":
		return p.Name + "==" + p.Version
	default:
		return p.Name
	}
}
