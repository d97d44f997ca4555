package styles

import errs "github.com/matzehuels/mekko/pkg/errors"

// Names lists the registered style names.
var Names = []string{"simple", "outline"}

// ByName returns the style registered under name.
func ByName(name string) (Style, error) {
	switch name {
	case "", "simple":
		return Simple{}, nil
	case "outline":
		return Outline{}, nil
	}
	return nil, errs.New(errs.ErrCodeInvalidStyle, "unknown style %q (must be one of: simple, outline)", name)
}
