package pattern

import (
	_ "embed"
	"fmt"
	"os"
	"sync"
)

//go:embed presets.yaml
var presetsYAML []byte

var loadPresets = sync.OnceValues(func() ([]Pattern, error) {
	return ParseAll(presetsYAML)
})

// Presets lists the names of embedded patterns in file order.
func Presets() []string {
	ps, err := loadPresets()
	if err != nil {
		panic(fmt.Sprintf("embedded presets: %v", err))
	}
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}

// Preset returns the embedded pattern with the given name.
func Preset(name string) (Pattern, error) {
	ps, err := loadPresets()
	if err != nil {
		return Pattern{}, fmt.Errorf("embedded presets: %w", err)
	}
	for _, p := range ps {
		if p.Name == name {
			return p, nil
		}
	}
	return Pattern{}, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
}

// Resolve treats ref as a preset name, falling back to a file path when no
// preset matches and the file exists.
func Resolve(ref string) (Pattern, error) {
	p, err := Preset(ref)
	if err == nil {
		return p, nil
	}
	if _, statErr := os.Stat(ref); statErr != nil {
		return Pattern{}, err
	}
	return Load(ref)
}
