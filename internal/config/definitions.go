package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownDefinition is returned by Resolve for a name that is neither
// defined nor a literal parameter string.
var ErrUnknownDefinition = errors.New("unknown projection definition")

// builtin holds a few common definitions, keyed by lower case name.
var builtin = map[string]string{
	"wgs84":       "+proj=longlat +datum=WGS84 +no_defs",
	"epsg:4326":   "+proj=longlat +datum=WGS84 +no_defs",
	"webmercator": "+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +no_defs",
	"epsg:3857":   "+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +no_defs",
	"epsg:5181":   "+proj=tmerc +lat_0=38 +lon_0=127 +k=1 +x_0=200000 +y_0=500000 +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs",
	"ecef":        "+proj=geocent +datum=WGS84 +units=m +no_defs",
}

// Definitions maps names to projection parameter strings. The strings are
// not interpreted here.
type Definitions struct {
	byName map[string]string
}

type definitionsFile struct {
	Definitions map[string]string `yaml:"definitions"`
}

// DefaultDefinitions returns the built-in definitions.
func DefaultDefinitions() *Definitions {
	d := &Definitions{byName: make(map[string]string, len(builtin))}
	for k, v := range builtin {
		d.byName[k] = v
	}
	return d
}

// LoadDefinitions reads a YAML file of the form
//
//	definitions:
//	  utm10n: "+proj=utm +zone=10 +datum=WGS84"
//
// and merges it over the built-in definitions.
func LoadDefinitions(path string) (*Definitions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open definitions: %w", err)
	}
	defer f.Close()

	d, err := ReadDefinitions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// ReadDefinitions is LoadDefinitions for an already open reader.
func ReadDefinitions(r io.Reader) (*Definitions, error) {
	var file definitionsFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode definitions: %w", err)
	}

	d := DefaultDefinitions()
	for name, parameters := range file.Definitions {
		key := normalize(name)
		if key == "" {
			return nil, errors.New("definition with empty name")
		}
		if strings.TrimSpace(parameters) == "" {
			return nil, fmt.Errorf("definition %q is empty", name)
		}
		d.byName[key] = parameters
	}
	return d, nil
}

// Resolve returns the parameter string for name. Names are case
// insensitive. A name starting with '+' is taken to be a parameter string
// already and is returned verbatim.
func (d *Definitions) Resolve(name string) (string, error) {
	if strings.HasPrefix(strings.TrimSpace(name), "+") {
		return name, nil
	}
	if parameters, ok := d.byName[normalize(name)]; ok {
		return parameters, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDefinition, name)
}

// A Definition is a named parameter string.
type Definition struct {
	Name       string
	Parameters string
}

// All returns every definition, sorted by name.
func (d *Definitions) All() []Definition {
	all := make([]Definition, 0, len(d.byName))
	for name, parameters := range d.byName {
		all = append(all, Definition{Name: name, Parameters: parameters})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Names returns the defined names in sorted order.
func (d *Definitions) Names() []string {
	all := d.All()
	names := make([]string, len(all))
	for i, def := range all {
		names[i] = def.Name
	}
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
