package info

import "github.com/Thespica/GraphAr/dtype"

// Property is a single named, typed column declared inside a PropertyGroup.
type Property struct {
	Name      string          `yaml:"name"`
	DataType  string          `yaml:"data_type"`
	IsPrimary bool            `yaml:"is_primary"`
	resolved  *dtype.DataType
}

// Type returns the property's canonical DataType, resolved from the YAML
// data_type string the first time it is needed.
func (p *Property) Type() (*dtype.DataType, error) {
	if p.resolved == nil {
		dt, err := dtype.FromTypeName(p.DataType)
		if err != nil {
			return nil, err
		}
		p.resolved = dt
	}
	return p.resolved, nil
}

// PropertyGroup is an ordered set of properties stored together as one
// columnar file per chunk, under a stable prefix relative to its owning
// vertex or edge info.
type PropertyGroup struct {
	Prefix     string            `yaml:"prefix"`
	FileType   dtype.FileFormat `yaml:"file_type"`
	Properties []Property        `yaml:"properties"`
}

// HasProperty reports whether name is declared in this group.
func (pg *PropertyGroup) HasProperty(name string) bool {
	_, ok := pg.Property(name)
	return ok
}

// Property looks up a declared property by name.
func (pg *PropertyGroup) Property(name string) (*Property, bool) {
	for i := range pg.Properties {
		if pg.Properties[i].Name == name {
			return &pg.Properties[i], true
		}
	}
	return nil, false
}

// ColumnNames returns the property names in declaration order.
func (pg *PropertyGroup) ColumnNames() []string {
	names := make([]string, len(pg.Properties))
	for i, p := range pg.Properties {
		names[i] = p.Name
	}
	return names
}
