package info

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Thespica/GraphAr/dtype"
)

// InfoVersion is a parsed "gar/v<n>" version string with an optional
// trailing "(t1,t2,...)" extension list, as specified in spec §6.
type InfoVersion struct {
	Major      int
	Extensions []string
}

var versionPattern = regexp.MustCompile(`^gar/v(\d+)(?:\(([^)]*)\))?$`)

// ParseInfoVersion parses a raw "version" field from any of the three YAML
// metadata file kinds.
func ParseInfoVersion(raw string) (InfoVersion, error) {
	m := versionPattern.FindStringSubmatch(raw)
	if m == nil {
		return InfoVersion{}, dtype.WrapParse("info version", raw, errInvalidVersionFormat)
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return InfoVersion{}, dtype.WrapParse("info version", raw, err)
	}
	var exts []string
	if m[2] != "" {
		for _, e := range strings.Split(m[2], ",") {
			e = strings.TrimSpace(e)
			if e != "" {
				exts = append(exts, e)
			}
		}
	}
	return InfoVersion{Major: major, Extensions: exts}, nil
}

// HasExtension reports whether ext was declared in the version string.
func (v InfoVersion) HasExtension(ext string) bool {
	for _, e := range v.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

func (v InfoVersion) String() string {
	if len(v.Extensions) == 0 {
		return "gar/v" + strconv.Itoa(v.Major)
	}
	return "gar/v" + strconv.Itoa(v.Major) + "(" + strings.Join(v.Extensions, ",") + ")"
}

var errInvalidVersionFormat = &versionFormatError{}

type versionFormatError struct{}

func (*versionFormatError) Error() string {
	return `expected "gar/v<n>" optionally followed by "(ext1,ext2,...)"`
}
