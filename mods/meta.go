package mods

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/maddymakesgames/celeste-go/errors"
)

// Version is a semver-style version number. A nil minor or patch is a
// wildcard, which dependency declarations use to accept any value.
type Version struct {
	Major uint16
	Minor *uint16
	Patch *uint16
}

// ParseVersion parses "major.minor.patch" where minor and patch may be
// "*". A wildcard major is rejected.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, errors.InvalidData(errors.PhaseMods, nil,
			fmt.Sprintf("version %q does not have three components", s))
	}
	if parts[0] == "*" {
		return Version{}, errors.InvalidData(errors.PhaseMods, nil,
			"mod version is not allowed to have '*' for the major number")
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return Version{}, errors.Wrap(errors.PhaseMods, errors.KindInvalidData, err,
			fmt.Sprintf("invalid major version in %q", s))
	}

	v := Version{Major: uint16(major)}
	for i, dst := range []**uint16{&v.Minor, &v.Patch} {
		part := parts[i+1]
		if part == "*" {
			continue
		}
		n, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			return Version{}, errors.Wrap(errors.PhaseMods, errors.KindInvalidData, err,
				fmt.Sprintf("invalid version component in %q", s))
		}
		u := uint16(n)
		*dst = &u
	}

	return v, nil
}

func (v Version) String() string {
	part := func(p *uint16) string {
		if p == nil {
			return "*"
		}
		return strconv.Itoa(int(*p))
	}
	return fmt.Sprintf("%d.%s.%s", v.Major, part(v.Minor), part(v.Patch))
}

// Matches reports whether v satisfies the dependency requirement req.
// v is assumed to have no wildcards; wildcards in req accept anything
// at or above the stated component.
func (v Version) Matches(req Version) bool {
	if v.Major != req.Major {
		return false
	}
	if req.Minor == nil {
		return true
	}
	if v.Minor == nil || *v.Minor < *req.Minor {
		return false
	}
	if *v.Minor > *req.Minor || req.Patch == nil {
		return true
	}
	return v.Patch != nil && *v.Patch >= *req.Patch
}

func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}

func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return errors.Wrap(errors.PhaseMods, errors.KindInvalidData, err, "version is not a string")
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Dependency names another mod and the version range it must satisfy.
type Dependency struct {
	Name    string  `yaml:"Name"`
	Version Version `yaml:"Version"`
}

// ModMeta is one mod entry of an everest.yaml manifest.
type ModMeta struct {
	Name                 string       `yaml:"Name"`
	Version              Version      `yaml:"Version"`
	DLL                  *string      `yaml:"DLL,omitempty"`
	Dependencies         []Dependency `yaml:"Dependencies"`
	OptionalDependencies []Dependency `yaml:"OptionalDependencies,omitempty"`
}

// ParseEverestYaml parses an everest.yaml manifest, which is a list of
// mod entries.
func ParseEverestYaml(data []byte) ([]ModMeta, error) {
	var mods []ModMeta
	if err := yaml.Unmarshal(data, &mods); err != nil {
		return nil, errors.Wrap(errors.PhaseMods, errors.KindInvalidData, err, "parsing everest.yaml")
	}

	for i := range mods {
		if mods[i].Name == "" {
			return nil, errors.InvalidData(errors.PhaseMods, nil,
				"everest.yaml mod definition found without a name")
		}
	}
	return mods, nil
}

// EncodeEverestYaml serializes a manifest back to YAML.
func EncodeEverestYaml(mods []ModMeta) ([]byte, error) {
	out, err := yaml.Marshal(mods)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseMods, errors.KindInvalidData, err, "encoding everest.yaml")
	}
	return out, nil
}
