package lingua

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Writing directions.
const (
	LTR = "ltr"
	RTL = "rtl"
)

// rtlByDefault lists the languages written right to left when info.txt
// does not say otherwise.
var rtlByDefault = map[string]bool{"ara": true, "heb": true}

// Info describes a language for presentation.
type Info struct {
	Code     string       `json:"code"`
	Name     string       `json:"name"`
	OrigName string       `json:"orig_name"`
	Family   string       `json:"family,omitempty"`
	Branch   string       `json:"branch,omitempty"`
	Dir      string       `json:"dir"`
	Tag      language.Tag `json:"tag"`
}

// NormalizeCode maps any ISO 639 code ("fr", "fra", "FRA") to the
// three-letter code languages are registered under.
func NormalizeCode(code string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(code))
	base, err := language.ParseBase(c)
	if err != nil {
		return "", fmt.Errorf("language %q: %w", code, ErrUnknownLanguage)
	}
	return base.ISO3(), nil
}

func newInfo(code string) Info {
	info := Info{Code: code, Dir: LTR}
	if rtlByDefault[code] {
		info.Dir = RTL
	}
	if tag, err := language.Parse(code); err == nil {
		info.Tag = tag
	}
	return info
}

// set assigns one info.txt field.
func (i *Info) set(key, value string) error {
	switch key {
	case "name":
		i.Name = value
	case "orig":
		i.OrigName = value
	case "family":
		i.Family = value
	case "branch":
		i.Branch = value
	case "dir":
		if value != LTR && value != RTL {
			return fmt.Errorf("dir must be %s or %s, got %q", LTR, RTL, value)
		}
		i.Dir = value
	default:
		return fmt.Errorf("unknown info field %q", key)
	}
	return nil
}
