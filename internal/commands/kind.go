package commands

import (
	"fmt"
	"strings"
)

const (
	PublishCommand = "PUBLISH"

	ErrorFixtureGet = "get_a_WAMP_error"
	ErrorFixtureSet = "set_a_WAMP_error"
)

// Kind groups short commands by how a driver formats arguments and parses
// replies for them.
type Kind int

const (
	KindUnknown Kind = iota
	KindGet
	KindSet
	KindPublish
	KindErrorFixture
)

func (k Kind) String() string {
	switch k {
	case KindGet:
		return "get"
	case KindSet:
		return "set"
	case KindPublish:
		return "publish"
	case KindErrorFixture:
		return "error_fixture"
	default:
		return "unknown"
	}
}

// Classify maps a short command onto its Kind from the naming convention alone.
func Classify(short string) Kind {
	switch {
	case short == ErrorFixtureGet || short == ErrorFixtureSet:
		return KindErrorFixture
	case short == PublishCommand:
		return KindPublish
	case strings.HasPrefix(short, "get_"):
		return KindGet
	case strings.HasPrefix(short, "set_"):
		return KindSet
	default:
		return KindUnknown
	}
}

// NamingIssue is one advisory convention violation.
type NamingIssue struct {
	Variant Variant
	Command string
	Reason  string
}

func (i NamingIssue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Variant, i.Command, i.Reason)
}

// CheckNaming reports commands of d that break the naming convention. It is
// advisory; Lookup never consults it.
func CheckNaming(d *Directory) []NamingIssue {
	var issues []NamingIssue
	for _, k := range d.Keys() {
		addr := d.entries[k]
		switch {
		case Classify(k) == KindUnknown:
			issues = append(issues, NamingIssue{Variant: d.variant, Command: k, Reason: "missing get_/set_ prefix"})
		case strings.TrimSpace(addr) == "":
			issues = append(issues, NamingIssue{Variant: d.variant, Command: k, Reason: "empty uri"})
		case addr != strings.TrimSpace(addr):
			issues = append(issues, NamingIssue{Variant: d.variant, Command: k, Reason: "uri has surrounding whitespace"})
		}
	}
	return issues
}
