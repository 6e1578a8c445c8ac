// Package standards decides whether a prompt looks like a coding
// request and carries the advisory block injected for those prompts.
package standards

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed config/standards.toml
var configFS embed.FS

// DefaultConfigPath is the optional project-local override, relative
// to the project root.
const DefaultConfigPath = ".claude/standards.toml"

// Advisor matches prompts against a keyword set and renders the
// advisory block.
type Advisor struct {
	// Keywords are matched case-insensitively as substrings of the
	// prompt. Stored lowercased.
	Keywords []string `toml:"keywords"`

	// Advisory is the block printed when a keyword matches, one
	// element per output line.
	Advisory []string `toml:"advisory"`

	// Source records where the configuration came from, for
	// `zenhook standards` output. Not part of the TOML schema.
	Source string `toml:"-"`
}

// Default returns the built-in advisor configuration.
func Default() (*Advisor, error) {
	data, err := configFS.ReadFile("config/standards.toml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	a, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	a.Source = "built-in"
	return a, nil
}

// Load returns the advisor configured from the override file at path,
// falling back to the built-in defaults when the file does not exist.
func Load(path string) (*Advisor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default()
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	a, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	a.Source = path
	return a, nil
}

func parse(data []byte) (*Advisor, error) {
	var a Advisor
	if _, err := toml.Decode(string(data), &a); err != nil {
		return nil, err
	}
	for i, kw := range a.Keywords {
		a.Keywords[i] = strings.ToLower(kw)
	}
	return &a, nil
}

// Match reports whether the prompt contains any configured keyword,
// returning the first keyword that matched.
func (a *Advisor) Match(prompt string) (string, bool) {
	lower := strings.ToLower(prompt)
	for _, kw := range a.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	return "", false
}

// Render returns the advisory block followed by the `---` separator
// line, ready to write to stdout.
func (a *Advisor) Render() string {
	var b strings.Builder
	for _, line := range a.Advisory {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("---\n")
	return b.String()
}
