package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse parses a scenario from YAML bytes.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		le := &LoadError{Message: "failed to parse YAML", Cause: err}
		var te *yaml.TypeError
		if !errors.As(err, &te) {
			le.Line = yamlErrorLine(err)
		}
		return nil, le
	}

	if sc.ID == "" {
		return nil, &LoadError{Message: "scenario ID is required"}
	}
	if len(sc.Steps) == 0 {
		return nil, &LoadError{Message: "scenario must have at least one step"}
	}
	for i, step := range sc.Steps {
		if _, ok := actions[step.Action]; !ok {
			return nil, &LoadError{Message: fmt.Sprintf("step %d: unknown action %q", i+1, step.Action)}
		}
		for key := range step.Expect {
			if _, ok := checks[key]; !ok {
				return nil, &LoadError{Message: fmt.Sprintf("step %d: unknown expectation %q", i+1, key)}
			}
		}
	}
	return &sc, nil
}

// Load loads a scenario from a file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	sc, err := Parse(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	return sc, nil
}

// LoadDirectory loads every .yaml or .yml scenario in dir, sorted by file
// name.
func LoadDirectory(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{File: dir, Message: "failed to read directory", Cause: err}
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	scenarios := make([]*Scenario, 0, len(names))
	for _, name := range names {
		sc, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

// LoadPath loads a single file or every scenario in a directory.
func LoadPath(path string) ([]*Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to stat path", Cause: err}
	}
	if info.IsDir() {
		return LoadDirectory(path)
	}
	sc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return []*Scenario{sc}, nil
}

// Filter returns the scenarios whose ID contains pattern or that carry tag.
// Empty arguments match everything.
func Filter(scenarios []*Scenario, pattern, tag string) []*Scenario {
	var out []*Scenario
	for _, sc := range scenarios {
		if pattern != "" && !strings.Contains(sc.ID, pattern) {
			continue
		}
		if tag != "" && !hasTag(sc, tag) {
			continue
		}
		out = append(out, sc)
	}
	return out
}

func hasTag(sc *Scenario, tag string) bool {
	for _, t := range sc.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// yamlErrorLine extracts the line number from a yaml.v3 syntax error
// ("yaml: line 3: ...").
func yamlErrorLine(err error) int {
	msg := err.Error()
	const marker = "line "
	i := strings.Index(msg, marker)
	if i < 0 {
		return 0
	}
	n := 0
	for _, r := range msg[i+len(marker):] {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}
