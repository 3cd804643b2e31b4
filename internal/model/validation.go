package model

import "fmt"

// Severity is how bad a validation issue is.
type Severity int

const (
	// SeverityError issues must be fixed before the configuration is handed
	// to a server.
	SeverityError Severity = iota
	// SeverityWarning issues are reported but do not block.
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// IssueCode identifies the check that produced an issue.
type IssueCode string

const (
	IssueNoServer               IssueCode = "no-server"
	IssueDuplicateScreenName    IssueCode = "duplicate-screen-name"
	IssueUnknownScreen          IssueCode = "unknown-screen"
	IssueExternalConfigPath     IssueCode = "external-config-path-empty"
	IssueExternalConfigNotFound IssueCode = "external-config-not-found"
	IssueDuplicateCombination   IssueCode = "duplicate-combination"
)

// ValidationIssue is a semantic problem found by ServerConfig.Validate.
//
// HotkeyIndex and ActionIndex are -1 where they do not apply.
type ValidationIssue struct {
	Severity    Severity
	Code        IssueCode
	Message     string
	Screen      string
	HotkeyIndex int
	ActionIndex int
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", i.Severity, i.Message)
}

// HasErrors returns whether any of the issues is an error.
func HasErrors(issues []ValidationIssue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// PathChecker checks whether a file exists.
// The model never touches the filesystem itself.
type PathChecker interface {
	Exists(path string) bool
}

// Validate checks the configuration and returns every issue found, in a fixed
// order:
//  1. no server screen (error)
//  2. duplicate screen names (error)
//  3. actions referring to screens that do not exist (error)
//  4. external config enabled without a path, or with a path the checker
//     does not find (error); existence is not checked for a nil checker
//  5. hotkeys sharing a combination with an earlier hotkey (warning)
//
// Validate does not change the configuration.
func (c *ServerConfig) Validate(paths PathChecker) []ValidationIssue {
	issues := []ValidationIssue{}
	add := func(severity Severity, code IssueCode, screen string, hotkey, action int, format string, args ...interface{}) {
		issues = append(issues, ValidationIssue{
			Severity:    severity,
			Code:        code,
			Message:     fmt.Sprintf(format, args...),
			Screen:      screen,
			HotkeyIndex: hotkey,
			ActionIndex: action,
		})
	}

	screens := c.topology.Screens()

	if _, ok := c.topology.ServerScreen(); !ok {
		add(SeverityError, IssueNoServer, "", -1, -1, "no screen is marked as server")
	}

	seen := make(map[string]bool, len(screens))
	for _, s := range screens {
		if seen[s.Name] {
			add(SeverityError, IssueDuplicateScreenName, s.Name, -1, -1, "screen name '%s' is used more than once", s.Name)
		}
		seen[s.Name] = true
	}

	hotkeys := c.hotkeys.Hotkeys()
	for hi, h := range hotkeys {
		for ai, a := range h.Actions {
			for _, name := range a.ReferencedScreens() {
				if !seen[name] {
					add(SeverityError, IssueUnknownScreen, name, hi, ai,
						"action %d (%s) of hotkey %d (%s) refers to unknown screen '%s'", ai, a, hi, h, name)
				}
			}
		}
	}

	ext := c.settings.ExternalConfig
	if ext.Enabled {
		switch {
		case ext.Path == "":
			add(SeverityError, IssueExternalConfigPath, "", -1, -1, "external configuration enabled without a file")
		case paths != nil && !paths.Exists(ext.Path):
			add(SeverityError, IssueExternalConfigNotFound, "", -1, -1, "external configuration file '%s' not found", ext.Path)
		}
	}

	for j := range hotkeys {
		for i := 0; i < j; i++ {
			if hotkeys[i].Combination == hotkeys[j].Combination {
				add(SeverityWarning, IssueDuplicateCombination, "", j, -1,
					"hotkey %d (%s) has the same combination as hotkey %d", j, hotkeys[j], i)
				break
			}
		}
	}

	return issues
}
