package models

// RunContext identifies the CI run under triage and where its report
// goes. Built once per invocation, read-only afterwards; nothing is
// persisted across invocations.
type RunContext struct {
	Owner    string
	Repo     string
	RunID    int64
	PRNumber int
	HeadSHA  string
	Branch   string
}
