package flowmon

import "fmt"

// Section names of a flow-monitor report.
const (
	SectionFlowStats          = "FlowStats"
	SectionIpv4FlowClassifier = "Ipv4FlowClassifier"
)

// MalformedInputError reports a report file that could not be opened or is
// not well-formed XML.
type MalformedInputError struct {
	Path string
	Err  error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed flow report %q: %v", e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// MissingSectionError reports a required top-level section that is not a
// child of the document root.
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("flow report has no %s section", e.Section)
}
