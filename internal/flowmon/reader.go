// Package flowmon prints the per-flow statistics and IPv4 classification
// found in an ns-3 flow-monitor XML report.
//
// The FlowStats and Ipv4FlowClassifier lists are printed independently, in
// document order. ns-3 writes both lists with the same flow IDs, but the
// reader neither checks nor relies on that.
package flowmon

import (
	"fmt"
	"io"
	"os"

	"github.com/mohit83k/flowmon-reader/internal/logger"
	"github.com/mohit83k/flowmon-reader/internal/model"
)

// Reader prints flow reports to Out.
type Reader struct {
	Out    io.Writer
	Logger logger.Logger
}

// NewReader returns a Reader printing to out.
func NewReader(out io.Writer, log logger.Logger) *Reader {
	if log == nil {
		log = logger.Discard()
	}
	return &Reader{
		Out:    out,
		Logger: log,
	}
}

// ReadFlowReport prints the report at path to standard output.
func ReadFlowReport(path string) error {
	return NewReader(os.Stdout, nil).Read(path)
}

// Read parses the report at path and prints both sections. A missing
// Ipv4FlowClassifier section is only detected after FlowStats has been
// printed; that output is not withdrawn.
func (r *Reader) Read(path string) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	log := r.Logger.WithFields(map[string]any{"path": path})
	log.Debug("Parsed flow report")

	p := &printer{w: r.Out}

	stats, ok := first(doc.FlowStats)
	if !ok {
		return &MissingSectionError{Section: SectionFlowStats}
	}
	p.line("Flow Stats:")
	for _, f := range stats.Flows {
		p.stat(f.stat())
	}
	if p.err != nil {
		return fmt.Errorf("failed to write report: %w", p.err)
	}
	log.WithFields(map[string]any{"section": SectionFlowStats, "flows": len(stats.Flows)}).Debug("Printed section")

	classifier, ok := first(doc.Classifiers)
	if !ok {
		return &MissingSectionError{Section: SectionIpv4FlowClassifier}
	}
	p.line("\nIPv4 Flow Classifier:")
	for _, f := range classifier.Flows {
		p.classification(f.classification())
	}
	if p.err != nil {
		return fmt.Errorf("failed to write report: %w", p.err)
	}
	log.WithFields(map[string]any{"section": SectionIpv4FlowClassifier, "flows": len(classifier.Flows)}).Debug("Printed section")

	return nil
}

// printer writes labeled lines and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) field(label string, v model.Attr) {
	p.line(label + ": " + v.String())
}

func (p *printer) stat(s model.FlowStat) {
	p.line("")
	p.field("Flow ID", s.FlowID)
	p.field("Time First Tx Packet", s.TimeFirstTxPacket)
	p.field("Time First Rx Packet", s.TimeFirstRxPacket)
	p.field("Time Last Tx Packet", s.TimeLastTxPacket)
	p.field("Time Last Rx Packet", s.TimeLastRxPacket)
	p.field("Transmitted Packets", s.TxPackets)
	p.field("Received Packets", s.RxPackets)
	p.field("Lost Packets", s.LostPackets)
}

func (p *printer) classification(c model.FlowClassification) {
	p.line("")
	p.field("Flow ID", c.FlowID)
	p.field("Source Address", c.SourceAddress)
	p.field("Destination Address", c.DestinationAddress)
	p.field("Protocol", c.Protocol)
}
