package flowmon

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/mohit83k/flowmon-reader/internal/model"
)

// document is the subset of a flow-monitor report the reader looks at.
// The root element name is not checked: ns-3 writes <FlowMonitor>, hand-made
// reports often use <root>.
type document struct {
	FlowStats   []section `xml:"FlowStats"`
	Classifiers []section `xml:"Ipv4FlowClassifier"`
}

type section struct {
	Flows []flowElem `xml:"Flow"`
}

type flowElem struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

// attr looks up an attribute by local name.
func (f flowElem) attr(name string) model.Attr {
	for _, a := range f.Attrs {
		if a.Name.Local == name {
			return model.NewAttr(a.Value)
		}
	}
	return model.Attr{}
}

func (f flowElem) stat() model.FlowStat {
	return model.FlowStat{
		FlowID:            f.attr("flowId"),
		TimeFirstTxPacket: f.attr("timeFirstTxPacket"),
		TimeFirstRxPacket: f.attr("timeFirstRxPacket"),
		TimeLastTxPacket:  f.attr("timeLastTxPacket"),
		TimeLastRxPacket:  f.attr("timeLastRxPacket"),
		TxPackets:         f.attr("txPackets"),
		RxPackets:         f.attr("rxPackets"),
		LostPackets:       f.attr("lostPackets"),
	}
}

func (f flowElem) classification() model.FlowClassification {
	return model.FlowClassification{
		FlowID:             f.attr("flowId"),
		SourceAddress:      f.attr("sourceAddress"),
		DestinationAddress: f.attr("destinationAddress"),
		Protocol:           f.attr("protocol"),
	}
}

// first returns the first occurrence of a section, if any.
func first(s []section) (section, bool) {
	if len(s) == 0 {
		return section{}, false
	}
	return s[0], true
}

// loadDocument reads and decodes the whole report. The file is closed before
// it returns.
func loadDocument(path string) (*document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &MalformedInputError{Path: path, Err: err}
	}
	defer file.Close()

	doc, err := decodeDocument(file)
	if err != nil {
		return nil, &MalformedInputError{Path: path, Err: err}
	}
	return doc, nil
}

func decodeDocument(r io.Reader) (*document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	start, err := rootElement(dec)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := dec.DecodeElement(&doc, &start); err != nil {
		return nil, err
	}
	if err := doc.checkAttrs(); err != nil {
		return nil, err
	}

	// Only comments, processing instructions and whitespace may follow the root.
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := dec.InputPos()
		switch t := tok.(type) {
		case xml.StartElement:
			return nil, fmt.Errorf("line %d: unexpected element <%s> after root", line, t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return nil, fmt.Errorf("line %d: unexpected text after root", line)
			}
		}
	}
}

// rootElement skips the prolog and returns the root start tag. Text in the
// prolog other than a byte order mark is an error.
func rootElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, errors.New("no root element")
		}
		if err != nil {
			return xml.StartElement{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return t, nil
		case xml.CharData:
			if len(bytes.TrimSpace(bytes.TrimPrefix(t, utf8BOM))) != 0 {
				line, _ := dec.InputPos()
				return xml.StartElement{}, fmt.Errorf("line %d: unexpected text before root", line)
			}
		}
	}
}

var utf8BOM = []byte("\ufeff")

// checkAttrs rejects Flow elements that repeat an attribute. encoding/xml
// accepts them, but they are not well-formed XML.
func (d *document) checkAttrs() error {
	for _, sections := range [][]section{d.FlowStats, d.Classifiers} {
		for _, s := range sections {
			for _, f := range s.Flows {
				seen := make(map[xml.Name]struct{}, len(f.Attrs))
				for _, a := range f.Attrs {
					if _, dup := seen[a.Name]; dup {
						return fmt.Errorf("duplicate attribute %q on <Flow>", a.Name.Local)
					}
					seen[a.Name] = struct{}{}
				}
			}
		}
	}
	return nil
}
