package model

// MissingValue is what a missing attribute prints as.
const MissingValue = "None"

// Attr is an XML attribute value that may be absent from its element.
type Attr struct {
	value   string
	present bool
}

// NewAttr returns a present attribute holding v.
func NewAttr(v string) Attr {
	return Attr{value: v, present: true}
}

// Value returns the raw attribute text and whether the attribute was present.
func (a Attr) Value() (string, bool) {
	return a.value, a.present
}

// String returns the raw text, or MissingValue when the attribute is absent.
func (a Attr) String() string {
	if !a.present {
		return MissingValue
	}
	return a.value
}

// FlowStat holds the counters and timestamps of one flow as reported under FlowStats.
type FlowStat struct {
	FlowID            Attr
	TimeFirstTxPacket Attr
	TimeFirstRxPacket Attr
	TimeLastTxPacket  Attr
	TimeLastRxPacket  Attr
	TxPackets         Attr
	RxPackets         Attr
	LostPackets       Attr
}

// FlowClassification maps a flow ID to its IPv4 5-tuple subset.
type FlowClassification struct {
	FlowID             Attr
	SourceAddress      Attr
	DestinationAddress Attr
	Protocol           Attr
}
