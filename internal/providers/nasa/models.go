package nasa

import (
	"iss-tracker/internal/types"
)

// The OEM document nests as ndm > oem > body > segment, with the header beside
// the body and the state vectors inside segment > data. Components carry a
// "units" attribute and the numeric value as character data.

type oemDocument struct {
	OEM oemBody `xml:"oem"`
}

type oemBody struct {
	Header  oemHeader  `xml:"header"`
	Segment oemSegment `xml:"body>segment"`
}

type oemHeader struct {
	CreationDate string `xml:"CREATION_DATE"`
	Originator   string `xml:"ORIGINATOR"`
}

type oemSegment struct {
	Metadata oemMetadata `xml:"metadata"`
	Data     oemData     `xml:"data"`
}

type oemMetadata struct {
	ObjectName string `xml:"OBJECT_NAME"`
	ObjectID   string `xml:"OBJECT_ID"`
	CenterName string `xml:"CENTER_NAME"`
	RefFrame   string `xml:"REF_FRAME"`
	TimeSystem string `xml:"TIME_SYSTEM"`
	StartTime  string `xml:"START_TIME"`
	StopTime   string `xml:"STOP_TIME"`
}

type oemData struct {
	Comments     []string         `xml:"COMMENT"`
	StateVectors []oemStateVector `xml:"stateVector"`
}

type oemStateVector struct {
	Epoch string         `xml:"EPOCH"`
	X     oemMeasurement `xml:"X"`
	Y     oemMeasurement `xml:"Y"`
	Z     oemMeasurement `xml:"Z"`
	XDot  oemMeasurement `xml:"X_DOT"`
	YDot  oemMeasurement `xml:"Y_DOT"`
	ZDot  oemMeasurement `xml:"Z_DOT"`
}

type oemMeasurement struct {
	Value string `xml:",chardata"`
	Units string `xml:"units,attr"`
}

// EphemerisSnapshot is the result of one feed fetch. It is immutable for the
// duration of the request that fetched it. Dropped counts records that were
// missing a component or carried a non-finite value.
type EphemerisSnapshot struct {
	Header       types.FeedHeader
	Metadata     types.FeedMetadata
	Comments     []string
	StateVectors []types.StateVector
	Dropped      int
}
