// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

package qrz

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	apperrors "qrzlookup/cli/internal/errors"

	"golang.org/x/text/encoding/charmap"
)

// Envelope is the QRZDatabase root element returned by every call.
// Session and Callsign are nil when the element is absent.
type Envelope struct {
	XMLName  xml.Name  `xml:"QRZDatabase" json:"-"`
	Version  string    `xml:"version,attr" json:"version,omitempty"`
	Session  *Session  `xml:"Session" json:"Session,omitempty"`
	Callsign *Callsign `xml:"Callsign" json:"Callsign,omitempty"`
}

// Session is the Session node. Key and Error are mutually exclusive in a
// well-formed login reply.
type Session struct {
	Key     string `xml:"Key" json:"Key,omitempty"`
	Count   string `xml:"Count" json:"Count,omitempty"`
	SubExp  string `xml:"SubExp" json:"SubExp,omitempty"`
	GMTime  string `xml:"GMTime" json:"GMTime,omitempty"`
	Message string `xml:"Message" json:"Message,omitempty"`
	Error   string `xml:"Error" json:"Error,omitempty"`
}

// Callsign is the raw licensee record. Every field is an opaque string.
type Callsign struct {
	Call    string `xml:"call" json:"call"`
	Aliases string `xml:"aliases" json:"aliases,omitempty"`
	FName   string `xml:"fname" json:"fname,omitempty"`
	Name    string `xml:"name" json:"name,omitempty"`
	Addr1   string `xml:"addr1" json:"addr1,omitempty"`
	Addr2   string `xml:"addr2" json:"addr2,omitempty"`
	State   string `xml:"state" json:"state,omitempty"`
	Zip     string `xml:"zip" json:"zip,omitempty"`
	Country string `xml:"country" json:"country,omitempty"`
	Class   string `xml:"class" json:"class,omitempty"`
	ExpDate string `xml:"expdate" json:"expdate,omitempty"`
	EfDate  string `xml:"efdate" json:"efdate,omitempty"`
	Born    string `xml:"born" json:"born,omitempty"`
}

// Decode parses a response body into an Envelope. Any body that is not a
// QRZDatabase document yields a protocol error.
func Decode(body []byte) (*Envelope, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, apperrors.New(apperrors.Protocol, "empty response body")
	}
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.CharsetReader = charsetReader

	var env Envelope
	if err := dec.Decode(&env); err != nil {
		return nil, apperrors.Wrap(apperrors.Protocol, "response is not a QRZDatabase envelope", err)
	}
	trim(&env)
	return &env, nil
}

// charsetReader accepts the single-byte encodings QRZ has been seen to declare.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "utf-8", "utf8", "us-ascii", "ascii":
		return input, nil
	case "iso-8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1.NewDecoder().Reader(input), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(input), nil
	default:
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
}

func trim(env *Envelope) {
	if s := env.Session; s != nil {
		s.Key = strings.TrimSpace(s.Key)
		s.Error = strings.TrimSpace(s.Error)
		s.Message = strings.TrimSpace(s.Message)
	}
}
