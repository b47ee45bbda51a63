// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package lookup resolves a callsign into a normalized licensee record.
//
// The package owns the whole single-shot flow: authenticate, query, normalize
// and render. Each step runs only after the previous one succeeded; the first
// failure ends the run.
package lookup

// Record is the normalized licensee record. JSON keys match the output of
// earlier qrz-lookup releases.
type Record struct {
	Name      Name    `json:"name"`
	Address   Address `json:"address"`
	License   License `json:"fcc"`
	BirthYear string  `json:"birthyear,omitempty"`
}

// Name is the operator's name split into its parts. Middle and Suffix are
// empty when the service does not provide them.
type Name struct {
	First  string `json:"first"`
	Middle string `json:"middle,omitempty"`
	Last   string `json:"last"`
	Suffix string `json:"suffix,omitempty"`
}

// Address is the mailing address.
type Address struct {
	Line  string `json:"address"`
	City  string `json:"city"`
	State string `json:"state,omitempty"`
	Zip   string `json:"zip,omitempty"`
}

// License holds the license details.
type License struct {
	Callsign string `json:"callsign"`
	Class    string `json:"class"`
	Expires  string `json:"expires,omitempty"`
	Aliases  string `json:"aliases,omitempty"`
}
