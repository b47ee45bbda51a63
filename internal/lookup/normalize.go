// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

package lookup

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"qrzlookup/cli/internal/qrz"
)

var classNames = map[string]string{
	"T": "technician",
	"G": "general",
	"E": "extra",
	"A": "advanced",
}

// ClassLabel maps a license class code to its label. Unknown codes are
// returned unchanged.
func ClassLabel(code string) string {
	if label, ok := classNames[code]; ok {
		return label
	}
	return code
}

// Capitalize upper-cases the first rune of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// TitleCase lower-cases s and capitalizes every space-separated word.
// Runs of spaces are kept as they are.
func TitleCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}

// Normalize maps the raw record onto a Record.
func Normalize(c qrz.Callsign) Record {
	var r Record

	given := strings.Fields(c.FName)
	if len(given) > 0 {
		r.Name.First = Capitalize(given[0])
	}
	if len(given) > 1 {
		r.Name.Middle = given[1]
	}

	family := strings.Split(c.Name, ", ")
	r.Name.Last = Capitalize(family[0])
	if len(family) > 1 {
		r.Name.Suffix = family[1]
	}

	r.Address = Address{
		Line:  TitleCase(c.Addr1),
		City:  TitleCase(c.Addr2),
		State: c.State,
		Zip:   c.Zip,
	}

	r.License = License{
		Callsign: c.Call,
		Class:    ClassLabel(c.Class),
		Expires:  c.ExpDate,
		Aliases:  c.Aliases,
	}

	if c.Born != "" {
		r.BirthYear = c.Born
	}
	return r
}
