// Copyright (c) 2025 QRZ Lookup
// Licensed under the MIT License. See LICENSE file in the project root for details.

package lookup

import (
	"encoding/json"
	"fmt"
	"io"
)

// Render writes r to w, either as indented JSON or as the one-line summary
// "CALLSIGN First Last".
func Render(w io.Writer, r Record, asJSON bool) error {
	if asJSON {
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	_, err := fmt.Fprintln(w, Summary(r))
	return err
}

// Summary is the one-line form of r.
func Summary(r Record) string {
	return r.License.Callsign + " " + r.Name.First + " " + r.Name.Last
}
