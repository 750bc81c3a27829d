// Package puzzle turns puzzle input into the typed values consumed by the
// solver packages.
//
// Two encodings are accepted for each input kind:
//
//   - the plain text sentences, one record per line (blueprints may wrap),
//     read by ParseValves, ParseBlueprints and ParseHeightmap;
//   - a YAML document for hand-written fixtures, read by LoadValvesYAML and
//     LoadBlueprintsYAML.
//
// The *File helpers pick the decoder from the file extension (.yaml/.yml
// selects YAML). Every decoding failure wraps ErrMalformedInput and names
// the offending line.
package puzzle
