// Package encode serializes ir document trees back to INI-dialect text.
//
// Untouched blocks replay their stored raw lines verbatim; updated blocks
// are regenerated from their current field values. Serializing a document
// parsed from text T without mutating it yields exactly T.
package encode
