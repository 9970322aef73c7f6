// Package codec holds the binary payload codecs used by array attributes:
//
//   - base64: fixed-width elements laid out little-endian and base64 encoded
//   - list: nested sequences whose nesting depth equals the dimension count
//
// The package works on plain Go slices and generic trees and knows nothing
// about attribute nodes; the saldata package maps its errors to Issues.
package codec
