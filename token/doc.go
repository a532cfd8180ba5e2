// Package token provides character-class tokenization of text.
//
// [Classify] maps every character of its input to a [Token], [Coalesce]
// merges runs of letters into words, and [Tokenize] does both.
//
// Offsets are counted in characters (runes), not bytes.
package token
