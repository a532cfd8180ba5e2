// Package encode writes token streams as text.
//
// # Usage
//
//	toks := token.Tokenize(src)
//
//	// one `Token(Category, "text", offset)` line per token
//	err := encode.Encode(toks, w)
//
//	// JSON records with line and column
//	err = encode.Encode(toks, w,
//	    encode.EncodeFormat(format.JSONFormat),
//	    encode.EncodeLines(token.NewLines(toks)))
//
// # Related Packages
//
//   - github.com/signadot/textlex/token - tokenization
//   - github.com/signadot/textlex/format - output formats
package encode
