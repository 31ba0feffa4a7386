// Package parser turns automapper rule text into a rules.Config list.
//
// Parsing is strict: a rule file must be well formed as a whole to be
// executable, so the first structural error aborts the parse and no
// partial rule set is returned. Use package lint for editor feedback on
// malformed files.
//
// Grammar, one directive per line:
//
//	[name]
//	NoLayerCopy
//	Index <id> [XFLIP|YFLIP|ROTATE]*
//	NewRun
//	Pos <dx> <dy> EMPTY|FULL
//	Pos <dx> <dy> INDEX|NOTINDEX <id> [XFLIP|YFLIP|ROTATE|NONE]* (OR <id> [...]*)*
//	Random <n>|<fraction>|<percent>%
//	NoDefaultRule
//
// Tokens left on a line after a directive's arguments are ignored.
package parser
