// Lisp expression reader
//
// converts a complete byte slice into an expression tree. the reader only
// recognizes a small Scheme-like surface: identifiers, #t/#f, integers in four
// radixes, double-quoted strings and parenthesized lists. it does no evaluation.
//
// restrictions:
//   1. only 7-bit ASCII characters have grammatical meaning; other bytes may
//      only appear inside strings, which must be valid UTF-8.
//   2. the only string escape is \" ; a backslash followed by anything else is
//      a syntax error.
//   3. integers are signed 64-bit; literals out of range are rejected.
//
// examples:
//
//   (define x 10) (#t #f) (1 #b101 #o17 #xFF "a \"quoted\" word")
//
// BNF (StrictReader):
//  <expr>            :: <number> | <atom> | <string> ;
//
//  <number>          :: <octal> | <binary> | <hexadecimal> | <decimal> ;
//  <octal>           :: "#o" <octal-digit>+ ;
//  <binary>          :: "#b" ( "0" | "1" )+ ;
//  <hexadecimal>     :: "#x" <hex-digit>+ ;
//  <decimal>         :: <digit>+ ;
//  <digit>           :: "0" | ... | "9" ;
//  <octal-digit>     :: "0" | ... | "7" ;
//  <hex-digit>       :: <digit> | "A" | ... | "F" | "a" | ... | "f" ;
//
//  <atom>            :: ( <letter> | <symbol> ) ( <letter> | <digit> | <symbol> )* ;
//  <letter>          :: "A" | ... | "Z" | "a" | ... | "z" ;
//  <symbol>          :: "!" | "#" | "$" | "%" | "&" | "|" | "*" | "+" | "-" | "/"
//                     | ":" | "<" | "=" | ">" | "?" | "@" | "^" | "_" | "~" ;
//                       (the atoms "#t" and "#f" are booleans)
//
//  <string>          :: "\"" ( <string-char> | "\\\"" )* "\"" ;
//  <string-char>     :: <any byte except "\\" and "\""> ;
//
//  <list>            :: "(" [ <expr> ( <whitespace>* <expr> )* ] ")" ;
//  <whitespace>      :: " " | "\t" | "\r" | "\n" ;
//
// FullReader extends <list> with nested lists, a dotted tail and padding:
//  <list>            :: "(" <whitespace>* [ <item> ( <whitespace>* <item> )*
//                       [ <whitespace>* "." <whitespace>* <item> ] ] <whitespace>* ")" ;
//  <item>            :: <expr> | <list> ;

package lisp
