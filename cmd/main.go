// coolfront is the front end of a COOL compiler: it lexes, parses and builds
// the abstract syntax tree of COOL programs.
//
// Usage:
//
//	# Print the AST of one or more files
//	coolfront ast main.cl list.cl
//
//	# Same, as YAML with positions
//	coolfront ast --format yaml --positions main.cl
//
//	# Print the token stream
//	coolfront tokens main.cl
//
//	# Rebuild on every change below a directory
//	coolfront watch ./examples
package main

func main() {
	Execute()
}
