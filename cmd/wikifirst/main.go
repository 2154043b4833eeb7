// Package main provides the entry point for the wikifirst CLI.
//
// wikifirst streams a MediaWiki XML export and emits, for every
// qualifying article, the first meaningful wiki link in its body text.
//
// Usage:
//
//	wikifirst extract <dump-file>
//	wikifirst extract --markdown dump1.xml dump2.xml.bz2
//
// See --help for all available options.
package main

// main is the entry point for wikifirst.
func main() {
	Execute()
}
