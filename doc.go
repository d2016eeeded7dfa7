// Package modulebestpractices bundles the "module best practices" guide,
// a set of conventions for authoring small, composable npm modules, and
// exposes it as a readable byte stream.
//
// The guide is this repository's README.md, compiled into any binary
// that imports the package. Resolution is against the program itself,
// never the working directory of whoever happens to run it, so a
// correctly built program can always produce its own documentation.
//
// Importing the package has no observable side effect; the display
// behavior lives entirely in the command under cmd/module-best-practices.
// The single entry point is Open:
//
//	doc, err := modulebestpractices.Open()
//	if err != nil {
//		return err
//	}
//	defer doc.Close()
//	if _, err := io.Copy(dst, doc); err != nil {
//		return err
//	}
//
// Every call to Open yields an independent stream positioned at the
// first byte, so consumers can attach the guide to whatever destination
// they like, from a terminal pager to a test buffer.
package modulebestpractices
