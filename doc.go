// Package reportdoc compiles a constrained-markdown report document into a
// single themed, navigable HTML page.
//
// # Quick Start
//
// Create a service and compile markdown text:
//
//	svc, err := reportdoc.NewService()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := svc.Compile("# My Report\n## Intro\n## 1. First\nBody text.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("report.html", []byte(result.HTML), 0644)
//
// Use Service.Build to run the full load-compile-write cycle against the
// filesystem, resolving the source from an ordered candidate list and writing
// the output beside it.
//
// # Compilation Pipeline
//
// The compilation process follows these stages:
//
//  1. Segmentation: the raw text is split into title, subtitle, intro lines,
//     ordered sections, and a distinguished references section (Segment).
//  2. Block parsing: each section body becomes a typed sequence of block
//     nodes - subheadings, paragraphs, ordered and unordered lists
//     (ParseBlocks).
//  3. Rendering: block nodes are serialized to HTML with inline bold, link,
//     and citation substitutions applied (RenderBlocks, RenderInline).
//  4. Reference parsing: bibliography lines become ordered label/URL entries
//     (ParseReferences).
//  5. Assembly: hero, table of contents, section panels, and reference list
//     are composed into one self-contained page (AssemblePage).
//
// The supported grammar is deliberately narrow: one "# " title line, "## "
// section headings with an optional ordinal prefix, "### " subheadings,
// "- " and "N. " list items, **bold**, [label](http...) links, and [n]
// citation markers. Everything else renders as escaped paragraph text.
// Full CommonMark compliance is an explicit non-goal.
//
// # Determinism
//
// Compilation is a pure function of its input: the same source text always
// produces byte-identical output. No timestamps or environment-dependent
// values reach the rendered page.
package reportdoc
