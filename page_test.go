package reportdoc

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
)

const testNavScript = "assets/nav-links.js"

func assemble(t *testing.T, input string) string {
	t.Helper()
	return AssemblePage(Segment(input), PageOptions{
		StyleCSS:  "body{}",
		NavScript: testNavScript,
	})
}

func TestAssemblePage_Structure(t *testing.T) {
	t.Parallel()

	input := "# My Report\n## Intro Sub\nlead paragraph\n## 1. First Section\nSome **bold** text with a citation [1].\n\n## References\n1. Some Source https://example.com/a"
	html := assemble(t, input)

	wantContains := []string{
		"<!DOCTYPE html>",
		"<title>My Report</title>",
		"<style>\nbody{}</style>",
		"<h1>My Report</h1>",
		`<p class="lead">Intro Sub</p>`,
		`<p class="intro">lead paragraph</p>`,
		`<nav class="nav-links" id="nav-top"></nav>`,
		`<li><a href="#first-section">1. First Section</a></li>`,
		`<section class="panel" id="first-section">`,
		"<h2>1. First Section</h2>",
		`<p>Some <strong>bold</strong> text with a citation <a class="cite" href="#ref-1" aria-label="Reference 1">[1]</a>.</p>`,
		`<li id="ref-1">Some Source <a href="https://example.com/a">https://example.com/a</a></li>`,
		`<nav class="nav-links" id="nav-bottom"></nav>`,
		fmt.Sprintf(`<script type="module" src="%s"></script>`, testNavScript),
	}

	for _, want := range wantContains {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestAssemblePage_AnchorRoundTrip(t *testing.T) {
	t.Parallel()

	input := "# T\n## Sub\n## 1. Heart & Aorta\nbody\n## 2. Lung Fields\nbody\n## Executive Motivation\nwhy"
	html := assemble(t, input)

	hrefs := regexp.MustCompile(`href="#([a-z0-9-]+)"`).FindAllStringSubmatch(html, -1)
	var tocTargets []string
	for _, m := range hrefs {
		if !strings.HasPrefix(m[1], "ref-") {
			tocTargets = append(tocTargets, m[1])
		}
	}

	if len(tocTargets) == 0 {
		t.Fatal("no TOC links found")
	}
	for _, target := range tocTargets {
		if !strings.Contains(html, fmt.Sprintf(`id="%s"`, target)) {
			t.Errorf("TOC link target %q has no matching panel id", target)
		}
	}
}

func TestAssemblePage_ExecutiveMotivationExcludedFromTOC(t *testing.T) {
	t.Parallel()

	input := "# T\n## Sub\n## Executive Motivation\nwhy\n## 1. First\nbody\n## 2. Second\nbody"
	html := assemble(t, input)

	// Panel exists.
	if !strings.Contains(html, `<section class="panel" id="executive-motivation">`) {
		t.Error("executive motivation panel missing")
	}
	if !strings.Contains(html, "<h2>Executive Motivation</h2>") {
		t.Error("executive motivation panel heading should be unnumbered")
	}

	// But no TOC entry, and numbering starts at 1 with the next section.
	if strings.Contains(html, `<a href="#executive-motivation">`) {
		t.Error("executive motivation must not appear in the TOC")
	}
	if !strings.Contains(html, `<li><a href="#first">1. First</a></li>`) {
		t.Error("first non-excluded section should be numbered 1")
	}
	if !strings.Contains(html, `<li><a href="#second">2. Second</a></li>`) {
		t.Error("second non-excluded section should be numbered 2")
	}
}

func TestAssemblePage_SectionRenumbering(t *testing.T) {
	t.Parallel()

	// Source ordinals are stripped and replaced by position-based numbers.
	input := "# T\n## Sub\n## 4. Alpha\nbody\n## 9. Beta\nbody"
	html := assemble(t, input)

	for _, want := range []string{
		`<li><a href="#alpha">1. Alpha</a></li>`,
		`<li><a href="#beta">2. Beta</a></li>`,
		"<h2>1. Alpha</h2>",
		"<h2>2. Beta</h2>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestAssemblePage_ReferenceAnchorsFollowPosition(t *testing.T) {
	t.Parallel()

	input := "# T\n## Sub\n## A\nbody\n## References\n1. First\n5. Fifth"
	html := assemble(t, input)

	if !strings.Contains(html, `<li id="ref-1">First</li>`) {
		t.Error("first reference should be ref-1")
	}
	// Source marker 5 lands at position 2; printed numbering diverges and
	// that divergence is preserved.
	if !strings.Contains(html, `<li id="ref-2">Fifth</li>`) {
		t.Error("second reference should be ref-2 regardless of source marker")
	}
}

func TestAssemblePage_EmptyDocumentStillRenders(t *testing.T) {
	t.Parallel()

	html := assemble(t, "plain line only")

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title></title>",
		`<ol class="toc-grid">`,
		`<ol class="ref-grid">`,
		`<nav class="nav-links" id="nav-bottom"></nav>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestAssemblePage_TitleEscaped(t *testing.T) {
	t.Parallel()

	html := assemble(t, "# CT & MRI <Study>\n## Sub")

	if !strings.Contains(html, "<title>CT &amp; MRI &lt;Study&gt;</title>") {
		t.Error("title not escaped in <title>")
	}
	if !strings.Contains(html, "<h1>CT &amp; MRI &lt;Study&gt;</h1>") {
		t.Error("title not escaped in hero")
	}
}

func TestAssemblePage_Deterministic(t *testing.T) {
	t.Parallel()

	input := "# T\n## Sub\n## 1. A\n- x\n- y\n\n1. one\n2. two\n## References\n1. S https://example.com/s"

	first := assemble(t, input)
	second := assemble(t, input)
	if first != second {
		t.Error("repeated assembly of identical input produced different bytes")
	}
}
