// Package yaml2pdf renders structured YAML report descriptions to PDF.
//
// # Quick Start
//
// Load a document, render it, and write the bytes:
//
//	doc, err := yaml2pdf.LoadDocument("report.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pdf, res, err := yaml2pdf.Generate(doc, yaml2pdf.Options{Cover: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(yaml2pdf.OutputName(doc, ""), pdf, 0644)
//
// # Input Format
//
//	metadata:
//	  title: Quarterly Report
//	  date-format: "%d/%m/%Y"     # optional, strftime directives or a preset
//	sections:
//	  - header: Introduction
//	    text:
//	      - First paragraph.
//	      - Second paragraph.
//	    sections:
//	      - header: Scope
//	        text: [Nested sections flow on the same page.]
//
// Both top-level keys are required. LoadDocument reports ErrNotFound,
// ErrFormat or ErrSchema for unusable input.
//
// # Layout
//
// Every top-level section with content starts a new page. Headings shrink by
// two points per nesting level (see HeadingSize). Each page except the
// optional cover carries the title and date at the top and the page number
// at the bottom.
//
// # Page Tracking
//
// Render never modifies the Document. Instead, Result.Entries lists every
// drawn header with its SectionPath ("2.1"), level and page, which is what a
// table of contents or index builder needs.
//
// # Custom Renderers
//
// Render drives any Renderer. NewPDFRenderer is the fpdf-backed
// implementation used by Generate; tests substitute a recording renderer.
package yaml2pdf
