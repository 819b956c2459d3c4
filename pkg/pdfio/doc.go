// Package pdfio is the document I/O layer around the composition core.
//
// It has two halves. The Decoder reads individual card PDFs with pdfcpu:
// page count, media box, and any annotations that must follow the card onto
// the output sheet. The Writer executes a compose.Plan with gofpdf/gofpdi,
// stamping each imported card page into its computed cell, then reopens the
// result with pdfcpu to attach the translated annotations.
//
// Nothing in here computes geometry; the plan arrives fully resolved.
package pdfio
