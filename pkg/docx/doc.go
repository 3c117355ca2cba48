// Package docx recognizes word-processing packages and the structural
// elements inside them.
//
// It is the layer a template engine sits on: before any parsing starts, a
// Detector decides whether an archive is a DOCX at all; while a part is being
// streamed, a Scanner tags every start and end element with its
// ooxml.ElementKind so that merge fields, table rows, bookmarks and images can
// be found without the engine re-testing namespaces itself.
//
// # Detection
//
//	archive, err := docx.OpenArchiveFile("template.docx")
//	if err != nil {
//	    return err
//	}
//	defer archive.Close()
//
//	if !docx.IsWordProcessingPackage(archive) {
//	    return docx.ErrNotWordProcessing
//	}
//
// A missing or malformed structure is a plain false, never an error, since
// callers use detection to pick between several document formats.
//
// # Scanning
//
//	summary, err := docx.Summarize(strings.NewReader(documentXML))
//	for _, f := range summary.MergeFields() {
//	    fmt.Println(f.Instruction.Argument, f.Simple)
//	}
//
// The Scanner keeps the prefix spelling of each element in Event.QName, but
// classification only looks at the resolved namespace and local name.
package docx
