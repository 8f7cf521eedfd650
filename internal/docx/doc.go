// Package docx expands report templates stored as DOCX packages.
//
// A DOCX file is a ZIP archive of XML parts. The main part, word/document.xml,
// is treated as a text/template source after patching the XML so that actions
// split across Word runs are joined back together. Four action forms exist:
//
//	{{ .title }}            value, XML-escaped and inserted into the current text
//	{{r .description }}     rich text: replaces the enclosing <w:r> with styled runs
//	{{p range .findings }}  control action replacing the enclosing <w:p>
//	{{tr range .findings }} control action replacing the enclosing <w:tr>
//
// Hyperlinks and images produced while rendering are registered as package
// relationships; images are copied into word/media.
package docx
