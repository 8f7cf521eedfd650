// Package templates locates report templates and detects their format.
//
// # Loader Architecture
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in templates compiled into the binary
//	    ├── FilesystemLoader  - templates stored in a directory on disk
//	    └── Store             - custom directory first, then built-ins
//
// A template is addressed by name (the file name without extension, e.g.
// "pentest" for pentest.docx) or, through Open, by file path.
//
// # Format Detection
//
// The format is sniffed from the content with mimetype and cross-checked with
// the file extension. Files in formats no renderer supports are still returned
// so that callers can reject them explicitly.
//
// # Security
//
// Names are validated and FilesystemLoader keeps resolved paths, symlinks
// included, inside its base directory.
package templates
